package storages

import (
	"context"
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/muffin/extid"
	"github.com/adamluzsi/muffin/reflects"
)

// RepositorySpec is the shared behaviour of the Repository implementations.
// Entity must have an ID field and a Name string field.
type RepositorySpec struct {
	Entity  interface{}
	Subject func(testing.TB) Repository
}

func (spec RepositorySpec) Test(t *testing.T) {
	s := testcase.NewSpec(t)

	repository := func(t *testcase.T) Repository { return t.I(`repository`).(Repository) }
	ctx := func(t *testcase.T) context.Context { return t.I(`ctx`).(context.Context) }

	s.Let(`repository`, func(t *testcase.T) interface{} {
		return spec.Subject(t)
	})
	s.Let(`ctx`, func(t *testcase.T) interface{} { return context.Background() })
	s.Let(`entity`, func(t *testcase.T) interface{} {
		ptr := reflects.New(spec.Entity)
		reflects.BaseValueOf(ptr).FieldByName("Name").SetString("muffin")
		return ptr
	})
	s.After(func(t *testcase.T) { require.Nil(t, repository(t).Close()) })

	s.Describe(`#Save`, func(s *testcase.Spec) {
		subject := func(t *testcase.T) error {
			return repository(t).Save(ctx(t), t.I(`entity`))
		}

		s.Then(`an ID is assigned and the entity can be found by it`, func(t *testcase.T) {
			require.Nil(t, subject(t))

			id, ok := extid.Lookup(t.I(`entity`))
			require.True(t, ok)

			found := reflects.New(spec.Entity)
			ok, err := repository(t).FindByID(ctx(t), found, id)
			require.Nil(t, err)
			require.True(t, ok)
			require.Equal(t, t.I(`entity`), found)
		})

		s.Then(`saved entities are listed`, func(t *testcase.T) {
			require.Nil(t, subject(t))

			all, err := repository(t).FindAll(ctx(t), spec.Entity)
			require.Nil(t, err)
			require.Len(t, all, 1)
		})

		s.When(`entity already has an ID`, func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) { require.Nil(t, extid.Set(t.I(`entity`), "muffin-1")) })

			s.Then(`the ID is kept`, func(t *testcase.T) {
				require.Nil(t, subject(t))
				id, _ := extid.Lookup(t.I(`entity`))
				require.Equal(t, "muffin-1", id)
			})
		})

		s.When(`context is canceled`, func(s *testcase.Spec) {
			s.Let(`ctx`, func(t *testcase.T) interface{} {
				c, cancel := context.WithCancel(context.Background())
				cancel()
				return c
			})

			s.Then(`it will respond with ctx canceled error`, func(t *testcase.T) {
				require.Equal(t, context.Canceled, subject(t))
			})
		})
	})

	s.Describe(`#Delete`, func(s *testcase.Spec) {
		subject := func(t *testcase.T) error {
			return repository(t).Delete(ctx(t), t.I(`entity`))
		}

		s.When(`entity was saved`, func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) { require.Nil(t, repository(t).Save(ctx(t), t.I(`entity`))) })

			s.Then(`it can't be found anymore`, func(t *testcase.T) {
				require.Nil(t, subject(t))

				id, _ := extid.Lookup(t.I(`entity`))
				ok, err := repository(t).FindByID(ctx(t), reflects.New(spec.Entity), id)
				require.Nil(t, err)
				require.False(t, ok)
			})
		})

		s.When(`entity has no ID`, func(s *testcase.Spec) {
			s.Then(`it is expected to return with error`, func(t *testcase.T) {
				require.Equal(t, ErrIDRequired, subject(t))
			})
		})
	})

	s.Describe(`#FindByID`, func(s *testcase.Spec) {
		s.Then(`unknown id is not found`, func(t *testcase.T) {
			ok, err := repository(t).FindByID(ctx(t), reflects.New(spec.Entity), "unknown")
			require.Nil(t, err)
			require.False(t, ok)
		})
	})
}
