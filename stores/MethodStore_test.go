package stores_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/muffin"
	"github.com/adamluzsi/muffin/stores"
)

func TestMethodStore(t *testing.T) {
	s := testcase.NewSpec(t)

	store := func(t *testcase.T) *stores.MethodStore { return t.I(`store`).(*stores.MethodStore) }
	model := func(t *testcase.T) *ActiveRecord { return t.I(`model`).(*ActiveRecord) }

	s.Let(`store`, func(t *testcase.T) interface{} { return stores.NewMethodStore() })
	s.Let(`model`, func(t *testcase.T) interface{} { return &ActiveRecord{Name: "muffin"} })

	s.Describe(`#Persist`, func(s *testcase.Spec) {
		subject := func(t *testcase.T) error {
			return store(t).Persist(context.Background(), model(t))
		}

		s.Then(`it calls the default save method of the model`, func(t *testcase.T) {
			require.Nil(t, subject(t))
			require.Equal(t, 1, model(t).saved)
		})

		s.When(`the model save method returns an error`, func(s *testcase.Spec) {
			s.Let(`model`, func(t *testcase.T) interface{} {
				return &ActiveRecord{err: errors.New("boom")}
			})

			s.Then(`it reports save failure`, func(t *testcase.T) {
				err := subject(t)
				require.True(t, errors.Is(err, muffin.ErrSaveFailed))
				require.Contains(t, err.Error(), "boom")
			})
		})

		s.When(`save method is configured to a method returning bool`, func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) { store(t).SetSaveMethod("Store") })

			s.Then(`true means success`, func(t *testcase.T) {
				require.Nil(t, subject(t))
			})

			s.And(`the method reports false`, func(s *testcase.Spec) {
				s.Let(`model`, func(t *testcase.T) interface{} {
					return &ActiveRecord{err: errors.New("invalid")}
				})

				s.Then(`it reports save failure`, func(t *testcase.T) {
					require.True(t, errors.Is(subject(t), muffin.ErrSaveFailed))
				})
			})
		})

		s.When(`save method is configured to a missing method`, func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) { store(t).SetSaveMethod("Persist") })

			s.Then(`it reports the save method as not found`, func(t *testcase.T) {
				require.True(t, errors.Is(subject(t), muffin.ErrSaveMethodNotFound))
			})
		})

		s.When(`save method has an unsupported signature`, func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) { store(t).SetSaveMethod("Variadic") })

			s.Then(`it reports the save method as not found`, func(t *testcase.T) {
				require.True(t, errors.Is(subject(t), muffin.ErrSaveMethodNotFound))
			})
		})
	})

	s.Describe(`#Delete`, func(s *testcase.Spec) {
		subject := func(t *testcase.T) error {
			return store(t).Delete(context.Background(), model(t))
		}

		s.Then(`it calls the default delete method with the context`, func(t *testcase.T) {
			require.Nil(t, subject(t))
			require.Equal(t, 1, model(t).deleted)
		})

		s.When(`delete method is configured to a missing method`, func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) { store(t).SetDeleteMethod("Destroy") })

			s.Then(`it reports the delete method as not found`, func(t *testcase.T) {
				require.True(t, errors.Is(subject(t), muffin.ErrDeleteMethodNotFound))
			})
		})
	})
}
