package muffin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/muffin"
)

type Attributes map[string]interface{}

func TestDefinitions(t *testing.T) {
	s := testcase.NewSpec(t)

	definitions := func(t *testcase.T) muffin.Definitions { return t.I(`definitions`).(muffin.Definitions) }

	callback := muffin.Callback(func(ctx context.Context, model interface{}, saved bool) error { return nil })

	s.Describe(`#Rules`, func(s *testcase.Spec) {
		s.When(`rules element is a Rules mapping`, func(s *testcase.Spec) {
			s.Let(`definitions`, func(t *testcase.T) interface{} {
				return muffin.Definitions{muffin.Rules{"Name": "Muffin"}}
			})

			s.Then(`it is returned`, func(t *testcase.T) {
				rules, ok := definitions(t).Rules()
				require.True(t, ok)
				require.Equal(t, muffin.Rules{"Name": "Muffin"}, rules)
			})
		})

		s.When(`rules element is a custom string keyed map type`, func(s *testcase.Spec) {
			s.Let(`definitions`, func(t *testcase.T) interface{} {
				return muffin.Definitions{Attributes{"Name": "Muffin"}}
			})

			s.Then(`it is converted to Rules`, func(t *testcase.T) {
				rules, ok := definitions(t).Rules()
				require.True(t, ok)
				require.Equal(t, muffin.Rules{"Name": "Muffin"}, rules)
			})
		})

		s.When(`rules element is an empty mapping`, func(s *testcase.Spec) {
			s.Let(`definitions`, func(t *testcase.T) interface{} { return muffin.Definitions{muffin.Rules{}} })

			s.Then(`no rules reported`, func(t *testcase.T) {
				_, ok := definitions(t).Rules()
				require.False(t, ok)
			})
		})

		s.When(`rules element is not a mapping`, func(s *testcase.Spec) {
			s.Let(`definitions`, func(t *testcase.T) interface{} { return muffin.Definitions{"Name"} })

			s.Then(`no rules reported`, func(t *testcase.T) {
				_, ok := definitions(t).Rules()
				require.False(t, ok)
			})
		})

		s.When(`rules element is a map with non string keys`, func(s *testcase.Spec) {
			s.Let(`definitions`, func(t *testcase.T) interface{} {
				return muffin.Definitions{map[int]string{1: "Muffin"}}
			})

			s.Then(`no rules reported`, func(t *testcase.T) {
				_, ok := definitions(t).Rules()
				require.False(t, ok)
			})
		})

		s.When(`definitions are empty`, func(s *testcase.Spec) {
			s.Let(`definitions`, func(t *testcase.T) interface{} { return muffin.Definitions{} })

			s.Then(`no rules reported`, func(t *testcase.T) {
				_, ok := definitions(t).Rules()
				require.False(t, ok)
			})
		})
	})

	s.Describe(`#Callback`, func(s *testcase.Spec) {
		s.When(`callback element is given`, func(s *testcase.Spec) {
			s.Let(`definitions`, func(t *testcase.T) interface{} {
				return muffin.Definitions{muffin.Rules{"Name": "Muffin"}, callback}
			})

			s.Then(`it is returned`, func(t *testcase.T) {
				cb, ok := definitions(t).Callback()
				require.True(t, ok)
				require.NotNil(t, cb)
			})
		})

		s.When(`callback element is a nil function`, func(s *testcase.Spec) {
			s.Let(`definitions`, func(t *testcase.T) interface{} {
				return muffin.Definitions{muffin.Rules{"Name": "Muffin"}, muffin.Callback(nil)}
			})

			s.Then(`no callback reported`, func(t *testcase.T) {
				_, ok := definitions(t).Callback()
				require.False(t, ok)
			})
		})

		s.When(`callback element is an empty string`, func(s *testcase.Spec) {
			s.Let(`definitions`, func(t *testcase.T) interface{} {
				return muffin.Definitions{muffin.Rules{"Name": "Muffin"}, ""}
			})

			s.Then(`no callback reported`, func(t *testcase.T) {
				_, ok := definitions(t).Callback()
				require.False(t, ok)
			})
		})

		s.When(`callback element is false`, func(s *testcase.Spec) {
			s.Let(`definitions`, func(t *testcase.T) interface{} {
				return muffin.Definitions{muffin.Rules{"Name": "Muffin"}, false}
			})

			s.Then(`no callback reported`, func(t *testcase.T) {
				_, ok := definitions(t).Callback()
				require.False(t, ok)
			})
		})

		s.When(`callback element is zero`, func(s *testcase.Spec) {
			s.Let(`definitions`, func(t *testcase.T) interface{} {
				return muffin.Definitions{muffin.Rules{"Name": "Muffin"}, 0}
			})

			s.Then(`no callback reported`, func(t *testcase.T) {
				_, ok := definitions(t).Callback()
				require.False(t, ok)
			})
		})

		s.When(`callback element is a non zero scalar`, func(s *testcase.Spec) {
			s.Let(`definitions`, func(t *testcase.T) interface{} {
				return muffin.Definitions{muffin.Rules{"Name": "Muffin"}, true}
			})

			s.Then(`it is returned for the registry to validate`, func(t *testcase.T) {
				cb, ok := definitions(t).Callback()
				require.True(t, ok)
				require.Equal(t, true, cb)
			})
		})

		s.When(`callback element is missing`, func(s *testcase.Spec) {
			s.Let(`definitions`, func(t *testcase.T) interface{} {
				return muffin.Definitions{muffin.Rules{"Name": "Muffin"}}
			})

			s.Then(`no callback reported`, func(t *testcase.T) {
				_, ok := definitions(t).Callback()
				require.False(t, ok)
			})
		})
	})
}

func TestErrors(t *testing.T) {
	notFound := &muffin.ModelNotFoundError{Context: "loader", Message: "no models"}
	require.True(t, errors.Is(notFound, muffin.ErrModelNotFound))
	require.False(t, errors.Is(notFound, muffin.ErrModel))
	require.Contains(t, notFound.Error(), "no models")

	modelErr := &muffin.ModelError{Model: "User", Message: "missing contract"}
	require.True(t, errors.Is(modelErr, muffin.ErrModel))
	require.Contains(t, modelErr.Error(), "User")
}
