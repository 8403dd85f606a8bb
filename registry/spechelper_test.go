package registry_test

import (
	"context"
	"errors"
)

type User struct {
	ID       string `ext:"ID"`
	Name     string
	Email    string `fixture:"email"`
	Age      int
	Nickname Nickname
}

type Nickname string

type SpyStore struct {
	SaveMethod   string
	DeleteMethod string
	Persisted    []interface{}
	Deleted      []interface{}
	PersistErr   error
	DeleteErr    error
}

func (s *SpyStore) SetSaveMethod(name string) { s.SaveMethod = name }

func (s *SpyStore) SetDeleteMethod(name string) { s.DeleteMethod = name }

func (s *SpyStore) Persist(ctx context.Context, model interface{}) error {
	if s.PersistErr != nil {
		return s.PersistErr
	}
	s.Persisted = append(s.Persisted, model)
	return nil
}

func (s *SpyStore) Delete(ctx context.Context, model interface{}) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.Deleted = append(s.Deleted, model)
	return nil
}

var errBoom = errors.New("boom")
