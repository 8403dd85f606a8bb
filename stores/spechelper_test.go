package stores_test

import (
	"context"
	"errors"
)

type ActiveRecord struct {
	Name string

	saved   int
	deleted int
	err     error
}

func (r *ActiveRecord) Save() error {
	if r.err != nil {
		return r.err
	}
	r.saved++
	return nil
}

func (r *ActiveRecord) Delete(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context missing")
	}
	r.deleted++
	return nil
}

func (r *ActiveRecord) Store() bool { return r.err == nil }

func (r *ActiveRecord) Variadic(...int) {}

type Repository struct {
	saved   []interface{}
	deleted []interface{}
}

func (r *Repository) Save(ctx context.Context, entity interface{}) error {
	r.saved = append(r.saved, entity)
	return nil
}

func (r *Repository) Delete(ctx context.Context, entity interface{}) error {
	r.deleted = append(r.deleted, entity)
	return nil
}

func (r *Repository) Insert(entity *ActiveRecord) bool {
	r.saved = append(r.saved, entity)
	return entity.Name != ""
}
