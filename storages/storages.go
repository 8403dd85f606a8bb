// Package storages holds the repositories fixtures can be saved into
// with stores.RepositoryStore.
package storages

import (
	"context"

	"github.com/adamluzsi/muffin"
)

const ErrIDRequired muffin.Error = `
Can't find the ID in the current structure
if there is no ID in the subject structure
custom test needed that explicitly defines how ID is stored and retried from an entity
`

// Repository is the repository convention the storages implement.
// Save assigns an ID to the entity when it has none.
type Repository interface {
	Save(ctx context.Context, entity interface{}) error
	Delete(ctx context.Context, entity interface{}) error
	FindByID(ctx context.Context, ptr interface{}, id string) (bool, error)
	FindAll(ctx context.Context, T interface{}) ([]interface{}, error)
	Close() error
}
