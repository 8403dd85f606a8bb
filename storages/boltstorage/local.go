// Package boltstorage is a bolt file backed repository for fixtures that need to outlive the process.
package boltstorage

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/adamluzsi/muffin/config"
	"github.com/adamluzsi/muffin/extid"
	"github.com/adamluzsi/muffin/reflects"
	"github.com/adamluzsi/muffin/storages"
)

func NewLocal(path string) (*Local, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "opening bolt file %s", path)
	}

	return &Local{db: db}, nil
}

// NewLocalFromConfig opens the bolt file at the configured storage path.
func NewLocalFromConfig(cfg config.Config) (*Local, error) {
	return NewLocal(cfg.StoragePath)
}

type Local struct {
	db *bolt.DB
}

// Close the local database and release the file lock
func (storage *Local) Close() error {
	return storage.db.Close()
}

func (storage *Local) Save(ctx context.Context, entity interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id, ok := extid.Lookup(entity)
	if !ok {
		id = uuid.NewV4().String()
		if err := extid.Set(entity, id); err != nil {
			return err
		}
	}

	value, err := json.Marshal(entity)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", reflects.SymbolicName(entity))
	}

	return storage.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(storage.bucketName(entity))
		if err != nil {
			return errors.WithStack(err)
		}

		return bucket.Put([]byte(id), value)
	})
}

func (storage *Local) Delete(ctx context.Context, entity interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id, ok := extid.Lookup(entity)
	if !ok {
		return storages.ErrIDRequired
	}

	return storage.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(storage.bucketName(entity))
		if bucket == nil {
			return nil
		}

		return bucket.Delete([]byte(id))
	})
}

func (storage *Local) FindByID(ctx context.Context, ptr interface{}, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var found bool
	err := storage.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(storage.bucketName(ptr))
		if bucket == nil {
			return nil
		}

		encodedValue := bucket.Get([]byte(id))
		if encodedValue == nil {
			return nil
		}

		found = true
		return json.Unmarshal(encodedValue, ptr)
	})

	return found, err
}

func (storage *Local) FindAll(ctx context.Context, T interface{}) ([]interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entities := []interface{}{}
	err := storage.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(storage.bucketName(T))
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(id, encodedEntity []byte) error {
			entity := reflect.New(reflects.BaseTypeOf(T)).Interface()
			if err := json.Unmarshal(encodedEntity, entity); err != nil {
				return errors.Wrapf(err, "decoding %s", id)
			}
			entities = append(entities, entity)
			return nil
		})
	})

	return entities, err
}

func (storage *Local) bucketName(e interface{}) []byte {
	return []byte(reflects.FullyQualifiedName(e))
}
