package memorystorage

import (
	"context"
	"reflect"
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/adamluzsi/muffin/extid"
	"github.com/adamluzsi/muffin/reflects"
	"github.com/adamluzsi/muffin/storages"
)

func NewMemory() *Memory {
	return &Memory{db: make(map[string]memoryTable)}
}

// Memory keeps entity copies per type, keyed by their ID.
type Memory struct {
	mutex sync.Mutex
	db    map[string]memoryTable
}

type memoryTable map[string]interface{}

func (storage *Memory) Close() error {
	return nil
}

func (storage *Memory) Save(ctx context.Context, entity interface{}) error {
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

	storage.mutex.Lock()
	defer storage.mutex.Unlock()
	storage.tableFor(entity)[id] = reflects.BaseValueOf(entity).Interface()
	return nil
}

func (storage *Memory) Delete(ctx context.Context, entity interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id, ok := extid.Lookup(entity)
	if !ok {
		return storages.ErrIDRequired
	}

	storage.mutex.Lock()
	defer storage.mutex.Unlock()
	delete(storage.tableFor(entity), id)
	return nil
}

func (storage *Memory) FindByID(ctx context.Context, ptr interface{}, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	storage.mutex.Lock()
	defer storage.mutex.Unlock()

	entity, found := storage.tableFor(ptr)[id]
	if !found {
		return false, nil
	}

	reflect.ValueOf(ptr).Elem().Set(reflect.ValueOf(entity))
	return true, nil
}

func (storage *Memory) FindAll(ctx context.Context, T interface{}) ([]interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	storage.mutex.Lock()
	defer storage.mutex.Unlock()

	entities := []interface{}{}
	for _, entity := range storage.tableFor(T) {
		ptr := reflect.New(reflect.TypeOf(entity))
		ptr.Elem().Set(reflect.ValueOf(entity))
		entities = append(entities, ptr.Interface())
	}
	return entities, nil
}

func (storage *Memory) tableFor(e interface{}) memoryTable {
	name := reflects.FullyQualifiedName(e)

	if _, ok := storage.db[name]; !ok {
		storage.db[name] = make(memoryTable)
	}

	return storage.db[name]
}
