package stores

import "context"

// MethodStore follows the active record convention:
// the model itself has the save and delete methods.
//
//	func (u *User) Save() error
//	func (u *User) Delete(ctx context.Context) error
type MethodStore struct {
	saveMethod   string
	deleteMethod string
}

func NewMethodStore() *MethodStore {
	return &MethodStore{
		saveMethod:   DefaultSaveMethod,
		deleteMethod: DefaultDeleteMethod,
	}
}

func (s *MethodStore) SetSaveMethod(name string) { s.saveMethod = name }

func (s *MethodStore) SetDeleteMethod(name string) { s.deleteMethod = name }

func (s *MethodStore) Persist(ctx context.Context, model interface{}) error {
	return invoke(ctx, saveOperation, model, s.saveMethod)
}

func (s *MethodStore) Delete(ctx context.Context, model interface{}) error {
	return invoke(ctx, deleteOperation, model, s.deleteMethod)
}
