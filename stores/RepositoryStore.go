package stores

import "context"

// RepositoryStore follows the repository convention:
// the save and delete methods live on a repository that receives the model.
//
//	func (r *Repository) Save(ctx context.Context, entity interface{}) error
type RepositoryStore struct {
	Repository interface{}

	saveMethod   string
	deleteMethod string
}

func NewRepositoryStore(repository interface{}) *RepositoryStore {
	return &RepositoryStore{
		Repository:   repository,
		saveMethod:   DefaultSaveMethod,
		deleteMethod: DefaultDeleteMethod,
	}
}

func (s *RepositoryStore) SetSaveMethod(name string) { s.saveMethod = name }

func (s *RepositoryStore) SetDeleteMethod(name string) { s.deleteMethod = name }

func (s *RepositoryStore) Persist(ctx context.Context, model interface{}) error {
	return invoke(ctx, saveOperation, s.Repository, s.saveMethod, model)
}

func (s *RepositoryStore) Delete(ctx context.Context, model interface{}) error {
	return invoke(ctx, deleteOperation, s.Repository, s.deleteMethod, model)
}
