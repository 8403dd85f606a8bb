package loader_test

import (
	"context"

	"github.com/adamluzsi/muffin"
)

var postCallbackCalls []interface{}

func postCallback(ctx context.Context, model interface{}, saved bool) error {
	postCallbackCalls = append(postCallbackCalls, model)
	return nil
}

type Post struct {
	ID    string `ext:"ID"`
	Title string
}

func (Post) FixtureDefinitions() muffin.Definitions {
	return muffin.Definitions{
		muffin.Rules{"Title": "Hello, World!"},
		muffin.Callback(postCallback),
	}
}

// Comment implements the contract on the pointer receiver.
type Comment struct {
	Body string
}

func (*Comment) FixtureDefinitions() muffin.Definitions {
	return muffin.Definitions{map[string]interface{}{"Body": "first!"}}
}

type EmptyRules struct{}

func (EmptyRules) FixtureDefinitions() muffin.Definitions {
	return muffin.Definitions{muffin.Rules{}, muffin.Callback(postCallback)}
}

type NilRules struct{}

func (NilRules) FixtureDefinitions() muffin.Definitions {
	return muffin.Definitions{nil, muffin.Callback(postCallback)}
}

type NoDefinitions struct{}

func (NoDefinitions) FixtureDefinitions() muffin.Definitions { return muffin.Definitions{} }

type ScalarRules struct{}

func (ScalarRules) FixtureDefinitions() muffin.Definitions {
	return muffin.Definitions{"Title", muffin.Callback(postCallback)}
}

type InvalidCallback struct {
	Name string
}

func (InvalidCallback) FixtureDefinitions() muffin.Definitions {
	return muffin.Definitions{muffin.Rules{"Name": "x"}, "afterCreate"}
}

type ZeroCallback struct {
	Name string
}

func (ZeroCallback) FixtureDefinitions() muffin.Definitions {
	return muffin.Definitions{muffin.Rules{"Name": "x"}, false}
}

// Vendor has no FixtureDefinitions, like a type of a third party package.
type Vendor struct {
	Name string
}

type SpyStore struct {
	SaveMethod   string
	DeleteMethod string
}

func (s *SpyStore) SetSaveMethod(name string) { s.SaveMethod = name }

func (s *SpyStore) SetDeleteMethod(name string) { s.DeleteMethod = name }

func (s *SpyStore) Persist(ctx context.Context, model interface{}) error { return nil }

func (s *SpyStore) Delete(ctx context.Context, model interface{}) error { return nil }

// Article follows the active record convention.
type Article struct {
	Title string

	saved   bool
	deleted bool
}

func (Article) FixtureDefinitions() muffin.Definitions {
	return muffin.Definitions{muffin.Rules{"Title": "Muffins"}}
}

func (a *Article) Save() error {
	a.saved = true
	return nil
}

func (a *Article) Delete() error {
	a.deleted = true
	return nil
}
