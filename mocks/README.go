// Package mocks provide a pregenerated gomock file for working with tests.
// If you are interested in testing your component with a registry that behaves like the real one,
// you may find it interesting to check out the registry package.
// The primary goal for this pkg to test rainy paths of the loader,
// which is more complicated to properly set up using real implementations.
package mocks

//go:generate mockgen -package mocks -destination MockRegistry.go github.com/adamluzsi/muffin Registry,ModelDefinition
