// Package userdi is a layered user service composed through explicit dependency injection.
//
// The graph has three nodes, each depending only on the one below it:
//
//   - internal/connection: a Provider that establishes the store connection
//   - internal/repository: UserRepository, which connects before every lookup
//   - internal/service: UserService, which delegates lookups to the repository
//
// internal/app is the composition root. It resolves component parameters from a
// di.Registry, builds every node once with the helpers in package di, and hands
// out only the UserService.
//
// Package userdi See subpackages:
//   - di: composition helpers (Component, Provide, Inject, Registry, Lookup)
//   - cmd/usersvc: the process entry point
//   - internal/*: the layers and the composition root
package userdi
