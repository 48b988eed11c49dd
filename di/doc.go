// Package di provides small, explicit dependency wiring helpers for Go.
//
// A composition root builds the object graph bottom-up, one Component at a time:
//
//   - Provide constructs a node from a closure and records the nodes it was built from.
//   - Inject is typed constructor injection of a single dependency.
//   - Registry supplies build-time component parameters (connection strings,
//     driver names) that are not themselves graph nodes.
//
// Every node is constructed exactly once and its value is shared by reference
// with all dependents. Construction failures stop the build and are returned as
// typed errors you can assert in tests (nil dependencies, duplicate keys,
// constructor failures, missing parameters).
//
// There is no reflection-based injection, no automatic graph resolution and no
// lifecycle management. Wiring stays in your composition root.
//
// Import
//
//	"github.com/sghaida/userdi/di"
package di
