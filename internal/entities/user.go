// Package entities contains core business entities and errors.
package entities

// User is the only domain entity. Equality is structural.
type User struct {
	Name string
}
