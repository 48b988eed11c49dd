package entities

import "errors"

var (
	// ErrNotImplemented is returned by operations that exist in the contract but have no implementation yet.
	ErrNotImplemented = errors.New("not implemented")
	// ErrConnection signals that a connection provider could not establish its resource.
	ErrConnection = errors.New("connection failed")
)
