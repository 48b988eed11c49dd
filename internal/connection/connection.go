// Package connection provides the leaf of the dependency graph: something that
// can establish a connection to the user store.
package connection

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Driver names accepted by New.
const (
	DriverStub      = "stub"
	DriverPostgres  = "postgres"
	DriverSQLServer = "sqlserver"
)

var (
	// ErrUnknownDriver is returned by New for an unsupported driver name.
	ErrUnknownDriver = errors.New("connection: unknown driver")
	// ErrEmptyDescriptor is returned by New when no connection descriptor is given.
	ErrEmptyDescriptor = errors.New("connection: empty descriptor")
)

// Provider establishes the underlying connection. Implementations must be safe
// for concurrent use and must report failures instead of assuming success.
type Provider interface {
	Connect(ctx context.Context) error
}

// New constructs a provider by driver name.
func New(driver, descriptor string, log *zap.SugaredLogger) (Provider, error) {
	if descriptor == "" {
		return nil, ErrEmptyDescriptor
	}
	switch driver {
	case DriverStub:
		return NewStub(descriptor, log), nil
	case DriverPostgres:
		return NewPostgres(descriptor, log), nil
	case DriverSQLServer:
		return NewSQLServer(descriptor, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
