package connection

import (
	"context"

	"go.uber.org/zap"
)

// Stub opens nothing. Connect only announces the descriptor.
type Stub struct {
	descriptor string
	log        *zap.SugaredLogger
}

// NewStub creates a stub provider for descriptor.
func NewStub(descriptor string, log *zap.SugaredLogger) *Stub {
	return &Stub{descriptor: descriptor, log: log.Named("connection")}
}

// Descriptor returns the connection descriptor given at construction.
func (s *Stub) Descriptor() string { return s.descriptor }

// Connect logs "connect: <descriptor>" and succeeds unless ctx is already done.
func (s *Stub) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.log.Infof("connect: %s", s.descriptor)
	return nil
}
