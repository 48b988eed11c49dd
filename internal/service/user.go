package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sghaida/userdi/internal/entities"
	"github.com/sghaida/userdi/internal/repository"
)

// Users implements UserService on top of a UserRepository.
type Users struct {
	repo repository.UserRepository
	log  *zap.SugaredLogger
}

var _ UserService = (*Users)(nil)

// NewUsers creates the service.
func NewUsers(repo repository.UserRepository, log *zap.SugaredLogger) *Users {
	return &Users{repo: repo, log: log.Named("service.user")}
}

// FindUser delegates to the repository and returns its result untouched.
func (s *Users) FindUser(ctx context.Context, id string) (*entities.User, error) {
	lookupID := uuid.NewString()
	s.log.Debugw("find user", "user_id", id, "lookup_id", lookupID)

	user, err := s.repo.FindOne(ctx, id)
	if err != nil {
		s.log.Debugw("find user failed", "user_id", id, "lookup_id", lookupID, "error", err)
	}
	return user, err
}

// DeactivateUser is not implemented yet.
func (s *Users) DeactivateUser(_ context.Context, id string) error {
	return fmt.Errorf("deactivate user %q: %w", id, entities.ErrNotImplemented)
}
