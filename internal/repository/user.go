package repository

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sghaida/userdi/internal/connection"
	"github.com/sghaida/userdi/internal/entities"
)

const userNamePrefix = "test_user_"

// Users is the UserRepository backed by a connection.Provider.
type Users struct {
	conn connection.Provider
	log  *zap.SugaredLogger
}

var _ UserRepository = (*Users)(nil)

// NewUsers creates a repository over conn.
func NewUsers(conn connection.Provider, log *zap.SugaredLogger) *Users {
	return &Users{conn: conn, log: log.Named("repository.user")}
}

// FindOne connects first; a connection error is returned as is.
// A blank id never matches a user.
func (r *Users) FindOne(ctx context.Context, id string) (*entities.User, error) {
	if err := r.conn.Connect(ctx); err != nil {
		r.log.Errorw("connect failed", "error", err, "user_id", id)
		return nil, err
	}

	if strings.TrimSpace(id) == "" {
		r.log.Debugw("user not found", "user_id", id)
		return nil, nil
	}

	return &entities.User{Name: userNamePrefix + id}, nil
}

// Update is not implemented yet.
func (r *Users) Update(_ context.Context, user entities.User) error {
	return fmt.Errorf("update user %q: %w", user.Name, entities.ErrNotImplemented)
}
