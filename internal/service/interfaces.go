// Package service holds the business layer above the repositories.
package service

import (
	"context"

	"github.com/sghaida/userdi/internal/entities"
)

// UserService is the capability handed out by the composition root.
type UserService interface {
	FindUser(ctx context.Context, id string) (*entities.User, error)
	DeactivateUser(ctx context.Context, id string) error
}
