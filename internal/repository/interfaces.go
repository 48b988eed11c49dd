// Package repository isolates persistence concerns behind capability interfaces.
package repository

import (
	"context"

	"github.com/sghaida/userdi/internal/entities"
)

// UserRepository exposes user lookup and mutation.
type UserRepository interface {
	// FindOne returns the user stored under id, or (nil, nil) when there is none.
	FindOne(ctx context.Context, id string) (*entities.User, error)
	// Update persists a changed user.
	Update(ctx context.Context, user entities.User) error
}
