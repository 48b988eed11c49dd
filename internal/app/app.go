// Package app is the composition root: it builds the user service graph once
// and hands out only the top-level capability.
package app

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/sghaida/userdi/di"
	"github.com/sghaida/userdi/internal/config"
	"github.com/sghaida/userdi/internal/connection"
	"github.com/sghaida/userdi/internal/repository"
	"github.com/sghaida/userdi/internal/service"
)

// Registry keys for component parameters.
const (
	ParamDriver           = "database.driver"
	ParamConnectionString = "database.connection_string"
)

// Graph node keys.
const (
	KeyConnection     di.DependencyKey = "connection"
	KeyUserRepository di.DependencyKey = "repository.user"
	KeyUserService    di.DependencyKey = "service.user"
)

// App holds the built graph.
type App struct {
	conn  *di.Component[connection.Provider]
	repo  *di.Component[repository.UserRepository]
	users *di.Component[service.UserService]
}

// NewRegistry exposes cfg as component parameters. Empty values are left out
// so Build reports them as missing.
func NewRegistry(cfg config.Config) *di.MapRegistry {
	reg := di.NewMapRegistry()
	if cfg.Database.Driver != "" {
		reg.Provide(ParamDriver, cfg.Database.Driver)
	}
	if cfg.Database.ConnectionString != "" {
		reg.Provide(ParamConnectionString, cfg.Database.ConnectionString)
	}
	return reg
}

// Build wires connection -> repository -> service. Parameters are resolved
// before anything is constructed; on any failure no App is returned.
func Build(reg di.Registry, log *zap.SugaredLogger) (*App, error) {
	descriptor, err := di.Lookup[string](reg, nil, ParamConnectionString)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	driver, err := di.LookupOr(reg, nil, ParamDriver, connection.DriverStub)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	conn, err := di.Provide(KeyConnection, func() (connection.Provider, error) {
		return connection.New(driver, descriptor, log)
	})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	repo, err := di.Inject(KeyUserRepository, conn, func(c connection.Provider) (repository.UserRepository, error) {
		return repository.NewUsers(c, log), nil
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("app: %w", err), closeProvider(conn.Val))
	}

	users, err := di.Inject(KeyUserService, repo, func(r repository.UserRepository) (service.UserService, error) {
		return service.NewUsers(r, log), nil
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("app: %w", err), closeProvider(conn.Val))
	}

	log.Named("app").Infow("graph built", "driver", driver)
	return &App{conn: conn, repo: repo, users: users}, nil
}

// Users returns the user service.
func (a *App) Users() service.UserService { return a.users.Val }

// Close releases the connection provider's resources, if it holds any.
func (a *App) Close() error {
	if a == nil || a.conn == nil {
		return nil
	}
	return closeProvider(a.conn.Val)
}

func closeProvider(p connection.Provider) error {
	if c, ok := p.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
