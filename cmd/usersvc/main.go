// Command usersvc builds the user service graph and looks up one user.
//
// Running:
//   - go run ./cmd/usersvc
//   - go run ./cmd/usersvc -config usersvc.yaml -id id042
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sghaida/userdi/internal/app"
	"github.com/sghaida/userdi/internal/config"
	"github.com/sghaida/userdi/internal/entities"
	"github.com/sghaida/userdi/internal/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "usersvc:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("usersvc", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to a YAML config file")
	userID := fs.String("id", "id001", "user id to look up")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	a, err := app.Build(app.NewRegistry(cfg), log)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warnw("close app", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()

	user, err := a.Users().FindUser(ctx, *userID)
	if err != nil {
		return fmt.Errorf("find user %q: %w", *userID, err)
	}

	_, err = fmt.Fprintln(stdout, "result:", formatUser(user))
	return err
}

func formatUser(u *entities.User) string {
	if u == nil {
		return "<none>"
	}
	return fmt.Sprintf("%+v", *u)
}
