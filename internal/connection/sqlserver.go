package connection

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/microsoft/go-mssqldb"
	"go.uber.org/zap"

	"github.com/sghaida/userdi/internal/entities"
)

// SQLServer connects through database/sql with the go-mssqldb driver.
type SQLServer struct {
	descriptor string
	log        *zap.SugaredLogger

	mu sync.Mutex
	db *sql.DB
}

// NewSQLServer creates a provider for a sqlserver:// URL or an ADO-style
// "server=...;user id=...;" descriptor.
func NewSQLServer(descriptor string, log *zap.SugaredLogger) *SQLServer {
	return &SQLServer{descriptor: descriptor, log: log.Named("connection.sqlserver")}
}

// Connect opens the handle if needed and pings it.
func (s *SQLServer) Connect(ctx context.Context) error {
	db, err := s.ensureDB()
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		s.log.Errorw("ping failed", "error", err)
		return fmt.Errorf("%w: ping sqlserver: %w", entities.ErrConnection, err)
	}
	s.log.Infow("connected")
	return nil
}

func (s *SQLServer) ensureDB() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}
	db, err := sql.Open("sqlserver", s.descriptor)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlserver: %w", entities.ErrConnection, err)
	}
	s.db = db
	return db, nil
}

// Close releases the handle. It is safe to call more than once.
func (s *SQLServer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
