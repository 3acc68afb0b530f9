package repository

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/CalistaIo/ip/internal/model"
)

const defaultDSN = "tasks.db"

// NewDB opens the SQLite task database and migrates it. SQL warnings go to
// logOut; pass nil for stderr, which keeps them out of the console transcript.
func NewDB(dsn string, logOut io.Writer) (*gorm.DB, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	if logOut == nil {
		logOut = os.Stderr
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.New(
			log.New(logOut, "[gorm] ", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open db %q: %w", dsn, err)
	}

	if err := db.AutoMigrate(&model.TaskRecord{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	return db, nil
}

// CloseDB releases the underlying connection pool.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}

// ensureDirForSQLite creates the directory holding the DATABASE_URL file.
// In-memory databases need nothing.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	file, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	dir := filepath.Dir(file)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("database directory %q: %w", dir, err)
	}
	return nil
}
