package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/MuhamadTAH/psychology-sub002/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const blocksTable = "lesson_blocks"

// SQLStore keeps blocks as rows of the lesson_blocks table.
type SQLStore struct {
	db      *sql.DB
	dialect string
}

// Open returns the BlockStore for driver. An empty dsn selects the driver's
// default location.
func Open(ctx context.Context, driver config.Driver, dsn string) (BlockStore, error) {
	switch driver {
	case config.DriverFile, "":
		if dsn == "" {
			p, err := DefaultStorePath(driver)
			if err != nil {
				return nil, err
			}
			dsn = p
		}
		return NewFileStore(dsn), nil
	case config.DriverSQLite, config.DriverPostgres:
		s, err := OpenSQL(ctx, driver, dsn)
		if err != nil {
			return nil, err
		}
		return WithRetry(s, DefaultRetryConfig()), nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %q", driver)
	}
}

// OpenSQL connects to a SQLite or Postgres database and creates the blocks
// table if it does not exist.
func OpenSQL(ctx context.Context, driver config.Driver, dsn string) (*SQLStore, error) {
	var drvName, dial string
	switch driver {
	case config.DriverSQLite:
		drvName, dial = "sqlite", dialect.SQLite
		if dsn == "" {
			p, err := DefaultStorePath(driver)
			if err != nil {
				return nil, err
			}
			dsn = p
		}
	case config.DriverPostgres:
		drvName, dial = "pgx", dialect.Postgres
		if dsn == "" {
			dsn = "postgres://localhost:5432/lessons?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported sql driver: %q", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if dial == dialect.SQLite {
		// Pragmas are per connection; keep a single one.
		db.SetMaxOpenConns(1)
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragmas: %w", err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &SQLStore{db: db, dialect: dial}, nil
}

// The DDL is portable between SQLite and Postgres.
const schema = `
CREATE TABLE IF NOT EXISTS lesson_blocks (
  name TEXT PRIMARY KEY,
  body TEXT NOT NULL,
  updated_at BIGINT NOT NULL
)`

// DB returns the underlying *sql.DB for raw queries.
func (s *SQLStore) DB() *sql.DB {
	return s.db
}

func (s *SQLStore) Load(ctx context.Context, name string) ([]byte, error) {
	query, args := entsql.Dialect(s.dialect).
		Select("body").
		From(entsql.Table(blocksTable)).
		Where(entsql.EQ("name", name)).
		Query()

	var body string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load %s: %w", name, ErrBlockNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return []byte(body), nil
}

// Save upserts the row for name in a single statement.
func (s *SQLStore) Save(ctx context.Context, name string, data []byte) error {
	query, args := entsql.Dialect(s.dialect).
		Insert(blocksTable).
		Columns("name", "body", "updated_at").
		Values(name, string(data), time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-writer use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultStorePath resolves the default store location for driver:
// 1. $XDG_DATA_HOME/lessonctl/
// 2. ~/.local/share/lessonctl/
// The file driver uses the "lessons" directory below it, SQLite the
// "lessons.db" file.
func DefaultStorePath(driver config.Driver) (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	base := filepath.Join(dataHome, "lessonctl")
	if driver == config.DriverSQLite {
		p := filepath.Join(base, "lessons.db")
		return p, EnsureDir(p)
	}
	return filepath.Join(base, "lessons"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
