// Package localstore is the client's durable storage: the two session keys
// (user record and token pair) plus the locally persisted wishlist. It is a
// cache of credentials, not a source of truth; corrupt values are cleared,
// never fatal.
package localstore

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
	"github.com/kikuu-commerce/storefront/internal/core/port"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	keyUser  = "user"
	keyToken = "token"
)

type Store struct {
	db *sql.DB

	mu     sync.RWMutex
	access string // mirrors the stored access token for request-path reads
}

var _ port.SessionStore = (*Store)(nil)
var _ port.TokenSource = (*Store)(nil)

func Open(ctx context.Context, path string) (*Store, error) {
	const op = "localstore.Open"
	log := slog.With("op", op)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%s: store is unavailable: %w", op, err)
	}
	if err := applyMigrations(db); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &Store{db: db}
	if sess, err := s.LoadSession(ctx); err == nil {
		s.setAccess(sess.Token.Access)
	}

	log.Info("local store is ready", "path", path)
	return s, nil
}

func applyMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	drv, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", drv)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *Store) Close() {
	const op = "localstore.Store.Close"
	log := slog.With("op", op)

	if err := s.db.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("local store is closed")
}

// AccessToken implements port.TokenSource. Empty when no session is stored.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *Store) setAccess(token string) {
	s.mu.Lock()
	s.access = token
	s.mu.Unlock()
}

func (s *Store) SaveSession(ctx context.Context, sess domain.Session) error {
	const op = "localstore.Store.SaveSession"

	userB, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	tokenB, err := json.Marshal(sess.Token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.put(ctx, keyUser, string(userB)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.put(ctx, keyToken, string(tokenB)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.setAccess(sess.Token.Access)
	return nil
}

// LoadSession restores the stored session. A missing or unreadable session
// yields domain.ErrNoSession; corrupt values are cleared on the way out.
func (s *Store) LoadSession(ctx context.Context) (domain.Session, error) {
	const op = "localstore.Store.LoadSession"
	log := slog.With("op", op)

	userS, err := s.get(ctx, keyUser)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrNoSession)
	}
	tokenS, err := s.get(ctx, keyToken)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrNoSession)
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(userS), &sess.User); err != nil {
		log.Warn("corrupt stored user, clearing session", "err", err)
		_ = s.ClearSession(ctx)
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrNoSession)
	}
	if err := json.Unmarshal([]byte(tokenS), &sess.Token); err != nil {
		log.Warn("corrupt stored token, clearing session", "err", err)
		_ = s.ClearSession(ctx)
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrNoSession)
	}
	if sess.Token.Empty() {
		return domain.Session{}, fmt.Errorf("%s: %w", op, domain.ErrNoSession)
	}
	return sess, nil
}

func (s *Store) ClearSession(ctx context.Context) error {
	const op = "localstore.Store.ClearSession"

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM kv WHERE key IN (?, ?);`, keyUser, keyToken)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.setAccess("")
	return nil
}

func (s *Store) SaveWishlist(ctx context.Context, productIDs []int) error {
	const op = "localstore.Store.SaveWishlist"
	log := slog.With("op", op)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM wishlist;`); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, id := range productIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO wishlist (product_id) VALUES (?);`, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}
	return nil
}

func (s *Store) LoadWishlist(ctx context.Context) ([]int, error) {
	const op = "localstore.Store.LoadWishlist"

	rows, err := s.db.QueryContext(ctx,
		`SELECT product_id FROM wishlist ORDER BY product_id;`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}

func (s *Store) put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;`,
		key, value,
	)
	return err
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return value, nil
}
