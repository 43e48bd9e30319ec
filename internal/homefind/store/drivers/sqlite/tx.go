package sqlite

import (
	"context"
	"database/sql"

	"github.com/lagoshomes/homefind/internal/homefind/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the caller commits or rolls back and the outer DB stays
// open.
func (t *txStore) Close() error { return nil }

// Ping is a no-op for transactions.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

// ApplyMigrations is a no-op; migrations are applied before transactions
// start.
func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Users() store.Users                       { return &usersRepo{db: t.tx} }
func (t *txStore) VendorProfiles() store.VendorProfiles     { return &vendorProfilesRepo{db: t.tx} }
func (t *txStore) CustomerProfiles() store.CustomerProfiles { return &customerProfilesRepo{db: t.tx} }
func (t *txStore) Properties() store.Properties             { return &propertiesRepo{db: t.tx} }
func (t *txStore) Sessions() store.Sessions                 { return &sessionsRepo{db: t.tx} }
