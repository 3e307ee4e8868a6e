package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trackademy/backend/internal/app/schema"
	"github.com/trackademy/backend/internal/db"
)

// DatabaseRepository covers maintenance operations that span the whole
// academic schema rather than one entity
type DatabaseRepository struct {
	db *pgxpool.Pool
}

// NewDatabaseRepository creates a new database repository
func NewDatabaseRepository(pool *pgxpool.Pool) *DatabaseRepository {
	return &DatabaseRepository{
		db: pool,
	}
}

// Purge deletes every row of every academic table in one transaction,
// children before parents per the declared foreign-key graph. User rows
// are left untouched.
func (r *DatabaseRepository) Purge(ctx context.Context) (map[string]int64, error) {
	order, err := schema.DeletionOrder()
	if err != nil {
		return nil, err
	}

	deleted := make(map[string]int64, len(order))
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, table := range order {
			cmdTag, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, table))
			if err != nil {
				return fmt.Errorf("error purging table %s: %w", table, err)
			}
			deleted[table] = cmdTag.RowsAffected()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

// TableCounts returns the live row count of every academic table
func (r *DatabaseRepository) TableCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, table := range schema.Tables() {
		var count int64
		err := r.db.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("error counting table %s: %w", table, err)
		}
		counts[table] = count
	}
	return counts, nil
}
