package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	"github.com/Gunvolt24/driver_sync/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что SnapshotRepository удовлетворяет интерфейсу SnapshotRepository.
var _ ports.SnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository — снимки коллекций кэша на Postgres (pgxpool).
// Одна строка на пару (user_id, collection).
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository - конструктор SnapshotRepository.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// Save — идемпотентный upsert снимка коллекции.
func (r *SnapshotRepository) Save(ctx context.Context, userID domain.ID, snap domain.Snapshot) error {
	if userID.IsZero() {
		return errors.New("user_id is required")
	}
	if snap.Collection == "" {
		return errors.New("collection is required")
	}
	payload := snap.Payload
	if len(payload) == 0 {
		payload = []byte("[]")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO cache_snapshots (user_id, collection, payload, updated_at, saved_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id, collection) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at,
			saved_at = EXCLUDED.saved_at
	`, userID.String(), snap.Collection.String(), []byte(payload), snap.UpdatedAt.UTC()); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// Load — все снимки пользователя. Неизвестные коллекции пропускаются.
func (r *SnapshotRepository) Load(ctx context.Context, userID domain.ID) ([]domain.Snapshot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT collection, payload, updated_at
		FROM cache_snapshots
		WHERE user_id = $1
		ORDER BY collection
	`, userID.String())
	if err != nil {
		return nil, fmt.Errorf("select snapshots: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Snapshot, 0, 4)
	for rows.Next() {
		var (
			name    string
			payload []byte
			snap    domain.Snapshot
		)
		if err := rows.Scan(&name, &payload, &snap.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		coll, err := domain.ParseCollection(name)
		if err != nil {
			continue
		}
		snap.Collection = coll
		snap.Payload = payload
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot rows: %w", err)
	}
	return out, nil
}

// Delete — удаляет все снимки пользователя (выход из аккаунта).
func (r *SnapshotRepository) Delete(ctx context.Context, userID domain.ID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM cache_snapshots WHERE user_id = $1`, userID.String()); err != nil {
		return fmt.Errorf("delete snapshots: %w", err)
	}
	return nil
}
