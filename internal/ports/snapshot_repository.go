package ports

import (
	"context"

	"github.com/Gunvolt24/driver_sync/internal/domain"
)

// SnapshotRepository — хранилище снимков коллекций для тёплого старта.
type SnapshotRepository interface {
	Save(ctx context.Context, userID domain.ID, snap domain.Snapshot) error
	Load(ctx context.Context, userID domain.ID) ([]domain.Snapshot, error)
	Delete(ctx context.Context, userID domain.ID) error
}
