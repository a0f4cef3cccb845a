// internal/storage/storage.go
package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/offerscope/offerscope/internal/storage/models"
)

// Storage persists evaluated scenarios across sessions. The engine
// itself never touches it; the CLI and any future service layer own
// save/load/compare.
type Storage interface {
	SaveScenario(ctx context.Context, rec *models.ScenarioRecord) error
	GetScenario(ctx context.Context, id uuid.UUID) (*models.ScenarioRecord, error)
	GetScenarioByFingerprint(ctx context.Context, fingerprint string) (*models.ScenarioRecord, error)
	ListScenarios(ctx context.Context, limit, offset int) ([]*models.ScenarioRecord, error)
	DeleteScenario(ctx context.Context, id uuid.UUID) error

	RunMigrations() error
}
