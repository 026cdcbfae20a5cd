package storage

import (
	"context"

	"github.com/emre-ergun/how-to-fly/internal/model"
)

// Store persists run records and their per-generation artifacts. All
// implementations are safe for concurrent use.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run model.RunRecord) error
	GetRun(ctx context.Context, id string) (model.RunRecord, bool, error)
	ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error)
	SaveFitnessHistory(ctx context.Context, runID string, history []model.GenerationRecord) error
	GetFitnessHistory(ctx context.Context, runID string) ([]model.GenerationRecord, bool, error)
	SaveBest(ctx context.Context, best model.BestRecord) error
	GetBest(ctx context.Context, runID string) (model.BestRecord, bool, error)
}
