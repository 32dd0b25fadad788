package state

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

// SearchStateGateway keeps the last searched city and the time of the last successful update
type SearchStateGateway interface {
	// Load returns the remembered state, or nil when nothing was saved yet
	Load(ctx context.Context) (*entity.SearchState, error)
	// Save replaces the remembered state
	Save(ctx context.Context, state entity.SearchState) error
	// Health reports the store's status
	Health(ctx context.Context) model.ComponentHealthStatus
}
