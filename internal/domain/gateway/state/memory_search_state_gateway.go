package state

import (
	"context"
	"sync"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

// MemorySearchStateGateway keeps the state in process memory. It is lost on restart.
type MemorySearchStateGateway struct {
	mutex sync.RWMutex
	state *entity.SearchState
}

func NewMemorySearchStateGateway() *MemorySearchStateGateway {
	return &MemorySearchStateGateway{}
}

func (g *MemorySearchStateGateway) Load(_ context.Context) (*entity.SearchState, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	if g.state == nil {
		return nil, nil
	}
	state := *g.state
	return &state, nil
}

func (g *MemorySearchStateGateway) Save(_ context.Context, state entity.SearchState) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.state = &state
	return nil
}

func (g *MemorySearchStateGateway) Health(_ context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"store": "memory"},
	}
}
