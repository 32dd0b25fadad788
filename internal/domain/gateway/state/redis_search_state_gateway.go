package state

import (
	"context"
	"fmt"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/pkg/redis"
)

const searchStateKey = "search-state"

type redisSearchStateGateway struct {
	client  *redis.Client
	checker *redis.HealthChecker
}

// NewRedisSearchStateGateway stores the state as one JSON value without expiration
func NewRedisSearchStateGateway(client *redis.Client) SearchStateGateway {
	return &redisSearchStateGateway{
		client:  client,
		checker: redis.NewHealthChecker(client),
	}
}

func (g *redisSearchStateGateway) Load(ctx context.Context) (*entity.SearchState, error) {
	var state entity.SearchState
	found, err := g.client.GetJSON(ctx, g.client.Key(searchStateKey), &state)
	if err != nil {
		return nil, fmt.Errorf("failed to load search state: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &state, nil
}

func (g *redisSearchStateGateway) Save(ctx context.Context, state entity.SearchState) error {
	if err := g.client.SetJSON(ctx, g.client.Key(searchStateKey), state, 0); err != nil {
		return fmt.Errorf("failed to save search state: %w", err)
	}
	return nil
}

func (g *redisSearchStateGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := g.checker.HealthCheck(ctx)

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}

	details := map[string]string{"store": "redis"}
	for key, value := range check.Details {
		details[key] = value
	}

	return model.ComponentHealthStatus{
		Status:  status,
		Details: details,
	}
}
