package health

import (
	"context"

	"go-weather/internal/domain/gateway/state"
	"go-weather/internal/domain/model"
)

type healthUseCase struct {
	stateGateway state.SearchStateGateway
}

func NewHealthUseCase(stateGateway state.SearchStateGateway) UseCase {
	return &healthUseCase{
		stateGateway: stateGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	stateHealth := useCase.stateGateway.Health(ctx)

	switch stateHealth.Status {
	case model.StatusUp, model.StatusDown:
	default:
		stateHealth.Status = model.StatusUnknown
	}

	return model.HealthResponse{
		Status:     stateHealth.Status,
		StateStore: stateHealth,
	}
}
