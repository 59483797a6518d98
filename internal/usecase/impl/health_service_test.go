package impl

import (
	"context"
	"testing"

	"majorexplorer/internal/domain/entity"
	mockRepo "majorexplorer/internal/mocks/repository"
	"majorexplorer/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHealthService_Check_Healthy(t *testing.T) {
	backend := newMemoryBackend()
	srv := NewHealthService(HealthServiceParams{HealthRepo: backend.HealthRepository, Logger: newDiscardLogger()})

	report := srv.Check(context.Background())

	assert.Equal(t, usecase.StatusHealthy, report.Status)
	assert.True(t, report.DatabaseConnected)
	assert.True(t, report.AccountsTableExists)
	assert.Zero(t, report.AccountsCount)
	assert.Empty(t, report.Error)
}

func TestHealthService_Check_Unhealthy(t *testing.T) {
	ctx := context.Background()
	healthRepo := mockRepo.NewMockHealthRepository(t)
	healthRepo.EXPECT().Health(ctx).
		Return(&entity.HealthStatus{DatabaseConnected: true}, errors.New("relation \"accounts\" does not exist"))

	srv := NewHealthService(HealthServiceParams{HealthRepo: healthRepo, Logger: newDiscardLogger()})
	report := srv.Check(ctx)

	assert.Equal(t, usecase.StatusUnhealthy, report.Status)
	assert.True(t, report.DatabaseConnected)
	assert.False(t, report.AccountsTableExists)
	assert.Contains(t, report.Error, "does not exist")
}
