package impl

import (
	"context"
	"testing"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	mockRepo "fieldtrack/internal/mocks/repository"
	"fieldtrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stockServiceFixtures holds all test dependencies for stock service tests.
type stockServiceFixtures struct {
	service   usecase.StockUsecase
	stockRepo *mockRepo.MockStockRepository
}

func createTestStockService(t *testing.T) stockServiceFixtures {
	stockRepo := mockRepo.NewMockStockRepository(t)
	service := NewStockService(stockRepo)

	return stockServiceFixtures{
		service:   service,
		stockRepo: stockRepo,
	}
}

func TestStockService_GetStockLines_Success(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	ledger := []*entity.SampleStockLine{
		stockLine("rep-1", "Vitamin-A", 10),
		stockLine("rep-1", "Zinc-B", 5),
	}

	fx.stockRepo.EXPECT().
		FindStockLinesByRep(ctx, "rep-1").
		Return(ledger, nil)

	got, err := fx.service.GetStockLines(ctx, "rep-1")
	require.NoError(t, err)
	assert.Equal(t, ledger, got)
}

func TestStockService_UpsertStockLine_Success(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()

	var captured *entity.SampleStockLine
	fx.stockRepo.EXPECT().
		UpsertStockLine(ctx, mock.AnythingOfType("*entity.SampleStockLine")).
		Run(func(_ context.Context, line *entity.SampleStockLine) {
			captured = line
		}).
		Return(nil)

	line, err := fx.service.UpsertStockLine(ctx, "rep-1", &usecase.UpsertStockLineInput{
		SampleType: "  Vitamin-A  ",
		Quantity:   10,
	})
	require.NoError(t, err)
	require.NotNil(t, line)
	assert.Equal(t, "rep-1", line.Rep)
	assert.Equal(t, "Vitamin-A", line.SampleType)
	assert.Equal(t, 10, line.Quantity)
	assert.Equal(t, line, captured)
}

func TestStockService_UpsertStockLine_EmptyType(t *testing.T) {
	fx := createTestStockService(t)

	line, err := fx.service.UpsertStockLine(context.Background(), "rep-1", &usecase.UpsertStockLineInput{
		SampleType: "   ",
		Quantity:   10,
	})
	require.Error(t, err)
	assert.Nil(t, line)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestStockService_UpsertStockLine_NegativeQuantity(t *testing.T) {
	fx := createTestStockService(t)

	line, err := fx.service.UpsertStockLine(context.Background(), "rep-1", &usecase.UpsertStockLineInput{
		SampleType: "Vitamin-A",
		Quantity:   -3,
	})
	require.Error(t, err)
	assert.Nil(t, line)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestStockService_UpsertStockLine_NilInput(t *testing.T) {
	fx := createTestStockService(t)

	line, err := fx.service.UpsertStockLine(context.Background(), "rep-1", nil)
	require.Error(t, err)
	assert.Nil(t, line)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
