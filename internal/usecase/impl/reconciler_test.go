package impl

import (
	"context"
	"testing"
	"time"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	mockRepo "fieldtrack/internal/mocks/repository"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reconcilerFixtures holds all test dependencies for reconciler tests.
type reconcilerFixtures struct {
	reconciler usecase.StockReconciler
	stockRepo  *mockRepo.MockStockRepository
}

func createTestReconciler(t *testing.T) reconcilerFixtures {
	return reconcilerFixtures{
		reconciler: NewStockReconciler(),
		stockRepo:  mockRepo.NewMockStockRepository(t),
	}
}

func stockLine(rep, sampleType string, quantity int) *entity.SampleStockLine {
	now := time.Now()

	return &entity.SampleStockLine{
		ID:         uuid.New(),
		Rep:        rep,
		SampleType: sampleType,
		Quantity:   quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestStockReconciler_Reconcile_EmptyBatchIsNoop(t *testing.T) {
	fx := createTestReconciler(t)

	err := fx.reconciler.Reconcile(context.Background(), fx.stockRepo, "rep-1", nil)
	require.NoError(t, err)
}

func TestStockReconciler_Reconcile_AppliesDecrements(t *testing.T) {
	fx := createTestReconciler(t)

	ctx := context.Background()
	rep := "rep-1"
	ledger := []*entity.SampleStockLine{
		stockLine(rep, "Vitamin-A", 10),
		stockLine(rep, "Zinc-B", 5),
	}

	fx.stockRepo.EXPECT().
		FindStockLinesByRep(ctx, rep).
		Return(ledger, nil)

	fx.stockRepo.EXPECT().
		EnsureStockLine(ctx, rep, "Vitamin-A").
		Return(nil)
	fx.stockRepo.EXPECT().
		DecrementStock(ctx, rep, "Vitamin-A", 4).
		Return(nil)

	fx.stockRepo.EXPECT().
		EnsureStockLine(ctx, rep, "Zinc-B").
		Return(nil)
	fx.stockRepo.EXPECT().
		DecrementStock(ctx, rep, "Zinc-B", 2).
		Return(nil)

	err := fx.reconciler.Reconcile(ctx, fx.stockRepo, rep, []usecase.SampleLine{
		{SampleType: "Vitamin-A", Quantity: 4},
		{SampleType: "Zinc-B", Quantity: 2},
	})
	require.NoError(t, err)
}

func TestStockReconciler_Reconcile_CaseInsensitiveTypeMatch(t *testing.T) {
	fx := createTestReconciler(t)

	ctx := context.Background()
	rep := "rep-1"

	fx.stockRepo.EXPECT().
		FindStockLinesByRep(ctx, rep).
		Return([]*entity.SampleStockLine{stockLine(rep, "Vitamin-A", 10)}, nil)

	fx.stockRepo.EXPECT().
		EnsureStockLine(ctx, rep, "vitamin-a").
		Return(nil)
	fx.stockRepo.EXPECT().
		DecrementStock(ctx, rep, "vitamin-a", 4).
		Return(nil)

	err := fx.reconciler.Reconcile(ctx, fx.stockRepo, rep, []usecase.SampleLine{
		{SampleType: "vitamin-a", Quantity: 4},
	})
	require.NoError(t, err)
}

func TestStockReconciler_Reconcile_RejectsShortfallBeforeAnyWrite(t *testing.T) {
	fx := createTestReconciler(t)

	ctx := context.Background()
	rep := "rep-1"

	fx.stockRepo.EXPECT().
		FindStockLinesByRep(ctx, rep).
		Return([]*entity.SampleStockLine{stockLine(rep, "Vitamin-A", 10)}, nil)

	err := fx.reconciler.Reconcile(ctx, fx.stockRepo, rep, []usecase.SampleLine{
		{SampleType: "Vitamin-A", Quantity: 12},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStockShortfall))
}

func TestStockReconciler_Reconcile_DuplicateLinesAccumulate(t *testing.T) {
	fx := createTestReconciler(t)

	ctx := context.Background()
	rep := "rep-1"

	fx.stockRepo.EXPECT().
		FindStockLinesByRep(ctx, rep).
		Return([]*entity.SampleStockLine{stockLine(rep, "Vitamin-A", 10)}, nil)

	// Each line alone fits, the pair does not.
	err := fx.reconciler.Reconcile(ctx, fx.stockRepo, rep, []usecase.SampleLine{
		{SampleType: "Vitamin-A", Quantity: 6},
		{SampleType: "vitamin-a", Quantity: 6},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStockShortfall))
}

func TestStockReconciler_Reconcile_MissingTypeHasZeroAvailable(t *testing.T) {
	fx := createTestReconciler(t)

	ctx := context.Background()
	rep := "rep-1"

	fx.stockRepo.EXPECT().
		FindStockLinesByRep(ctx, rep).
		Return([]*entity.SampleStockLine{}, nil)

	err := fx.reconciler.Reconcile(ctx, fx.stockRepo, rep, []usecase.SampleLine{
		{SampleType: "Unknown-Type", Quantity: 3},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStockShortfall))
}

func TestStockReconciler_Reconcile_ZeroQuantityLineSkipsWrites(t *testing.T) {
	fx := createTestReconciler(t)

	ctx := context.Background()
	rep := "rep-1"

	fx.stockRepo.EXPECT().
		FindStockLinesByRep(ctx, rep).
		Return([]*entity.SampleStockLine{}, nil)

	err := fx.reconciler.Reconcile(ctx, fx.stockRepo, rep, []usecase.SampleLine{
		{SampleType: "Vitamin-A", Quantity: 0},
	})
	require.NoError(t, err)
}

func TestStockReconciler_Reconcile_ConcurrentDrainSurfacesShortfall(t *testing.T) {
	fx := createTestReconciler(t)

	ctx := context.Background()
	rep := "rep-1"

	fx.stockRepo.EXPECT().
		FindStockLinesByRep(ctx, rep).
		Return([]*entity.SampleStockLine{stockLine(rep, "Vitamin-A", 10)}, nil)

	fx.stockRepo.EXPECT().
		EnsureStockLine(ctx, rep, "Vitamin-A").
		Return(nil)
	fx.stockRepo.EXPECT().
		DecrementStock(ctx, rep, "Vitamin-A", 4).
		Return(repository.ErrInsufficientStock)

	err := fx.reconciler.Reconcile(ctx, fx.stockRepo, rep, []usecase.SampleLine{
		{SampleType: "Vitamin-A", Quantity: 4},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStockShortfall))
}

func TestStockReconciler_Reconcile_EmptyTypeRejected(t *testing.T) {
	fx := createTestReconciler(t)

	err := fx.reconciler.Reconcile(context.Background(), fx.stockRepo, "rep-1", []usecase.SampleLine{
		{SampleType: "  ", Quantity: 1},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestStockReconciler_Reconcile_NegativeQuantityRejected(t *testing.T) {
	fx := createTestReconciler(t)

	err := fx.reconciler.Reconcile(context.Background(), fx.stockRepo, "rep-1", []usecase.SampleLine{
		{SampleType: "Vitamin-A", Quantity: -1},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
