package impl

import (
	"context"
	"testing"
	"time"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	mockRepo "fieldtrack/internal/mocks/repository"
	mockService "fieldtrack/internal/mocks/service"
	mockUsecase "fieldtrack/internal/mocks/usecase"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// journeyServiceFixtures holds all test dependencies for journey service tests.
type journeyServiceFixtures struct {
	service    usecase.JourneyUsecase
	txManager  *mockRepo.MockTransactionManager
	visitRepo  *mockRepo.MockVisitRepository
	tracker    *mockUsecase.MockTrackingUsecase
	reconciler *mockUsecase.MockStockReconciler
	publisher  *mockService.MockEventPublisher
}

func createTestJourneyService(t *testing.T) journeyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)
	tracker := mockUsecase.NewMockTrackingUsecase(t)
	reconciler := mockUsecase.NewMockStockReconciler(t)
	publisher := mockService.NewMockEventPublisher(t)

	service := NewJourneyService(txManager, visitRepo, tracker, reconciler, publisher, newDiscardLogger())

	return journeyServiceFixtures{
		service:    service,
		txManager:  txManager,
		visitRepo:  visitRepo,
		tracker:    tracker,
		reconciler: reconciler,
		publisher:  publisher,
	}
}

// expectTransaction routes the transactional closure through the given factory
// and propagates its error, mirroring a real commit or rollback.
func expectTransaction(ctx context.Context, fx journeyServiceFixtures, factory *mockRepo.MockRepositoryFactory) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func plannedVisit(rep string) *entity.Visit {
	now := time.Now()

	return &entity.Visit{
		ID:         uuid.New(),
		VisitDate:  now.UTC().Truncate(24 * time.Hour),
		Status:     entity.VisitStatusPlanned,
		ClientName: "Dr. Hassan Clinic",
		Specialty:  "Pediatrics",
		Area:       "Nasr City",
		Rep:        rep,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func activeSession(rep string) *entity.JourneySession {
	return &entity.JourneySession{
		Rep:       rep,
		StartedAt: time.Now(),
	}
}

func TestJourneyService_StartJourney_Success(t *testing.T) {
	fx := createTestJourneyService(t)

	ctx := context.Background()
	rep := "rep-1"
	session := activeSession(rep)

	fx.visitRepo.EXPECT().
		CountVisitsOnDay(ctx, rep, mock.AnythingOfType("time.Time")).
		Return(int64(3), nil)

	fx.tracker.EXPECT().
		Start(ctx, rep).
		Return(session, nil)

	got, err := fx.service.StartJourney(ctx, rep)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestJourneyService_StartJourney_NoVisitsScheduled(t *testing.T) {
	fx := createTestJourneyService(t)

	ctx := context.Background()

	fx.visitRepo.EXPECT().
		CountVisitsOnDay(ctx, "rep-1", mock.AnythingOfType("time.Time")).
		Return(int64(0), nil)

	got, err := fx.service.StartJourney(ctx, "rep-1")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNoVisitsScheduled))
}

func TestJourneyService_StartJourney_EmptyRep(t *testing.T) {
	fx := createTestJourneyService(t)

	got, err := fx.service.StartJourney(context.Background(), "  ")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestJourneyService_StopJourney_DelegatesToTracker(t *testing.T) {
	fx := createTestJourneyService(t)

	fx.tracker.EXPECT().Stop().Return(nil)

	require.NoError(t, fx.service.StopJourney(context.Background()))
}

func TestJourneyService_SelectVisit_ClosesPreviousActiveVisit(t *testing.T) {
	fx := createTestJourneyService(t)

	ctx := context.Background()
	rep := "rep-1"
	visit := plannedVisit(rep)

	previous := plannedVisit(rep)
	previous.Status = entity.VisitStatusEnRoute

	fx.tracker.EXPECT().Session().Return(activeSession(rep))

	factory := mockRepo.NewMockRepositoryFactory(t)
	txVisits := mockRepo.NewMockVisitRepository(t)
	factory.EXPECT().VisitRepo().Return(txVisits)

	txVisits.EXPECT().
		FindVisitByID(ctx, visit.ID).
		Return(visit, nil)
	txVisits.EXPECT().
		FindEnRouteVisitByRep(ctx, rep).
		Return(previous, nil)
	txVisits.EXPECT().
		UpdateVisitStatus(ctx, previous.ID, entity.VisitStatusEnRoute, entity.VisitStatusPlanned, rep).
		Return(nil)
	txVisits.EXPECT().
		UpdateVisitStatus(ctx, visit.ID, entity.VisitStatusPlanned, entity.VisitStatusEnRoute, rep).
		Return(nil)

	expectTransaction(ctx, fx, factory)

	fx.tracker.EXPECT().
		BindVisit(mock.AnythingOfType("*uuid.UUID")).
		Run(func(visitID *uuid.UUID) {
			require.NotNil(t, visitID)
			assert.Equal(t, visit.ID, *visitID)
		}).
		Return()

	selected, err := fx.service.SelectVisit(ctx, rep, visit.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusEnRoute, selected.Status)
	assert.Equal(t, rep, selected.Rep)
}

func TestJourneyService_SelectVisit_WithoutActiveJourney(t *testing.T) {
	fx := createTestJourneyService(t)

	fx.tracker.EXPECT().Session().Return(nil)

	selected, err := fx.service.SelectVisit(context.Background(), "rep-1", uuid.New())
	require.Error(t, err)
	assert.Nil(t, selected)
	assert.True(t, errors.Is(err, domainerrors.ErrJourneyNotActive))
}

func TestJourneyService_SelectVisit_TerminalVisitRejected(t *testing.T) {
	fx := createTestJourneyService(t)

	ctx := context.Background()
	rep := "rep-1"
	visit := plannedVisit(rep)
	visit.Status = entity.VisitStatusDone

	fx.tracker.EXPECT().Session().Return(activeSession(rep))

	factory := mockRepo.NewMockRepositoryFactory(t)
	txVisits := mockRepo.NewMockVisitRepository(t)
	factory.EXPECT().VisitRepo().Return(txVisits)

	txVisits.EXPECT().
		FindVisitByID(ctx, visit.ID).
		Return(visit, nil)

	expectTransaction(ctx, fx, factory)

	selected, err := fx.service.SelectVisit(ctx, rep, visit.ID)
	require.Error(t, err)
	assert.Nil(t, selected)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestJourneyService_SelectVisit_OwnedByAnotherRep(t *testing.T) {
	fx := createTestJourneyService(t)

	ctx := context.Background()
	visit := plannedVisit("rep-2")

	fx.tracker.EXPECT().Session().Return(activeSession("rep-1"))

	factory := mockRepo.NewMockRepositoryFactory(t)
	txVisits := mockRepo.NewMockVisitRepository(t)
	factory.EXPECT().VisitRepo().Return(txVisits)

	txVisits.EXPECT().
		FindVisitByID(ctx, visit.ID).
		Return(visit, nil)

	expectTransaction(ctx, fx, factory)

	selected, err := fx.service.SelectVisit(ctx, "rep-1", visit.ID)
	require.Error(t, err)
	assert.Nil(t, selected)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestJourneyService_DeselectVisit_RevertsToPlanned(t *testing.T) {
	fx := createTestJourneyService(t)

	ctx := context.Background()
	rep := "rep-1"
	visit := plannedVisit(rep)
	visit.Status = entity.VisitStatusEnRoute

	fx.tracker.EXPECT().Session().Return(activeSession(rep))

	factory := mockRepo.NewMockRepositoryFactory(t)
	txVisits := mockRepo.NewMockVisitRepository(t)
	factory.EXPECT().VisitRepo().Return(txVisits)

	txVisits.EXPECT().
		FindVisitByID(ctx, visit.ID).
		Return(visit, nil)
	txVisits.EXPECT().
		UpdateVisitStatus(ctx, visit.ID, entity.VisitStatusEnRoute, entity.VisitStatusPlanned, rep).
		Return(nil)

	expectTransaction(ctx, fx, factory)

	fx.tracker.EXPECT().
		BindVisit(mock.Anything).
		Run(func(visitID *uuid.UUID) {
			assert.Nil(t, visitID)
		}).
		Return()

	deselected, err := fx.service.DeselectVisit(ctx, rep, visit.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusPlanned, deselected.Status)
}

func TestJourneyService_FinalizeVisit_Success(t *testing.T) {
	fx := createTestJourneyService(t)

	ctx := context.Background()
	rep := "rep-1"
	visit := plannedVisit(rep)
	visit.Status = entity.VisitStatusEnRoute

	input := &usecase.FinalizeVisitInput{
		NoteType: string(entity.NoteTypeSalesOrder),
		Summary:  "met purchasing lead",
		Lines: []usecase.SampleLine{
			{SampleType: "Vitamin-A", Quantity: 4},
			{SampleType: "Zinc-B", Quantity: 2},
		},
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txVisits := mockRepo.NewMockVisitRepository(t)
	txStock := mockRepo.NewMockStockRepository(t)
	factory.EXPECT().VisitRepo().Return(txVisits)
	factory.EXPECT().StockRepo().Return(txStock)

	txVisits.EXPECT().
		FindVisitByID(ctx, visit.ID).
		Return(visit, nil)

	fx.reconciler.EXPECT().
		Reconcile(ctx, txStock, rep, input.Lines).
		Return(nil)

	txVisits.EXPECT().
		FinalizeVisit(ctx, mock.AnythingOfType("*entity.Visit")).
		Return(nil)

	expectTransaction(ctx, fx, factory)

	fx.tracker.EXPECT().Stop().Return(nil)
	fx.publisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(nil)

	finalized, err := fx.service.FinalizeVisit(ctx, rep, visit.ID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusDone, finalized.Status)
	require.NotNil(t, finalized.NoteType)
	assert.Equal(t, entity.NoteTypeSalesOrder, *finalized.NoteType)
	assert.Equal(t, []string{"Vitamin-A", "Zinc-B"}, finalized.SampleTypes)
	assert.Equal(t, []int{4, 2}, finalized.SampleQuantities)
	assert.Equal(t, "met purchasing lead | Samples: Vitamin-A x 4, Zinc-B x 2", finalized.Notes)
}

func TestJourneyService_FinalizeVisit_AlreadyDoneIsOneShot(t *testing.T) {
	fx := createTestJourneyService(t)

	ctx := context.Background()
	rep := "rep-1"
	visit := plannedVisit(rep)
	visit.Status = entity.VisitStatusDone

	input := &usecase.FinalizeVisitInput{
		NoteType: string(entity.NoteTypeSalesOrder),
		Lines:    []usecase.SampleLine{{SampleType: "Vitamin-A", Quantity: 4}},
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txVisits := mockRepo.NewMockVisitRepository(t)
	factory.EXPECT().VisitRepo().Return(txVisits)

	txVisits.EXPECT().
		FindVisitByID(ctx, visit.ID).
		Return(visit, nil)

	expectTransaction(ctx, fx, factory)

	// No reconcile expectation: a second finalize must never decrement again.
	finalized, err := fx.service.FinalizeVisit(ctx, rep, visit.ID, input)
	require.Error(t, err)
	assert.Nil(t, finalized)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestJourneyService_FinalizeVisit_NoteTypeRequired(t *testing.T) {
	fx := createTestJourneyService(t)

	finalized, err := fx.service.FinalizeVisit(context.Background(), "rep-1", uuid.New(), &usecase.FinalizeVisitInput{
		NoteType: "   ",
	})
	require.Error(t, err)
	assert.Nil(t, finalized)
	assert.True(t, errors.Is(err, domainerrors.ErrNoteTypeRequired))
}

func TestJourneyService_FinalizeVisit_UnknownNoteType(t *testing.T) {
	fx := createTestJourneyService(t)

	finalized, err := fx.service.FinalizeVisit(context.Background(), "rep-1", uuid.New(), &usecase.FinalizeVisitInput{
		NoteType: "LUNCH",
	})
	require.Error(t, err)
	assert.Nil(t, finalized)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestJourneyService_FinalizeVisit_StockShortfallRollsBack(t *testing.T) {
	fx := createTestJourneyService(t)

	ctx := context.Background()
	rep := "rep-1"
	visit := plannedVisit(rep)
	visit.Status = entity.VisitStatusEnRoute

	input := &usecase.FinalizeVisitInput{
		NoteType: string(entity.NoteTypeCollection),
		Lines:    []usecase.SampleLine{{SampleType: "Vitamin-A", Quantity: 12}},
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txVisits := mockRepo.NewMockVisitRepository(t)
	txStock := mockRepo.NewMockStockRepository(t)
	factory.EXPECT().VisitRepo().Return(txVisits)
	factory.EXPECT().StockRepo().Return(txStock)

	txVisits.EXPECT().
		FindVisitByID(ctx, visit.ID).
		Return(visit, nil)

	fx.reconciler.EXPECT().
		Reconcile(ctx, txStock, rep, input.Lines).
		Return(domainerrors.ErrStockShortfall.WithDetails("Vitamin-A: available 10, requested 12"))

	expectTransaction(ctx, fx, factory)

	// The visit stays en_route: no finalize write, no stop, no event.
	finalized, err := fx.service.FinalizeVisit(ctx, rep, visit.ID, input)
	require.Error(t, err)
	assert.Nil(t, finalized)
	assert.True(t, errors.Is(err, domainerrors.ErrStockShortfall))
}

func TestJourneyService_FinalizeVisit_ClaimsUnassignedVisit(t *testing.T) {
	fx := createTestJourneyService(t)

	ctx := context.Background()
	rep := "rep-1"
	visit := plannedVisit("")
	visit.Status = entity.VisitStatusEnRoute

	input := &usecase.FinalizeVisitInput{
		NoteType: string(entity.NoteTypeRFR),
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txVisits := mockRepo.NewMockVisitRepository(t)
	txStock := mockRepo.NewMockStockRepository(t)
	factory.EXPECT().VisitRepo().Return(txVisits)
	factory.EXPECT().StockRepo().Return(txStock)

	txVisits.EXPECT().
		FindVisitByID(ctx, visit.ID).
		Return(visit, nil)

	fx.reconciler.EXPECT().
		Reconcile(ctx, txStock, rep, input.Lines).
		Return(nil)

	txVisits.EXPECT().
		FinalizeVisit(ctx, mock.AnythingOfType("*entity.Visit")).
		Return(nil)

	expectTransaction(ctx, fx, factory)

	fx.tracker.EXPECT().Stop().Return(nil)
	fx.publisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(nil)

	finalized, err := fx.service.FinalizeVisit(ctx, rep, visit.ID, input)
	require.NoError(t, err)
	assert.Equal(t, rep, finalized.Rep)
}

func TestJourneyService_SkipVisit_NoStockSideEffects(t *testing.T) {
	fx := createTestJourneyService(t)

	ctx := context.Background()
	rep := "rep-1"
	visit := plannedVisit(rep)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txVisits := mockRepo.NewMockVisitRepository(t)
	factory.EXPECT().VisitRepo().Return(txVisits)

	txVisits.EXPECT().
		FindVisitByID(ctx, visit.ID).
		Return(visit, nil)
	txVisits.EXPECT().
		UpdateVisitStatus(ctx, visit.ID, entity.VisitStatusPlanned, entity.VisitStatusSkipped, rep).
		Return(nil)

	expectTransaction(ctx, fx, factory)

	fx.tracker.EXPECT().Session().Return(nil)
	fx.publisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(nil)

	skipped, err := fx.service.SkipVisit(ctx, rep, visit.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusSkipped, skipped.Status)
}

func TestJourneyService_SkipVisit_UnbindsActiveVisit(t *testing.T) {
	fx := createTestJourneyService(t)

	ctx := context.Background()
	rep := "rep-1"
	visit := plannedVisit(rep)
	visit.Status = entity.VisitStatusEnRoute

	factory := mockRepo.NewMockRepositoryFactory(t)
	txVisits := mockRepo.NewMockVisitRepository(t)
	factory.EXPECT().VisitRepo().Return(txVisits)

	txVisits.EXPECT().
		FindVisitByID(ctx, visit.ID).
		Return(visit, nil)
	txVisits.EXPECT().
		UpdateVisitStatus(ctx, visit.ID, entity.VisitStatusEnRoute, entity.VisitStatusSkipped, rep).
		Return(nil)

	expectTransaction(ctx, fx, factory)

	session := activeSession(rep)
	boundID := visit.ID
	session.ActiveVisitID = &boundID
	fx.tracker.EXPECT().Session().Return(session)
	fx.tracker.EXPECT().
		BindVisit(mock.Anything).
		Run(func(visitID *uuid.UUID) {
			assert.Nil(t, visitID)
		}).
		Return()

	fx.publisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(nil)

	skipped, err := fx.service.SkipVisit(ctx, rep, visit.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusSkipped, skipped.Status)
}

func TestJourneyService_SkipVisit_NotFound(t *testing.T) {
	fx := createTestJourneyService(t)

	ctx := context.Background()
	visitID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txVisits := mockRepo.NewMockVisitRepository(t)
	factory.EXPECT().VisitRepo().Return(txVisits)

	txVisits.EXPECT().
		FindVisitByID(ctx, visitID).
		Return(nil, repository.ErrVisitNotFound)

	expectTransaction(ctx, fx, factory)

	skipped, err := fx.service.SkipVisit(ctx, "rep-1", visitID)
	require.Error(t, err)
	assert.Nil(t, skipped)
	assert.True(t, errors.Is(err, domainerrors.ErrVisitNotFound))
}

func TestJourneyService_CurrentSession_PassesThrough(t *testing.T) {
	fx := createTestJourneyService(t)

	session := activeSession("rep-1")
	fx.tracker.EXPECT().Session().Return(session)

	assert.Equal(t, session, fx.service.CurrentSession())
}
