package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "fieldtrack/internal/delivery/context"
	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/domain/service"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// journeyService implements the visit state machine.
//
// Toggle policy: close-before-open. Selecting a visit while another one is
// en_route for the same rep reverts the other visit to planned inside the
// same transaction, so at most one visit per rep is ever en_route.
type journeyService struct {
	txManager  repository.TransactionManager
	visitRepo  repository.VisitRepository
	tracker    usecase.TrackingUsecase
	reconciler usecase.StockReconciler
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// NewJourneyService creates a new journey service instance
func NewJourneyService(
	txManager repository.TransactionManager,
	visitRepo repository.VisitRepository,
	tracker usecase.TrackingUsecase,
	reconciler usecase.StockReconciler,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.JourneyUsecase {
	return &journeyService{
		txManager:  txManager,
		visitRepo:  visitRepo,
		tracker:    tracker,
		reconciler: reconciler,
		publisher:  publisher,
		logger:     logger,
	}
}

// StartJourney begins tracking for the rep after checking today's schedule.
func (s *journeyService) StartJourney(ctx context.Context, rep string) (*entity.JourneySession, error) {
	if strings.TrimSpace(rep) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rep is required")
	}

	count, err := s.visitRepo.CountVisitsOnDay(ctx, rep, time.Now().UTC())
	if err != nil {
		return nil, errors.Wrap(err, "failed to count today's visits")
	}
	if count == 0 {
		return nil, domainerrors.ErrNoVisitsScheduled
	}

	session, err := s.tracker.Start(ctx, rep)
	if err != nil {
		return nil, err
	}

	s.logger.Info("journey started",
		slog.String("rep", rep),
		slog.Int64("visits_today", count),
	)

	return session, nil
}

// StopJourney halts tracking. Idempotent.
func (s *journeyService) StopJourney(_ context.Context) error {
	return s.tracker.Stop()
}

// SelectVisit moves a planned visit to en_route, closing any other active
// visit of the rep first, and binds it to the journey session.
func (s *journeyService) SelectVisit(ctx context.Context, rep string, visitID uuid.UUID) (*entity.Visit, error) {
	if err := s.requireActiveSession(rep); err != nil {
		return nil, err
	}

	var selected *entity.Visit
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		visits := f.VisitRepo()

		visit, err := s.loadVisit(ctx, visits, visitID)
		if err != nil {
			return err
		}
		if !visit.Status.CanTransitionTo(entity.VisitStatusEnRoute) {
			return domainerrors.ErrInvalidTransition.WithDetails(
				fmt.Sprintf("cannot select visit in status %q", visit.Status))
		}
		if err := s.checkOwnership(visit, rep); err != nil {
			return err
		}

		// Close-before-open: revert the rep's current en_route visit first.
		current, err := visits.FindEnRouteVisitByRep(ctx, rep)
		if err != nil && !errors.Is(err, repository.ErrVisitNotFound) {
			return errors.Wrap(err, "failed to look up active visit")
		}
		if current != nil && current.ID != visitID {
			if err := visits.UpdateVisitStatus(ctx, current.ID, entity.VisitStatusEnRoute, entity.VisitStatusPlanned, rep); err != nil {
				return errors.Wrap(err, "failed to close previous active visit")
			}
		}

		if err := visits.UpdateVisitStatus(ctx, visitID, entity.VisitStatusPlanned, entity.VisitStatusEnRoute, rep); err != nil {
			return errors.Wrap(err, "failed to select visit")
		}

		visit.Status = entity.VisitStatusEnRoute
		visit.Rep = rep
		selected = visit

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.tracker.BindVisit(&visitID)

	return selected, nil
}

// DeselectVisit reverts the rep's en_route visit to planned and clears the binding.
func (s *journeyService) DeselectVisit(ctx context.Context, rep string, visitID uuid.UUID) (*entity.Visit, error) {
	if err := s.requireActiveSession(rep); err != nil {
		return nil, err
	}

	var deselected *entity.Visit
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		visits := f.VisitRepo()

		visit, err := s.loadVisit(ctx, visits, visitID)
		if err != nil {
			return err
		}
		if visit.Status != entity.VisitStatusEnRoute {
			return domainerrors.ErrInvalidTransition.WithDetails(
				fmt.Sprintf("cannot deselect visit in status %q", visit.Status))
		}
		if err := s.checkOwnership(visit, rep); err != nil {
			return err
		}

		if err := visits.UpdateVisitStatus(ctx, visitID, entity.VisitStatusEnRoute, entity.VisitStatusPlanned, rep); err != nil {
			return errors.Wrap(err, "failed to deselect visit")
		}

		visit.Status = entity.VisitStatusPlanned
		deselected = visit

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.tracker.BindVisit(nil)

	return deselected, nil
}

// FinalizeVisit ends the journey at a visit. The transition, the note write
// and the stock decrements commit atomically; tracking stops only after the
// transaction succeeds, so a failed write leaves the journey running and the
// caller reloads authoritative state.
func (s *journeyService) FinalizeVisit(ctx context.Context, rep string, visitID uuid.UUID, input *usecase.FinalizeVisitInput) (*entity.Visit, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("finalize input is required")
	}
	if strings.TrimSpace(input.NoteType) == "" {
		return nil, domainerrors.ErrNoteTypeRequired
	}
	noteType, err := entity.ParseNoteType(input.NoteType)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown note type %q", input.NoteType))
	}

	var finalized *entity.Visit
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		visits := f.VisitRepo()

		visit, err := s.loadVisit(ctx, visits, visitID)
		if err != nil {
			return err
		}
		// Terminal states are rejected here, which also makes the done
		// transition one-shot: reconciliation can never run twice for the
		// same visit.
		if !visit.Status.CanTransitionTo(entity.VisitStatusDone) {
			return domainerrors.ErrInvalidTransition.WithDetails(
				fmt.Sprintf("cannot finalize visit in status %q", visit.Status))
		}
		if err := s.checkOwnership(visit, rep); err != nil {
			return err
		}

		// Auto-claim: an unassigned visit is claimed by the finalizing rep.
		if visit.Rep == "" {
			visit.Rep = rep
		}

		if err := s.reconciler.Reconcile(ctx, f.StockRepo(), visit.Rep, input.Lines); err != nil {
			return err
		}

		visit.Status = entity.VisitStatusDone
		visit.NoteType = &noteType
		visit.Notes = formatVisitNotes(input.Summary, input.Lines)
		visit.SampleTypes = make([]string, 0, len(input.Lines))
		visit.SampleQuantities = make([]int, 0, len(input.Lines))
		for _, line := range input.Lines {
			visit.SampleTypes = append(visit.SampleTypes, strings.TrimSpace(line.SampleType))
			visit.SampleQuantities = append(visit.SampleQuantities, line.Quantity)
		}

		if err := visits.FinalizeVisit(ctx, visit); err != nil {
			return errors.Wrap(err, "failed to finalize visit")
		}

		finalized = visit

		return nil
	})
	if err != nil {
		return nil, err
	}

	// The journey ends with the visit: clear the session and stop emission.
	if err := s.tracker.Stop(); err != nil {
		s.logger.Warn("failed to stop tracking after finalize", slog.Any("error", err))
	}

	s.publishEvent(ctx, service.VisitEventFinalized, finalized)

	return finalized, nil
}

// SkipVisit terminally skips a visit. Structurally identical to finalize
// minus reconciliation: no stock is touched.
func (s *journeyService) SkipVisit(ctx context.Context, rep string, visitID uuid.UUID) (*entity.Visit, error) {
	var skipped *entity.Visit
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		visits := f.VisitRepo()

		visit, err := s.loadVisit(ctx, visits, visitID)
		if err != nil {
			return err
		}
		if !visit.Status.CanTransitionTo(entity.VisitStatusSkipped) {
			return domainerrors.ErrInvalidTransition.WithDetails(
				fmt.Sprintf("cannot skip visit in status %q", visit.Status))
		}
		if err := s.checkOwnership(visit, rep); err != nil {
			return err
		}

		from := visit.Status
		if err := visits.UpdateVisitStatus(ctx, visitID, from, entity.VisitStatusSkipped, rep); err != nil {
			return errors.Wrap(err, "failed to skip visit")
		}

		visit.Status = entity.VisitStatusSkipped
		if visit.Rep == "" {
			visit.Rep = rep
		}
		skipped = visit

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Skipping the bound visit unbinds it; the journey keeps running.
	if session := s.tracker.Session(); session != nil &&
		session.ActiveVisitID != nil && *session.ActiveVisitID == visitID {
		s.tracker.BindVisit(nil)
	}

	s.publishEvent(ctx, service.VisitEventSkipped, skipped)

	return skipped, nil
}

// CurrentSession returns a copy of the active journey session, or nil.
func (s *journeyService) CurrentSession() *entity.JourneySession {
	return s.tracker.Session()
}

func (s *journeyService) requireActiveSession(rep string) error {
	session := s.tracker.Session()
	if session == nil || session.Rep != rep {
		return domainerrors.ErrJourneyNotActive
	}

	return nil
}

func (s *journeyService) loadVisit(ctx context.Context, visits repository.VisitRepository, visitID uuid.UUID) (*entity.Visit, error) {
	visit, err := visits.FindVisitByID(ctx, visitID)
	if err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return nil, domainerrors.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit by ID")
	}

	return visit, nil
}

func (s *journeyService) checkOwnership(visit *entity.Visit, rep string) error {
	if visit.Rep != "" && visit.Rep != rep {
		return domainerrors.ErrConflict.WithDetails("visit is assigned to another rep")
	}

	return nil
}

// publishEvent fans the terminal transition out to the reporting worker.
// Best-effort: a publish failure is logged, never surfaced to the rep.
func (s *journeyService) publishEvent(ctx context.Context, kind string, visit *entity.Visit) {
	event := &service.VisitEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Kind:       kind,
		VisitID:    visit.ID.String(),
		Rep:        visit.Rep,
		ClientName: visit.ClientName,
		VisitDate:  visit.VisitDate.Format(time.RFC3339),
	}
	if visit.NoteType != nil {
		event.NoteType = string(*visit.NoteType)
	}
	if kind == service.VisitEventFinalized {
		event.SampleTypes = visit.SampleTypes
		event.SampleQtys = visit.SampleQuantities
	}

	if err := s.publisher.PublishVisitEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish visit event",
			slog.String("kind", kind),
			slog.String("visit_id", event.VisitID),
			slog.Any("error", err),
		)
	}
}

// formatVisitNotes renders the finalize summary plus the distributed sample
// list, e.g. "met purchasing lead | Samples: Vitamin-A x 4, Zinc-B x 2".
func formatVisitNotes(summary string, lines []usecase.SampleLine) string {
	summary = strings.TrimSpace(summary)
	if len(lines) == 0 {
		return summary
	}

	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, fmt.Sprintf("%s x %d", strings.TrimSpace(line.SampleType), line.Quantity))
	}
	sampleList := "Samples: " + strings.Join(parts, ", ")

	if summary == "" {
		return sampleList
	}

	return summary + " | " + sampleList
}
