package service

import (
	"context"
	"fmt"

	"cnc-assist/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ModerationService tracks community feedback on answers and drives the
// hidden/visible state machine. An answer hides automatically when its report
// count reaches models.HideReportThreshold; only an explicit approve makes it
// visible again. Authorization happens in the HTTP layer; this service
// assumes the caller is allowed to act.
type ModerationService struct {
	qaStore QAStore
	logger  *zap.Logger
}

func NewModerationService(qaStore QAStore, logger *zap.Logger) *ModerationService {
	return &ModerationService{
		qaStore: qaStore,
		logger:  logger,
	}
}

// Rate increments the like or dislike counter. Ratings never affect
// visibility.
func (s *ModerationService) Rate(ctx context.Context, id uuid.UUID, kind models.RatingKind) error {
	qa, err := s.qaStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	likes, dislikes := qa.Likes, qa.Dislikes
	switch kind {
	case models.RatingLike:
		likes++
	case models.RatingDislike:
		dislikes++
	default:
		return fmt.Errorf("unknown rating type %q", kind)
	}

	return s.qaStore.UpdateCounters(ctx, id, likes, dislikes)
}

// Report increments the report counter, hides the answer once the threshold
// is reached, and appends an audit row. Returns the new report count and
// visibility.
func (s *ModerationService) Report(ctx context.Context, id uuid.UUID, reporter string) (int, bool, error) {
	qa, err := s.qaStore.GetByID(ctx, id)
	if err != nil {
		return 0, false, err
	}

	reports := qa.Reports + 1
	hidden := reports >= models.HideReportThreshold

	if err := s.qaStore.UpdateReports(ctx, id, reports, hidden); err != nil {
		return 0, false, err
	}

	if err := s.qaStore.AddReport(ctx, id, reporter); err != nil {
		// The counter is already updated; the audit row is best-effort.
		s.logger.Error("Failed to record answer report", zap.Error(err))
	}

	if hidden {
		s.logger.Warn("Answer hidden after reports",
			zap.String("qa_id", id.String()),
			zap.Int("reports", reports),
		)
	}

	return reports, hidden, nil
}

// ReportedAnswers lists every answer with at least one report, most reported
// first.
func (s *ModerationService) ReportedAnswers(ctx context.Context) ([]*models.QAInteraction, error) {
	return s.qaStore.ListReported(ctx)
}

// Approve clears the report count and makes the answer visible again. This
// is the only transition out of the hidden state.
func (s *ModerationService) Approve(ctx context.Context, id uuid.UUID) error {
	return s.qaStore.UpdateReports(ctx, id, 0, false)
}

// Delete removes the interaction regardless of its state.
func (s *ModerationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.qaStore.Delete(ctx, id)
}
