package repository

import (
	"context"
	"errors"
	"time"

	"cnc-assist/internal/apperrors"
	"cnc-assist/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var qaColumns = []string{"id", "question", "answer", "likes", "dislikes", "reports", "hidden", "created_at"}

// QARepository persists answered questions and their report audit trail.
// Counter updates are plain read-modify-write round trips; concurrent
// increments can lose an update, which is acceptable for feedback counters.
type QARepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewQARepository(db *pgxpool.Pool, logger *zap.Logger) *QARepository {
	return &QARepository{
		db:     db,
		logger: logger,
	}
}

func (r *QARepository) Create(ctx context.Context, qa *models.QAInteraction) error {
	query := squirrel.Insert("qa_interactions").
		Columns(qaColumns...).
		Values(qa.ID, qa.Question, qa.Answer, qa.Likes, qa.Dislikes, qa.Reports, qa.Hidden, qa.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *QARepository) GetByID(ctx context.Context, id uuid.UUID) (*models.QAInteraction, error) {
	query := squirrel.Select(qaColumns...).
		From("qa_interactions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var qa models.QAInteraction
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&qa.ID, &qa.Question, &qa.Answer, &qa.Likes, &qa.Dislikes, &qa.Reports, &qa.Hidden, &qa.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &qa, nil
}

func (r *QARepository) UpdateCounters(ctx context.Context, id uuid.UUID, likes, dislikes int) error {
	query := squirrel.Update("qa_interactions").
		Set("likes", likes).
		Set("dislikes", dislikes).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *QARepository) UpdateReports(ctx context.Context, id uuid.UUID, reports int, hidden bool) error {
	query := squirrel.Update("qa_interactions").
		Set("reports", reports).
		Set("hidden", hidden).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *QARepository) ListReported(ctx context.Context) ([]*models.QAInteraction, error) {
	query := squirrel.Select(qaColumns...).
		From("qa_interactions").
		Where(squirrel.Gt{"reports": 0}).
		OrderBy("reports DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.QAInteraction
	for rows.Next() {
		var qa models.QAInteraction
		if err := rows.Scan(
			&qa.ID, &qa.Question, &qa.Answer, &qa.Likes, &qa.Dislikes, &qa.Reports, &qa.Hidden, &qa.CreatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, &qa)
	}

	return results, rows.Err()
}

func (r *QARepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("qa_interactions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// AddReport appends one row to the answer_reports audit trail. Repeat reports
// from the same reporter are intentionally not deduplicated.
func (r *QARepository) AddReport(ctx context.Context, qaID uuid.UUID, reporter string) error {
	query := squirrel.Insert("answer_reports").
		Columns("id", "qa_id", "reporter_identifier", "created_at").
		Values(uuid.New(), qaID, reporter, time.Now().UTC()).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
