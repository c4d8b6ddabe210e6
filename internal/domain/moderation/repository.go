package moderation

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ReportRepository defines report data access interface
type ReportRepository interface {
	Create(ctx context.Context, r *Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*Report, error)
	List(ctx context.Context, status ReportStatus, limit, offset int) ([]*Report, error)
	Count(ctx context.Context, status ReportStatus) (int, error)
	Resolve(ctx context.Context, id, resolverID uuid.UUID) error
}

type reportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates new report repository
func NewReportRepository(db *sqlx.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *Report) error {
	query := `
		INSERT INTO reports (id, reporter_id, topic_id, comment_id, reason, detail, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		report.ID,
		report.ReporterID,
		report.TopicID,
		report.CommentID,
		report.Reason,
		report.Detail,
		report.Status,
		report.CreatedAt,
	)
	return err
}

func (r *reportRepository) GetByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	query := `SELECT * FROM reports WHERE id = $1`
	var report Report
	err := r.db.GetContext(ctx, &report, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) List(ctx context.Context, status ReportStatus, limit, offset int) ([]*Report, error) {
	query := `
		SELECT * FROM reports
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`
	var reports []*Report
	err := r.db.SelectContext(ctx, &reports, query, status, limit, offset)
	return reports, err
}

func (r *reportRepository) Count(ctx context.Context, status ReportStatus) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM reports WHERE status = $1`, status)
	return count, err
}

func (r *reportRepository) Resolve(ctx context.Context, id, resolverID uuid.UUID) error {
	query := `
		UPDATE reports
		SET status = 'resolved', resolved_by = $1, resolved_at = NOW()
		WHERE id = $2 AND status = 'open'
	`
	result, err := r.db.ExecContext(ctx, query, resolverID, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrReportNotFound
	}
	return nil
}
