package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/domain/regularization"
	"github.com/sha-shank-883/hrms-pro-sub003/internal/pkg/database"
)

type regularizationRepository struct {
	db *database.DB
}

func NewRegularizationRepository(db *database.DB) regularization.RequestRepository {
	return &regularizationRepository{db: db}
}

const requestColumns = `id, employee_id, date, original_clock_in, original_clock_out,
	requested_clock_in, requested_clock_out, reason, status, submitted_by,
	decided_by, decided_at, created_at, updated_at`

// Create implements regularization.RequestRepository.
func (r *regularizationRepository) Create(ctx context.Context, req *regularization.Request) error {
	q := GetQuerier(ctx, r.db)

	req.ID = uuid.New().String()

	query := `
		INSERT INTO regularization_requests (
			id, employee_id, date, original_clock_in, original_clock_out,
			requested_clock_in, requested_clock_out, reason, status, submitted_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.Date, req.OriginalClockIn, req.OriginalClockOut,
		req.RequestedClockIn, req.RequestedClockOut, req.Reason, req.Status, req.SubmittedBy,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create regularization request: %w", err)
	}

	return nil
}

// GetByID implements regularization.RequestRepository.
func (r *regularizationRepository) GetByID(ctx context.Context, id string) (*regularization.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.employee_id, r.date, r.original_clock_in, r.original_clock_out,
			   r.requested_clock_in, r.requested_clock_out, r.reason, r.status, r.submitted_by,
			   r.decided_by, r.decided_at, r.created_at, r.updated_at,
			   e.full_name AS employee_name
		FROM regularization_requests r
		LEFT JOIN employees e ON r.employee_id = e.id
		WHERE r.id = $1
	`

	var req regularization.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.OriginalClockIn, &req.OriginalClockOut,
		&req.RequestedClockIn, &req.RequestedClockOut, &req.Reason, &req.Status, &req.SubmittedBy,
		&req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, regularization.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get regularization request: %w", err)
	}

	return &req, nil
}

// Decide implements regularization.RequestRepository.
//
// The status check sits inside the UPDATE itself, so concurrent deciders race
// on one conditional statement and exactly one wins. When no row comes back a
// follow-up lookup tells a decided request apart from a missing one.
func (r *regularizationRepository) Decide(ctx context.Context, id string, status regularization.RequestStatus, decidedBy string, decidedAt time.Time) (*regularization.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE regularization_requests
		SET status = $2,
			decided_by = $3,
			decided_at = $4,
			updated_at = NOW()
		WHERE id = $1
		  AND status = 'pending'
		RETURNING ` + requestColumns

	var req regularization.Request
	err := q.QueryRow(ctx, query, id, status, decidedBy, decidedAt).Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.OriginalClockIn, &req.OriginalClockOut,
		&req.RequestedClockIn, &req.RequestedClockOut, &req.Reason, &req.Status, &req.SubmittedBy,
		&req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if err == nil {
		return &req, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to decide regularization request: %w", err)
	}

	var existing string
	err = q.QueryRow(ctx, `SELECT status FROM regularization_requests WHERE id = $1`, id).Scan(&existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, regularization.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to decide regularization request: %w", err)
	}

	return nil, regularization.ErrAlreadyDecided
}

// List implements regularization.RequestRepository.
func (r *regularizationRepository) List(ctx context.Context, filter *regularization.RequestFilter) ([]regularization.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE conditions
	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("r.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("r.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("r.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("r.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	// Count query
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM regularization_requests r WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count regularization requests: %w", err)
	}

	// Main query with pagination; newest first, id breaks ties
	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT r.id, r.employee_id, r.date, r.original_clock_in, r.original_clock_out,
			   r.requested_clock_in, r.requested_clock_out, r.reason, r.status, r.submitted_by,
			   r.decided_by, r.decided_at, r.created_at, r.updated_at,
			   e.full_name AS employee_name
		FROM regularization_requests r
		LEFT JOIN employees e ON r.employee_id = e.id
		WHERE %s
		ORDER BY r.created_at DESC, r.id ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list regularization requests: %w", err)
	}
	defer rows.Close()

	var requests []regularization.Request
	for rows.Next() {
		var req regularization.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Date, &req.OriginalClockIn, &req.OriginalClockOut,
			&req.RequestedClockIn, &req.RequestedClockOut, &req.Reason, &req.Status, &req.SubmittedBy,
			&req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan regularization request: %w", err)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}
