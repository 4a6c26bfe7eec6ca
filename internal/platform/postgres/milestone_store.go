package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/planroom/teamplan-api/internal/domain"
	"github.com/planroom/teamplan-api/internal/platform/logger"
	"github.com/planroom/teamplan-api/internal/store"
)

// PostgresMilestoneStore implements the store.MilestoneStore interface
// using a PostgreSQL database as the storage backend.
type PostgresMilestoneStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMilestoneStore creates a new PostgreSQL implementation of the
// MilestoneStore interface.
func NewPostgresMilestoneStore(db store.DBTX, logger *slog.Logger) *PostgresMilestoneStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMilestoneStore{
		db:     db,
		logger: logger.With(slog.String("component", "milestone_store")),
	}
}

// Ensure PostgresMilestoneStore implements store.MilestoneStore interface
var _ store.MilestoneStore = (*PostgresMilestoneStore)(nil)

// Create implements store.MilestoneStore.Create
func (s *PostgresMilestoneStore) Create(ctx context.Context, milestone *domain.Milestone) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := milestone.Validate(); err != nil {
		log.Warn("milestone validation failed during create",
			slog.String("error", err.Error()),
			slog.String("milestone_id", milestone.ID.String()))
		return err
	}

	query := `
		INSERT INTO milestones (id, project_id, name, description, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		milestone.ID,
		milestone.ProjectID,
		milestone.Name,
		milestone.Description,
		milestone.DueDate,
		milestone.CreatedAt,
		milestone.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: project %s not found",
				store.ErrInvalidEntity, milestone.ProjectID)
		}
		log.Error("failed to create milestone",
			slog.String("error", err.Error()),
			slog.String("milestone_id", milestone.ID.String()))
		return err
	}

	log.Info("milestone created",
		slog.String("milestone_id", milestone.ID.String()),
		slog.String("project_id", milestone.ProjectID.String()))
	return nil
}

// GetByID implements store.MilestoneStore.GetByID
func (s *PostgresMilestoneStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Milestone, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, project_id, name, description, due_date, created_at, updated_at
		FROM milestones
		WHERE id = $1
	`

	var milestone domain.Milestone
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&milestone.ID,
		&milestone.ProjectID,
		&milestone.Name,
		&milestone.Description,
		&milestone.DueDate,
		&milestone.CreatedAt,
		&milestone.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrMilestoneNotFound
		}
		log.Error("failed to get milestone",
			slog.String("error", err.Error()),
			slog.String("milestone_id", id.String()))
		return nil, err
	}

	return &milestone, nil
}

// List implements store.MilestoneStore.List
func (s *PostgresMilestoneStore) List(ctx context.Context) ([]*domain.Milestone, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, project_id, name, description, due_date, created_at, updated_at
		FROM milestones
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list milestones", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	milestones := make([]*domain.Milestone, 0)
	for rows.Next() {
		var milestone domain.Milestone
		if err := rows.Scan(
			&milestone.ID,
			&milestone.ProjectID,
			&milestone.Name,
			&milestone.Description,
			&milestone.DueDate,
			&milestone.CreatedAt,
			&milestone.UpdatedAt,
		); err != nil {
			return nil, err
		}
		milestones = append(milestones, &milestone)
	}

	return milestones, rows.Err()
}

// Update implements store.MilestoneStore.Update
func (s *PostgresMilestoneStore) Update(ctx context.Context, milestone *domain.Milestone) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := milestone.Validate(); err != nil {
		return err
	}

	milestone.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE milestones
		SET name = $1, description = $2, due_date = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		milestone.Name,
		milestone.Description,
		milestone.DueDate,
		milestone.UpdatedAt,
		milestone.ID,
	)
	if err != nil {
		log.Error("failed to update milestone",
			slog.String("error", err.Error()),
			slog.String("milestone_id", milestone.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrMilestoneNotFound
	}

	log.Info("milestone updated", slog.String("milestone_id", milestone.ID.String()))
	return nil
}

// Delete implements store.MilestoneStore.Delete
func (s *PostgresMilestoneStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM milestones WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete milestone",
			slog.String("error", err.Error()),
			slog.String("milestone_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrMilestoneNotFound
	}

	log.Info("milestone deleted", slog.String("milestone_id", id.String()))
	return nil
}
