package services

import (
	"context"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/errs"
	"github.com/fundflow/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CreateProjectInput is the payload for creating a project. Amounts are
// minor units, dates are unix seconds.
type CreateProjectInput struct {
	CreatorID       int64  `json:"creator_id" validate:"required,gt=0"`
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	TargetAmount    int64  `json:"target_amount" validate:"gte=0"`
	CollectedAmount int64  `json:"collected_amount" validate:"gte=0"`
	CategoryID      int64  `json:"category_id" validate:"required,gt=0"`
	IsActive        *bool  `json:"is_active"`
	DateStart       int64  `json:"date_start" validate:"required"`
	DateEnd         int64  `json:"date_end" validate:"required,gtefield=DateStart"`
}

// UpdateProjectInput is a partial update; only supplied fields change.
type UpdateProjectInput struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	TargetAmount    *int64  `json:"target_amount" validate:"omitempty,gte=0"`
	CollectedAmount *int64  `json:"collected_amount" validate:"omitempty,gte=0"`
	CategoryID      *int64  `json:"category_id" validate:"omitempty,gt=0"`
	IsActive        *bool   `json:"is_active"`
	DateStart       *int64  `json:"date_start"`
	DateEnd         *int64  `json:"date_end"`
}

func (in UpdateProjectInput) fields() database.Filters {
	fields := database.Filters{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.TargetAmount != nil {
		fields["target_amount"] = *in.TargetAmount
	}
	if in.CollectedAmount != nil {
		fields["collected_amount"] = *in.CollectedAmount
	}
	if in.CategoryID != nil {
		fields["category_id"] = *in.CategoryID
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}
	if in.DateStart != nil {
		fields["date_start"] = *in.DateStart
	}
	if in.DateEnd != nil {
		fields["date_end"] = *in.DateEnd
	}
	return fields
}

type ProjectsService struct {
	logger zerolog.Logger
}

func NewProjectsService() ProjectsService {
	return ProjectsService{logger: log.With().Str("service", "projects").Logger()}
}

// List returns a page of projects matching the equality filters.
func (s ProjectsService) List(ctx context.Context, uow *database.UnitOfWork, filters database.Filters, offset, limit int) ([]*models.Project, error) {
	return uow.Projects.Repo.FindMany(ctx, filters, offset, limit)
}

// Get returns one project with its relations attached.
func (s ProjectsService) Get(ctx context.Context, uow *database.UnitOfWork, id int64) (*models.Project, error) {
	project, err := uow.Projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errs.NewNotFound("project")
	}
	return project, nil
}

// Create validates the payload, checks that the creator and category exist,
// and stages the new project inside the caller's unit of work.
func (s ProjectsService) Create(ctx context.Context, uow *database.UnitOfWork, in CreateProjectInput) (*models.Project, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, uow, &in.CreatorID, &in.CategoryID); err != nil {
		return nil, err
	}

	project := &models.Project{
		CreatorID:       in.CreatorID,
		Title:           in.Title,
		Description:     in.Description,
		TargetAmount:    in.TargetAmount,
		CollectedAmount: in.CollectedAmount,
		CategoryID:      in.CategoryID,
		IsActive:        true,
		DateStart:       in.DateStart,
		DateEnd:         in.DateEnd,
	}
	if in.IsActive != nil {
		project.IsActive = *in.IsActive
	}
	if _, err := uow.Projects.Create(ctx, project); err != nil {
		return nil, err
	}
	// Return the staged row fully hydrated; it is visible inside this unit
	// of work even though nothing is committed yet.
	return uow.Projects.GetByID(ctx, project.ID)
}

// Update applies only the supplied fields, preserving the date ordering
// invariant against the merged state.
func (s ProjectsService) Update(ctx context.Context, uow *database.UnitOfWork, id int64, in UpdateProjectInput) (*models.Project, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	existing, err := uow.Projects.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errs.NewNotFound("project")
	}

	start, end := existing.DateStart, existing.DateEnd
	if in.DateStart != nil {
		start = *in.DateStart
	}
	if in.DateEnd != nil {
		end = *in.DateEnd
	}
	if start > end {
		return nil, errs.NewInvalidFieldError("date_end", "must not precede date_start")
	}
	if err := s.checkReferences(ctx, uow, nil, in.CategoryID); err != nil {
		return nil, err
	}

	updated, err := uow.Projects.Repo.Update(ctx, id, in.fields())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errs.NewNotFound("project")
	}
	return updated, nil
}

// Delete removes a project. A project with recorded donations is never
// deleted; rewards still attached to it also block deletion.
func (s ProjectsService) Delete(ctx context.Context, uow *database.UnitOfWork, id int64) error {
	hasDonations, err := uow.Donations.Exists(ctx, database.Filters{"project_id": id})
	if err != nil {
		return err
	}
	if hasDonations {
		return errs.NewConflictError("project has donations and cannot be deleted")
	}
	hasRewards, err := uow.Rewards.Exists(ctx, database.Filters{"project_id": id})
	if err != nil {
		return err
	}
	if hasRewards {
		return errs.NewConflictError("project has rewards and cannot be deleted")
	}

	deleted, err := uow.Projects.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewNotFound("project")
	}
	return nil
}

func (s ProjectsService) checkReferences(ctx context.Context, uow *database.UnitOfWork, creatorID, categoryID *int64) error {
	if creatorID != nil {
		exists, err := uow.Users.Exists(ctx, database.Filters{"id": *creatorID})
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewInvalidFieldError("creator_id", "referenced user does not exist")
		}
	}
	if categoryID != nil {
		exists, err := uow.Categories.Exists(ctx, database.Filters{"id": *categoryID})
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewInvalidFieldError("category_id", "referenced category does not exist")
		}
	}
	return nil
}
