package services

import (
	"context"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/errs"
	"github.com/fundflow/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CreateRewardInput is the payload for creating a reward. The project link
// is optional so rewards can be drafted before a campaign exists.
type CreateRewardInput struct {
	ProjectID        *int64 `json:"project_id" validate:"omitempty,gt=0"`
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description" validate:"required"`
	RequiredQuantity int64  `json:"required_quantity" validate:"gte=0"`
}

// UpdateRewardInput is a partial update. ProjectID uses Optional so an
// explicit null (detach from project) is distinct from an omitted field.
type UpdateRewardInput struct {
	ProjectID        Optional[int64] `json:"project_id"`
	Title            *string         `json:"title"`
	Description      *string         `json:"description"`
	RequiredQuantity *int64          `json:"required_quantity" validate:"omitempty,gte=0"`
}

func (in UpdateRewardInput) fields() database.Filters {
	fields := database.Filters{}
	if in.ProjectID.Set {
		fields["project_id"] = in.ProjectID.Value
	}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.RequiredQuantity != nil {
		fields["required_quantity"] = *in.RequiredQuantity
	}
	return fields
}

type RewardsService struct {
	logger zerolog.Logger
}

func NewRewardsService() RewardsService {
	return RewardsService{logger: log.With().Str("service", "rewards").Logger()}
}

func (s RewardsService) List(ctx context.Context, uow *database.UnitOfWork, filters database.Filters, offset, limit int) ([]*models.Reward, error) {
	return uow.Rewards.FindMany(ctx, filters, offset, limit)
}

func (s RewardsService) Get(ctx context.Context, uow *database.UnitOfWork, id int64) (*models.Reward, error) {
	reward, err := uow.Rewards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reward == nil {
		return nil, errs.NewNotFound("reward")
	}
	return reward, nil
}

func (s RewardsService) Create(ctx context.Context, uow *database.UnitOfWork, in CreateRewardInput) (*models.Reward, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.checkProject(ctx, uow, in.ProjectID); err != nil {
		return nil, err
	}
	reward := &models.Reward{
		ProjectID:        in.ProjectID,
		Title:            in.Title,
		Description:      in.Description,
		RequiredQuantity: in.RequiredQuantity,
	}
	return uow.Rewards.Create(ctx, reward)
}

func (s RewardsService) Update(ctx context.Context, uow *database.UnitOfWork, id int64, in UpdateRewardInput) (*models.Reward, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.ProjectID.Set && in.ProjectID.Value != nil {
		if err := s.checkProject(ctx, uow, in.ProjectID.Value); err != nil {
			return nil, err
		}
	}
	reward, err := uow.Rewards.Update(ctx, id, in.fields())
	if err != nil {
		return nil, err
	}
	if reward == nil {
		return nil, errs.NewNotFound("reward")
	}
	return reward, nil
}

func (s RewardsService) Delete(ctx context.Context, uow *database.UnitOfWork, id int64) error {
	deleted, err := uow.Rewards.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewNotFound("reward")
	}
	return nil
}

func (s RewardsService) checkProject(ctx context.Context, uow *database.UnitOfWork, projectID *int64) error {
	if projectID == nil {
		return nil
	}
	exists, err := uow.Projects.Exists(ctx, database.Filters{"id": *projectID})
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewInvalidFieldError("project_id", "referenced project does not exist")
	}
	return nil
}
