package services

import (
	"context"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/errs"
	"github.com/fundflow/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type CreateCategoryInput struct {
	Name string `json:"name" validate:"required"`
}

type UpdateCategoryInput struct {
	Name *string `json:"name"`
}

func (in UpdateCategoryInput) fields() database.Filters {
	fields := database.Filters{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	return fields
}

type CategoriesService struct {
	logger zerolog.Logger
}

func NewCategoriesService() CategoriesService {
	return CategoriesService{logger: log.With().Str("service", "categories").Logger()}
}

func (s CategoriesService) List(ctx context.Context, uow *database.UnitOfWork, filters database.Filters, offset, limit int) ([]*models.Category, error) {
	return uow.Categories.FindMany(ctx, filters, offset, limit)
}

func (s CategoriesService) Get(ctx context.Context, uow *database.UnitOfWork, id int64) (*models.Category, error) {
	category, err := uow.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errs.NewNotFound("category")
	}
	return category, nil
}

func (s CategoriesService) Create(ctx context.Context, uow *database.UnitOfWork, in CreateCategoryInput) (*models.Category, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return uow.Categories.Create(ctx, &models.Category{Name: in.Name})
}

func (s CategoriesService) Update(ctx context.Context, uow *database.UnitOfWork, id int64, in UpdateCategoryInput) (*models.Category, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	category, err := uow.Categories.Update(ctx, id, in.fields())
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errs.NewNotFound("category")
	}
	return category, nil
}

// Delete removes a category unless projects still reference it.
func (s CategoriesService) Delete(ctx context.Context, uow *database.UnitOfWork, id int64) error {
	inUse, err := uow.Projects.Exists(ctx, database.Filters{"category_id": id})
	if err != nil {
		return err
	}
	if inUse {
		return errs.NewConflictError("category is referenced by projects and cannot be deleted")
	}
	deleted, err := uow.Categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewNotFound("category")
	}
	return nil
}
