package services

import (
	"context"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/errs"
	"github.com/fundflow/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type CreateRoleInput struct {
	Name string `json:"name" validate:"required"`
}

type UpdateRoleInput struct {
	Name *string `json:"name"`
}

func (in UpdateRoleInput) fields() database.Filters {
	fields := database.Filters{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	return fields
}

type RolesService struct {
	logger zerolog.Logger
}

func NewRolesService() RolesService {
	return RolesService{logger: log.With().Str("service", "roles").Logger()}
}

func (s RolesService) List(ctx context.Context, uow *database.UnitOfWork, filters database.Filters, offset, limit int) ([]*models.Role, error) {
	return uow.Roles.Repo.FindMany(ctx, filters, offset, limit)
}

// Get returns one role with its users eagerly attached.
func (s RolesService) Get(ctx context.Context, uow *database.UnitOfWork, id int64) (*models.Role, error) {
	role, err := uow.Roles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errs.NewNotFound("role")
	}
	return role, nil
}

// GetByName looks a role up by its unique name.
func (s RolesService) GetByName(ctx context.Context, uow *database.UnitOfWork, name string) (*models.Role, error) {
	role, err := uow.Roles.FindOne(ctx, database.Filters{"name": name})
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errs.NewNotFound("role")
	}
	return role, nil
}

func (s RolesService) Create(ctx context.Context, uow *database.UnitOfWork, in CreateRoleInput) (*models.Role, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return uow.Roles.Create(ctx, &models.Role{Name: in.Name})
}

func (s RolesService) Update(ctx context.Context, uow *database.UnitOfWork, id int64, in UpdateRoleInput) (*models.Role, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	role, err := uow.Roles.Repo.Update(ctx, id, in.fields())
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errs.NewNotFound("role")
	}
	return role, nil
}

// Delete removes a role unless users still hold it.
func (s RolesService) Delete(ctx context.Context, uow *database.UnitOfWork, id int64) error {
	inUse, err := uow.Users.Exists(ctx, database.Filters{"role_id": id})
	if err != nil {
		return err
	}
	if inUse {
		return errs.NewConflictError("role is assigned to users and cannot be deleted")
	}
	deleted, err := uow.Roles.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewNotFound("role")
	}
	return nil
}
