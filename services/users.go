package services

import (
	"context"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/errs"
	"github.com/fundflow/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	RoleID   int64  `json:"role_id" validate:"required,gt=0"`
}

type UpdateUserInput struct {
	Email  *string `json:"email" validate:"omitempty,email"`
	Name   *string `json:"name"`
	RoleID *int64  `json:"role_id" validate:"omitempty,gt=0"`
}

func (in UpdateUserInput) fields() database.Filters {
	fields := database.Filters{}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.RoleID != nil {
		fields["role_id"] = *in.RoleID
	}
	return fields
}

type UsersService struct {
	logger zerolog.Logger
}

func NewUsersService() UsersService {
	return UsersService{logger: log.With().Str("service", "users").Logger()}
}

func (s UsersService) List(ctx context.Context, uow *database.UnitOfWork, filters database.Filters, offset, limit int) ([]*models.User, error) {
	return uow.Users.FindMany(ctx, filters, offset, limit)
}

// Get returns one user with their role attached.
func (s UsersService) Get(ctx context.Context, uow *database.UnitOfWork, id int64) (*models.User, error) {
	user, err := uow.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFound("user")
	}
	return user, nil
}

// Create is the administrative path for adding a user with an explicit role;
// self-service signup goes through AuthService.Register.
func (s UsersService) Create(ctx context.Context, uow *database.UnitOfWork, in CreateUserInput) (*models.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	roleExists, err := uow.Roles.Exists(ctx, database.Filters{"id": in.RoleID})
	if err != nil {
		return nil, err
	}
	if !roleExists {
		return nil, errs.NewInvalidFieldError("role_id", "referenced role does not exist")
	}
	taken, err := uow.Users.Exists(ctx, database.Filters{"email": in.Email})
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewConflictError("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to hash password", err)
	}
	user := &models.User{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		RoleID:       in.RoleID,
	}
	return uow.Users.Create(ctx, user)
}

func (s UsersService) Update(ctx context.Context, uow *database.UnitOfWork, id int64, in UpdateUserInput) (*models.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.RoleID != nil {
		roleExists, err := uow.Roles.Exists(ctx, database.Filters{"id": *in.RoleID})
		if err != nil {
			return nil, err
		}
		if !roleExists {
			return nil, errs.NewInvalidFieldError("role_id", "referenced role does not exist")
		}
	}
	user, err := uow.Users.Repo.Update(ctx, id, in.fields())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFound("user")
	}
	return user, nil
}

// Delete removes a user unless projects or donations still reference them.
func (s UsersService) Delete(ctx context.Context, uow *database.UnitOfWork, id int64) error {
	hasProjects, err := uow.Projects.Exists(ctx, database.Filters{"creator_id": id})
	if err != nil {
		return err
	}
	if hasProjects {
		return errs.NewConflictError("user has projects and cannot be deleted")
	}
	hasDonations, err := uow.Donations.Exists(ctx, database.Filters{"user_id": id})
	if err != nil {
		return err
	}
	if hasDonations {
		return errs.NewConflictError("user has donations and cannot be deleted")
	}

	deleted, err := uow.Users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewNotFound("user")
	}
	return nil
}
