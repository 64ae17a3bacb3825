package services

import (
	"context"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/errs"
	"github.com/fundflow/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CreateDonationInput is the payload for recording a donation. Amount is in
// minor units and must be positive.
type CreateDonationInput struct {
	ProjectID int64 `json:"project_id" validate:"required,gt=0"`
	UserID    int64 `json:"user_id" validate:"required,gt=0"`
	Amount    int64 `json:"amount" validate:"required,gt=0"`
}

type UpdateDonationInput struct {
	ProjectID *int64 `json:"project_id" validate:"omitempty,gt=0"`
	UserID    *int64 `json:"user_id" validate:"omitempty,gt=0"`
	Amount    *int64 `json:"amount" validate:"omitempty,gt=0"`
}

func (in UpdateDonationInput) fields() database.Filters {
	fields := database.Filters{}
	if in.ProjectID != nil {
		fields["project_id"] = *in.ProjectID
	}
	if in.UserID != nil {
		fields["user_id"] = *in.UserID
	}
	if in.Amount != nil {
		fields["amount"] = *in.Amount
	}
	return fields
}

type DonationsService struct {
	logger zerolog.Logger
}

func NewDonationsService() DonationsService {
	return DonationsService{logger: log.With().Str("service", "donations").Logger()}
}

func (s DonationsService) List(ctx context.Context, uow *database.UnitOfWork, filters database.Filters, offset, limit int) ([]*models.Donation, error) {
	return uow.Donations.Repo.FindMany(ctx, filters, offset, limit)
}

func (s DonationsService) Get(ctx context.Context, uow *database.UnitOfWork, id int64) (*models.Donation, error) {
	donation, err := uow.Donations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, errs.NewNotFound("donation")
	}
	return donation, nil
}

func (s DonationsService) Create(ctx context.Context, uow *database.UnitOfWork, in CreateDonationInput) (*models.Donation, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, uow, &in.ProjectID, &in.UserID); err != nil {
		return nil, err
	}
	donation := &models.Donation{
		ProjectID: in.ProjectID,
		UserID:    in.UserID,
		Amount:    in.Amount,
	}
	return uow.Donations.Create(ctx, donation)
}

func (s DonationsService) Update(ctx context.Context, uow *database.UnitOfWork, id int64, in UpdateDonationInput) (*models.Donation, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, uow, in.ProjectID, in.UserID); err != nil {
		return nil, err
	}
	donation, err := uow.Donations.Repo.Update(ctx, id, in.fields())
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, errs.NewNotFound("donation")
	}
	return donation, nil
}

func (s DonationsService) Delete(ctx context.Context, uow *database.UnitOfWork, id int64) error {
	deleted, err := uow.Donations.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewNotFound("donation")
	}
	return nil
}

func (s DonationsService) checkReferences(ctx context.Context, uow *database.UnitOfWork, projectID, userID *int64) error {
	if projectID != nil {
		exists, err := uow.Projects.Exists(ctx, database.Filters{"id": *projectID})
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewInvalidFieldError("project_id", "referenced project does not exist")
		}
	}
	if userID != nil {
		exists, err := uow.Users.Exists(ctx, database.Filters{"id": *userID})
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewInvalidFieldError("user_id", "referenced user does not exist")
		}
	}
	return nil
}
