package services

import (
	"context"
	"testing"

	"github.com/fundflow/backend/errs"
)

func TestRewardCreateWithoutProject(t *testing.T) {
	uow := testUoW(t)

	svc := NewRewardsService()
	reward, err := svc.Create(context.Background(), uow, CreateRewardInput{
		Title:       "Postcard",
		Description: "A hand-drawn postcard",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if reward.ProjectID != nil {
		t.Fatalf("Create() project_id = %v, want nil for a drafted reward", *reward.ProjectID)
	}
}

func TestRewardCreateRejectsMissingProject(t *testing.T) {
	uow := testUoW(t)

	svc := NewRewardsService()
	missing := int64(9999)
	_, err := svc.Create(context.Background(), uow, CreateRewardInput{
		ProjectID:   &missing,
		Title:       "Postcard",
		Description: "A hand-drawn postcard",
	})
	if !errorIsInvalidField(err) {
		t.Fatalf("Create() error = %v, want invalid field", err)
	}
}

func TestRewardUpdateDetachesOnExplicitNull(t *testing.T) {
	uow := testUoW(t)
	ctx := context.Background()

	creator := seedUser(t, uow, "creator@example.com")
	category := seedCategory(t, uow, "art")
	project := seedProject(t, uow, creator.ID, category.ID)

	svc := NewRewardsService()
	reward, err := svc.Create(ctx, uow, CreateRewardInput{
		ProjectID:   &project.ID,
		Title:       "Print",
		Description: "A signed print",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// an update that never mentions project_id leaves the link alone
	title := "Framed print"
	updated, err := svc.Update(ctx, uow, reward.ID, UpdateRewardInput{Title: &title})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.ProjectID == nil || *updated.ProjectID != project.ID {
		t.Fatalf("Update() detached the project on an omitted field: %+v", updated.ProjectID)
	}

	// an explicit null detaches
	detached, err := svc.Update(ctx, uow, reward.ID, UpdateRewardInput{
		ProjectID: Optional[int64]{Set: true, Value: nil},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if detached.ProjectID != nil {
		t.Fatalf("Update() with explicit null kept project_id = %v", *detached.ProjectID)
	}
}

func TestRewardDeleteMissingIsNotFound(t *testing.T) {
	uow := testUoW(t)

	svc := NewRewardsService()
	if err := svc.Delete(context.Background(), uow, 9999); !errs.IsNotFound(err) {
		t.Fatalf("Delete() error = %v, want not found", err)
	}
}
