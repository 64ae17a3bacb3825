package services

import (
	"context"
	"testing"

	"github.com/fundflow/backend/errs"
)

func TestCategoryDeleteBlockedWhileReferenced(t *testing.T) {
	uow := testUoW(t)
	ctx := context.Background()

	creator := seedUser(t, uow, "creator@example.com")
	category := seedCategory(t, uow, "music")
	seedProject(t, uow, creator.ID, category.ID)

	svc := NewCategoriesService()
	if err := svc.Delete(ctx, uow, category.ID); !errs.IsConflict(err) {
		t.Fatalf("Delete() of a referenced category error = %v, want conflict", err)
	}

	empty := seedCategory(t, uow, "film")
	if err := svc.Delete(ctx, uow, empty.ID); err != nil {
		t.Fatalf("Delete() of an unreferenced category error = %v", err)
	}
}

func TestCategoryCreateRequiresName(t *testing.T) {
	uow := testUoW(t)

	svc := NewCategoriesService()
	if _, err := svc.Create(context.Background(), uow, CreateCategoryInput{}); !errorIsInvalidField(err) {
		t.Fatalf("Create() without a name error = %v, want invalid field", err)
	}
}
