package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errCleanup = errors.New("test cleanup")

// testUoW opens an isolated in-memory database and hands back an open unit
// of work over it. Cleanup rolls back whatever the test left behind.
func testUoW(t *testing.T) *database.UnitOfWork {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	uow, err := database.NewFactory(db).Begin(context.Background())
	if err != nil {
		t.Fatalf("begin unit of work: %v", err)
	}
	t.Cleanup(func() { _ = uow.Close(errCleanup) })
	return uow
}

func seedUser(t *testing.T, uow *database.UnitOfWork, email string) *models.User {
	t.Helper()
	ctx := context.Background()
	role, err := uow.Roles.FindOne(ctx, database.Filters{"name": models.RoleUser})
	if err != nil || role == nil {
		t.Fatalf("look up seeded role: %v", err)
	}
	user, err := uow.Users.Create(ctx, &models.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: "not-a-real-hash",
		RoleID:       role.ID,
	})
	if err != nil {
		t.Fatalf("seed user %q: %v", email, err)
	}
	return user
}

func seedCategory(t *testing.T, uow *database.UnitOfWork, name string) *models.Category {
	t.Helper()
	category, err := uow.Categories.Create(context.Background(), &models.Category{Name: name})
	if err != nil {
		t.Fatalf("seed category %q: %v", name, err)
	}
	return category
}

func seedProject(t *testing.T, uow *database.UnitOfWork, creatorID, categoryID int64) *models.Project {
	t.Helper()
	project, err := uow.Projects.Create(context.Background(), &models.Project{
		CreatorID:    creatorID,
		Title:        "Community Garden",
		Description:  "A garden for everyone",
		TargetAmount: 500_00,
		CategoryID:   categoryID,
		IsActive:     true,
		DateStart:    1_700_000_000,
		DateEnd:      1_710_000_000,
	})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return project
}

func TestOptionalDistinguishesOmittedFromNull(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantSet   bool
		wantValue *int64
	}{
		{name: "omitted", payload: `{}`, wantSet: false},
		{name: "explicit null", payload: `{"project_id": null}`, wantSet: true, wantValue: nil},
		{name: "value", payload: `{"project_id": 7}`, wantSet: true, wantValue: ptr(int64(7))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var in UpdateRewardInput
			if err := json.Unmarshal([]byte(tc.payload), &in); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if in.ProjectID.Set != tc.wantSet {
				t.Fatalf("Set = %v, want %v", in.ProjectID.Set, tc.wantSet)
			}
			if (in.ProjectID.Value == nil) != (tc.wantValue == nil) {
				t.Fatalf("Value = %v, want %v", in.ProjectID.Value, tc.wantValue)
			}
			if tc.wantValue != nil && *in.ProjectID.Value != *tc.wantValue {
				t.Fatalf("Value = %d, want %d", *in.ProjectID.Value, *tc.wantValue)
			}
		})
	}
}

func TestValidateInputUsesJSONFieldNames(t *testing.T) {
	err := validateInput(CreateDonationInput{ProjectID: 1, UserID: 1, Amount: 0})
	if err == nil {
		t.Fatal("validateInput() accepted a zero amount")
	}
	if !strings.Contains(err.Error(), "amount") {
		t.Fatalf("validation error %q does not name the json field", err.Error())
	}
}

func ptr[T any](v T) *T { return &v }
