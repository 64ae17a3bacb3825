package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/fundflow/backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// errCleanup marks a unit of work abandoned by test cleanup so its writes are
// rolled back, not committed.
var errCleanup = errors.New("test cleanup")

// testDB opens an isolated in-memory database migrated to the current schema.
// Each test gets its own database, named after the test.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func testFactory(t *testing.T) *Factory {
	t.Helper()
	return NewFactory(testDB(t))
}

func begin(t *testing.T, f *Factory) *UnitOfWork {
	t.Helper()
	uow, err := f.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin unit of work: %v", err)
	}
	t.Cleanup(func() { _ = uow.Close(errCleanup) })
	return uow
}

func seedCategory(t *testing.T, uow *UnitOfWork, name string) *models.Category {
	t.Helper()
	category, err := uow.Categories.Create(context.Background(), &models.Category{Name: name})
	if err != nil {
		t.Fatalf("seed category %q: %v", name, err)
	}
	return category
}

func seedUser(t *testing.T, uow *UnitOfWork, email string) *models.User {
	t.Helper()
	ctx := context.Background()
	role, err := uow.Roles.FindOne(ctx, Filters{"name": models.RoleUser})
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

func seedProject(t *testing.T, uow *UnitOfWork, creatorID, categoryID int64) *models.Project {
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
