package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/fundflow/backend/models"
)

// Options controls how the shared connection pool is opened.
type Options struct {
	DSN        string
	ReplicaDSN string // optional read replica, routed through dbresolver
	Logger     logger.Interface
}

// Connect opens the primary connection pool and, when a replica DSN is
// configured, registers it for read routing.
func Connect(opts Options) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  opts.DSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	if opts.ReplicaDSN != "" {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(opts.ReplicaDSN)},
		}))
		if err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates the schema for every known entity and seeds the
// built-in roles.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Category{},
		&models.Project{},
		&models.Donation{},
		&models.Reward{},
	)
	if err != nil {
		return err
	}

	for _, name := range []string{models.RoleAdmin, models.RoleUser} {
		role := models.Role{Name: name}
		if err := db.Where(models.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}
