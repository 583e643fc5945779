// Package gormstore backs the repositories with a relational database through gorm.
package gormstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/matteocalo/photodesk/internal"
	"github.com/matteocalo/photodesk/internal/client"
	clientPostgres "github.com/matteocalo/photodesk/internal/client/postgres"
	"github.com/matteocalo/photodesk/internal/comment"
	commentPostgres "github.com/matteocalo/photodesk/internal/comment/postgres"
	clientDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/client"
	equipmentDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/equipment"
	eventDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/event"
	photojobDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/photojob"
	teamDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/team"
	userDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/user"
	"github.com/matteocalo/photodesk/internal/equipment"
	equipmentPostgres "github.com/matteocalo/photodesk/internal/equipment/postgres"
	"github.com/matteocalo/photodesk/internal/event"
	eventPostgres "github.com/matteocalo/photodesk/internal/event/postgres"
	"github.com/matteocalo/photodesk/internal/photojob"
	photojobPostgres "github.com/matteocalo/photodesk/internal/photojob/postgres"
	"github.com/matteocalo/photodesk/internal/team"
	teamPostgres "github.com/matteocalo/photodesk/internal/team/postgres"
	"github.com/matteocalo/photodesk/internal/user"
	userPostgres "github.com/matteocalo/photodesk/internal/user/postgres"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Store struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

// Open connects with the configured driver. SQLite schemas are created with
// AutoMigrate; Postgres expects the goose migrations to have run.
func Open(cfg internal.DatabaseConfig) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case internal.DriverPostgres:
		dialector = postgres.Open(cfg.Source)
	case internal.DriverSQLite:
		dialector = sqlite.Open(cfg.Source)
	default:
		return nil, fmt.Errorf("gormstore: unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store, err := New(db)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		store.sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		store.sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		store.sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if cfg.Driver == internal.DriverSQLite {
		if err := AutoMigrate(db); err != nil {
			_ = store.Close()
			return nil, err
		}
	}

	if err := store.sqlDB.Ping(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return store, nil
}

// New wraps an already opened gorm handle.
func New(db *gorm.DB) (*Store, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return &Store{db: db, sqlDB: sqlDB}, nil
}

// AutoMigrate creates every table from the row models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userDatamodel.User{},
		&teamDatamodel.Team{},
		&clientDatamodel.Client{},
		&equipmentDatamodel.Equipment{},
		&eventDatamodel.Event{},
		&photojobDatamodel.PhotoJob{},
		&photojobDatamodel.PhotoJobComment{},
	)
}

func (s *Store) Users() user.Repository { return userPostgres.NewUserRepository(s.db) }
func (s *Store) Clients() client.Repository { return clientPostgres.NewClientRepository(s.db) }
func (s *Store) Equipment() equipment.Repository { return equipmentPostgres.NewEquipmentRepository(s.db) }
func (s *Store) Events() event.Repository { return eventPostgres.NewEventRepository(s.db) }
func (s *Store) Teams() team.Repository { return teamPostgres.NewTeamRepository(s.db) }
func (s *Store) PhotoJobs() photojob.Repository { return photojobPostgres.NewPhotoJobRepository(s.db) }
func (s *Store) Comments() comment.Repository { return commentPostgres.NewCommentRepository(s.db) }

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.sqlDB.Close()
}
