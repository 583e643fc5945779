// Package storage selects the persistence backend behind the domain repositories.
package storage

import (
	"context"
	"fmt"

	"github.com/matteocalo/photodesk/internal"
	"github.com/matteocalo/photodesk/internal/client"
	"github.com/matteocalo/photodesk/internal/comment"
	"github.com/matteocalo/photodesk/internal/equipment"
	"github.com/matteocalo/photodesk/internal/event"
	"github.com/matteocalo/photodesk/internal/photojob"
	"github.com/matteocalo/photodesk/internal/storage/gormstore"
	"github.com/matteocalo/photodesk/internal/storage/memstore"
	"github.com/matteocalo/photodesk/internal/team"
	"github.com/matteocalo/photodesk/internal/user"
)

type Manager interface {
	Users() user.Repository
	Clients() client.Repository
	Equipment() equipment.Repository
	Events() event.Repository
	Teams() team.Repository
	PhotoJobs() photojob.Repository
	Comments() comment.Repository
	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Manager = (*memstore.MemStorage)(nil)
	_ Manager = (*gormstore.Store)(nil)
)

func Open(cfg internal.DatabaseConfig) (Manager, error) {
	switch cfg.Driver {
	case internal.DriverMemory:
		return memstore.New(), nil
	case internal.DriverSQLite, internal.DriverPostgres:
		return gormstore.Open(cfg)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
