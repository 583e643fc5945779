// Package memstore is the in-process store. Each entity type has its own id
// counter starting at 1 and its own lock. Operations that touch more than one
// table take the locks in the order clients, jobs, events, comments.
package memstore

import (
	"context"
	"time"

	"github.com/matteocalo/photodesk/internal/client"
	"github.com/matteocalo/photodesk/internal/comment"
	"github.com/matteocalo/photodesk/internal/equipment"
	"github.com/matteocalo/photodesk/internal/event"
	"github.com/matteocalo/photodesk/internal/photojob"
	"github.com/matteocalo/photodesk/internal/team"
	"github.com/matteocalo/photodesk/internal/user"
)

type MemStorage struct {
	users     *table[user.User]
	clients   *table[client.Client]
	equipment *table[equipment.Equipment]
	events    *table[event.Event]
	teams     *table[team.Team]
	jobs      *table[photojob.PhotoJob]
	comments  *table[comment.Comment]

	now func() time.Time
}

func New() *MemStorage {
	return &MemStorage{
		users:     newTable(shallow[user.User]),
		clients:   newTable(shallow[client.Client]),
		equipment: newTable(shallow[equipment.Equipment]),
		events:    newTable((*event.Event).Clone),
		teams:     newTable(shallow[team.Team]),
		jobs:      newTable((*photojob.PhotoJob).Clone),
		comments:  newTable(shallow[comment.Comment]),
		now:       time.Now,
	}
}

// WithClock replaces the timestamp source, for tests that need ties or ordering.
func (s *MemStorage) WithClock(now func() time.Time) *MemStorage {
	s.now = now
	return s
}

func (s *MemStorage) Users() user.Repository { return &userRepo{s} }
func (s *MemStorage) Clients() client.Repository { return &clientRepo{s} }
func (s *MemStorage) Equipment() equipment.Repository { return &equipmentRepo{s} }
func (s *MemStorage) Events() event.Repository { return &eventRepo{s} }
func (s *MemStorage) Teams() team.Repository { return &teamRepo{s} }
func (s *MemStorage) PhotoJobs() photojob.Repository { return &photoJobRepo{s} }
func (s *MemStorage) Comments() comment.Repository { return &commentRepo{s} }
func (s *MemStorage) Ping(ctx context.Context) error { return nil }
func (s *MemStorage) Close() error { return nil }

var (
	_ user.Repository      = (*userRepo)(nil)
	_ client.Repository    = (*clientRepo)(nil)
	_ equipment.Repository = (*equipmentRepo)(nil)
	_ event.Repository     = (*eventRepo)(nil)
	_ team.Repository      = (*teamRepo)(nil)
	_ photojob.Repository  = (*photoJobRepo)(nil)
	_ comment.Repository   = (*commentRepo)(nil)
)
