package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is a named JSON dump of the store, persisted so fixture
// state survives across runs.
type Snapshot struct {
	Name      string `gorm:"primaryKey;size:128;not null"`
	Data      []byte `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Snapshot) TableName() string {
	return "snapshots"
}

type SnapshotRepository interface {
	Save(ctx context.Context, name string, s *Store) error
	Load(ctx context.Context, name string, s *Store) error
}

type snapshotRepoImpl struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepoImpl{
		db: db,
	}
}

func (r *snapshotRepoImpl) Save(ctx context.Context, name string, s *Store) error {
	s.RLock()
	data, err := json.Marshal(s)
	s.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	snap := Snapshot{Name: name, Data: data}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snap).Error
}

func (r *snapshotRepoImpl) Load(ctx context.Context, name string, s *Store) error {
	var snap Snapshot
	err := r.db.WithContext(ctx).First(&snap, "name = ?", name).Error
	if err != nil {
		return fmt.Errorf("load snapshot %q: %w", name, err)
	}
	return s.merge(snap.Data)
}
