// store/pgstore.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"olilab_backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const snapshotRowID = 1

// snapshotRow holds the whole document in one jsonb column. Locking this row
// inside a transaction makes each Update the single writer.
type snapshotRow struct {
	ID        int       `gorm:"primaryKey"`
	Data      []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string { return "olilab_snapshot" }

type PGStore struct {
	db *gorm.DB
}

func NewPGStore(dsn string) (*PGStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	s := &PGStore{db: db}
	if err := s.seedIfEmpty(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PGStore) seedIfEmpty() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var row snapshotRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&row, "id = ?", snapshotRowID).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		b, err := json.Marshal(Seed())
		if err != nil {
			return err
		}
		return tx.Create(&snapshotRow{ID: snapshotRowID, Data: b}).Error
	})
}

func (s *PGStore) Load(ctx context.Context) (*models.State, error) {
	var row snapshotRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", snapshotRowID).Error; err != nil {
		return nil, err
	}
	var state models.State
	if err := json.Unmarshal(row.Data, &state); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &state, nil
}

func (s *PGStore) Update(ctx context.Context, fn func(*models.State) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the document row; concurrent Updates queue up behind it.
		var row snapshotRow
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&row, "id = ?", snapshotRowID).Error; err != nil {
			return err
		}
		var state models.State
		if err := json.Unmarshal(row.Data, &state); err != nil {
			return fmt.Errorf("decode snapshot: %w", err)
		}
		if err := fn(&state); err != nil {
			return err
		}
		b, err := json.Marshal(&state)
		if err != nil {
			return err
		}
		return tx.Model(&snapshotRow{}).
			Where("id = ?", snapshotRowID).
			Update("data", b).Error
	})
}

var _ Store = (*PGStore)(nil)
