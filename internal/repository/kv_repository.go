package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStorage struct {
	db *gorm.DB
}

// NewGormStorage stores values in the kv_entries table.
func NewGormStorage(db *gorm.DB) Storage {
	return &gormStorage{db: db}
}

func (r *gormStorage) Read(ctx context.Context, key string) ([]byte, error) {
	var entry model.KVEntry
	err := r.db.WithContext(ctx).Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read key %q: %w", key, err)
	}
	return entry.Value, nil
}

func (r *gormStorage) Write(ctx context.Context, key string, value []byte) error {
	entry := model.KVEntry{Key: key, Value: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}
