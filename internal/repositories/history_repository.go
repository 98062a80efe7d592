package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"archtrip/internal/models/db_models"
)

// HistoryRepository persists the trip archive under its single storage key.
// The payload is an opaque JSON array; interpretation belongs to the service.
type HistoryRepository interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, payload string) error
	Delete(ctx context.Context) error
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

// Load returns the stored payload, or "" when no history has been written yet.
func (r *historyRepository) Load(ctx context.Context) (string, error) {
	var row db_models.TripHistory
	err := r.db.WithContext(ctx).
		Where("key = ?", db_models.HistoryStorageKey).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return row.Payload, nil
}

// Save upserts the whole archive. Last writer wins; concurrent writers are
// not coordinated here.
func (r *historyRepository) Save(ctx context.Context, payload string) error {
	row := db_models.TripHistory{
		Key:     db_models.HistoryStorageKey,
		Payload: payload,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&row).Error
}

func (r *historyRepository) Delete(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("key = ?", db_models.HistoryStorageKey).
		Delete(&db_models.TripHistory{}).Error
}
