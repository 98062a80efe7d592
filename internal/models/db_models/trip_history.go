package db_models

import (
	"time"

	"gorm.io/gorm"
)

// HistoryStorageKey mirrors the single storage key the web client used for
// its archive. The whole history lives under this one key as a JSON array.
const HistoryStorageKey = "arch_trip_planner_history"

// TripHistory is the one-row persisted form of the trip archive: a storage
// key and an opaque JSON payload (newest-first HistoryItem array, capped at
// 20). There is no schema versioning on the payload.
type TripHistory struct {
	Key       string `gorm:"primaryKey"`
	Payload   string `gorm:"type:text"`
	UpdatedAt int64
}

func (h *TripHistory) BeforeSave(tx *gorm.DB) error {
	h.UpdatedAt = time.Now().Unix()
	return nil
}
