package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"archtrip/internal/models/response_models"
	"archtrip/internal/repositories"
)

const (
	// Keep only the newest entries, matching the storage contract.
	historyCap = 20

	// Appends of the same destination+duration inside this window are
	// treated as double-submits and ignored.
	duplicateWindowMillis = 60_000
)

// HistoryServiceInterface is the append-only, capped, deduplicating archive
// of generated trips. Storage failures never surface to callers; the
// in-memory list keeps the current session working.
type HistoryServiceInterface interface {
	List(ctx context.Context) []response_models.HistoryItem
	Append(ctx context.Context, trip *response_models.Trip) []response_models.HistoryItem
	Get(ctx context.Context, historyID string) (*response_models.HistoryItem, bool)
	Clear(ctx context.Context)
}

type HistoryService struct {
	repo repositories.HistoryRepository

	mu     sync.Mutex
	items  []response_models.HistoryItem
	loaded bool
}

func NewHistoryService(repo repositories.HistoryRepository) HistoryServiceInterface {
	return &HistoryService{repo: repo}
}

func (h *HistoryService) List(ctx context.Context) []response_models.HistoryItem {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ensureLoaded(ctx)
	return h.snapshot()
}

func (h *HistoryService) Append(ctx context.Context, trip *response_models.Trip) []response_models.HistoryItem {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ensureLoaded(ctx)

	now := time.Now().UnixMilli()

	// Avoid exact duplicates at the top of the stack (same destination and
	// duration created within the last minute).
	if len(h.items) > 0 {
		head := h.items[0]
		if head.Destination == trip.Destination &&
			head.DurationDays == trip.DurationDays &&
			now-head.Timestamp < duplicateWindowMillis {
			return h.snapshot()
		}
	}

	item := response_models.HistoryItem{
		Trip:      *trip,
		HistoryID: uuid.New().String(),
		Timestamp: now,
	}

	h.items = append([]response_models.HistoryItem{item}, h.items...)
	if len(h.items) > historyCap {
		h.items = h.items[:historyCap]
	}

	h.persist(ctx)
	return h.snapshot()
}

func (h *HistoryService) Get(ctx context.Context, historyID string) (*response_models.HistoryItem, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ensureLoaded(ctx)

	for i := range h.items {
		if h.items[i].HistoryID == historyID {
			item := h.items[i]
			return &item, true
		}
	}
	return nil, false
}

func (h *HistoryService) Clear(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items = nil
	h.loaded = true
	if err := h.repo.Delete(ctx); err != nil {
		log.Printf("Failed to clear history storage: %v", err)
	}
}

// ensureLoaded reads the persisted archive once. A missing or corrupt
// payload is treated as an empty history, never an error.
func (h *HistoryService) ensureLoaded(ctx context.Context) {
	if h.loaded {
		return
	}
	h.loaded = true

	payload, err := h.repo.Load(ctx)
	if err != nil {
		log.Printf("Failed to load history: %v", err)
		return
	}
	if payload == "" {
		return
	}

	var items []response_models.HistoryItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		log.Printf("Corrupt history payload, starting empty: %v", err)
		return
	}
	h.items = items
}

// persist writes the whole archive back under its single key. Write
// failures are logged and swallowed so the caller keeps its updated list.
func (h *HistoryService) persist(ctx context.Context) {
	payload, err := json.Marshal(h.items)
	if err != nil {
		log.Printf("Failed to encode history: %v", err)
		return
	}
	if err := h.repo.Save(ctx, string(payload)); err != nil {
		log.Printf("Failed to save history: %v", err)
	}
}

func (h *HistoryService) snapshot() []response_models.HistoryItem {
	out := make([]response_models.HistoryItem, len(h.items))
	copy(out, h.items)
	return out
}
