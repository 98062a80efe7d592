package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archtrip/internal/models/response_models"
	"archtrip/internal/services"
)

// memHistoryRepo is an in-memory HistoryRepository with switchable failures.
type memHistoryRepo struct {
	payload  string
	failLoad bool
	failSave bool
	saves    int
}

func (m *memHistoryRepo) Load(context.Context) (string, error) {
	if m.failLoad {
		return "", errors.New("storage unavailable")
	}
	return m.payload, nil
}

func (m *memHistoryRepo) Save(_ context.Context, payload string) error {
	m.saves++
	if m.failSave {
		return errors.New("quota exceeded")
	}
	m.payload = payload
	return nil
}

func (m *memHistoryRepo) Delete(context.Context) error {
	m.payload = ""
	return nil
}

func sampleTrip(destination string, days int) *response_models.Trip {
	return &response_models.Trip{
		Destination:  destination,
		DurationDays: days,
		Summary:      "A trip to " + destination,
	}
}

func TestHistoryAppend_AssignsIDAndTimestamp(t *testing.T) {
	repo := &memHistoryRepo{}
	svc := services.NewHistoryService(repo)
	ctx := context.Background()

	before := time.Now().UnixMilli()
	items := svc.Append(ctx, sampleTrip("Paris", 3))
	require.Len(t, items, 1)

	assert.NotEmpty(t, items[0].HistoryID)
	assert.GreaterOrEqual(t, items[0].Timestamp, before)
	assert.Equal(t, "Paris", items[0].Destination)
}

func TestHistoryAppend_DedupesWithinWindow(t *testing.T) {
	svc := services.NewHistoryService(&memHistoryRepo{})
	ctx := context.Background()

	first := svc.Append(ctx, sampleTrip("Paris", 3))
	second := svc.Append(ctx, sampleTrip("Paris", 3))

	require.Len(t, second, 1)
	assert.Equal(t, first[0].HistoryID, second[0].HistoryID)

	// Different destination or duration is not a duplicate.
	assert.Len(t, svc.Append(ctx, sampleTrip("Tokyo", 3)), 2)
	assert.Len(t, svc.Append(ctx, sampleTrip("Paris", 5)), 3)
}

func TestHistoryAppend_DedupeWindowExpires(t *testing.T) {
	// Seed storage with a head entry older than the 60s window.
	old := response_models.HistoryItem{
		Trip:      *sampleTrip("Paris", 3),
		HistoryID: "old-entry",
		Timestamp: time.Now().UnixMilli() - 61_000,
	}
	payload, err := json.Marshal([]response_models.HistoryItem{old})
	require.NoError(t, err)

	svc := services.NewHistoryService(&memHistoryRepo{payload: string(payload)})

	items := svc.Append(context.Background(), sampleTrip("Paris", 3))
	require.Len(t, items, 2)
	assert.NotEqual(t, "old-entry", items[0].HistoryID)
	assert.Equal(t, "old-entry", items[1].HistoryID)
}

func TestHistoryAppend_CapsAtTwenty(t *testing.T) {
	svc := services.NewHistoryService(&memHistoryRepo{})
	ctx := context.Background()

	var items []response_models.HistoryItem
	for i := 0; i < 25; i++ {
		items = svc.Append(ctx, sampleTrip(fmt.Sprintf("City %d", i), 3))
	}

	require.Len(t, items, 20)
	// Newest first: the last appended city leads, the oldest five are gone.
	assert.Equal(t, "City 24", items[0].Destination)
	assert.Equal(t, "City 5", items[19].Destination)
}

func TestHistoryList_CorruptPayloadIsEmpty(t *testing.T) {
	svc := services.NewHistoryService(&memHistoryRepo{payload: "{not valid json"})
	assert.Empty(t, svc.List(context.Background()))
}

func TestHistoryList_LoadFailureIsEmpty(t *testing.T) {
	svc := services.NewHistoryService(&memHistoryRepo{failLoad: true})
	assert.Empty(t, svc.List(context.Background()))
}

func TestHistoryAppend_SaveFailureStillReturnsUpdatedList(t *testing.T) {
	repo := &memHistoryRepo{failSave: true}
	svc := services.NewHistoryService(repo)
	ctx := context.Background()

	items := svc.Append(ctx, sampleTrip("Paris", 3))
	require.Len(t, items, 1)
	assert.Equal(t, 1, repo.saves)

	// The session keeps working from memory.
	assert.Len(t, svc.List(ctx), 1)
}

func TestHistory_RoundTripPreservesItems(t *testing.T) {
	repo := &memHistoryRepo{}
	ctx := context.Background()

	first := services.NewHistoryService(repo)
	written := first.Append(ctx, sampleTrip("Paris", 3))
	require.Len(t, written, 1)

	// A fresh service reading the same storage sees field-for-field equal
	// items; ids and timestamps are assigned at append time only.
	second := services.NewHistoryService(repo)
	read := second.List(ctx)
	require.Len(t, read, 1)
	assert.Equal(t, written[0], read[0])
}

func TestHistoryClear_RemovesEverything(t *testing.T) {
	repo := &memHistoryRepo{}
	svc := services.NewHistoryService(repo)
	ctx := context.Background()

	svc.Append(ctx, sampleTrip("Paris", 3))
	svc.Clear(ctx)

	assert.Empty(t, svc.List(ctx))
	assert.Empty(t, repo.payload)
}

func TestHistoryGet_FindsByID(t *testing.T) {
	svc := services.NewHistoryService(&memHistoryRepo{})
	ctx := context.Background()

	items := svc.Append(ctx, sampleTrip("Paris", 3))
	require.Len(t, items, 1)

	got, ok := svc.Get(ctx, items[0].HistoryID)
	require.True(t, ok)
	assert.Equal(t, "Paris", got.Destination)

	_, ok = svc.Get(ctx, "missing")
	assert.False(t, ok)
}
