package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"archtrip/internal/models/response_models"
	"archtrip/pkg/utils"
)

const (
	maxTripDays = 30

	// Repair thresholds for the title/description un-swap. Models
	// intermittently put the long description in the title slot.
	swapTitleLength       = 50
	swapDescriptionLength = 15

	fallbackActivityTitle = "Unknown Location"
)

type PlannerServiceInterface interface {
	// GenerateItinerary produces a normalized trip or fails whole; no
	// partial results are ever returned.
	GenerateItinerary(ctx context.Context, destination string, days int, apiKeyOverride string) (*response_models.Trip, error)
}

type PlannerService struct {
	aiClient utils.ItineraryClientInterface
}

func NewPlannerService(aiClient utils.ItineraryClientInterface) PlannerServiceInterface {
	return &PlannerService{aiClient: aiClient}
}

func (p *PlannerService) GenerateItinerary(ctx context.Context, destination string, days int, apiKeyOverride string) (*response_models.Trip, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, utils.ErrInvalidInput
	}
	if days < 1 || days > maxTripDays {
		return nil, utils.ErrInvalidInput
	}

	raw, err := p.aiClient.GenerateItinerary(ctx, destination, days, apiKeyOverride)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return nil, utils.ErrMalformedResponse
	}

	trip, err := ParseTripResponse(raw)
	if err != nil {
		log.Printf("Failed to parse itinerary response: %v", err)
		return nil, utils.ErrMalformedResponse
	}

	NormalizeTrip(trip)

	if trip.Destination == "" {
		trip.Destination = destination
	}
	if trip.DurationDays == 0 {
		trip.DurationDays = days
	}
	if len(trip.Schedule) != trip.DurationDays {
		log.Printf("Schedule length %d does not match duration %d for %q", len(trip.Schedule), trip.DurationDays, destination)
	}

	return trip, nil
}

// ParseTripResponse decodes raw model output into a Trip, stripping fences
// and extracting the widest balanced JSON object when the full string does
// not parse on its own.
func ParseTripResponse(raw string) (*response_models.Trip, error) {
	var trip response_models.Trip

	cleaned := strings.TrimSpace(raw)
	if err := json.Unmarshal([]byte(cleaned), &trip); err == nil {
		return &trip, nil
	}

	cleaned = utils.CleanJSONResponse(raw)
	if err := json.Unmarshal([]byte(cleaned), &trip); err != nil {
		return nil, fmt.Errorf("unmarshal itinerary: %w", err)
	}
	return &trip, nil
}

// NormalizeTrip applies the post-generation repair pass in place: the
// title/description un-swap, title fallbacks, and unique activity ids.
func NormalizeTrip(trip *response_models.Trip) {
	seen := make(map[string]bool)
	for di := range trip.Schedule {
		day := &trip.Schedule[di]
		for ai := range day.Activities {
			activity := &day.Activities[ai]
			RepairActivity(activity)

			if activity.ID == "" || seen[activity.ID] {
				activity.ID = fmt.Sprintf("d%d-a%d", day.DayNumber, ai+1)
			}
			// Regenerated ids can still collide with model-chosen ones.
			for seen[activity.ID] {
				activity.ID = activity.ID + "x"
			}
			seen[activity.ID] = true
		}
	}
}

// RepairActivity fixes the intermittent title/description field swap and
// guarantees a non-empty title. Well-formed activities pass through
// unchanged, so the repair is idempotent.
func RepairActivity(activity *response_models.Activity) {
	if activity.Title != "" && activity.Description != "" {
		titleIsLong := len(activity.Title) > swapTitleLength
		descIsShort := len(activity.Description) < swapDescriptionLength
		titleHasCommas := strings.Contains(activity.Title, ",")

		if titleIsLong || (titleHasCommas && descIsShort) {
			activity.Title, activity.Description = activity.Description, activity.Title
		}
	}

	if strings.TrimSpace(activity.Title) == "" {
		if activity.LocationName != "" {
			activity.Title = activity.LocationName
		} else {
			activity.Title = fallbackActivityTitle
		}
	}
}
