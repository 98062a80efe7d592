package utils

import (
	"fmt"
	"strings"

	"archtrip/internal/models/response_models"
)

// FormatTripSummary renders a plaintext version of the itinerary for the
// share-to-clipboard action.
func FormatTripSummary(trip *response_models.Trip) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s — %d-Day Itinerary\n", trip.Destination, trip.DurationDays)
	if trip.Summary != "" {
		b.WriteString(trip.Summary + "\n")
	}
	if trip.BestTimeToVisit != "" {
		fmt.Fprintf(&b, "Best time to visit: %s\n", trip.BestTimeToVisit)
	}
	b.WriteString("\n")

	for _, day := range trip.Schedule {
		fmt.Fprintf(&b, "Day %d", day.DayNumber)
		if day.Theme != "" {
			fmt.Fprintf(&b, ": %s", day.Theme)
		}
		b.WriteString("\n")
		for _, a := range day.Activities {
			fmt.Fprintf(&b, "  %s  %s", a.Time, a.Title)
			if a.LocationName != "" && a.LocationName != a.Title {
				fmt.Fprintf(&b, " (%s)", a.LocationName)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if trip.Budget.Total != "" {
		fmt.Fprintf(&b, "Estimated budget: %s", trip.Budget.Total)
		if trip.Budget.Currency != "" {
			fmt.Fprintf(&b, " (%s)", trip.Budget.Currency)
		}
		b.WriteString("\n")
	}

	return b.String()
}
