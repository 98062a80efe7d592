package utils

import (
	"fmt"
	"strings"
)

// The JSON shape the model must return. Kept as literal text so both
// providers send byte-identical schema hints.
const itinerarySchemaJSON = `{
  "destination": "string",
  "durationDays": number,
  "summary": "string",
  "bestTimeToVisit": "string",
  "budget": {
    "accommodation": "string",
    "food": "string",
    "activities": "string",
    "total": "string",
    "currency": "string"
  },
  "schedule": [
    {
      "dayNumber": number,
      "theme": "string",
      "activities": [
        {
          "id": "string",
          "time": "string",
          "locationName": "string",
          "title": "string (same as locationName)",
          "description": "string",
          "coordinates": {"lat": number, "lng": number},
          "duration": "string",
          "costEstimate": "string",
          "type": "sightseeing|nature|culture|food|shopping|entertainment|relax|transit",
          "images": ["string"],
          "fullDescription": "string",
          "openingHours": "string",
          "suggestedDuration": "string",
          "ticketPrice": "string",
          "bestTimeToVisit": "string",
          "address": "string",
          "transportToNext": "string",
          "tags": ["string"]
        }
      ]
    }
  ]
}`

// BuildSystemInstruction returns the planner persona and output rules shared
// by every provider.
func BuildSystemInstruction() string {
	var b strings.Builder

	b.WriteString(`You are a world-class travel guide and itinerary planner. You create diverse, exciting, and well-balanced itineraries for general travelers.

Analyze the user's input to determine their intent:
1. SPECIFIC CATEGORY REQUEST (e.g., "Mumbai museums", "Paris cafes", "Tokyo temples"): if the input contains a location AND a specific category of place, create an itinerary focused EXCLUSIVELY on that category. Include ONLY places that match it.
2. GENERAL CITY/DESTINATION (e.g., "Mumbai", "Paris"): create a diverse, balanced itinerary covering iconic landmarks, nature and outdoor scenery, local culture and museums, authentic food experiences, and leisure/shopping/entertainment. Always include the top 3-5 most famous attractions travelers come to that city to see.

Your tone should be friendly, descriptive, and inviting, like a knowledgeable local sharing their favorite spots. Avoid overly technical, academic, or dry language.

COORDINATE REQUIREMENTS:
Provide accurate GPS coordinates with exactly 8 decimal places for EVERY location.
- Use the exact real-world coordinates of the main entrance or center point of each place.
- Never use city-center coordinates, never reuse coordinates across locations, never estimate.
- Format: {"lat": XX.XXXXXXXX, "lng": XX.XXXXXXXX}. Confirm coordinates are on land and that lat/lng are not reversed.
Examples of required precision:
- Gateway of India, Mumbai: {"lat": 18.92197500, "lng": 72.83463100}
- Eiffel Tower, Paris: {"lat": 48.85837009, "lng": 2.29447746}
- Sydney Opera House: {"lat": -33.85678200, "lng": 151.21529800}

OPENING HOURS:
Provide accurate opening hours for every location, including closed days ("Closed on Mondays") and day-specific ranges. Use "Open 24/7" or "Dawn to dusk" for public spaces.

The output must be strictly valid JSON matching the schema provided. No comments, no markdown.`)

	return b.String()
}

// BuildUserPrompt encodes the concrete request plus the field-structure
// guardrails that keep title/locationName/description in the right slots.
func BuildUserPrompt(destination string, days int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Plan a %d-day trip to %s.\n\n", days, destination)

	b.WriteString(`CRITICAL FOR EACH ACTIVITY - FOLLOW THIS EXACT STRUCTURE:
Step 1: Create "locationName" with just the place name (e.g., "Gateway of India")
Step 2: Copy that EXACT same text to "title"
Step 3: Create "description" with the experience text (e.g., "Mumbai's iconic arch monument...")

EXAMPLE OF CORRECT FORMAT:
{
  "id": "d1-a1",
  "time": "09:00 - 12:00",
  "locationName": "Chhatrapati Shivaji Maharaj Vastu Sangrahalaya",
  "title": "Chhatrapati Shivaji Maharaj Vastu Sangrahalaya",
  "description": "Mumbai's premier museum, showcasing vast collections of Indian art, archaeology, and natural history."
}

WRONG FORMAT (DO NOT DO THIS):
{
  "locationName": "Museum",
  "title": "Mumbai's premier museum showcasing art...",
  "description": "Chhatrapati Shivaji Maharaj Vastu Sangrahalaya"
}

Give each activity an "id" unique within the whole trip (e.g. "d2-a3").
Include detailed information for each location: opening hours, ticket prices, full descriptions, and practical details.

RESPOND WITH VALID JSON ONLY. Use this exact structure:
`)
	b.WriteString(itinerarySchemaJSON)

	return b.String()
}
