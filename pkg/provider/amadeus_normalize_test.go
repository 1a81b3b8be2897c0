package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAmadeusOffer() AmadeusOffer {
	return AmadeusOffer{
		ID: "1",
		Itineraries: []AmadeusItinerary{{
			Duration: "PT5H45M",
			Segments: []AmadeusSegment{
				{
					Departure:     AmadeusEndpoint{IATACode: "JFK", At: "2024-03-15T08:00:00"},
					Arrival:       AmadeusEndpoint{IATACode: "ORD", At: "2024-03-15T10:00:00"},
					CarrierCode:   "AA",
					NumberOfStops: 0,
				},
				{
					Departure:     AmadeusEndpoint{IATACode: "ORD", At: "2024-03-15T11:00:00"},
					Arrival:       AmadeusEndpoint{IATACode: "LAX", At: "2024-03-15T13:45:00"},
					CarrierCode:   "UA",
					NumberOfStops: 1,
				},
			},
		}},
		Price: AmadeusPrice{Currency: "USD", Total: "289.00", GrandTotal: "299.99"},
	}
}

func sampleDictionaries() *AmadeusDictionaries {
	return &AmadeusDictionaries{Locations: map[string]AmadeusLocation{
		"JFK": {Name: "John F Kennedy Intl"},
		"LAX": {CityName: "Los Angeles"},
	}}
}

func TestNormalizeAmadeusOffer(t *testing.T) {
	got := NormalizeAmadeusOffer(sampleAmadeusOffer(), sampleDictionaries())

	assert.Equal(t, "1", got.ID)
	assert.Equal(t, 300, got.PriceTotal, "grand total rounds up")
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, []string{"AA", "UA"}, got.AirlineCodes)
	assert.Equal(t, 345, got.DurationMinutes)
	assert.Equal(t, "2024-03-15T08:00:00", got.DepartAt)
	assert.Equal(t, "2024-03-15T13:45:00", got.ArriveAt)
	assert.Equal(t, "JFK", got.Origin.Code)
	assert.Equal(t, "John F Kennedy Intl", got.Origin.Name)
	assert.Equal(t, "Unknown", got.Origin.Country)
	assert.Equal(t, "LAX", got.Destination.Code)
	assert.Equal(t, "Los Angeles", got.Destination.Name, "city name fills in when the location has no name")
}

func TestNormalizeAmadeusOffer_StopsSummedPerSegment(t *testing.T) {
	// Segment stops 0 + 1 + 2 = 3; segment-count-minus-one would say 2.
	offer := sampleAmadeusOffer()
	offer.Itineraries[0].Segments = append(offer.Itineraries[0].Segments, AmadeusSegment{
		Departure:     AmadeusEndpoint{IATACode: "LAX", At: "2024-03-15T15:00:00"},
		Arrival:       AmadeusEndpoint{IATACode: "SFO", At: "2024-03-15T16:30:00"},
		CarrierCode:   "UA",
		NumberOfStops: 2,
	})

	got := NormalizeAmadeusOffer(offer, nil)

	assert.Equal(t, 3, got.Stops)
	assert.Equal(t, []string{"AA", "UA"}, got.AirlineCodes, "repeated carrier is not duplicated")
	assert.Equal(t, "SFO", got.Destination.Code, "destination follows the last segment")
}

func TestNormalizeAmadeusOffer_EmptyItineraries(t *testing.T) {
	offer := AmadeusOffer{ID: "7", Price: AmadeusPrice{Currency: "EUR", GrandTotal: "120.10"}}

	got := NormalizeAmadeusOffer(offer, sampleDictionaries())

	assert.Equal(t, "7", got.ID)
	assert.Equal(t, 120, got.PriceTotal)
	assert.Equal(t, "EUR", got.Currency)
	assert.Empty(t, got.AirlineCodes)
	assert.Zero(t, got.Stops)
	assert.Zero(t, got.DurationMinutes)
	assert.Equal(t, "Unknown", got.Origin.Country)
}

func TestNormalizeAmadeusOffer_EmptySegments(t *testing.T) {
	offer := AmadeusOffer{
		ID:          "8",
		Itineraries: []AmadeusItinerary{{Duration: "PT2H"}},
		Price:       AmadeusPrice{Currency: "USD", GrandTotal: "50.00"},
	}

	got := NormalizeAmadeusOffer(offer, nil)

	assert.Equal(t, 120, got.DurationMinutes, "itinerary duration survives even without segments")
	assert.Empty(t, got.Origin.Code)
	assert.Empty(t, got.DepartAt)
}

func TestNormalizeAmadeusOffer_Deterministic(t *testing.T) {
	first := NormalizeAmadeusOffer(sampleAmadeusOffer(), sampleDictionaries())
	second := NormalizeAmadeusOffer(sampleAmadeusOffer(), sampleDictionaries())

	assert.Equal(t, first, second)
}

func TestNormalizeAmadeusResponse_KeepsOrder(t *testing.T) {
	a := sampleAmadeusOffer()
	b := sampleAmadeusOffer()
	b.ID = "2"
	resp := &AmadeusResponse{Data: []AmadeusOffer{a, b}, Dictionaries: sampleDictionaries()}

	got := NormalizeAmadeusResponse(resp)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestLocationName_Fallbacks(t *testing.T) {
	dicts := sampleDictionaries()

	assert.Equal(t, "John F Kennedy Intl", locationName("JFK", dicts))
	assert.Equal(t, "Los Angeles", locationName("LAX", dicts))
	assert.Equal(t, "SFO", locationName("SFO", dicts), "unknown code falls back to the code")
	assert.Equal(t, "SFO", locationName("SFO", nil))
}

func TestParseISODuration(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"PT5H45M", 345},
		{"PT2H", 120},
		{"PT45M", 45},
		{"PT0H0M", 0},
		{"", 0},
		{"4h30m", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseISODuration(tc.in), "duration %q", tc.in)
	}
}

func TestRoundPrice(t *testing.T) {
	assert.Equal(t, 300, roundPrice("299.99"))
	assert.Equal(t, 299, roundPrice("299.49"))
	assert.Equal(t, 100, roundPrice("100"))
	assert.Equal(t, 0, roundPrice("not-a-number"))
	assert.Equal(t, 0, roundPrice(""))
}
