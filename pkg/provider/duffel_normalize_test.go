package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDuffelOffer() DuffelOffer {
	return DuffelOffer{
		ID:            "off_1",
		TotalAmount:   "299.99",
		TotalCurrency: "USD",
		Slices: []DuffelSlice{{
			Segments: []DuffelSegment{{
				Origin:           DuffelAirport{IATACode: "JFK", Name: "John F Kennedy Intl", CityName: "New York"},
				Destination:      DuffelAirport{IATACode: "LAX", Name: "Los Angeles Intl"},
				DepartingAt:      "2024-03-15T08:00:00Z",
				ArrivingAt:       "2024-03-15T11:30:00Z",
				MarketingCarrier: &DuffelCarrier{IATACode: "AA", Name: "American Airlines"},
			}},
		}},
	}
}

func TestNormalizeDuffelOffer(t *testing.T) {
	got, err := NormalizeDuffelOffer(sampleDuffelOffer())

	require.NoError(t, err)
	assert.Equal(t, "off_1", got.ID)
	assert.Equal(t, 300, got.PriceTotal)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, []string{"AA"}, got.AirlineCodes)
	assert.Equal(t, 0, got.Stops)
	assert.Equal(t, 210, got.DurationMinutes, "duration is arrival minus departure")
	assert.Equal(t, "JFK", got.Origin.Code)
	assert.Equal(t, "New York", got.Origin.City)
	assert.Equal(t, "Los Angeles Intl", got.Destination.City, "airport name fills in when city is absent")
	assert.Equal(t, "Unknown", got.Destination.Country)
}

func TestNormalizeDuffelOffer_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*DuffelOffer)
	}{
		{"no slices", func(o *DuffelOffer) { o.Slices = nil }},
		{"no segments", func(o *DuffelOffer) { o.Slices[0].Segments = nil }},
		{"no origin code", func(o *DuffelOffer) { o.Slices[0].Segments[0].Origin.IATACode = "" }},
		{"no destination code", func(o *DuffelOffer) { o.Slices[0].Segments[0].Destination.IATACode = "" }},
		{"no departure timestamp", func(o *DuffelOffer) { o.Slices[0].Segments[0].DepartingAt = "" }},
		{"no arrival timestamp", func(o *DuffelOffer) { o.Slices[0].Segments[0].ArrivingAt = "" }},
		{"no amount", func(o *DuffelOffer) { o.TotalAmount = "" }},
		{"no currency", func(o *DuffelOffer) { o.TotalCurrency = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			offer := sampleDuffelOffer()
			tc.mutate(&offer)

			_, err := NormalizeDuffelOffer(offer)
			assert.ErrorIs(t, err, ErrOfferIncomplete)
		})
	}
}

func TestNormalizeDuffelOffer_StopsAreSegmentCountMinusOne(t *testing.T) {
	offer := sampleDuffelOffer()
	connecting := offer.Slices[0].Segments[0]
	connecting.Origin = DuffelAirport{IATACode: "LAX"}
	connecting.Destination = DuffelAirport{IATACode: "SFO"}
	connecting.DepartingAt = "2024-03-15T13:00:00Z"
	connecting.ArrivingAt = "2024-03-15T14:30:00Z"
	connecting.MarketingCarrier = &DuffelCarrier{IATACode: "UA"}
	offer.Slices[0].Segments = append(offer.Slices[0].Segments, connecting)

	got, err := NormalizeDuffelOffer(offer)

	require.NoError(t, err)
	assert.Equal(t, 1, got.Stops)
	assert.Equal(t, []string{"AA", "UA"}, got.AirlineCodes)
	assert.Equal(t, "SFO", got.Destination.Code)
	assert.Equal(t, 390, got.DurationMinutes, "span covers first departure to last arrival")
}

func TestNormalizeDuffelOffer_OperatingCarrierFallback(t *testing.T) {
	offer := sampleDuffelOffer()
	offer.Slices[0].Segments[0].MarketingCarrier = nil
	offer.Slices[0].Segments[0].OperatingCarrier = &DuffelCarrier{IATACode: "B6"}

	got, err := NormalizeDuffelOffer(offer)

	require.NoError(t, err)
	assert.Equal(t, []string{"B6"}, got.AirlineCodes)
}

func TestNormalizeDuffelOffer_NoCarrierAtAll(t *testing.T) {
	offer := sampleDuffelOffer()
	offer.Slices[0].Segments[0].MarketingCarrier = nil
	offer.Slices[0].Segments[0].OperatingCarrier = nil

	got, err := NormalizeDuffelOffer(offer)

	require.NoError(t, err)
	assert.Empty(t, got.AirlineCodes)
}

func TestNormalizeDuffelOffer_MalformedAmountKept(t *testing.T) {
	offer := sampleDuffelOffer()
	offer.TotalAmount = "not-a-number"

	got, err := NormalizeDuffelOffer(offer)

	require.NoError(t, err, "a present but garbled amount degrades instead of rejecting")
	assert.Equal(t, 0, got.PriceTotal)
}

func TestNormalizeDuffelOffer_MalformedTimestampsKept(t *testing.T) {
	offer := sampleDuffelOffer()
	offer.Slices[0].Segments[0].DepartingAt = "yesterday-ish"

	got, err := NormalizeDuffelOffer(offer)

	require.NoError(t, err)
	assert.Equal(t, 0, got.DurationMinutes)
	assert.Equal(t, "yesterday-ish", got.DepartAt, "raw timestamp passes through")
}

func TestNormalizeDuffelOffers_SkipsRejectedKeepsOrder(t *testing.T) {
	good1 := sampleDuffelOffer()
	bad := sampleDuffelOffer()
	bad.Slices = nil
	good2 := sampleDuffelOffer()
	good2.ID = "off_2"

	got := NormalizeDuffelOffers([]DuffelOffer{good1, bad, good2})

	require.Len(t, got, 2)
	assert.Equal(t, "off_1", got[0].ID)
	assert.Equal(t, "off_2", got[1].ID)
}
