package provider

import (
	"errors"
	"fmt"
	"time"

	"skyfare/internal/flight"
)

// ErrOfferIncomplete marks a Duffel offer missing a field required to
// place it on the map. Such offers are rejected; garbage in fields that
// are merely malformed (amounts, durations) degrades to zero instead.
var ErrOfferIncomplete = errors.New("duffel offer missing required fields")

// NormalizeDuffelOffer converts one Duffel offer into the canonical
// Flight, or rejects it. Only the first slice (the outbound leg) is
// represented.
func NormalizeDuffelOffer(offer DuffelOffer) (flight.Flight, error) {
	if len(offer.Slices) == 0 {
		return flight.Flight{}, fmt.Errorf("%w: no slices", ErrOfferIncomplete)
	}
	slice := offer.Slices[0]
	if len(slice.Segments) == 0 {
		return flight.Flight{}, fmt.Errorf("%w: slice has no segments", ErrOfferIncomplete)
	}

	first := slice.Segments[0]
	last := slice.Segments[len(slice.Segments)-1]

	switch {
	case first.Origin.IATACode == "":
		return flight.Flight{}, fmt.Errorf("%w: no origin code", ErrOfferIncomplete)
	case last.Destination.IATACode == "":
		return flight.Flight{}, fmt.Errorf("%w: no destination code", ErrOfferIncomplete)
	case first.DepartingAt == "" || last.ArrivingAt == "":
		return flight.Flight{}, fmt.Errorf("%w: missing timestamps", ErrOfferIncomplete)
	case offer.TotalAmount == "" || offer.TotalCurrency == "":
		return flight.Flight{}, fmt.Errorf("%w: missing total amount or currency", ErrOfferIncomplete)
	}

	airlineCodes := []string{}
	seen := make(map[string]struct{})
	for _, segment := range slice.Segments {
		// Marketing carrier first, operating as the fallback; segments
		// with neither contribute nothing.
		code := ""
		if segment.MarketingCarrier != nil && segment.MarketingCarrier.IATACode != "" {
			code = segment.MarketingCarrier.IATACode
		} else if segment.OperatingCarrier != nil && segment.OperatingCarrier.IATACode != "" {
			code = segment.OperatingCarrier.IATACode
		}
		if code == "" {
			continue
		}
		if _, ok := seen[code]; !ok {
			seen[code] = struct{}{}
			airlineCodes = append(airlineCodes, code)
		}
	}

	// Duffel stop semantics: one fewer than the segment count. This
	// intentionally differs from the Amadeus per-segment sum.
	stops := len(slice.Segments) - 1
	if stops < 0 {
		stops = 0
	}

	return flight.Flight{
		ID:              offer.ID,
		PriceTotal:      roundPrice(offer.TotalAmount),
		Currency:        offer.TotalCurrency,
		AirlineCodes:    airlineCodes,
		Stops:           stops,
		DurationMinutes: spanMinutes(first.DepartingAt, last.ArrivingAt),
		DepartAt:        first.DepartingAt,
		ArriveAt:        last.ArrivingAt,
		Origin:          duffelAirport(first.Origin),
		Destination:     duffelAirport(last.Destination),
	}, nil
}

// NormalizeDuffelOffers converts a batch, silently dropping rejected
// offers and preserving the order of the survivors.
func NormalizeDuffelOffers(offers []DuffelOffer) []flight.Flight {
	flights := make([]flight.Flight, 0, len(offers))
	for _, offer := range offers {
		f, err := NormalizeDuffelOffer(offer)
		if err != nil {
			continue
		}
		flights = append(flights, f)
	}
	return flights
}

func duffelAirport(a DuffelAirport) flight.Airport {
	city := a.CityName
	if city == "" {
		city = a.Name
	}
	return flight.Airport{
		Code:    a.IATACode,
		Name:    a.Name,
		City:    city,
		Country: "Unknown",
	}
}

// spanMinutes measures arrival minus departure directly; the
// provider-declared duration field is not trusted for Duffel.
func spanMinutes(departAt, arriveAt string) int {
	depart, err := time.Parse(time.RFC3339, departAt)
	if err != nil {
		return 0
	}
	arrive, err := time.Parse(time.RFC3339, arriveAt)
	if err != nil {
		return 0
	}
	return int(arrive.Sub(depart).Minutes())
}
