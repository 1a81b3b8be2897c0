package provider

import (
	"math"
	"regexp"
	"strconv"

	"skyfare/internal/flight"
)

// isoDurationPattern matches the PT{H}H{M}M durations Amadeus emits.
// Both parts are optional; anything unparseable yields 0 minutes.
var isoDurationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)

// NormalizeAmadeusOffer converts one Amadeus offer into the canonical
// Flight. It never rejects: missing or malformed data degrades to zero
// values and the record is kept.
func NormalizeAmadeusOffer(offer AmadeusOffer, dicts *AmadeusDictionaries) flight.Flight {
	f := flight.Flight{
		ID:           offer.ID,
		PriceTotal:   roundPrice(offer.Price.GrandTotal),
		Currency:     offer.Price.Currency,
		AirlineCodes: []string{},
	}

	if len(offer.Itineraries) == 0 {
		f.Origin = amadeusAirport("", dicts)
		f.Destination = amadeusAirport("", dicts)
		return f
	}

	// Only the first itinerary (the outbound leg) is represented.
	itinerary := offer.Itineraries[0]
	f.DurationMinutes = parseISODuration(itinerary.Duration)

	if len(itinerary.Segments) == 0 {
		f.Origin = amadeusAirport("", dicts)
		f.Destination = amadeusAirport("", dicts)
		return f
	}

	first := itinerary.Segments[0]
	last := itinerary.Segments[len(itinerary.Segments)-1]

	// Stops are summed per segment: a single segment can itself encode a
	// technical stop, so this is not segment-count minus one.
	totalStops := 0
	seen := make(map[string]struct{})
	for _, segment := range itinerary.Segments {
		totalStops += segment.NumberOfStops
		if _, ok := seen[segment.CarrierCode]; !ok {
			seen[segment.CarrierCode] = struct{}{}
			f.AirlineCodes = append(f.AirlineCodes, segment.CarrierCode)
		}
	}
	f.Stops = totalStops

	f.DepartAt = first.Departure.At
	f.ArriveAt = last.Arrival.At
	f.Origin = amadeusAirport(first.Departure.IATACode, dicts)
	f.Destination = amadeusAirport(last.Arrival.IATACode, dicts)

	return f
}

// NormalizeAmadeusResponse converts the whole search response, keeping
// every offer in order.
func NormalizeAmadeusResponse(resp *AmadeusResponse) []flight.Flight {
	flights := make([]flight.Flight, 0, len(resp.Data))
	for _, offer := range resp.Data {
		flights = append(flights, NormalizeAmadeusOffer(offer, resp.Dictionaries))
	}
	return flights
}

func amadeusAirport(code string, dicts *AmadeusDictionaries) flight.Airport {
	name := locationName(code, dicts)
	return flight.Airport{
		Code: code,
		Name: name,
		City: name,
		// The basic search response carries no country data.
		Country: "Unknown",
	}
}

func locationName(code string, dicts *AmadeusDictionaries) string {
	if dicts == nil {
		return code
	}
	location, ok := dicts.Locations[code]
	if !ok {
		return code
	}
	if location.Name != "" {
		return location.Name
	}
	if location.CityName != "" {
		return location.CityName
	}
	return code
}

// parseISODuration converts "PT4H30M" into 270.
func parseISODuration(duration string) int {
	match := isoDurationPattern.FindStringSubmatch(duration)
	if match == nil {
		return 0
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	return hours*60 + minutes
}

// roundPrice parses a decimal amount and rounds it to whole currency
// units. Malformed input yields 0, never an error.
func roundPrice(amount string) int {
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0
	}
	return int(math.Round(value))
}
