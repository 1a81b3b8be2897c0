package flight

import (
	"sort"
	"time"
)

// priceSanityCeiling guards the chart against corrupted provider prices.
// It is not a business rule on fares.
const priceSanityCeiling = 50000

// BuildPriceSeries buckets flights by departure hour and emits the minimum
// price per non-empty bucket, ascending by hour. It expects the already
// filtered flight set; filtering happens before series building.
func BuildPriceSeries(flights []Flight) []PriceSeriesPoint {
	if len(flights) == 0 {
		return []PriceSeriesPoint{}
	}

	minByHour := make(map[int]int)
	for _, f := range flights {
		if f.PriceTotal <= 0 || f.PriceTotal >= priceSanityCeiling {
			continue
		}
		t, err := time.Parse(time.RFC3339, f.DepartAt)
		if err != nil {
			continue
		}
		// Hour in the timestamp's own offset, matching what a traveller
		// reading the departure board would see.
		hour := t.Hour()
		if current, ok := minByHour[hour]; !ok || f.PriceTotal < current {
			minByHour[hour] = f.PriceTotal
		}
	}

	points := make([]PriceSeriesPoint, 0, len(minByHour))
	for hour, minPrice := range minByHour {
		points = append(points, PriceSeriesPoint{Hour: hour, MinPrice: minPrice})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Hour < points[j].Hour
	})
	return points
}
