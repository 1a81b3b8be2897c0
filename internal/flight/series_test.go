package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seriesFlight(price int, departAt string) Flight {
	return Flight{ID: departAt, PriceTotal: price, DepartAt: departAt}
}

func TestBuildPriceSeries_MinPricePerHour(t *testing.T) {
	flights := []Flight{
		seriesFlight(200, "2024-03-15T08:00:00Z"),
		seriesFlight(150, "2024-03-15T08:45:00Z"),
		seriesFlight(300, "2024-03-15T14:10:00Z"),
	}

	got := BuildPriceSeries(flights)

	assert.Equal(t, []PriceSeriesPoint{
		{Hour: 8, MinPrice: 150},
		{Hour: 14, MinPrice: 300},
	}, got)
}

func TestBuildPriceSeries_SanityBounds(t *testing.T) {
	flights := []Flight{
		seriesFlight(-5, "2024-03-15T08:00:00Z"),
		seriesFlight(0, "2024-03-15T09:00:00Z"),
		seriesFlight(999999, "2024-03-15T10:00:00Z"),
		seriesFlight(49999, "2024-03-15T11:00:00Z"),
	}

	got := BuildPriceSeries(flights)

	assert.Equal(t, []PriceSeriesPoint{{Hour: 11, MinPrice: 49999}}, got)
}

func TestBuildPriceSeries_SortedByHour(t *testing.T) {
	flights := []Flight{
		seriesFlight(100, "2024-03-15T22:00:00Z"),
		seriesFlight(100, "2024-03-15T03:00:00Z"),
		seriesFlight(100, "2024-03-15T13:00:00Z"),
	}

	got := BuildPriceSeries(flights)

	assert.Equal(t, []int{3, 13, 22}, hours(got))
}

func TestBuildPriceSeries_HourInTimestampOffset(t *testing.T) {
	// 09:30 at +05:00 buckets into hour 9, not the UTC hour 4.
	flights := []Flight{seriesFlight(100, "2024-03-15T09:30:00+05:00")}

	got := BuildPriceSeries(flights)

	assert.Equal(t, []PriceSeriesPoint{{Hour: 9, MinPrice: 100}}, got)
}

func TestBuildPriceSeries_SkipsUnparseableDepartAt(t *testing.T) {
	flights := []Flight{
		seriesFlight(100, "not-a-timestamp"),
		seriesFlight(200, "2024-03-15T12:00:00Z"),
	}

	got := BuildPriceSeries(flights)

	assert.Equal(t, []PriceSeriesPoint{{Hour: 12, MinPrice: 200}}, got)
}

func TestBuildPriceSeries_Empty(t *testing.T) {
	assert.Empty(t, BuildPriceSeries(nil))
	assert.Empty(t, BuildPriceSeries([]Flight{}))

	// All filtered out is an empty series, not an error.
	assert.Empty(t, BuildPriceSeries([]Flight{seriesFlight(-1, "2024-03-15T08:00:00Z")}))
}

func hours(points []PriceSeriesPoint) []int {
	out := make([]int, 0, len(points))
	for _, p := range points {
		out = append(out, p.Hour)
	}
	return out
}
