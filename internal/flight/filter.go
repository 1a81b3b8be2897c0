package flight

import (
	"sort"
	"time"
)

// filterContext holds derived lookup data so the per-flight checks stay cheap
type filterContext struct {
	filters    Filters
	airlineSet map[string]struct{}
}

func newFilterContext(filters Filters) *filterContext {
	fc := &filterContext{filters: filters}

	if len(filters.Airlines) > 0 {
		fc.airlineSet = make(map[string]struct{}, len(filters.Airlines))
		for _, code := range filters.Airlines {
			fc.airlineSet[code] = struct{}{}
		}
	}
	return fc
}

// ApplyFilters returns the flights passing every active filter, sorted by
// filters.SortBy. The input slice is never mutated.
func ApplyFilters(flights []Flight, filters Filters) []Flight {
	fc := newFilterContext(filters)

	filtered := make([]Flight, 0, len(flights))
	for _, f := range flights {
		if fc.matches(f) {
			filtered = append(filtered, f)
		}
	}

	sortFlights(filtered, filters.SortBy)
	return filtered
}

// matches returns true only if ALL active filters pass
func (fc *filterContext) matches(f Flight) bool {
	// Stops: a selected value of StopsTwoPlus matches >= 2, any other
	// selected value matches exactly.
	if len(fc.filters.Stops) > 0 {
		matched := false
		for _, selected := range fc.filters.Stops {
			if selected == StopsTwoPlus && f.Stops >= StopsTwoPlus {
				matched = true
				break
			}
			if selected != StopsTwoPlus && f.Stops == selected {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Airlines: any carrier on the flight may match.
	if fc.airlineSet != nil {
		matched := false
		for _, code := range f.AirlineCodes {
			if _, ok := fc.airlineSet[code]; ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Price range is always applied, inclusive on both ends.
	if f.PriceTotal < fc.filters.Price.Min || f.PriceTotal > fc.filters.Price.Max {
		return false
	}

	return true
}

// Using SliceStable to prevent result rows jumping when values are equal
func sortFlights(flights []Flight, by SortBy) {
	if len(flights) <= 1 {
		return
	}

	switch by {
	case SortPriceAsc:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].PriceTotal < flights[j].PriceTotal
		})
	case SortPriceDesc:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].PriceTotal > flights[j].PriceTotal
		})
	case SortDurationAsc:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].DurationMinutes < flights[j].DurationMinutes
		})
	case SortDepartureAsc:
		sort.SliceStable(flights, func(i, j int) bool {
			return departUnix(flights[i]) < departUnix(flights[j])
		})
	}
}

func departUnix(f Flight) int64 {
	t, err := time.Parse(time.RFC3339, f.DepartAt)
	if err != nil {
		return 0
	}
	return t.Unix()
}
