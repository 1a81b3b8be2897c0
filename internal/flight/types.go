package flight

// Airport identifies one endpoint of an itinerary.
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Flight is the canonical representation every provider offer is
// normalized into. Records are immutable once produced.
type Flight struct {
	ID              string   `json:"id"`
	PriceTotal      int      `json:"priceTotal"`
	Currency        string   `json:"currency"`
	AirlineCodes    []string `json:"airlineCodes"`
	Stops           int      `json:"stops"`
	DurationMinutes int      `json:"durationMinutes"`
	DepartAt        string   `json:"departAt"`
	ArriveAt        string   `json:"arriveAt"`
	Origin          Airport  `json:"origin"`
	Destination     Airport  `json:"destination"`
}

type SearchParams struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DepartDate  string `json:"departDate"`
	ReturnDate  string `json:"returnDate,omitempty"`
	Adults      int    `json:"adults"`
}

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type SortBy string

const (
	SortPriceAsc     SortBy = "price-asc"
	SortPriceDesc    SortBy = "price-desc"
	SortDurationAsc  SortBy = "duration-asc"
	SortDepartureAsc SortBy = "departure-asc"
)

// Filters selects a subset of flights. Empty stops/airlines mean no
// constraint; the price range is always applied. A stops value of
// StopsTwoPlus matches two or more stops.
type Filters struct {
	Stops    []int      `json:"stops"`
	Airlines []string   `json:"airlines"`
	Price    PriceRange `json:"price"`
	SortBy   SortBy     `json:"sortBy,omitempty"`
}

// StopsTwoPlus is the sentinel stop count meaning "2 or more stops".
const StopsTwoPlus = 2

// DefaultFilters returns the filter state applied before any user input.
func DefaultFilters() Filters {
	return Filters{
		Stops:    []int{0, 1, 2},
		Airlines: []string{},
		Price:    PriceRange{Min: 0, Max: 2000},
	}
}

// PriceSeriesPoint is the minimum price among flights departing within
// one hour-of-day bucket.
type PriceSeriesPoint struct {
	Hour     int `json:"hour"`
	MinPrice int `json:"minPrice"`
}
