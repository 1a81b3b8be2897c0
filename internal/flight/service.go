package flight

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"skyfare/pkg/logger"
	"skyfare/pkg/metrics"
	"skyfare/pkg/ratelimit"
)

// Gateway fetches offers from the providers, already normalized. The
// bool result reports whether the fallback provider supplied the data.
type Gateway interface {
	SearchFlights(ctx context.Context, params SearchParams) ([]Flight, bool, error)
}

// ErrAllProvidersFailed marks a search where the primary and the
// fallback provider both failed. The HTTP layer surfaces it distinctly
// from a single-provider failure.
var ErrAllProvidersFailed = errors.New("all providers failed")

type Service struct {
	gateway Gateway
	cache   *SearchCache
	limiter *ratelimit.Limiter
	metrics *metrics.Metrics
	logger  logger.Client
}

func NewService(gateway Gateway, cache *SearchCache, limiter *ratelimit.Limiter,
	m *metrics.Metrics, logger logger.Client) *Service {
	return &Service{
		gateway: gateway,
		cache:   cache,
		limiter: limiter,
		metrics: m,
		logger:  logger,
	}
}

type SearchResponse struct {
	SearchParams SearchParams `json:"searchParams"`
	Flights      []Flight     `json:"flights"`
	TotalResults int          `json:"totalResults"`
	UsedFallback bool         `json:"usedFallback"`
	CacheHit     bool         `json:"cacheHit"`
	SearchTimeMs int64        `json:"searchTimeMs"`
}

// FilterRequest carries search parameters plus an optional filter set.
// A nil Filters means the caller sent none and the defaults apply.
type FilterRequest struct {
	SearchParams
	Filters *Filters `json:"filters"`
}

type FilterResponse struct {
	SearchParams SearchParams       `json:"searchParams"`
	Flights      []Flight           `json:"flights"`
	PriceSeries  []PriceSeriesPoint `json:"priceSeries"`
	TotalResults int                `json:"totalResults"`
	UsedFallback bool               `json:"usedFallback"`
	CacheHit     bool               `json:"cacheHit"`
}

// Search validates the parameters and returns the flight set for them,
// serving from cache when a fresh entry exists.
func (s *Service) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	if appErr := validateSearchParams(params); appErr != nil {
		return nil, appErr
	}
	s.metrics.SearchesTotal.Inc()

	start := time.Now()
	result, cacheHit, err := s.fetch(ctx, params)
	if err != nil {
		return nil, err
	}

	return &SearchResponse{
		SearchParams: params,
		Flights:      result.Flights,
		TotalResults: len(result.Flights),
		UsedFallback: result.UsedFallback,
		CacheHit:     cacheHit,
		SearchTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// Filter returns the flight set for the request parameters with the
// filters applied, plus the price series built from the filtered subset.
// The series is always derived after filtering, never from the raw set.
func (s *Service) Filter(ctx context.Context, req FilterRequest) (*FilterResponse, error) {
	if appErr := validateSearchParams(req.SearchParams); appErr != nil {
		return nil, appErr
	}

	result, cacheHit, err := s.fetch(ctx, req.SearchParams)
	if err != nil {
		return nil, err
	}

	filters := DefaultFilters()
	if req.Filters != nil {
		filters = *req.Filters
	}

	filtered := ApplyFilters(result.Flights, filters)
	series := BuildPriceSeries(filtered)

	return &FilterResponse{
		SearchParams: req.SearchParams,
		Flights:      filtered,
		PriceSeries:  series,
		TotalResults: len(filtered),
		UsedFallback: result.UsedFallback,
		CacheHit:     cacheHit,
	}, nil
}

// fetch is the cache-aside path shared by Search and Filter. The rate
// limit only gates provider calls; cache hits are free.
func (s *Service) fetch(ctx context.Context, params SearchParams) (*CachedSearch, bool, error) {
	cached, err := s.cache.Get(ctx, params)
	if err != nil {
		s.logger.Error("cache read failed", logger.Field{Key: "err", Value: err})
	}
	if cached != nil {
		s.logger.Debug("cache hit", logger.Field{Key: "key", Value: cacheKeyFor(params)})
		s.metrics.CacheHits.Inc()
		return cached, true, nil
	}

	if !s.limiter.Allow() {
		retryIn := int(s.limiter.TimeUntilReset().Seconds()) + 1
		return nil, false, &AppError{
			Status:  http.StatusTooManyRequests,
			Code:    ErrorCodeRateLimited,
			Message: fmt.Sprintf("Too many searches. Try again in %d seconds.", retryIn),
		}
	}

	start := time.Now()
	flights, usedFallback, err := s.gateway.SearchFlights(ctx, params)
	s.metrics.SearchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, false, s.wrapGatewayError(err)
	}
	if usedFallback {
		s.metrics.FallbackSearches.Inc()
	}

	if err := s.cache.Put(ctx, params, flights, usedFallback); err != nil {
		s.logger.Error("cache write failed",
			logger.Field{Key: "err", Value: err},
			logger.Field{Key: "key", Value: cacheKeyFor(params)},
		)
	}

	s.logger.Info("search completed",
		logger.Field{Key: "route", Value: params.Origin + "->" + params.Destination},
		logger.Field{Key: "results", Value: len(flights)},
		logger.Field{Key: "used_fallback", Value: usedFallback},
	)

	return &CachedSearch{Flights: flights, UsedFallback: usedFallback}, false, nil
}

func (s *Service) wrapGatewayError(err error) error {
	if errors.Is(err, ErrAllProvidersFailed) {
		return &AppError{
			Status:  http.StatusBadGateway,
			Code:    ErrorCodeAllProvidersFailed,
			Message: "No flight data available: " + err.Error(),
		}
	}
	return &AppError{
		Status:  http.StatusBadGateway,
		Code:    ErrorCodeUpstreamFailure,
		Message: "Flight search failed: " + err.Error(),
	}
}

var iataCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// validateSearchParams rejects bad input before any network call. The
// returned AppError carries one message per offending field.
func validateSearchParams(params SearchParams) *AppError {
	fields := map[string]string{}

	if params.Origin == "" {
		fields["origin"] = "origin is required"
	} else if !iataCodePattern.MatchString(params.Origin) {
		fields["origin"] = "origin must be a 3-letter IATA code"
	}

	if params.Destination == "" {
		fields["destination"] = "destination is required"
	} else if !iataCodePattern.MatchString(params.Destination) {
		fields["destination"] = "destination must be a 3-letter IATA code"
	}

	if params.DepartDate == "" {
		fields["departDate"] = "departure date is required"
	} else if _, err := time.Parse("2006-01-02", params.DepartDate); err != nil {
		fields["departDate"] = "departure date must be YYYY-MM-DD"
	}

	if params.ReturnDate != "" {
		if _, err := time.Parse("2006-01-02", params.ReturnDate); err != nil {
			fields["returnDate"] = "return date must be YYYY-MM-DD"
		}
	}

	if params.Adults < 1 {
		fields["adults"] = "at least one adult passenger is required"
	}

	if len(fields) == 0 {
		return nil
	}
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    ErrorCodeValidation,
		Message: "Invalid search parameters",
		Fields:  fields,
	}
}
