package provider

import (
	"context"
	"fmt"

	"skyfare/internal/flight"
	"skyfare/pkg/logger"
	"skyfare/pkg/metrics"
)

// Gateway queries Amadeus first and Duffel only when Amadeus fails in a
// way that marks an outage rather than a bad request. It satisfies
// flight.Gateway.
type Gateway struct {
	amadeus *AmadeusClient
	duffel  *DuffelClient
	metrics *metrics.Metrics
	logger  logger.Client
}

func NewGateway(amadeus *AmadeusClient, duffel *DuffelClient, m *metrics.Metrics, logger logger.Client) *Gateway {
	return &Gateway{
		amadeus: amadeus,
		duffel:  duffel,
		metrics: m,
		logger:  logger,
	}
}

// SearchFlights returns normalized flights and whether the fallback
// provider supplied them.
func (g *Gateway) SearchFlights(ctx context.Context, params flight.SearchParams) ([]flight.Flight, bool, error) {
	resp, primaryErr := g.amadeus.SearchOffers(ctx, params)
	if primaryErr == nil {
		return NormalizeAmadeusResponse(resp), false, nil
	}
	g.metrics.ProviderErrors.WithLabelValues("amadeus").Inc()

	if !fallbackEligible(primaryErr) {
		// Terminal failures (bad requests, auth, network) never trigger
		// the fallback.
		return nil, false, primaryErr
	}

	g.logger.Warn("primary provider unavailable, trying fallback",
		logger.Field{Key: "err", Value: primaryErr},
	)

	offers, fallbackErr := g.duffel.Search(ctx, params)
	if fallbackErr != nil {
		g.metrics.ProviderErrors.WithLabelValues("duffel").Inc()
		g.logger.Error("fallback provider failed",
			logger.Field{Key: "err", Value: fallbackErr},
		)
		return nil, false, fmt.Errorf("%w: amadeus: %v; duffel: %v",
			flight.ErrAllProvidersFailed, primaryErr, fallbackErr)
	}

	return NormalizeDuffelOffers(offers), true, nil
}
