package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"skyfare/internal/flight"
	"skyfare/pkg/logger"
	"skyfare/pkg/retry"
)

type DuffelClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	poll       retry.Policy
	logger     logger.Client
}

// NewDuffelClient builds the fallback provider client. Offer generation
// on Duffel is asynchronous, so reads go through the given poll policy.
func NewDuffelClient(httpClient *http.Client, baseURL, token string, poll retry.Policy, logger logger.Client) *DuffelClient {
	return &DuffelClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
		poll:       poll,
		logger:     logger,
	}
}

type DuffelCarrier struct {
	IATACode string `json:"iata_code"`
	Name     string `json:"name"`
}

type DuffelAirport struct {
	IATACode string `json:"iata_code"`
	Name     string `json:"name"`
	CityName string `json:"city_name,omitempty"`
}

type DuffelSegment struct {
	Origin           DuffelAirport  `json:"origin"`
	Destination      DuffelAirport  `json:"destination"`
	DepartingAt      string         `json:"departing_at"`
	ArrivingAt       string         `json:"arriving_at"`
	MarketingCarrier *DuffelCarrier `json:"marketing_carrier"`
	OperatingCarrier *DuffelCarrier `json:"operating_carrier"`
	Duration         string         `json:"duration"`
}

type DuffelSlice struct {
	Segments []DuffelSegment `json:"segments"`
	Duration string          `json:"duration"`
}

type DuffelOffer struct {
	ID            string        `json:"id"`
	TotalAmount   string        `json:"total_amount"`
	TotalCurrency string        `json:"total_currency"`
	Slices        []DuffelSlice `json:"slices"`
}

type duffelOfferRequestBody struct {
	Data struct {
		Slices []struct {
			Origin        string `json:"origin"`
			Destination   string `json:"destination"`
			DepartureDate string `json:"departure_date"`
		} `json:"slices"`
		Passengers []struct {
			Type string `json:"type"`
		} `json:"passengers"`
		CabinClass string `json:"cabin_class"`
	} `json:"data"`
}

type duffelOfferRequestResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type duffelOffersResponse struct {
	Data []DuffelOffer `json:"data"`
}

// Configured reports whether an access token is present.
func (d *DuffelClient) Configured() bool {
	return d.token != ""
}

// Search creates an offer request and polls for its offers until the
// result is non-empty or the poll policy gives up. Exhausting the poll
// is not an error; it returns the (empty) last result.
func (d *DuffelClient) Search(ctx context.Context, params flight.SearchParams) ([]DuffelOffer, error) {
	offerRequestID, err := d.createOfferRequest(ctx, params)
	if err != nil {
		return nil, err
	}

	var offers []DuffelOffer
	err = d.poll.Do(ctx, func(ctx context.Context) (bool, error) {
		fetched, err := d.fetchOffers(ctx, offerRequestID)
		if err != nil {
			return false, err
		}
		offers = fetched
		return len(offers) > 0, nil
	})
	if errors.Is(err, retry.ErrExhausted) {
		d.logger.Warn("duffel offers still empty after polling",
			logger.Field{Key: "offer_request_id", Value: offerRequestID},
		)
		return offers, nil
	}
	if err != nil {
		return nil, err
	}
	return offers, nil
}

// RawSearch adapts Search for the proxy endpoint, which passes offers
// through without normalization.
func (d *DuffelClient) RawSearch(ctx context.Context, params flight.SearchParams) (any, error) {
	offers, err := d.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	if offers == nil {
		offers = []DuffelOffer{}
	}
	return offers, nil
}

func (d *DuffelClient) createOfferRequest(ctx context.Context, params flight.SearchParams) (string, error) {
	var body duffelOfferRequestBody
	body.Data.Slices = []struct {
		Origin        string `json:"origin"`
		Destination   string `json:"destination"`
		DepartureDate string `json:"departure_date"`
	}{{Origin: params.Origin, Destination: params.Destination, DepartureDate: params.DepartDate}}

	adults := params.Adults
	if adults < 1 {
		adults = 1
	}
	for i := 0; i < adults; i++ {
		body.Data.Passengers = append(body.Data.Passengers, struct {
			Type string `json:"type"`
		}{Type: "adult"})
	}
	body.Data.CabinClass = "economy"

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("duffel: failed to marshal offer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/air/offer_requests", bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("duffel: failed to build request: %w", err)
	}
	d.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("duffel: external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", d.apiError(resp)
	}

	var parsed duffelOfferRequestResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("duffel: failed to decode offer request response: %w", err)
	}
	return parsed.Data.ID, nil
}

func (d *DuffelClient) fetchOffers(ctx context.Context, offerRequestID string) ([]DuffelOffer, error) {
	endpoint := fmt.Sprintf("%s/air/offers?offer_request_id=%s", d.baseURL, offerRequestID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("duffel: failed to build request: %w", err)
	}
	d.setHeaders(req)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("duffel: external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, d.apiError(resp)
	}

	var parsed duffelOffersResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("duffel: failed to decode offers response: %w", err)
	}
	return parsed.Data, nil
}

func (d *DuffelClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+d.token)
	req.Header.Set("Duffel-Version", "beta")
	req.Header.Set("Accept", "application/json")
}

func (d *DuffelClient) apiError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &APIError{
		Provider:   "duffel",
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}
