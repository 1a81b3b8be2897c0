package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"skyfare/internal/flight"
	"skyfare/pkg/logger"
)

// tokenRefreshMargin renews the token this long before it actually
// expires.
const tokenRefreshMargin = 300 * time.Second

const amadeusMaxResults = 50

type AmadeusClient struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	logger       logger.Client

	// mu guards token reads and writes only. The token fetch itself runs
	// unlocked, so concurrent callers hitting an expired token may issue
	// duplicate refresh requests; the last response wins.
	mu    sync.Mutex
	token *amadeusToken
}

type amadeusToken struct {
	accessToken string
	expiresAt   time.Time
}

func NewAmadeusClient(httpClient *http.Client, baseURL, clientID, clientSecret string, logger logger.Client) *AmadeusClient {
	return &AmadeusClient{
		httpClient:   httpClient,
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       logger,
	}
}

type AmadeusEndpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

type AmadeusSegment struct {
	Departure     AmadeusEndpoint `json:"departure"`
	Arrival       AmadeusEndpoint `json:"arrival"`
	CarrierCode   string          `json:"carrierCode"`
	Number        string          `json:"number"`
	Duration      string          `json:"duration"`
	NumberOfStops int             `json:"numberOfStops"`
}

type AmadeusItinerary struct {
	Duration string           `json:"duration"`
	Segments []AmadeusSegment `json:"segments"`
}

type AmadeusPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
}

type AmadeusOffer struct {
	ID          string             `json:"id"`
	Itineraries []AmadeusItinerary `json:"itineraries"`
	Price       AmadeusPrice       `json:"price"`
}

type AmadeusLocation struct {
	Name     string `json:"name"`
	CityName string `json:"cityName"`
}

type AmadeusDictionaries struct {
	Locations map[string]AmadeusLocation `json:"locations"`
}

type AmadeusResponse struct {
	Data         []AmadeusOffer       `json:"data"`
	Dictionaries *AmadeusDictionaries `json:"dictionaries"`
}

type amadeusTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type amadeusErrorBody struct {
	Errors []struct {
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// SearchOffers runs a single flight-offers request. No retry: a failure
// here is the gateway's cue to classify and maybe fall back.
func (a *AmadeusClient) SearchOffers(ctx context.Context, params flight.SearchParams) (*AmadeusResponse, error) {
	accessToken, err := a.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("originLocationCode", params.Origin)
	query.Set("destinationLocationCode", params.Destination)
	query.Set("departureDate", params.DepartDate)
	query.Set("adults", strconv.Itoa(params.Adults))
	query.Set("max", strconv.Itoa(amadeusMaxResults))
	query.Set("currencyCode", "USD")
	if params.ReturnDate != "" {
		query.Set("returnDate", params.ReturnDate)
	}

	endpoint := fmt.Sprintf("%s/v2/shopping/flight-offers?%s", a.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("amadeus: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("amadeus: external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, a.apiError(resp)
	}

	var apiResp AmadeusResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("amadeus: failed to decode json response: %w", err)
	}
	return &apiResp, nil
}

func (a *AmadeusClient) apiError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	apiErr := &APIError{
		Provider:   "amadeus",
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(body)),
	}

	var parsed amadeusErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Errors) > 0 {
		apiErr.Code = parsed.Errors[0].Code
		if parsed.Errors[0].Title != "" {
			apiErr.Message = parsed.Errors[0].Title
		}
	}
	return apiErr
}

func (a *AmadeusClient) getAccessToken(ctx context.Context) (string, error) {
	a.mu.Lock()
	token := a.token
	a.mu.Unlock()

	if token != nil && time.Now().Before(token.expiresAt) {
		return token.accessToken, nil
	}

	fresh, err := a.fetchToken(ctx)
	if err != nil {
		return "", err
	}

	a.mu.Lock()
	a.token = fresh
	a.mu.Unlock()
	return fresh.accessToken, nil
}

func (a *AmadeusClient) fetchToken(ctx context.Context) (*amadeusToken, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", a.clientID)
	form.Set("client_secret", a.clientSecret)

	endpoint := a.baseURL + "/v1/security/oauth2/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("amadeus: failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("amadeus: token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{
			Provider:   "amadeus",
			StatusCode: resp.StatusCode,
			Message:    "authentication failed: " + strings.TrimSpace(string(body)),
		}
	}

	var tokenResp amadeusTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("amadeus: failed to decode token response: %w", err)
	}

	expiresAt := time.Now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - tokenRefreshMargin)
	a.logger.Debug("amadeus token obtained",
		logger.Field{Key: "expires_at", Value: expiresAt.Format(time.RFC3339)},
	)

	return &amadeusToken{accessToken: tokenResp.AccessToken, expiresAt: expiresAt}, nil
}
