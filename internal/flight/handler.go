package flight

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// OfferSource exposes the fallback provider's raw offer search for the
// compatibility proxy endpoint. Offers are passed through unnormalized.
type OfferSource interface {
	Configured() bool
	RawSearch(ctx context.Context, params SearchParams) (any, error)
}

type FlightHandler struct {
	service *Service
	duffel  OfferSource
}

func NewFlightHandler(s *Service, duffel OfferSource) *FlightHandler {
	return &FlightHandler{
		service: s,
		duffel:  duffel,
	}
}

func (h *FlightHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/flights/search", h.SearchFlightsHandler)
	router.POST("/v1/flights/filter", h.FilterFlightsHandler)
	router.Any("/api/duffel/search", h.DuffelSearchHandler)
}

// SearchFlightsHandler godoc
// @Summary      Search flights
// @Description  Query the providers for offers on a route, served from cache when fresh
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body SearchParams true "Search Parameters"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/flights/search [post]
func (h *FlightHandler) SearchFlightsHandler(c *gin.Context) {
	var req SearchParams
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeValidation,
		})
		return
	}

	response, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// FilterFlightsHandler godoc
// @Summary      Filter existing flight results
// @Description  Apply filters like price range, airline, or transit
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body FilterRequest true "Filter Criteria"
// @Success      200 {object} FilterResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/flights/filter [post]
func (h *FlightHandler) FilterFlightsHandler(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeValidation,
		})
		return
	}

	response, err := h.service.Filter(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

type DuffelSearchRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DepartDate  string `json:"departDate"`
	Adults      int    `json:"adults"`
}

// DuffelSearchHandler preserves the serverless proxy surface: raw Duffel
// offers out, status codes 200/400/405/500/502.
//
// @Summary      Proxy a raw Duffel offer search
// @Description  Raw Duffel offers without normalization, for compatibility clients
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body DuffelSearchRequest true "Route"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      405 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /api/duffel/search [post]
func (h *FlightHandler) DuffelSearchHandler(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	var req DuffelSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required parameters: origin, destination, departDate, adults",
		})
		return
	}
	if req.Origin == "" || req.Destination == "" || req.DepartDate == "" || req.Adults == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required parameters: origin, destination, departDate, adults",
		})
		return
	}

	if !h.duffel.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Duffel API token not configured"})
		return
	}

	offers, err := h.duffel.RawSearch(c.Request.Context(), SearchParams{
		Origin:      req.Origin,
		Destination: req.Destination,
		DepartDate:  req.DepartDate,
		Adults:      req.Adults,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to fetch offers",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": offers})
}

func sendError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		body := gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		}
		if len(appErr.Fields) > 0 {
			body["fields"] = appErr.Fields
		}
		c.JSON(appErr.Status, body)
		return
	}

	// Default to 500 for unknown errors
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal Server Error",
		"code":  ErrorCodeInternalFailure,
	})
}
