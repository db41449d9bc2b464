package openroute

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/asmit-inzanist/medic-all-sub000/internal/config"
	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	"github.com/asmit-inzanist/medic-all-sub000/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	profile    string
	logger     *zap.Logger
}

// NewClient creates a client for the directions API.
func NewClient(cfg *config.RoutingConfig, logger *zap.Logger) repository.RoutingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		profile: cfg.Profile,
		logger:  logger,
	}
}

// directionsResponse mirrors the GeoJSON-style directions payload. Coordinates
// arrive as [lng, lat] pairs.
type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Segments []struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
				Steps    []struct {
					Instruction string  `json:"instruction"`
					Distance    float64 `json:"distance"`
					Duration    float64 `json:"duration"`
					WayPoints   []int   `json:"way_points"`
				} `json:"steps"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

// GetRoute requests a driving route between two points. The first feature's
// first segment becomes the Route; step geometry is sliced out of the full
// polyline by way-point indexes.
func (c *client) GetRoute(ctx context.Context, from, to domain.Coordinate) (*domain.Route, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("start", fmt.Sprintf("%f,%f", from.Lon, from.Lat))
	params.Set("end", fmt.Sprintf("%f,%f", to.Lon, to.Lat))

	reqURL := fmt.Sprintf("%s/v2/directions/%s?%s", c.baseURL, c.profile, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Directions API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("directions API error: status %d", resp.StatusCode)
	}

	var directions directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(directions.Features) == 0 || len(directions.Features[0].Properties.Segments) == 0 {
		return nil, fmt.Errorf("no route found in response")
	}

	feature := directions.Features[0]
	segment := feature.Properties.Segments[0]

	geometry := make([]domain.Coordinate, 0, len(feature.Geometry.Coordinates))
	for _, pair := range feature.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		geometry = append(geometry, domain.Coordinate{Lat: pair[1], Lon: pair[0]})
	}

	steps := make([]domain.RouteStep, 0, len(segment.Steps))
	for _, s := range segment.Steps {
		step := domain.RouteStep{
			Instruction:     s.Instruction,
			DistanceMeters:  s.Distance,
			DurationSeconds: s.Duration,
		}
		if len(s.WayPoints) == 2 {
			start, end := s.WayPoints[0], s.WayPoints[1]
			if start >= 0 && end < len(geometry) && start <= end {
				step.Geometry = geometry[start : end+1]
			}
		}
		steps = append(steps, step)
	}

	c.logger.Debug("Directions API call successful",
		zap.Float64("distance_m", segment.Distance),
		zap.Float64("duration_s", segment.Duration),
		zap.Int("steps", len(steps)))

	return &domain.Route{
		DistanceMeters:  segment.Distance,
		DurationSeconds: segment.Duration,
		Geometry:        geometry,
		Steps:           steps,
	}, nil
}
