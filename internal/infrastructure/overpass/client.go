package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/asmit-inzanist/medic-all-sub000/internal/config"
	"github.com/asmit-inzanist/medic-all-sub000/internal/domain"
	"github.com/asmit-inzanist/medic-all-sub000/internal/domain/repository"
	"github.com/asmit-inzanist/medic-all-sub000/internal/pkg/geo"
	"go.uber.org/zap"
)

type client struct {
	httpClient   *http.Client
	baseURL      string
	queryTimeout int
	logger       *zap.Logger
}

// NewClient creates a client for the Overpass interpreter endpoint.
func NewClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.POIRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:      cfg.BaseURL,
		queryTimeout: cfg.QueryTimeout,
		logger:       logger,
	}
}

// overpassResponse mirrors the interpreter's JSON. Elements are narrowed into
// domain.PointOfInterest immediately; the raw shape never escapes this package.
type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// SearchNearby queries facilities of the given category around a point.
// Results carry distance from the center but are not sorted or capped here.
func (c *client) SearchNearby(
	ctx context.Context,
	center domain.Coordinate,
	radiusKm float64,
	category domain.FacilityCategory,
) ([]domain.PointOfInterest, error) {
	query := c.buildQuery(center, radiusKm, category)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Debug("Calling Overpass API",
		zap.String("category", string(category)),
		zap.Float64("radius_km", radiusKm))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Overpass API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("overpass API error: status %d", resp.StatusCode)
	}

	var overpassResp overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&overpassResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	pois := make([]domain.PointOfInterest, 0, len(overpassResp.Elements))
	for _, el := range overpassResp.Elements {
		poi, ok := normalizeElement(el, center, category)
		if !ok {
			continue
		}
		pois = append(pois, poi)
	}

	c.logger.Debug("Overpass API call successful",
		zap.Int("elements", len(overpassResp.Elements)),
		zap.Int("normalized", len(pois)))

	return pois, nil
}

// buildQuery assembles the Overpass QL statement: node/way/relation with the
// category's amenity filter inside an around-radius.
func (c *client) buildQuery(center domain.Coordinate, radiusKm float64, category domain.FacilityCategory) string {
	radiusMeters := int(radiusKm * 1000)

	amenity := `["amenity"="pharmacy"]`
	if category == domain.CategoryHospital {
		amenity = `["amenity"~"^(hospital|clinic)$"]`
	}

	around := fmt.Sprintf("(around:%d,%f,%f)", radiusMeters, center.Lat, center.Lon)

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n(\n", c.queryTimeout)
	for _, kind := range []string{"node", "way", "relation"} {
		fmt.Fprintf(&b, "  %s%s%s;\n", kind, amenity, around)
	}
	b.WriteString(");\nout center;")

	return b.String()
}

// normalizeElement converts one raw element into a PointOfInterest. Elements
// without a resolvable coordinate are dropped.
func normalizeElement(el overpassElement, center domain.Coordinate, category domain.FacilityCategory) (domain.PointOfInterest, bool) {
	var lat, lon float64
	switch {
	case el.Lat != nil && el.Lon != nil:
		lat, lon = *el.Lat, *el.Lon
	case el.Center != nil:
		lat, lon = el.Center.Lat, el.Center.Lon
	default:
		return domain.PointOfInterest{}, false
	}

	poi := domain.PointOfInterest{
		ID:         fmt.Sprintf("%s/%d", el.Type, el.ID),
		Name:       elementName(el.Tags, category),
		Address:    elementAddress(el.Tags),
		Lat:        lat,
		Lon:        lon,
		DistanceKm: geo.Distance(center.Lat, center.Lon, lat, lon),
	}

	if v, ok := el.Tags["phone"]; ok {
		poi.Phone = &v
	} else if v, ok := el.Tags["contact:phone"]; ok {
		poi.Phone = &v
	}
	if v, ok := el.Tags["website"]; ok {
		poi.Website = &v
	} else if v, ok := el.Tags["contact:website"]; ok {
		poi.Website = &v
	}
	if v, ok := el.Tags["opening_hours"]; ok {
		poi.OpeningHours = &v
	}

	if category == domain.CategoryHospital {
		emergency := isAffirmative(el.Tags["emergency"])
		poi.Emergency = &emergency
		poi.Specialties = elementSpecialties(el.Tags)
	}

	return poi, true
}

// elementName applies the name -> brand -> placeholder ladder.
func elementName(tags map[string]string, category domain.FacilityCategory) string {
	if name := tags["name"]; name != "" {
		return name
	}
	if brand := tags["brand"]; brand != "" {
		return brand
	}
	if category == domain.CategoryHospital {
		return "Unknown Hospital"
	}
	return "Unknown Pharmacy"
}

// elementAddress prefers the structured "{house} {street}, {city}" form, then
// joins whichever address parts exist.
func elementAddress(tags map[string]string) string {
	house := tags["addr:housenumber"]
	street := tags["addr:street"]
	suburb := tags["addr:suburb"]
	city := tags["addr:city"]

	if house != "" && street != "" && city != "" {
		return fmt.Sprintf("%s %s, %s", house, street, city)
	}

	parts := make([]string, 0, 4)
	for _, p := range []string{house, street, suburb, city} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}

	return "Address not available"
}

// elementSpecialties collects healthcare speciality tags, semicolon-split.
func elementSpecialties(tags map[string]string) []string {
	var raw []string
	if v := tags["healthcare:speciality"]; v != "" {
		raw = append(raw, v)
	}
	if v := tags["medical_system"]; v != "" {
		raw = append(raw, v)
	}

	var specialties []string
	for _, entry := range raw {
		for _, s := range strings.Split(entry, ";") {
			if s = strings.TrimSpace(s); s != "" {
				specialties = append(specialties, s)
			}
		}
	}
	return specialties
}

func isAffirmative(v string) bool {
	switch strings.ToLower(v) {
	case "yes", "true", "designated":
		return true
	}
	return false
}
