package seo

import (
	"fmt"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/tidynest/sitekit/internal/content"
)

const (
	routeGroup       = "programmatic"
	routeCityService = "city_service"
)

// routeBuilder materializes generated-page slugs through go-urlkit so slug
// construction shares one route template instead of ad hoc string joins.
type routeBuilder struct {
	manager *urlkit.RouteManager
}

func newRouteBuilder() *routeBuilder {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name: routeGroup,
				Paths: map[string]string{
					routeCityService: "/:city/:service",
				},
			},
		},
	})
	return &routeBuilder{manager: manager}
}

// CityServiceSlug builds the deterministic "/{city}/{service}" slug for one
// cross-product pair. Both segments are slug-normalized first so catalog
// entries like "House Cleaning" stay routable.
func (r *routeBuilder) CityServiceSlug(city, service string) (string, error) {
	citySlug, err := content.NormalizeSlug(city)
	if err != nil {
		return "", fmt.Errorf("seo: city %q not sluggable: %w", city, err)
	}
	serviceSlug, err := content.NormalizeSlug(service)
	if err != nil {
		return "", fmt.Errorf("seo: service %q not sluggable: %w", service, err)
	}

	builder, err := r.safeBuilder()
	if err != nil {
		return "", err
	}
	builder.WithParam("city", citySlug)
	builder.WithParam("service", serviceSlug)
	return builder.Build()
}

func (r *routeBuilder) safeBuilder() (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("seo: urlkit route lookup panic: %v", rec)
		}
	}()
	builder = r.manager.Group(routeGroup).Builder(routeCityService)
	return builder, err
}
