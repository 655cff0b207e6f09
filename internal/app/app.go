package app

import (
	"city-route-service/internal/adapters/cache"
	"city-route-service/internal/adapters/citymap"
	"city-route-service/internal/adapters/distance"
	"city-route-service/internal/adapters/repositories"
	"city-route-service/internal/config"
	"city-route-service/internal/domain"
	"city-route-service/internal/platform/db"
	"city-route-service/internal/ports"
	"context"
	"fmt"
	"log"
	"strings"
)

// App is the wired set of adapters shared by the server and console binaries.
type App struct {
	City      *domain.CityMap
	Locations *domain.LocationTable
	Provider  *distance.GraphDistanceProvider
	Trips     ports.TripRepository // nil when no database is configured

	closers []func() error
}

// New loads the city map and connects the optional cache and trip log.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	city, err := citymap.LoadJSON(cfg.CityMapPath)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	g, locations, err := city.Build()
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	log.Printf("city loaded name=%s locations=%d roads=%d", city.Name, g.VertexCount(), g.EdgeCount())

	a := &App{City: city, Locations: locations}

	var distanceCache ports.DistanceCache
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		a.closers = append(a.closers, client.Close)

		ns, err := cacheNamespace(cfg.CacheNamespace, city)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("app: %w", err)
		}
		distanceCache = cache.NewRedisDistanceCache(client, ns, cfg.DistanceCacheTTL)
		log.Printf("distance cache enabled namespace=%s ttl=%s", ns, cfg.DistanceCacheTTL)
	}

	a.Provider, err = distance.NewGraphDistanceProvider(g, distanceCache)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("app: %w", err)
	}

	if cfg.DatabaseURL != "" {
		dialect, err := repositories.ParseDialect(cfg.DBDriver)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("app: %w", err)
		}

		conn, err := db.Open(string(dialect), cfg.DatabaseURL)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("app: %w", err)
		}
		a.closers = append(a.closers, conn.Close)

		if err := repositories.InitSchema(conn, dialect); err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("app: %w", err)
		}
		a.Trips = repositories.NewSQLTripRepository(conn, dialect)
		log.Printf("trip log enabled driver=%s", dialect)
	}

	return a, nil
}

// cacheNamespace keys cached distances by map content, so an edited map
// never reads tables computed for its previous roads.
func cacheNamespace(prefix string, city *domain.CityMap) (string, error) {
	fp, err := city.Fingerprint()
	if err != nil {
		return "", err
	}

	name := strings.TrimSpace(city.Name)
	if name == "" {
		name = "city"
	}
	return prefix + ":" + name + ":" + fp, nil
}

// Close releases connections in reverse order of opening.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
