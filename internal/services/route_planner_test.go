package services

import (
	"city-route-service/internal/adapters/distance"
	"city-route-service/internal/domain"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanTour(t *testing.T) {
	const (
		hub = 0
		a   = 1
		b   = 2
		c   = 3
	)

	pairs := []distance.MockPair{
		{From: hub, To: a, Distance: 60},
		{From: hub, To: b, Distance: 120},
		{From: hub, To: c, Distance: 90},
		{From: a, To: b, Distance: 48},
		{From: a, To: c, Distance: 42},
		{From: b, To: c, Distance: 54},
		{From: a, To: hub, Distance: 60},
		{From: b, To: hub, Distance: 120},
		{From: c, To: hub, Distance: 90},
		{From: b, To: a, Distance: 48},
		{From: c, To: a, Distance: 42},
		{From: c, To: b, Distance: 54},
	}
	provider := distance.NewMockDistanceProvider(pairs)
	names := domain.NewLocationTable([]domain.Location{
		{ID: hub, Name: "Hub"}, {ID: a, Name: "A"}, {ID: b, Name: "B"}, {ID: c, Name: "C"},
	})

	depart := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	req := TourRequest{
		VehicleName: "van",
		Category:    domain.Car,
		Start:       hub,
		Stops:       []int{b, a, c, a},
		DepartAt:    depart,
	}

	plan, err := PlanTour(context.Background(), req, names, provider)
	require.NoError(t, err)
	require.Len(t, plan.Stops, 3)

	order := []int{plan.Stops[0].Location, plan.Stops[1].Location, plan.Stops[2].Location}
	assert.Equal(t, []int{a, c, b}, order)
	assert.Equal(t, 156, plan.TotalDistance)
	assert.Equal(t, 156*time.Minute, plan.TotalDuration)
	assert.True(t, plan.Stops[1].ArriveAt.Equal(depart.Add(102*time.Minute)), "arrive at C = %v", plan.Stops[1].ArriveAt)
	assert.Equal(t, 102, plan.Stops[1].Distance)

	req.ReturnToStart = true
	plan, err = PlanTour(context.Background(), req, names, provider)
	require.NoError(t, err)
	assert.Equal(t, 276, plan.TotalDistance)
}

func TestPlanTourOnCityGraph(t *testing.T) {
	p, names := sampleProvider(t)

	req := TourRequest{
		VehicleName: "drone",
		Category:    domain.Drone,
		Start:       0,
		Stops:       []int{9, 4, 6},
		DepartAt:    time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
	}

	plan, err := PlanTour(context.Background(), req, names, p)
	require.NoError(t, err)
	require.Len(t, plan.Stops, 3)

	// 0->6 (15), 6->9 (6+10+12=28), 9->4 (12+10+14+10+20+15=81)
	order := []int{plan.Stops[0].Location, plan.Stops[1].Location, plan.Stops[2].Location}
	assert.Equal(t, []int{6, 9, 4}, order)
	assert.Equal(t, 124, plan.TotalDistance)
}

func TestPlanTourEmpty(t *testing.T) {
	p, names := sampleProvider(t)

	plan, err := PlanTour(context.Background(), TourRequest{Category: domain.Car, Start: 3, Stops: []int{3}}, names, p)
	require.NoError(t, err)
	assert.Empty(t, plan.Stops)
	assert.Zero(t, plan.TotalDistance)
}

func TestPlanTourErrors(t *testing.T) {
	p, names := sampleProvider(t)
	ctx := context.Background()

	_, err := PlanTour(ctx, TourRequest{Category: "boat", Start: 0, Stops: []int{1}}, names, p)
	ie, ok := domain.AsInputError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, domain.InvalidCategory, ie.Kind)

	_, err = PlanTour(ctx, TourRequest{Category: domain.Car, Start: 0, Stops: []int{1, 99}}, names, p)
	ie, ok = domain.AsInputError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, domain.InvalidVertex, ie.Kind)
}

func TestPlanTourUnreachableStop(t *testing.T) {
	pairs := []distance.MockPair{{From: 0, To: 1, Distance: 5}}
	provider := distance.NewMockDistanceProvider(pairs)
	names := domain.NewLocationTable([]domain.Location{{ID: 0, Name: "A"}, {ID: 1, Name: "B"}, {ID: 2, Name: "C"}})

	_, err := PlanTour(context.Background(), TourRequest{Category: domain.Car, Start: 0, Stops: []int{1, 2}}, names, provider)
	assert.Error(t, err, "missing pair")

	g, err := distanceGraphWithIsland()
	require.NoError(t, err)

	_, err = PlanTour(context.Background(), TourRequest{Category: domain.Car, Start: 0, Stops: []int{1, 2}}, names, g)
	assert.ErrorIs(t, err, ErrUnreachableStop)
}

func TestPlanTourDurationOverflow(t *testing.T) {
	// Each leg is about 2.5M hours; together they exceed time.Duration.
	pairs := []distance.MockPair{
		{From: 0, To: 1, Distance: 150_000_000},
		{From: 0, To: 2, Distance: 300_000_000},
		{From: 1, To: 2, Distance: 150_000_000},
	}
	provider := distance.NewMockDistanceProvider(pairs)
	names := domain.NewLocationTable([]domain.Location{{ID: 0, Name: "A"}, {ID: 1, Name: "B"}, {ID: 2, Name: "C"}})

	_, err := PlanTour(context.Background(), TourRequest{Category: domain.Car, Start: 0, Stops: []int{1, 2}}, names, provider)
	assert.ErrorIs(t, err, ErrDurationOverflow)
}

func distanceGraphWithIsland() (*distance.GraphDistanceProvider, error) {
	cm := &domain.CityMap{
		Locations: []domain.Location{{ID: 0, Name: "A"}, {ID: 1, Name: "B"}, {ID: 2, Name: "C"}},
		Roads:     []domain.Road{{From: 0, To: 1, Distance: 5}},
	}
	g, _, err := cm.Build()
	if err != nil {
		return nil, err
	}
	return distance.NewGraphDistanceProvider(g, nil)
}
