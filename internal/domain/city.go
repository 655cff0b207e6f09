package domain

import (
	"city-route-service/internal/graph"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// A named place in the city. ID doubles as the graph vertex.
type Location struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// A two-way road between two locations. Distance is in km.
type Road struct {
	From     int `json:"from"`
	To       int `json:"to"`
	Distance int `json:"distance"`
}

// CityMap describes a road network before it is built into a graph.
type CityMap struct {
	Name      string     `json:"name"`
	Locations []Location `json:"locations"`
	Roads     []Road     `json:"roads"`
}

// SampleCity returns the ten-location city used by the classroom console.
func SampleCity() *CityMap {
	return &CityMap{
		Name: "sample",
		Locations: []Location{
			{ID: 0, Name: "City Center"},
			{ID: 1, Name: "North Station"},
			{ID: 2, Name: "University"},
			{ID: 3, Name: "Shopping Mall"},
			{ID: 4, Name: "Airport"},
			{ID: 5, Name: "South Station"},
			{ID: 6, Name: "Hospital"},
			{ID: 7, Name: "Tech Park"},
			{ID: 8, Name: "Residential Area"},
			{ID: 9, Name: "Industrial Area"},
		},
		Roads: []Road{
			{From: 0, To: 1, Distance: 5},
			{From: 1, To: 2, Distance: 10},
			{From: 2, To: 3, Distance: 20},
			{From: 3, To: 4, Distance: 15},
			{From: 0, To: 5, Distance: 7},
			{From: 5, To: 6, Distance: 8},
			{From: 6, To: 7, Distance: 6},
			{From: 7, To: 8, Distance: 10},
			{From: 8, To: 9, Distance: 12},
			{From: 1, To: 7, Distance: 14},
		},
	}
}

// Validate checks that location IDs form the dense range [0, n) and that
// every road joins two known locations with a non-negative distance.
func (m *CityMap) Validate() error {
	if m == nil {
		return errors.New("validate city map: map is nil")
	}

	n := len(m.Locations)
	seen := make([]bool, n)
	for i, loc := range m.Locations {
		if loc.ID < 0 || loc.ID >= n {
			return fmt.Errorf("validate city map: location #%d: id %d not in [0, %d)", i+1, loc.ID, n)
		}
		if seen[loc.ID] {
			return fmt.Errorf("validate city map: duplicate location id %d", loc.ID)
		}
		seen[loc.ID] = true

		if strings.TrimSpace(loc.Name) == "" {
			return fmt.Errorf("validate city map: location %d has empty name", loc.ID)
		}
	}

	for i, r := range m.Roads {
		if r.From < 0 || r.From >= n || r.To < 0 || r.To >= n {
			return fmt.Errorf("validate city map: road #%d: unknown location %d-%d", i+1, r.From, r.To)
		}
		if r.Distance < 0 {
			return fmt.Errorf("validate city map: road #%d: negative distance %d", i+1, r.Distance)
		}
	}

	return nil
}

// Fingerprint identifies the map's content: any change to its name,
// locations or roads yields a different value.
func (m *CityMap) Fingerprint() (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("fingerprint city map: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:8]), nil
}

// Build validates the map and returns its road graph plus the name table.
func (m *CityMap) Build() (*graph.Graph, *LocationTable, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, fmt.Errorf("build city: %w", err)
	}

	g, err := graph.New(len(m.Locations))
	if err != nil {
		return nil, nil, fmt.Errorf("build city: %w", err)
	}

	for _, r := range m.Roads {
		if err := g.AddEdge(r.From, r.To, r.Distance); err != nil {
			return nil, nil, fmt.Errorf("build city: road %d-%d: %w", r.From, r.To, err)
		}
	}

	return g, NewLocationTable(m.Locations), nil
}

// LocationTable maps vertex IDs to display names.
// It is owned by the caller, not the graph, and may cover only part of it.
type LocationTable struct {
	names map[int]string
}

func NewLocationTable(locations []Location) *LocationTable {
	names := make(map[int]string, len(locations))
	for _, l := range locations {
		names[l.ID] = l.Name
	}
	return &LocationTable{names: names}
}

func (t *LocationTable) Name(id int) (string, bool) {
	name, ok := t.names[id]
	return name, ok
}

func (t *LocationTable) Has(id int) bool {
	_, ok := t.names[id]
	return ok
}

// Require returns an InvalidVertex InputError when id is not in the table.
func (t *LocationTable) Require(id int) error {
	if !t.Has(id) {
		return NewInputError(InvalidVertex)
	}
	return nil
}

func (t *LocationTable) Len() int { return len(t.names) }

// Locations returns all entries ordered by ID.
func (t *LocationTable) Locations() []Location {
	out := make([]Location, 0, len(t.names))
	for id, name := range t.names {
		out = append(out, Location{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NameOr returns the name of id, or fallback when the table does not know it.
func (t *LocationTable) NameOr(id int, fallback string) string {
	if name, ok := t.names[id]; ok {
		return name
	}
	return fallback
}
