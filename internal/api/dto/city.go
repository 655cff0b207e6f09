package dto

type PlaceRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ListLocationsResponse struct {
	Locations []PlaceRef `json:"locations"`
}

type CategoryResponse struct {
	Name  string `json:"name"`
	Speed int    `json:"speed"`
}

type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// Distance is nil when the location is unreachable.
type DistanceEntry struct {
	To       PlaceRef `json:"to"`
	Distance *int     `json:"distance"`
	Path     []int    `json:"path,omitempty"`
}

type DistanceTableResponse struct {
	Source    PlaceRef        `json:"source"`
	Distances []DistanceEntry `json:"distances"`
}

type ErrorBody struct {
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}
