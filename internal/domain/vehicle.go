package domain

// Vehicle is a car or drone travelling between two city locations.
type Vehicle struct {
	Name        string
	Category    TransportCategory
	Location    int
	Destination int
}

func NewVehicle(name string, category TransportCategory, start, destination int) *Vehicle {
	return &Vehicle{
		Name:        name,
		Category:    category,
		Location:    start,
		Destination: destination,
	}
}

// Move the vehicle to its destination.
func (v *Vehicle) Arrive() {
	v.Location = v.Destination
}

// AtDestination reports whether the vehicle has nothing left to travel.
func (v *Vehicle) AtDestination() bool {
	return v.Location == v.Destination
}
