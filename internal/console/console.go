// Package console is the interactive driver: it prompts for a vehicle and two
// locations, simulates the trip and prints the result.
package console

import (
	"bufio"
	"city-route-service/internal/domain"
	"city-route-service/internal/ports"
	"city-route-service/internal/services"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

const separator = "-------------------------------"

// ErrEndOfInput is returned when input ends before every prompt was answered.
var ErrEndOfInput = errors.New("console: unexpected end of input")

// Session holds what one console run needs. Trips may be nil.
type Session struct {
	Locations *domain.LocationTable
	Provider  ports.DistanceProvider
	Trips     ports.TripRepository
}

type answers struct {
	name        string
	category    string
	start       string
	destination string
}

// Run prompts on out, reads answers from in and simulates one trip.
//
// Input errors are printed and Run returns nil: the program ends normally
// without retrying. Only I/O and provider failures are returned.
func Run(ctx context.Context, in io.Reader, out io.Writer, s Session) error {
	if s.Locations == nil || s.Provider == nil {
		return errors.New("console: locations and provider must be non-nil")
	}

	a, err := prompt(bufio.NewScanner(in), out, s.Locations)
	if err != nil {
		return err
	}

	vehicle, err := buildVehicle(a)
	if err == nil {
		err = simulate(ctx, out, s, vehicle)
	}

	if ie, ok := domain.AsInputError(err); ok {
		fmt.Fprintf(out, "Input error: %s\n", ie.Message)
		return nil
	}
	return err
}

func prompt(sc *bufio.Scanner, out io.Writer, locations *domain.LocationTable) (answers, error) {
	var a answers
	var err error

	fmt.Fprint(out, "Enter the vehicle or drone name: ")
	if a.name, err = readLine(sc); err != nil {
		return a, err
	}

	fmt.Fprintf(out, "Choose the transport type (%s): ", categoryChoices())
	if a.category, err = readLine(sc); err != nil {
		return a, err
	}

	fmt.Fprintln(out, "Enter the start location number:")
	for _, l := range locations.Locations() {
		fmt.Fprintf(out, "%d: %s\n", l.ID, l.Name)
	}
	if a.start, err = readLine(sc); err != nil {
		return a, err
	}

	fmt.Fprint(out, "Enter the destination location number: ")
	if a.destination, err = readLine(sc); err != nil {
		return a, err
	}

	return a, nil
}

func readLine(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("console: read input: %w", err)
		}
		return "", ErrEndOfInput
	}
	return strings.TrimSpace(sc.Text()), nil
}

func categoryChoices() string {
	names := make([]string, 0, 2)
	for _, c := range domain.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, "/")
}

func buildVehicle(a answers) (*domain.Vehicle, error) {
	category, err := domain.ParseTransportCategory(a.category)
	if err != nil {
		return nil, err
	}

	start, err := strconv.Atoi(a.start)
	if err != nil {
		return nil, domain.NewInputError(domain.InvalidVertex)
	}
	destination, err := strconv.Atoi(a.destination)
	if err != nil {
		return nil, domain.NewInputError(domain.InvalidVertex)
	}

	name := a.name
	if name == "" {
		name = string(category)
	}

	return domain.NewVehicle(name, category, start, destination), nil
}

func simulate(ctx context.Context, out io.Writer, s Session, v *domain.Vehicle) error {
	// Validate before printing the header so a bad index never reaches the name lookup.
	if err := s.Locations.Require(v.Location); err != nil {
		return err
	}
	if err := s.Locations.Require(v.Destination); err != nil {
		return err
	}

	start := s.Locations.NameOr(v.Location, "")
	dest := s.Locations.NameOr(v.Destination, "")

	fmt.Fprintf(out, "%s [%s] simulation started\n", v.Category, v.Name)
	fmt.Fprintf(out, "Start: %s\n", start)
	fmt.Fprintf(out, "Destination: %s\n", dest)

	trip, err := services.SimulateTrip(ctx, v, s.Locations, s.Provider)
	if err != nil {
		return err
	}
	record(ctx, s.Trips, trip)

	if !trip.Reachable {
		fmt.Fprintln(out, "No path to the destination.")
		return nil
	}

	fmt.Fprintf(out, "Distance to destination: %d km\n", trip.Distance)
	fmt.Fprintf(out, "Estimated time of arrival: %d hours\n", trip.ETAHours)
	fmt.Fprintln(out, "Simulating travel...")
	fmt.Fprintf(out, "%s [%s] arrived at destination: %s\n", v.Category, v.Name, dest)
	fmt.Fprintln(out, separator)

	return nil
}

func record(ctx context.Context, repo ports.TripRepository, trip *domain.Trip) {
	if repo == nil {
		return
	}
	if _, err := repo.SaveTrip(ctx, trip); err != nil {
		log.Printf("console: save trip failed: %v", err)
	}
}
