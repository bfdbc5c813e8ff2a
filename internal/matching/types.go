// Package matching solves capacitated many-to-one stable matching instances
// (residents to hospital programs) and checks the produced assignments.
package matching

import "errors"

// ErrInfeasible is returned when an instance cannot be solved as given.
var ErrInfeasible = errors.New("matching instance is infeasible")

type (
	// ResidentPreferences maps a resident to programs in order of preference.
	ResidentPreferences map[string][]string
	// HospitalPreferences maps a program to residents in order of preference.
	HospitalPreferences map[string][]string
	// Capacities maps a program to the number of residents it can take.
	Capacities map[string]int
	// Assignment maps a matched resident to its program.
	Assignment map[string]string
)

// Solution is an assignment together with the solver's own checks on it.
type Solution struct {
	Assignment Assignment
	Valid      bool
	Stable     bool
}
