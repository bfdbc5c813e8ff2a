package model

import (
	"fmt"
	"regexp"
)

// ArtifactKind names one of the two input files of an edition.
type ArtifactKind string

var (
	// Residents is the resident preferences artifact.
	Residents ArtifactKind = "residents"
	// Hospitals is the hospital preferences artifact with program capacities.
	Hospitals ArtifactKind = "hospitals"
)

// ArtifactKinds lists both artifacts of an edition in processing order.
var ArtifactKinds = []ArtifactKind{Residents, Hospitals}

var yearPattern = regexp.MustCompile(`\d{4}`)

// YearToken returns the first 4-digit run in s.
func YearToken(s string) (string, bool) {
	year := yearPattern.FindString(s)
	return year, year != ""
}

// EditionID returns the ledger edition identifier for a year.
func EditionID(year string) string {
	return "NRMP_" + year
}

// ArtifactKey returns the object name of an artifact for a year.
func ArtifactKey(year string, kind ArtifactKind) string {
	switch kind {
	case Residents:
		return fmt.Sprintf("residentsPreferences_%s.json", year)
	case Hospitals:
		return fmt.Sprintf("hospitalsPreferences_%s.json", year)
	default:
		return fmt.Sprintf("%sPreferences_%s.json", kind, year)
	}
}
