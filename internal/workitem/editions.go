package workitem

import (
	"sort"

	"github.com/goodnatureofminers/matchledger/internal/model"
)

// editionYears returns, ascending, the years for which every artifact kind is
// present among keys. A year with only part of its artifacts is not minable.
func editionYears(keys []string) []string {
	present := make(map[string]struct{}, len(keys))
	candidates := make(map[string]struct{})
	for _, key := range keys {
		present[key] = struct{}{}
		if year, ok := model.YearToken(key); ok {
			candidates[year] = struct{}{}
		}
	}

	years := make([]string, 0, len(candidates))
	for y := range candidates {
		if complete(y, present) {
			years = append(years, y)
		}
	}
	sort.Strings(years)
	return years
}

func complete(year string, present map[string]struct{}) bool {
	for _, kind := range model.ArtifactKinds {
		if _, ok := present[model.ArtifactKey(year, kind)]; !ok {
			return false
		}
	}
	return true
}
