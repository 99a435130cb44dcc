package main

import (
	"slices"
	"strings"

	"github.com/maruel/natural"
)

// SortStrategy orders collected image paths
type SortStrategy interface {
	// Sort returns a new sorted slice without modifying the original
	Sort(images []ImagePath) []ImagePath
	// Name returns the human-readable name of the strategy
	Name() string
	// ID returns the numeric identifier for config storage
	ID() int
}

// pathSortStrategy sorts by Path with a comparison function; a nil less
// keeps the entry order.
type pathSortStrategy struct {
	id   int
	name string
	less func(a, b string) bool
}

func (s pathSortStrategy) Sort(images []ImagePath) []ImagePath {
	result := slices.Clone(images)
	if result == nil {
		result = []ImagePath{}
	}
	if s.less == nil {
		return result
	}
	slices.SortStableFunc(result, func(a, b ImagePath) int {
		switch {
		case s.less(a.Path, b.Path):
			return -1
		case s.less(b.Path, a.Path):
			return 1
		default:
			return 0
		}
	})
	return result
}

func (s pathSortStrategy) Name() string { return s.name }
func (s pathSortStrategy) ID() int { return s.id }

var sortStrategies = []pathSortStrategy{
	{id: SortNatural, name: "Natural", less: natural.Less},
	{id: SortSimple, name: "Simple", less: func(a, b string) bool { return strings.Compare(a, b) < 0 }},
	{id: SortEntryOrder, name: "Entry Order"},
}

// GetSortStrategy returns the strategy for a sort method, natural by default
func GetSortStrategy(sortMethod int) SortStrategy {
	for _, s := range sortStrategies {
		if s.id == sortMethod {
			return s
		}
	}
	return sortStrategies[0]
}

// GetAllSortStrategies returns all available sort strategies
func GetAllSortStrategies() []SortStrategy {
	all := make([]SortStrategy, len(sortStrategies))
	for i, s := range sortStrategies {
		all[i] = s
	}
	return all
}

// parseSortMethod maps a -sort flag value to a sort method
func parseSortMethod(name string) (int, bool) {
	for _, s := range sortStrategies {
		if strings.EqualFold(strings.ReplaceAll(s.name, " ", ""), strings.ReplaceAll(name, "-", "")) {
			return s.id, true
		}
	}
	return 0, false
}
