package main

import (
	"math/rand"
	"sort"

	"github.com/maruel/natural"
)

// Ordering decides the playback order of a scanned file list. Apply returns
// a new slice without modifying the original.
type Ordering interface {
	Apply(paths []string) []string
	Name() string
}

// NaturalOrdering sorts paths in natural order (file1, file2, file10).
type NaturalOrdering struct{}

func (NaturalOrdering) Apply(paths []string) []string {
	result := make([]string, len(paths))
	copy(result, paths)
	sort.Slice(result, func(i, j int) bool {
		return natural.Less(result[i], result[j])
	})
	return result
}

func (NaturalOrdering) Name() string { return "Natural" }

// ScanOrdering preserves the first-seen scan order.
type ScanOrdering struct{}

func (ScanOrdering) Apply(paths []string) []string {
	result := make([]string, len(paths))
	copy(result, paths)
	return result
}

func (ScanOrdering) Name() string { return "Scan Order" }

// ShuffleOrdering permutes the list once with a uniform shuffle. Navigation
// afterwards walks this fixed permutation; nothing is re-randomized per step.
type ShuffleOrdering struct {
	Rand *rand.Rand
}

func (o ShuffleOrdering) Apply(paths []string) []string {
	result := make([]string, len(paths))
	copy(result, paths)
	o.Rand.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

func (ShuffleOrdering) Name() string { return "Shuffle" }

// PlaybackOrdering picks the ordering for the configured settings.
func PlaybackOrdering(settings *Settings, r *rand.Rand) Ordering {
	if settings.Randomize {
		return ShuffleOrdering{Rand: r}
	}
	return ScanOrdering{}
}
