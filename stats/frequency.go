package stats

import "sort"

// FrequencyEntry is a value and the amount of times it was seen
type FrequencyEntry[K comparable] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// FrequencyTable counts occurrences of values and remembers the order in which each value was first seen.
// That order breaks ties, so results do not depend on map iteration
type FrequencyTable[K comparable] struct {
	counts map[K]int
	order  []K
}

func NewFrequencyTable[K comparable]() *FrequencyTable[K] {
	return &FrequencyTable[K]{
		counts: make(map[K]int),
	}
}

func (ft *FrequencyTable[K]) Add(value K) {
	if _, ok := ft.counts[value]; !ok {
		ft.order = append(ft.order, value)
	}
	ft.counts[value] += 1
}

// Len returns the amount of distinct values
func (ft *FrequencyTable[K]) Len() int {
	return len(ft.order)
}

// Mode returns the most frequent value. Ties go to the value seen first.
// The last return value is false if the table is empty
func (ft *FrequencyTable[K]) Mode() (K, int, bool) {
	return ft.ModeIn(ft.order)
}

// ModeIn returns the most frequent value among candidates. Ties go to the candidate that comes first
func (ft *FrequencyTable[K]) ModeIn(candidates []K) (K, int, bool) {
	var mode K
	maxCount := 0
	for _, candidate := range candidates {
		if count := ft.counts[candidate]; count > maxCount {
			mode = candidate
			maxCount = count
		}
	}
	return mode, maxCount, maxCount > 0
}

// Entries returns every value sorted by descending count. Values with the same count keep the order
// in which they were first seen
func (ft *FrequencyTable[K]) Entries() []FrequencyEntry[K] {
	entries := make([]FrequencyEntry[K], 0, len(ft.order))
	for _, value := range ft.order {
		entries = append(entries, FrequencyEntry[K]{Value: value, Count: ft.counts[value]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
