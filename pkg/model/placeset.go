// pkg/model/placeset.go
package model

import "strings"

// PlaceSet is the reference set of valid birthplace names, held in normalized
// form. It is built once per run and never mutated afterwards.
type PlaceSet struct {
	members map[string]struct{}
}

// NormalizePlace upper-cases and trims a place name. Both the reference list
// and membership probes go through the same normalization.
func NormalizePlace(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// NewPlaceSet builds a PlaceSet from raw names. Names that normalize to the
// empty string are dropped.
func NewPlaceSet(names []string) PlaceSet {
	members := make(map[string]struct{}, len(names))
	for _, name := range names {
		normalized := NormalizePlace(name)
		if normalized == "" {
			continue
		}
		members[normalized] = struct{}{}
	}
	return PlaceSet{members: members}
}

// Contains reports whether the normalized form of name is in the set.
func (p PlaceSet) Contains(name string) bool {
	_, ok := p.members[NormalizePlace(name)]
	return ok
}

// Len returns the number of distinct normalized places.
func (p PlaceSet) Len() int {
	return len(p.members)
}
