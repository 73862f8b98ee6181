// Package geo resolves ZIP codes to a single rate area
package geo

import (
	"slcsp/decision/rating"
)

// ZipArea is one row of the ZIP to rate area mapping
type ZipArea struct {
	Zipcode string
	Area    rating.RateArea
}

// Resolution is the outcome of resolving one ZIP code
type Resolution struct {
	Area       rating.RateArea
	Candidates int // distinct areas observed for the ZIP
}

// Unique reports whether exactly one distinct area was observed
func (r Resolution) Unique() bool {
	return r.Candidates == 1
}

// ZipAreaMap holds a resolution for every ZIP code seen in the mapping
type ZipAreaMap map[string]Resolution

// Area returns the ZIP code's rate area. ok is false when the ZIP is unknown
// or spans several areas.
func (m ZipAreaMap) Area(zipcode string) (area rating.RateArea, ok bool) {
	res, found := m[zipcode]
	if !found || !res.Unique() {
		return rating.RateArea{}, false
	}
	return res.Area, true
}

// Candidates returns how many distinct areas the ZIP code maps to
func (m ZipAreaMap) Candidates(zipcode string) int {
	return m[zipcode].Candidates
}

// Ambiguous returns the number of ZIP codes spanning more than one area
func (m ZipAreaMap) Ambiguous() int {
	n := 0
	for _, res := range m {
		if res.Candidates > 1 {
			n++
		}
	}
	return n
}

// ResolveZipAreas collects the distinct areas per ZIP code and keeps the area
// only where it is unique. Repeated identical rows collapse.
func ResolveZipAreas(rows []ZipArea) ZipAreaMap {
	sets := make(map[string]map[rating.RateArea]struct{})
	for _, row := range rows {
		set, ok := sets[row.Zipcode]
		if !ok {
			set = make(map[rating.RateArea]struct{})
			sets[row.Zipcode] = set
		}
		set[row.Area] = struct{}{}
	}

	resolved := make(ZipAreaMap, len(sets))
	for zipcode, set := range sets {
		resolved[zipcode] = onlyIfUnique(set)
	}
	return resolved
}

func onlyIfUnique(set map[rating.RateArea]struct{}) Resolution {
	res := Resolution{Candidates: len(set)}
	if len(set) != 1 {
		return res
	}
	for area := range set {
		res.Area = area
	}
	return res
}
