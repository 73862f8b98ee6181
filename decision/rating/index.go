// Package rating builds the per-rate-area index of second-lowest Silver rates
// This is the pricing side of the SLCSP pipeline; it never sees raw CSV
package rating

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// MetalSilver is the only metal level that enters the index
const MetalSilver = "Silver"

// RateArea identifies a rate area. The number alone is not unique across states.
type RateArea struct {
	State  string
	Number int
}

func (a RateArea) String() string {
	return fmt.Sprintf("%s %d", a.State, a.Number)
}

// Plan is a Silver plan reduced to the attributes the calculation needs
type Plan struct {
	State    string
	RateArea int
	Rate     decimal.Decimal
}

// Area returns the plan's compound rate area key
func (p Plan) Area() RateArea {
	return RateArea{State: p.State, Number: p.RateArea}
}

// IsSilver reports whether a metal level qualifies. Match is exact and case-sensitive.
func IsSilver(metalLevel string) bool {
	return metalLevel == MetalSilver
}

// RateIndex maps every area that has at least one Silver plan to its
// second-lowest rate. An invalid value means the area has fewer than two plans.
type RateIndex map[RateArea]decimal.NullDecimal

// Lookup returns the second-lowest rate for an area. known is false when the
// area never appeared in the catalogue.
func (idx RateIndex) Lookup(area RateArea) (rate decimal.NullDecimal, known bool) {
	rate, known = idx[area]
	return rate, known
}

// Areas returns the indexed areas in a stable order
func (idx RateIndex) Areas() []RateArea {
	areas := make([]RateArea, 0, len(idx))
	for a := range idx {
		areas = append(areas, a)
	}
	sort.Slice(areas, func(i, j int) bool {
		if areas[i].State != areas[j].State {
			return areas[i].State < areas[j].State
		}
		return areas[i].Number < areas[j].Number
	})
	return areas
}

// BuildRateIndex groups plans by rate area and reduces each group to its
// second-lowest rate
func BuildRateIndex(plans []Plan) RateIndex {
	grouped := make(map[RateArea][]decimal.Decimal)
	for _, p := range plans {
		grouped[p.Area()] = append(grouped[p.Area()], p.Rate)
	}

	idx := make(RateIndex, len(grouped))
	for area, rates := range grouped {
		idx[area] = SecondLowest(rates)
	}
	return idx
}

// SecondLowest returns the element at position 1 of the ascending-sorted
// rates. Equal rates count separately. The input slice is not modified.
func SecondLowest(rates []decimal.Decimal) decimal.NullDecimal {
	if len(rates) < 2 {
		return decimal.NullDecimal{}
	}

	sorted := make([]decimal.Decimal, len(rates))
	copy(sorted, rates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LessThan(sorted[j])
	})

	return decimal.NewNullDecimal(sorted[1])
}
