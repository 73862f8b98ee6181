// Package slcsp answers second-lowest-cost Silver plan queries per ZIP code
// Combines the ZIP resolver and the rate index into formatted results
package slcsp

import (
	"github.com/shopspring/decimal"

	"slcsp/decision/geo"
	"slcsp/decision/rating"
)

// Reason explains how a lookup ended
type Reason string

const (
	ReasonResolved          Reason = "resolved"
	ReasonUnknownZip        Reason = "unknown_zip"
	ReasonAmbiguousZip      Reason = "ambiguous_zip"
	ReasonUnknownArea       Reason = "unknown_area"
	ReasonInsufficientPlans Reason = "insufficient_plans"
)

// Reasons lists every Reason in reporting order
var Reasons = []Reason{
	ReasonResolved,
	ReasonUnknownZip,
	ReasonAmbiguousZip,
	ReasonUnknownArea,
	ReasonInsufficientPlans,
}

// Result is the answer for one queried ZIP code
type Result struct {
	Zipcode string
	Rate    decimal.NullDecimal
	Area    rating.RateArea // zero unless the ZIP resolved
	Reason  Reason
}

// FormattedRate is the rate as written to output, empty when undetermined
func (r Result) FormattedRate() string {
	return FormatRate(r.Rate)
}

// FormatRate renders a rate with exactly two decimals, rounding half away
// from zero on the exact decimal value. An invalid rate renders empty.
func FormatRate(rate decimal.NullDecimal) string {
	if !rate.Valid {
		return ""
	}
	return rate.Decimal.StringFixed(2)
}

// Lookup resolves one ZIP code. It never fails: every missing link yields an
// empty rate with the matching Reason.
func Lookup(zipcode string, areas geo.ZipAreaMap, index rating.RateIndex) Result {
	result := Result{Zipcode: zipcode}

	area, ok := areas.Area(zipcode)
	if !ok {
		result.Reason = ReasonUnknownZip
		if areas.Candidates(zipcode) > 1 {
			result.Reason = ReasonAmbiguousZip
		}
		return result
	}
	result.Area = area

	rate, known := index.Lookup(area)
	switch {
	case !known:
		result.Reason = ReasonUnknownArea
	case !rate.Valid:
		result.Reason = ReasonInsufficientPlans
	default:
		result.Rate = rate
		result.Reason = ReasonResolved
	}
	return result
}

// Calculate answers every query in order. Duplicate ZIP codes are answered
// once per occurrence.
func Calculate(queries []string, areas geo.ZipAreaMap, index rating.RateIndex) []Result {
	results := make([]Result, 0, len(queries))
	for _, zipcode := range queries {
		results = append(results, Lookup(zipcode, areas, index))
	}
	return results
}
