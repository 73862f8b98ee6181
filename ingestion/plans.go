package ingestion

import (
	"io"

	"slcsp/decision/rating"
)

// PlanCatalogue is the Silver subset of a plan file
type PlanCatalogue struct {
	Silver   []rating.Plan
	RowsRead int
}

// ReadPlans parses a plan catalogue and keeps Silver plans only. Rate and rate
// area are validated for Silver rows; other tiers are dropped unparsed.
func ReadPlans(r io.Reader, source string) (*PlanCatalogue, error) {
	t, err := newTable(r, source, ColState, ColMetalLevel, ColRate, ColRateArea)
	if err != nil {
		return nil, err
	}

	cat := &PlanCatalogue{Silver: []rating.Plan{}}
	for {
		rec, err := t.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		cat.RowsRead++

		metal, err := rec.rawField(ColMetalLevel)
		if err != nil {
			return nil, err
		}
		if !rating.IsSilver(metal) {
			continue
		}

		plan, err := parsePlan(rec)
		if err != nil {
			return nil, err
		}
		cat.Silver = append(cat.Silver, plan)
	}

	return cat, nil
}

func parsePlan(rec *row) (rating.Plan, error) {
	state, err := rec.field(ColState)
	if err != nil {
		return rating.Plan{}, err
	}
	area, err := rec.rateArea()
	if err != nil {
		return rating.Plan{}, err
	}
	rate, err := rec.rate()
	if err != nil {
		return rating.Plan{}, err
	}
	return rating.Plan{State: state, RateArea: area, Rate: rate}, nil
}

// LoadPlans reads the plan catalogue at path
func LoadPlans(path string) (*PlanCatalogue, error) {
	return readFile(path, "plan catalogue", ReadPlans)
}
