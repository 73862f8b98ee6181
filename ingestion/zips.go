package ingestion

import (
	"io"

	"slcsp/decision/geo"
	"slcsp/decision/rating"
)

// ReadZipAreas parses the ZIP to rate area mapping. County and name columns are ignored.
func ReadZipAreas(r io.Reader, source string) ([]geo.ZipArea, error) {
	t, err := newTable(r, source, ColZipcode, ColState, ColRateArea)
	if err != nil {
		return nil, err
	}

	rows := []geo.ZipArea{}
	for {
		rec, err := t.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		zipcode, err := rec.rawField(ColZipcode)
		if err != nil {
			return nil, err
		}
		state, err := rec.field(ColState)
		if err != nil {
			return nil, err
		}
		area, err := rec.rateArea()
		if err != nil {
			return nil, err
		}

		rows = append(rows, geo.ZipArea{
			Zipcode: zipcode,
			Area:    rating.RateArea{State: state, Number: area},
		})
	}

	return rows, nil
}

// LoadZipAreas reads the ZIP mapping at path
func LoadZipAreas(path string) ([]geo.ZipArea, error) {
	return readFile(path, "zip mapping", ReadZipAreas)
}
