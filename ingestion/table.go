// Package ingestion parses the three CSV inputs into typed records.
// All validation happens here; malformed input fails on the first bad row.
package ingestion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	ierrors "slcsp/pkg/errors"
)

const byteOrderMark = "\ufeff"

// Column names
const (
	ColZipcode    = "zipcode"
	ColState      = "state"
	ColMetalLevel = "metal_level"
	ColRate       = "rate"
	ColRateArea   = "rate_area"
)

// table reads a headed CSV stream and looks fields up by column name
type table struct {
	source  string
	reader  *csv.Reader
	columns map[string]int
}

// row is one data record with its 1-based line number in the source
type row struct {
	t      *table
	fields []string
	line   int
}

func newTable(r io.Reader, source string, required ...string) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ierrors.NewEmptyInputError(source)
	}
	if err != nil {
		return nil, ierrors.NewMalformedCSVError(source, 1, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, byteOrderMark)
		}
		// a repeated header name resolves to its last column
		columns[strings.TrimSpace(name)] = i
	}

	for _, col := range required {
		if _, ok := columns[col]; !ok {
			return nil, ierrors.NewMissingColumnError(source, col)
		}
	}

	return &table{source: source, reader: reader, columns: columns}, nil
}

// next returns the following record, or io.EOF when the stream is exhausted
func (t *table) next() (*row, error) {
	fields, err := t.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		line := 0
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			line = parseErr.StartLine
		}
		return nil, ierrors.NewMalformedCSVError(t.source, line, err)
	}

	line, _ := t.reader.FieldPos(0)
	return &row{t: t, fields: fields, line: line}, nil
}

// field returns the trimmed value of a required column
func (r *row) field(col string) (string, error) {
	v, err := r.rawField(col)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

// rawField returns a required column exactly as read. Values compared or
// echoed verbatim (metal level, ZIP codes) go through here.
func (r *row) rawField(col string) (string, error) {
	i := r.t.columns[col]
	if i >= len(r.fields) || strings.TrimSpace(r.fields[i]) == "" {
		return "", ierrors.NewMissingFieldError(r.t.source, r.line, col)
	}
	return r.fields[i], nil
}

func (r *row) rate() (decimal.Decimal, error) {
	raw, err := r.field(ColRate)
	if err != nil {
		return decimal.Decimal{}, err
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, ierrors.NewInvalidRateError(r.t.source, r.line, raw, err)
	}
	if rate.IsNegative() {
		return decimal.Decimal{}, ierrors.NewInvalidRateError(r.t.source, r.line, raw, nil)
	}
	return rate, nil
}

func (r *row) rateArea() (int, error) {
	raw, err := r.field(ColRateArea)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ierrors.NewInvalidRateAreaError(r.t.source, r.line, raw, err)
	}
	if n <= 0 {
		return 0, ierrors.NewInvalidRateAreaError(r.t.source, r.line, raw, nil)
	}
	return n, nil
}

// readFile opens path and hands it to parse, labelling errors with what the file holds
func readFile[T any](path, what string, parse func(io.Reader, string) (T, error)) (T, error) {
	var zero T

	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("failed to open %s: %w", what, err)
	}
	defer f.Close()

	out, err := parse(f, path)
	if err != nil {
		return zero, fmt.Errorf("failed to read %s: %w", what, err)
	}
	return out, nil
}
