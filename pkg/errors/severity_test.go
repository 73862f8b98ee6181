package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "fatal", SeverityFatal.String())
	assert.Equal(t, "unknown", Severity(0).String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestIngestErrorMessage(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("invalid syntax")
	err := NewInvalidRateAreaError("zips.csv", 12, "x1", cause)

	assert.Equal(t,
		`[error] INVALID_RATE_AREA: Rate area must be a positive integer (zips.csv:12) column "rate_area" value "x1": invalid syntax`,
		err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestIngestErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewEmptyInputError("plans.csv")
	assert.Equal(t, "[fatal] EMPTY_INPUT: Input has no header row (plans.csv)", err.Error())
	assert.Nil(t, stderrors.Unwrap(err))
}

func TestMissingColumnPointsAtHeader(t *testing.T) {
	t.Parallel()

	err := NewMissingColumnError("slcsp.csv", "zipcode")
	assert.Equal(t, ErrCodeMissingColumn, err.Code)
	assert.Equal(t, 1, err.Line)
	assert.Contains(t, err.Error(), "Missing required column: zipcode")
}
