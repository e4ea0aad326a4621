package validator_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputguard/pkg/validator"
)

func TestReformat(t *testing.T) {
	testCases := []struct {
		input  string
		digits int
		want   string
	}{
		{"3.14159", 2, "3.14"},
		{"3.999", 2, "3.99"},
		{"9.999", 0, "9"},
		{"3.10", 2, "3.1"},
		{"3.00", 2, "3"},
		{"-1.005", 2, "-1"},
		{"+0.50", 3, "+0.5"},
		{".5", 0, "0"},
		{".25", 1, "0.2"},
		{"5.", 2, "5"},
		{"12", 2, "12"},
		{"007.125", 2, "007.12"},
		{"2.5", 2, "2.5"},
	}

	for _, tc := range testCases {
		e := newEngine(t,
			validator.WithClassification(validator.Decimal),
			validator.WithMaxDecimalDigits(tc.digits),
		)
		got := e.Reformat(tc.input)
		assert.Equal(t, tc.want, got, "input %q digits %d", tc.input, tc.digits)
		assert.Equal(t, got, e.Reformat(got), "reformat must be idempotent for %q", tc.input)
		assert.True(t, e.Valid(got), "reformatted %q must stay valid", got)
	}

	t.Run("uses the configured separator", func(t *testing.T) {
		e := newEngine(t,
			validator.WithClassification(validator.DecimalRestrictive),
			validator.WithSeparator(","),
			validator.WithMaxDecimalDigits(2),
		)
		assert.Equal(t, "3,14", e.Reformat("3,14159"))
		assert.Equal(t, "3", e.Reformat("3,001"))
	})

	t.Run("leaves other texts unchanged", func(t *testing.T) {
		unlimited := newEngine(t, validator.WithClassification(validator.Decimal))
		assert.Equal(t, "3.14159", unlimited.Reformat("3.14159"))

		percent := newEngine(t,
			validator.WithClassification(validator.Percent),
			validator.WithMaxDecimalDigits(1),
		)
		assert.Equal(t, "3.14%", percent.Reformat("3.14%"))

		decimal := newEngine(t,
			validator.WithClassification(validator.Decimal),
			validator.WithMaxDecimalDigits(1),
		)
		assert.Equal(t, "abc", decimal.Reformat("abc"))
		assert.Equal(t, "", decimal.Reformat(""))
	})
}

func TestProcess(t *testing.T) {
	t.Run("reformats and re-evaluates", func(t *testing.T) {
		calls := 0
		e := newEngine(t,
			validator.WithClassification(validator.Decimal),
			validator.WithMaxDecimalDigits(2),
			validator.WithExternal(func(string) (bool, error) {
				calls++
				return true, nil
			}),
		)

		res, err := e.Process("3.14159")
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.True(t, res.Reformatted)
		assert.Equal(t, "3.14", res.Text)
		assert.Equal(t, 2, calls)

		v, err := strconv.ParseFloat(res.Text, 64)
		require.NoError(t, err)
		assert.InDelta(t, 3.14, v, 1e-9)
	})

	t.Run("text already in shape", func(t *testing.T) {
		e := newEngine(t,
			validator.WithClassification(validator.Decimal),
			validator.WithMaxDecimalDigits(2),
		)

		res, err := e.Process("2.5")
		require.NoError(t, err)
		assert.Equal(t, validator.Result{Valid: true, Text: "2.5"}, res)
	})

	t.Run("invalid text is not reformatted", func(t *testing.T) {
		e := newEngine(t,
			validator.WithClassification(validator.Decimal),
			validator.WithNumberRange(validator.NoBound(), validator.NewBound(1)),
			validator.WithMaxDecimalDigits(0),
		)

		res, err := e.Process("1.5")
		require.NoError(t, err)
		assert.Equal(t, validator.Result{Text: "1.5"}, res)
	})

	t.Run("truncation below the minimum keeps the input", func(t *testing.T) {
		e := newEngine(t,
			validator.WithClassification(validator.Decimal),
			validator.WithNumberRange(validator.NewBound(0.001), validator.NewBound(10)),
			validator.WithMaxDecimalDigits(2),
		)
		require.True(t, e.Valid("0.005"))
		require.False(t, e.Valid("0"))

		res, err := e.Process("0.005")
		require.NoError(t, err)
		assert.Equal(t, validator.Result{Valid: true, Text: "0.005"}, res)
	})

	t.Run("truncation above a negative maximum keeps the input", func(t *testing.T) {
		e := newEngine(t,
			validator.WithClassification(validator.DecimalRestrictive),
			validator.WithNumberRange(validator.NoBound(), validator.NewBound(-0.5)),
			validator.WithMaxDecimalDigits(0),
		)

		res, err := e.Process("-0.9")
		require.NoError(t, err)
		assert.Equal(t, validator.Result{Valid: true, Text: "-0.9"}, res)
	})

	t.Run("reformatted text passes evaluate", func(t *testing.T) {
		e := newEngine(t,
			validator.WithClassification(validator.Decimal),
			validator.WithNumberRange(validator.NewBound(0.5), validator.NewBound(10)),
			validator.WithMaxDecimalDigits(1),
		)

		for _, text := range []string{"0.5", "0.55", "0.59", "9.99", "3.14159", "1.000"} {
			res, err := e.Process(text)
			require.NoError(t, err, text)
			require.True(t, res.Valid, text)
			assert.True(t, e.Valid(res.Text), "input %q produced %q", text, res.Text)
		}
	})
}
