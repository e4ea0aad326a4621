package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputguard/pkg/validator"
)

func TestParseClassification(t *testing.T) {
	t.Run("accepts name variants", func(t *testing.T) {
		testCases := []struct {
			input string
			want  validator.Classification
		}{
			{"custom", validator.Custom},
			{"Integer", validator.Integer},
			{"DECIMAL", validator.Decimal},
			{"decimal_restrictive", validator.DecimalRestrictive},
			{"decimal-restrictive", validator.DecimalRestrictive},
			{" Decimal Restrictive ", validator.DecimalRestrictive},
			{"percent", validator.Percent},
			{"string", validator.String},
			{"email", validator.Email},
			{"url", validator.URL},
		}

		for _, tc := range testCases {
			got, err := validator.ParseClassification(tc.input)
			require.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, tc.want, got, "input %q", tc.input)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := validator.ParseClassification("phone")
		assert.ErrorIs(t, err, validator.ErrUnknownClassification)
	})

	t.Run("every classification round-trips through its name", func(t *testing.T) {
		all := validator.Classifications()
		assert.Len(t, all, 8)
		for _, c := range all {
			got, err := validator.ParseClassification(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, got)
		}
	})
}

func TestClassification_Text(t *testing.T) {
	t.Run("unmarshal", func(t *testing.T) {
		var c validator.Classification
		require.NoError(t, c.UnmarshalText([]byte("percent")))
		assert.Equal(t, validator.Percent, c)
		assert.Error(t, c.UnmarshalText([]byte("nope")))
		assert.Equal(t, validator.Percent, c)
	})

	t.Run("marshal unknown", func(t *testing.T) {
		_, err := validator.Classification(42).MarshalText()
		assert.ErrorIs(t, err, validator.ErrUnknownClassification)
		assert.Equal(t, "classification(42)", validator.Classification(42).String())
	})
}

func TestClassification_Traits(t *testing.T) {
	numeric := map[validator.Classification]bool{
		validator.Integer:            true,
		validator.Decimal:            true,
		validator.DecimalRestrictive: true,
		validator.Percent:            true,
	}
	reformattable := map[validator.Classification]bool{
		validator.Decimal:            true,
		validator.DecimalRestrictive: true,
	}

	for _, c := range validator.Classifications() {
		assert.Equal(t, numeric[c], c.IsNumeric(), "IsNumeric %s", c)
		assert.Equal(t, reformattable[c], c.Reformattable(), "Reformattable %s", c)
	}
	assert.False(t, validator.Classification(99).IsNumeric())
	assert.False(t, validator.Classification(99).Reformattable())
}
