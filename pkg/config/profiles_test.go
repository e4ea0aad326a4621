package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputguard/pkg/config"
	"github.com/dmitrymomot/inputguard/pkg/validator"
)

const profilesYAML = `
fields:
  amount:
    classification: decimal
    separator: ","
    min_number: 0
    max_number: 1000
    max_decimal_digits: 2
  nickname:
    classification: string
    min_length: 2
    max_length: 16
  code:
    custom_pattern: "^[A-Z]{2}[0-9]{4}$"
    empty_is_valid: true
`

func TestLoadProfiles(t *testing.T) {
	p, err := config.LoadProfiles(strings.NewReader(profilesYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"amount", "code", "nickname"}, p.Names())
	assert.Equal(t, 3, p.Len())

	amount, err := p.Get("amount")
	require.NoError(t, err)
	assert.Equal(t, "decimal", amount.Classification)
	assert.Equal(t, 1000.0, amount.MaxNumber)
	assert.Equal(t, -1, amount.MaxLength, "omitted keys keep defaults")

	engines, err := p.Engines()
	require.NoError(t, err)
	require.Len(t, engines, 3)

	res, err := engines["amount"].Process("12,345")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "12,34", res.Text)

	assert.False(t, engines["nickname"].Valid("x"))
	assert.True(t, engines["nickname"].Valid("xy"))
	assert.True(t, engines["code"].Valid(""))
	assert.True(t, engines["code"].Valid("AB1234"))
}

func TestLoadProfiles_Empty(t *testing.T) {
	p, err := config.LoadProfiles(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, p.Names())
}

func TestLoadProfiles_Errors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.LoadProfiles(strings.NewReader("fields: [oops"))
		assert.ErrorIs(t, err, config.ErrParsingProfiles)
	})

	t.Run("wrong value type", func(t *testing.T) {
		_, err := config.LoadProfiles(strings.NewReader("fields:\n  a:\n    min_length: many\n"))
		assert.ErrorIs(t, err, config.ErrParsingProfiles)
	})

	t.Run("invalid field", func(t *testing.T) {
		_, err := config.LoadProfiles(strings.NewReader("fields:\n  a:\n    classification: money\n"))
		assert.ErrorIs(t, err, config.ErrInvalidField)
	})
}

func TestProfiles_UnknownField(t *testing.T) {
	p, err := config.LoadProfiles(strings.NewReader(profilesYAML))
	require.NoError(t, err)

	_, err = p.Get("missing")
	assert.ErrorIs(t, err, config.ErrUnknownField)

	_, err = p.Engine("missing")
	assert.ErrorIs(t, err, config.ErrUnknownField)
}

func TestProfiles_EngineOptions(t *testing.T) {
	p, err := config.LoadProfiles(strings.NewReader(profilesYAML))
	require.NoError(t, err)

	e, err := p.Engine("nickname", validator.WithEmptyIsValid(true))
	require.NoError(t, err)
	assert.True(t, e.Valid(""))
}

func TestLoadProfilesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputguard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(profilesYAML), 0o600))

	p, err := config.LoadProfilesFile(path)
	require.NoError(t, err)
	assert.Len(t, p.Names(), 3)

	_, err = config.LoadProfilesFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrReadingProfiles)
}
