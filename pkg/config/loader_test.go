package config_test

import (
	"errors"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputguard/pkg/config"
	"github.com/dmitrymomot/inputguard/pkg/validator"
)

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type TestConfigSingleton struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type TestConfigDifferent1 struct {
	Value string `env:"VALUE_TYPE1" envDefault:"default1"`
}

type TestConfigDifferent2 struct {
	Value string `env:"VALUE_TYPE2" envDefault:"default2"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("INPUTGUARD_TEST_STRING_SUCCESS", "test_value")
	t.Setenv("INPUTGUARD_TEST_INT_SUCCESS", "100")
	t.Setenv("INPUTGUARD_TEST_BOOL_SUCCESS", "false")

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.False(t, cfg.TestBool)
}

func TestLoad_IgnoresUnprefixedVariables(t *testing.T) {
	os.Unsetenv("INPUTGUARD_TEST_STRING_DEFAULT")
	os.Unsetenv("INPUTGUARD_TEST_INT_DEFAULT")
	os.Unsetenv("INPUTGUARD_TEST_BOOL_DEFAULT")
	t.Setenv("TEST_STRING_DEFAULT", "unprefixed")

	var cfg TestConfigDefault
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.True(t, cfg.TestBool)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("INPUTGUARD_REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrParsingConfig))

	t.Run("retry after fixing the environment", func(t *testing.T) {
		t.Setenv("INPUTGUARD_REQUIRED_VALUE", "present")

		var cfg RequiredConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "present", cfg.Required)
	})
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("INPUTGUARD_TEST_STRING_SINGLETON", "first_value")

	var firstConfig TestConfigSingleton
	require.NoError(t, config.Load(&firstConfig))

	t.Setenv("INPUTGUARD_TEST_STRING_SINGLETON", "second_value")

	var secondConfig TestConfigSingleton
	require.NoError(t, config.Load(&secondConfig))

	assert.Equal(t, "first_value", secondConfig.TestString, "second load should return the cached value")
}

func TestLoad_DifferentTypes(t *testing.T) {
	t.Setenv("INPUTGUARD_VALUE_TYPE1", "test_type1")
	t.Setenv("INPUTGUARD_VALUE_TYPE2", "test_type2")

	var config1 TestConfigDifferent1
	require.NoError(t, config.Load(&config1))

	var config2 TestConfigDifferent2
	require.NoError(t, config.Load(&config2))

	assert.Equal(t, "test_type1", config1.Value)
	assert.Equal(t, "test_type2", config2.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess
	err := config.Load(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	type mustConfig struct {
		Required string `env:"MUST_REQUIRED_VALUE,required"`
	}
	os.Unsetenv("INPUTGUARD_MUST_REQUIRED_VALUE")

	assert.Panics(t, func() {
		var cfg mustConfig
		config.MustLoad(&cfg)
	})
}

func TestLoad_App(t *testing.T) {
	t.Setenv("INPUTGUARD_LOG_LEVEL", "debug")
	t.Setenv("INPUTGUARD_LOG_FORMAT", "json")

	var app config.App
	require.NoError(t, config.Load(&app))

	assert.Equal(t, "debug", app.LogLevel)
	assert.Equal(t, "json", app.LogFormat)
	assert.Equal(t, "inputguard.yaml", app.Profiles)
}

func TestLoadField(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f, err := config.LoadField()
		require.NoError(t, err)

		assert.Equal(t, "custom", f.Classification)
		assert.True(t, math.IsNaN(f.MinNumber))
		assert.True(t, math.IsNaN(f.MaxNumber))
		assert.Equal(t, validator.Unlimited, f.MinLength)
		assert.Equal(t, validator.Unlimited, f.MaxLength)
		assert.Equal(t, validator.Unlimited, f.MaxDecimalDigits)
		assert.False(t, f.EmptyIsValid)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("INPUTGUARD_FIELD_CLASSIFICATION", "decimal")
		t.Setenv("INPUTGUARD_FIELD_DECIMAL_SEPARATOR", ",")
		t.Setenv("INPUTGUARD_FIELD_MIN_NUMBER", "0")
		t.Setenv("INPUTGUARD_FIELD_MAX_NUMBER", "100")
		t.Setenv("INPUTGUARD_FIELD_MAX_DECIMAL_DIGITS", "2")
		t.Setenv("INPUTGUARD_FIELD_EMPTY_IS_VALID", "true")

		f, err := config.LoadField()
		require.NoError(t, err)

		assert.Equal(t, "decimal", f.Classification)
		assert.Equal(t, ",", f.Separator)
		assert.Equal(t, 0.0, f.MinNumber)
		assert.Equal(t, 100.0, f.MaxNumber)
		assert.Equal(t, 2, f.MaxDecimalDigits)
		assert.True(t, f.EmptyIsValid)
	})

	t.Run("invalid classification", func(t *testing.T) {
		t.Setenv("INPUTGUARD_FIELD_CLASSIFICATION", "currency")

		_, err := config.LoadField()
		assert.ErrorIs(t, err, config.ErrInvalidField)
	})

	t.Run("unparsable number", func(t *testing.T) {
		t.Setenv("INPUTGUARD_FIELD_MIN_LENGTH", "two")

		_, err := config.LoadField()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}
