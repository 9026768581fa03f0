package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntWithDefault(t *testing.T) {
	t.Run("parses valid integers", func(t *testing.T) {
		assert.Equal(t, 2, ParseIntWithDefault("2", 5))
		assert.Equal(t, 0, ParseIntWithDefault("0", 5))
		assert.Equal(t, 100, ParseIntWithDefault(" 100 ", 5))
	})

	t.Run("falls back on malformed input", func(t *testing.T) {
		assert.Equal(t, 5, ParseIntWithDefault("abc", 5))
		assert.Equal(t, 5, ParseIntWithDefault("", 5))
		assert.Equal(t, 5, ParseIntWithDefault("1.5", 5))
	})

	t.Run("falls back on negative input", func(t *testing.T) {
		assert.Equal(t, 5, ParseIntWithDefault("-1", 5))
	})
}

func TestParsePositiveIntWithDefault(t *testing.T) {
	t.Run("parses positive integers", func(t *testing.T) {
		assert.Equal(t, 300, ParsePositiveIntWithDefault("300", 60))
	})

	t.Run("treats zero as falsy", func(t *testing.T) {
		assert.Equal(t, 300, ParsePositiveIntWithDefault("0", 300))
	})

	t.Run("falls back on malformed or negative input", func(t *testing.T) {
		assert.Equal(t, 60, ParsePositiveIntWithDefault("", 60))
		assert.Equal(t, 60, ParsePositiveIntWithDefault("x", 60))
		assert.Equal(t, 60, ParsePositiveIntWithDefault("-5", 60))
	})
}

func TestParsePositiveFloatWithDefault(t *testing.T) {
	t.Run("parses floats", func(t *testing.T) {
		assert.Equal(t, 2.5, ParsePositiveFloatWithDefault("2.5", 1.0))
	})

	t.Run("zero and negatives fall back", func(t *testing.T) {
		assert.Equal(t, 1.5, ParsePositiveFloatWithDefault("0", 1.5))
		assert.Equal(t, 1.5, ParsePositiveFloatWithDefault("-0.5", 1.5))
	})

	t.Run("malformed falls back", func(t *testing.T) {
		assert.Equal(t, 1.5, ParsePositiveFloatWithDefault("heavy", 1.5))
	})
}

func TestParseCheckbox(t *testing.T) {
	values := url.Values{}
	values.Set("enabled", "on")
	values.Set("other", "true")

	assert.True(t, ParseCheckbox(values, "enabled"))
	assert.False(t, ParseCheckbox(values, "other"), "only the 'on' sentinel counts")
	assert.False(t, ParseCheckbox(values, "missing"))
}

func TestParseEnum(t *testing.T) {
	allowed := []string{"quarantine", "kick", "ban"}

	assert.Equal(t, "kick", ParseEnum("kick", "quarantine", allowed))
	assert.Equal(t, "quarantine", ParseEnum("nuke", "quarantine", allowed))
	assert.Equal(t, "quarantine", ParseEnum("", "quarantine", allowed))
}

func TestParseOptionalID(t *testing.T) {
	values := url.Values{}
	values.Set("channel", " 123456789012345678 ")
	values.Set("empty", "")

	got := ParseOptionalID(values, "channel")
	assert.NotNil(t, got)
	assert.Equal(t, "123456789012345678", *got)

	assert.Nil(t, ParseOptionalID(values, "empty"))
	assert.Nil(t, ParseOptionalID(values, "missing"))
}
