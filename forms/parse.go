// Package forms normalizes untyped dashboard form submissions into the typed
// configuration records in models. Normalization never fails: an absent or
// malformed field silently resolves to its documented default. The fallback
// behavior lives in the exported helpers so it stays visible and testable
// instead of being scattered as inline literals.
package forms

import (
	"net/url"
	"strconv"
	"strings"
)

// ParseIntWithDefault parses raw as a non-negative integer, returning def
// when raw is empty, malformed or negative. Zero is a valid value.
func ParseIntWithDefault(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return def
	}
	return n
}

// ParsePositiveIntWithDefault parses raw as a positive integer, returning def
// when raw is empty, malformed, zero or negative. Matches the legacy
// "parseInt(x) || default" contract where zero is falsy.
func ParsePositiveIntWithDefault(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// ParsePositiveFloatWithDefault parses raw as a positive float, returning def
// when raw is empty, malformed, zero or negative. Same falsy-zero contract as
// ParsePositiveIntWithDefault.
func ParsePositiveFloatWithDefault(raw string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}

// ParseCheckbox reports whether the field carries the HTML checkbox sentinel
// "on". Anything else, including absence, reads as false.
func ParseCheckbox(values url.Values, key string) bool {
	return values.Get(key) == "on"
}

// ParseEnum returns raw when it is one of allowed, else def.
func ParseEnum(raw string, def string, allowed []string) string {
	for _, a := range allowed {
		if raw == a {
			return raw
		}
	}
	return def
}

// ParseOptionalID returns a pointer to the trimmed value, or nil when the
// field is empty. Used for optional channel/role references.
func ParseOptionalID(values url.Values, key string) *string {
	v := strings.TrimSpace(values.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

// ParseOptionalText returns a pointer to the raw value, or nil when the field
// is empty. Unlike ParseOptionalID it preserves inner whitespace.
func ParseOptionalText(values url.Values, key string) *string {
	v := values.Get(key)
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}
