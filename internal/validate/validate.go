package validate

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

var reID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ID validates a resource identifier taken from a path.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Required trims s and reports whether anything is left.
func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Truthy applies JavaScript truthiness to a raw JSON value. Absent, null,
// false, 0 and "" are false; everything else is true.
func Truthy(raw json.RawMessage) bool {
	if len(bytes.TrimSpace(raw)) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return true
	}
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}

// Boolean casts a truthy raw value the way a stored boolean field would:
// the strings "false", "0", "no" and "off" read as false. Any other truthy
// value is true.
func Boolean(raw json.RawMessage) bool {
	if !Truthy(raw) {
		return false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "false", "0", "no", "off":
		return false
	}
	return true
}

// LiteralFalse reports whether raw is exactly the JSON boolean false.
func LiteralFalse(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "false"
}
