package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// Decoder turns a possibly-absent stored string into a typed value.
type Decoder[T any] interface {
	SettingKey() string
	Fallback() T
	Decode(raw *string) T
}

// BooleanSetting is a flag stored as text. Only the exact string "true"
// decodes to true; every other present value, including "TRUE", "1" and
// the empty string, decodes to false. An absent value decodes to Default.
type BooleanSetting struct {
	Key     string
	Default bool
}

func (s BooleanSetting) SettingKey() string { return s.Key }

func (s BooleanSetting) Fallback() bool { return s.Default }

func (s BooleanSetting) Decode(raw *string) bool {
	if raw == nil {
		return s.Default
	}
	return *raw == "true"
}

// Validate accepts the two literals an admin may write for a flag.
func (s BooleanSetting) Validate(raw string) error {
	if raw != "true" && raw != "false" {
		return fmt.Errorf("%s must be \"true\" or \"false\"", s.Key)
	}
	return nil
}

// IntegerSetting is a number stored as base-10 text. Surrounding whitespace
// is ignored; an absent, empty or unparseable value decodes to Default.
type IntegerSetting struct {
	Key     string
	Default int
}

func (s IntegerSetting) SettingKey() string { return s.Key }

func (s IntegerSetting) Fallback() int { return s.Default }

func (s IntegerSetting) Decode(raw *string) int {
	if raw == nil {
		return s.Default
	}
	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return s.Default
	}
	return n
}

// Validate accepts non-negative base-10 integers.
func (s IntegerSetting) Validate(raw string) error {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s must be a base-10 integer", s.Key)
	}
	if n < 0 {
		return fmt.Errorf("%s must not be negative", s.Key)
	}
	return nil
}
