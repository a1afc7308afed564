package model

import (
	"database/sql/driver"
	"docai/shared/constant"
	"fmt"
	"time"
)

// Clock is a time of day with minute precision, stored in a TIME column.
type Clock struct {
	Hour   int
	Minute int
}

func ParseClock(value string) (Clock, error) {
	parsed, err := time.Parse(constant.HourFormat, value)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time %q, expected HH:MM: %w", value, err)
	}

	return Clock{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Value implements driver.Valuer.
func (c Clock) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", c.Hour, c.Minute), nil
}

// Scan implements sql.Scanner.
func (c *Clock) Scan(src any) error {
	switch value := src.(type) {
	case time.Time:
		c.Hour, c.Minute = value.Hour(), value.Minute()

		return nil
	case []byte:
		return c.scanString(string(value))
	case string:
		return c.scanString(value)
	case nil:
		*c = Clock{}

		return nil
	default:
		return fmt.Errorf("unsupported clock source %T", src)
	}
}

func (c *Clock) scanString(value string) error {
	layout := constant.SQLClockFormat
	if len(value) == len(constant.HourFormat) {
		layout = constant.HourFormat
	}

	// TIME columns may carry fractional seconds; only the minute is kept.
	if len(value) > len(constant.SQLClockFormat) {
		value = value[:len(constant.SQLClockFormat)]
	}

	parsed, err := time.Parse(layout, value)
	if err != nil {
		return fmt.Errorf("failed to scan clock %q: %w", value, err)
	}

	c.Hour, c.Minute = parsed.Hour(), parsed.Minute()

	return nil
}
