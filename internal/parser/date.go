package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	inputDateLayout   = "2006-01-02"
	displayDateLayout = "Jan 2 2006"
)

// NormalizeDate turns "YYYY-MM-DD" or "YYYY-MM-DD HHMM" into the display form,
// e.g. "2024-12-02 1800" becomes "Dec 2 2024 6.00pm".
func NormalizeDate(raw string) (string, error) {
	parts := strings.Split(raw, " ")
	if len(parts) > 2 {
		return "", ErrBadDate
	}

	date, err := time.Parse(inputDateLayout, parts[0])
	if err != nil {
		return "", ErrBadDate
	}
	display := date.Format(displayDateLayout)
	if len(parts) == 1 {
		return display, nil
	}

	clock, err := normalizeClock(parts[1])
	if err != nil {
		return "", err
	}
	return display + " " + clock, nil
}

// normalizeClock renders a 24-hour HHMM value on a 12-hour clock.
func normalizeClock(raw string) (string, error) {
	if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
		return "", ErrBadDate
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value >= 2400 || value%100 >= 60 {
		return "", ErrBadDate
	}

	suffix := "am"
	if value >= 1200 {
		suffix = "pm"
	}
	if value >= 1300 {
		value -= 1200
	}
	hour := value / 100
	if hour == 0 || hour == 24 {
		hour = 12
	}
	return fmt.Sprintf("%d.%02d%s", hour, value%100, suffix), nil
}
