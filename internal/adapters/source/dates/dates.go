package dates

import (
	"strings"
	"time"

	"github.com/bnema/employee-pairs-cli/internal/ports"
)

// DefaultLayouts are tried first, in order.
var DefaultLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
	"02.01.2006",
}

// fallbackLayouts cover the loosely formatted dates seen in exported sheets.
// The unpadded forms come first so 1/5/2024 keeps the order of 01/05/2024.
var fallbackLayouts = []string{
	"1/2/2006",
	"2006-1-2",
	"2-1-2006",
	"2006/1/2",
	"2.1.2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"2 January 2006",
	"20060102",
}

type Parser struct {
	layouts []string
	clock   ports.Clock
}

func NewParser(layouts []string, clock ports.Clock) *Parser {
	if len(layouts) == 0 {
		layouts = DefaultLayouts
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	merged := make([]string, 0, len(layouts)+len(fallbackLayouts))
	merged = append(merged, layouts...)
	merged = append(merged, fallbackLayouts...)

	return &Parser{layouts: merged, clock: clock}
}

// Parse reads a date in any accepted layout and drops the time of day.
func (p *Parser) Parse(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range p.layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return truncateToDay(parsed), true
		}
	}

	return time.Time{}, false
}

// ParseEnd is Parse with open-ended periods: a blank, NULL, or unreadable end
// date means the period is still running today.
func (p *Parser) ParseEnd(raw string) time.Time {
	value := strings.TrimSpace(raw)
	if value == "" || strings.EqualFold(value, "null") {
		return p.Today()
	}

	if parsed, ok := p.Parse(value); ok {
		return parsed
	}

	return p.Today()
}

func (p *Parser) Today() time.Time {
	return truncateToDay(p.clock.Now())
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
