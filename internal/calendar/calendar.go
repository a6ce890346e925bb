// Package calendar provides business day adjustment with explicit,
// caller-owned holiday configuration. There is no process-wide registry;
// the composition root builds an AdjustmentConfig and passes it down.
package calendar

import (
	"time"
)

// dateKey normalizes a time to a calendar date in UTC.
func dateKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AdjustmentConfig holds per-calendar additional holidays and additional
// business days on top of the weekend rule.
type AdjustmentConfig struct {
	additionalHolidays     map[string]map[time.Time]struct{}
	additionalBusinessDays map[string]map[time.Time]struct{}
}

// NewAdjustmentConfig creates an empty adjustment config.
func NewAdjustmentConfig() *AdjustmentConfig {
	return &AdjustmentConfig{
		additionalHolidays:     make(map[string]map[time.Time]struct{}),
		additionalBusinessDays: make(map[string]map[time.Time]struct{}),
	}
}

// AddHolidays marks dates as holidays for the named calendar.
func (c *AdjustmentConfig) AddHolidays(cal string, dates ...time.Time) {
	m, ok := c.additionalHolidays[cal]
	if !ok {
		m = make(map[time.Time]struct{})
		c.additionalHolidays[cal] = m
	}
	for _, d := range dates {
		m[dateKey(d)] = struct{}{}
	}
}

// AddBusinessDays marks dates as business days for the named calendar,
// overriding the weekend rule.
func (c *AdjustmentConfig) AddBusinessDays(cal string, dates ...time.Time) {
	m, ok := c.additionalBusinessDays[cal]
	if !ok {
		m = make(map[time.Time]struct{})
		c.additionalBusinessDays[cal] = m
	}
	for _, d := range dates {
		m[dateKey(d)] = struct{}{}
	}
}

// Holidays returns the configured additional holidays for a calendar.
func (c *AdjustmentConfig) Holidays(cal string) []time.Time {
	var out []time.Time
	for d := range c.additionalHolidays[cal] {
		out = append(out, d)
	}
	return out
}

// Append merges another config into this one.
func (c *AdjustmentConfig) Append(other *AdjustmentConfig) {
	if other == nil {
		return
	}
	for cal, dates := range other.additionalHolidays {
		for d := range dates {
			c.AddHolidays(cal, d)
		}
	}
	for cal, dates := range other.additionalBusinessDays {
		for d := range dates {
			c.AddBusinessDays(cal, d)
		}
	}
}

// IsBusinessDay reports whether the date is a business day on the named
// calendar: weekdays are business days unless configured as holidays, and
// configured business days override weekends.
func (c *AdjustmentConfig) IsBusinessDay(cal string, t time.Time) bool {
	d := dateKey(t)
	if _, ok := c.additionalBusinessDays[cal][d]; ok {
		return true
	}
	if _, ok := c.additionalHolidays[cal][d]; ok {
		return false
	}
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// AdjustFollowing rolls a date forward to the next business day on the
// named calendar. Business days are returned unchanged.
func (c *AdjustmentConfig) AdjustFollowing(cal string, t time.Time) time.Time {
	d := dateKey(t)
	for !c.IsBusinessDay(cal, d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
