package availability

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Philip2024394/website-massage--sub024/models"
)

// DefaultTickInterval is how often a countdown is re-emitted.
const DefaultTickInterval = time.Second

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp accepts RFC3339 variants and Unix epoch digits (milliseconds when
// longer than 11 digits, seconds otherwise).
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n <= 0 {
			return time.Time{}, false
		}
		if len(raw) > 11 {
			return time.UnixMilli(n), true
		}
		return time.Unix(n, 0), true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatCompact renders the magnitude of d largest unit first: "Xh Ym", "Xm Ys" or "Xs".
func FormatCompact(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = -secs
	}
	h, m, s := secs/3600, (secs%3600)/60, secs%60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// Countdown converts a booked-until deadline into readings. The zero value (or one
// built from an unparseable timestamp) always reads empty.
type Countdown struct {
	deadline time.Time
	valid    bool
}

// NewCountdown parses the booked-until timestamp of a record.
func NewCountdown(bookedUntil string) Countdown {
	deadline, ok := ParseTimestamp(bookedUntil)
	return Countdown{deadline: deadline, valid: ok}
}

// Valid reports whether the countdown has a deadline.
func (c Countdown) Valid() bool {
	return c.valid
}

// Deadline returns the parsed deadline.
func (c Countdown) Deadline() time.Time {
	return c.deadline
}

// At returns the reading at now. Past the deadline the display counts up and
// Overtime is set.
func (c Countdown) At(now time.Time) models.CountdownReading {
	if !c.valid {
		return models.CountdownReading{}
	}
	diff := c.deadline.Sub(now)
	return models.CountdownReading{
		Display:  FormatCompact(diff),
		Overtime: diff <= 0,
	}
}

// Run emits a reading immediately and then once per interval until ctx is done or emit
// fails. The ticker is released on every return path.
func (c Countdown) Run(ctx context.Context, interval time.Duration, clock func() time.Time, emit func(models.CountdownReading) error) error {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if clock == nil {
		clock = time.Now
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := emit(c.At(clock())); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// A tick and a cancel can be ready together; the owner closing wins.
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := emit(c.At(clock())); err != nil {
				return err
			}
		}
	}
}
