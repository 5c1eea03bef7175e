package booking

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxAgendaLength = 1000
	dateLayout      = "2006-01-02"
	slotLayout      = "15:04"
)

// Offered half-hour starts inside business hours (10:00 to 18:00).
var offeredSlots = buildSlots(10*time.Hour, 18*time.Hour, 30*time.Minute)

func buildSlots(open, closeAt, step time.Duration) []string {
	var out []string
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	for off := open; off+step <= closeAt; off += step {
		out = append(out, base.Add(off).Format(slotLayout))
	}
	return out
}

// OfferedSlots returns a copy of the fixed slot set.
func OfferedSlots() []string {
	return append([]string(nil), offeredSlots...)
}

type Slot struct {
	value  string
	offset time.Duration
}

func NewSlot(s string) (Slot, error) {
	s = strings.TrimSpace(s)
	for _, candidate := range offeredSlots {
		if candidate == s {
			t, _ := time.Parse(slotLayout, s)
			return Slot{value: s, offset: time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute}, nil
		}
	}
	return Slot{}, ErrInvalidSlot
}

func (s Slot) String() string        { return s.value }
func (s Slot) Offset() time.Duration { return s.offset }

// SessionDate is a calendar day without a time zone.
type SessionDate struct {
	year  int
	month time.Month
	day   int
}

func ParseSessionDate(s string) (SessionDate, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return SessionDate{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) SessionDate {
	y, m, d := t.Date()
	return SessionDate{year: y, month: m, day: d}
}

func (d SessionDate) String() string {
	return d.UTC().Format(dateLayout)
}

// UTC is midnight UTC of the day, the form stored in DATE columns.
func (d SessionDate) UTC() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d SessionDate) In(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d SessionDate) Before(o SessionDate) bool {
	return d.UTC().Before(o.UTC())
}

func (d SessionDate) After(o SessionDate) bool {
	return d.UTC().After(o.UTC())
}

func (d SessionDate) IsZero() bool {
	return d.year == 0
}

type Agenda struct {
	text string
}

func NewAgenda(s string) (Agenda, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxAgendaLength {
		return Agenda{}, ErrAgendaTooLong
	}
	return Agenda{text: t}, nil
}

func (a Agenda) String() string { return a.text }
