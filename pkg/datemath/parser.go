package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts date/time phrases to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var (
	reInDuration = regexp.MustCompile(`^in\s+(\d+)\s+(minute|hour|day|week|month)s?$`)
	reWeekday    = regexp.MustCompile(`^(?:(this|next)\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)$`)
	reISODate    = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reSlashDate  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?$`)
	reMonthDay   = regexp.MustCompile(`^(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2})(?:st|nd|rd|th)?$`)
	reClock      = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Resolve converts a date/time phrase to an absolute time.Time, anchored at
// baseTime. Phrases without a time of day resolve to the end of the matched
// day (deadline semantics). Unknown phrases return an error; callers are
// expected to downgrade that to an unresolved candidate, not to fail.
func (p *Parser) Resolve(phrase string, baseTime time.Time) (Resolution, error) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	phrase = strings.TrimPrefix(phrase, "at ")
	phrase = strings.Join(strings.Fields(phrase), " ")
	if phrase == "" {
		return Resolution{}, fmt.Errorf("empty phrase")
	}

	base := baseTime.In(p.location)

	// "X at HH:MM" — split off the clock part first.
	dayPart := phrase
	timePart := ""
	if idx := strings.LastIndex(phrase, " at "); idx >= 0 {
		if _, err := p.parseClock(phrase[idx+4:]); err == nil {
			dayPart = phrase[:idx]
			timePart = phrase[idx+4:]
		}
	}

	// Bare clock time: today at that time, or tomorrow if already past.
	if clock, err := p.parseClock(dayPart); err == nil && timePart == "" {
		at := p.onDay(base, clock)
		if !at.After(base) {
			at = at.AddDate(0, 0, 1)
		}
		return Resolution{At: at, Confidence: ConfidenceExact}, nil
	}

	hasTime := timePart != ""
	var clock clockTime
	if hasTime {
		c, err := p.parseClock(timePart)
		if err != nil {
			return Resolution{}, err
		}
		clock = c
	}

	day, conf, err := p.resolveDay(dayPart, base, hasTime, clock)
	if err != nil {
		return Resolution{}, err
	}

	// Exact point in time already (e.g. "in 2 hours").
	if !day.allDay && !hasTime {
		return Resolution{At: day.at, Confidence: conf}, nil
	}

	if hasTime {
		return Resolution{At: p.onDay(day.at, clock), Confidence: maxConf(conf, ConfidenceExact)}, nil
	}
	return Resolution{At: p.EndOfDay(p.startOfDay(day.at)), AllDay: true, Confidence: conf}, nil
}

type clockTime struct {
	hour, minute int
}

type dayAnchor struct {
	at     time.Time
	allDay bool
}

// resolveDay resolves the day-granularity part of a phrase. hasTime and clock
// only matter for same-day weekday references ("friday at 5pm" said on a
// Friday morning stays on that Friday).
func (p *Parser) resolveDay(phrase string, base time.Time, hasTime bool, clock clockTime) (dayAnchor, float64, error) {
	switch phrase {
	case "today", "tonight", "end of day", "end of the day", "eod":
		conf := ConfidenceRelative
		if strings.Contains(phrase, "end of") || phrase == "eod" {
			conf = ConfidenceFuzzy
		}
		return dayAnchor{at: base, allDay: true}, conf, nil
	case "tomorrow":
		return dayAnchor{at: base.AddDate(0, 0, 1), allDay: true}, ConfidenceRelative, nil
	case "yesterday":
		return dayAnchor{at: base.AddDate(0, 0, -1), allDay: true}, ConfidenceRelative, nil
	case "this week", "end of week", "end of the week":
		return dayAnchor{at: p.endOfWeek(base), allDay: true}, ConfidenceFuzzy, nil
	case "next week":
		return dayAnchor{at: p.endOfWeek(base).AddDate(0, 0, 7), allDay: true}, ConfidenceFuzzy, nil
	case "this weekend", "weekend":
		return dayAnchor{at: p.endOfWeek(base), allDay: true}, ConfidenceFuzzy, nil
	case "this month":
		firstOfNext := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, p.location).AddDate(0, 1, 0)
		return dayAnchor{at: firstOfNext.AddDate(0, 0, -1), allDay: true}, ConfidenceFuzzy, nil
	case "next month":
		firstAfter := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, p.location).AddDate(0, 2, 0)
		return dayAnchor{at: firstAfter.AddDate(0, 0, -1), allDay: true}, ConfidenceFuzzy, nil
	}

	if m := reInDuration.FindStringSubmatch(phrase); m != nil {
		amount, _ := strconv.Atoi(m[1])
		switch m[2] {
		case "minute":
			return dayAnchor{at: base.Add(time.Duration(amount) * time.Minute)}, ConfidenceRelative, nil
		case "hour":
			return dayAnchor{at: base.Add(time.Duration(amount) * time.Hour)}, ConfidenceRelative, nil
		case "day":
			return dayAnchor{at: base.AddDate(0, 0, amount), allDay: true}, ConfidenceRelative, nil
		case "week":
			return dayAnchor{at: base.AddDate(0, 0, amount*7), allDay: true}, ConfidenceRelative, nil
		case "month":
			return dayAnchor{at: base.AddDate(0, amount, 0), allDay: true}, ConfidenceRelative, nil
		}
	}

	if m := reWeekday.FindStringSubmatch(phrase); m != nil {
		target := weekdays[m[2]]
		daysUntil := int(target - base.Weekday())
		if daysUntil < 0 {
			daysUntil += 7
		}
		if daysUntil == 0 {
			// Same weekday: only keep today when a time of day makes it
			// still-future, otherwise jump a week ahead.
			if !hasTime || !p.onDay(base, clock).After(base) {
				daysUntil = 7
			}
		}
		return dayAnchor{at: base.AddDate(0, 0, daysUntil), allDay: true}, ConfidenceRelative, nil
	}

	if m := reISODate.FindStringSubmatch(phrase); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return dayAnchor{}, 0, fmt.Errorf("invalid date: %q", phrase)
		}
		return dayAnchor{at: time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location), allDay: true}, ConfidenceExact, nil
	}

	if m := reMonthDay.FindStringSubmatch(phrase); m != nil {
		month := months[m[1]]
		day, _ := strconv.Atoi(m[2])
		if day < 1 || day > 31 {
			return dayAnchor{}, 0, fmt.Errorf("invalid day of month: %q", phrase)
		}
		at := time.Date(base.Year(), month, day, 0, 0, 0, 0, p.location)
		if p.EndOfDay(at).Before(base) {
			at = at.AddDate(1, 0, 0)
		}
		return dayAnchor{at: at, allDay: true}, ConfidenceExact, nil
	}

	if m := reSlashDate.FindStringSubmatch(phrase); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return dayAnchor{}, 0, fmt.Errorf("invalid date: %q", phrase)
		}
		year := base.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		at := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
		if m[3] == "" && p.EndOfDay(at).Before(base) {
			at = at.AddDate(1, 0, 0)
		}
		return dayAnchor{at: at, allDay: true}, ConfidenceNumeric, nil
	}

	return dayAnchor{}, 0, fmt.Errorf("unknown date phrase: %q", phrase)
}

// parseClock parses "5pm", "5:30 pm", "17:00", "noon", "midnight".
func (p *Parser) parseClock(s string) (clockTime, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "noon":
		return clockTime{hour: 12}, nil
	case "midnight":
		return clockTime{hour: 23, minute: 59}, nil
	}

	m := reClock.FindStringSubmatch(s)
	if m == nil {
		return clockTime{}, fmt.Errorf("not a clock time: %q", s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if minute > 59 {
		return clockTime{}, fmt.Errorf("invalid minutes: %q", s)
	}

	switch m[3] {
	case "am":
		if hour < 1 || hour > 12 {
			return clockTime{}, fmt.Errorf("invalid hour: %q", s)
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return clockTime{}, fmt.Errorf("invalid hour: %q", s)
		}
		if hour != 12 {
			hour += 12
		}
	default:
		// Bare "5" is too ambiguous to accept; require minutes for 24h form.
		if m[2] == "" {
			return clockTime{}, fmt.Errorf("ambiguous clock time: %q", s)
		}
		if hour > 23 {
			return clockTime{}, fmt.Errorf("invalid hour: %q", s)
		}
	}

	return clockTime{hour: hour, minute: minute}, nil
}

// onDay places a clock time on the same calendar day as t.
func (p *Parser) onDay(t time.Time, c clockTime) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), c.hour, c.minute, 0, 0, p.location)
}

// endOfWeek returns the Sunday of the week containing t (Monday-Sunday weeks).
func (p *Parser) endOfWeek(t time.Time) time.Time {
	t = t.In(p.location)
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return t.AddDate(0, 0, 7-weekday)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

func maxConf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
