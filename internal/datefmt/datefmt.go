// Package datefmt renders dates with the user facing patterns used by the
// web client (dd/MM/yyyy, MM/yyyy, ...) and parses workout dates sent by the API.
package datefmt

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/goodsign/monday"
)

// DateString is the sentinel pattern asking for a verbose, locale aware date ("3 Oct 2021").
const DateString = "date_string"

const verboseLayout = "2 Jan 2006"

var ErrInvalidDate = errors.New("invalid date")

// tokens are matched longest first
var tokens = []struct {
	pattern string
	layout  string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"dd", "02"},
	{"d", "2"},
	{"EEEE", "Monday"},
	{"EEE", "Mon"},
	{"HH", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"ss", "05"},
	{"a", "PM"},
}

var locales = map[string]monday.Locale{
	"en": monday.LocaleEnUS,
	"fr": monday.LocaleFrFR,
	"de": monday.LocaleDeDE,
	"es": monday.LocaleEsES,
	"it": monday.LocaleItIT,
	"nl": monday.LocaleNlNL,
	"pt": monday.LocalePtPT,
}

// segment is a piece of a parsed pattern: either a Go layout for a single
// token, or literal text written untouched.
type segment struct {
	text    string
	literal bool
}

// parse splits a date pattern into token layouts and literal text. Text
// quoted with single quotes is literal, '' is a quote, and characters that
// are not tokens are literal too, so they never reach time.Format.
func parse(pattern string) []segment {
	var segments []segment
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			segments = append(segments, segment{text: lit.String(), literal: true})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		if pattern[i] == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				lit.WriteByte('\'')
				i += 2
				continue
			}
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				lit.WriteString(pattern[i+1:])
				break
			}
			lit.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, tok := range tokens {
			if strings.HasPrefix(pattern[i:], tok.pattern) {
				flush()
				segments = append(segments, segment{text: tok.layout})
				i += len(tok.pattern)
				matched = true
				break
			}
		}
		if !matched {
			lit.WriteByte(pattern[i])
			i++
		}
	}
	flush()

	return segments
}

// Format renders t with the given pattern, or verbosely for the DateString sentinel.
// Month and day names follow the language; unknown languages fall back to english.
func Format(t time.Time, pattern, language string) string {
	locale := localeFor(language)
	if pattern == DateString {
		return monday.Format(t, verboseLayout, locale)
	}

	var sb strings.Builder
	for _, seg := range parse(pattern) {
		if seg.literal {
			sb.WriteString(seg.text)
			continue
		}
		sb.WriteString(monday.Format(t, seg.text, locale))
	}
	return sb.String()
}

func localeFor(language string) monday.Locale {
	language = strings.ToLower(language)
	if i := strings.IndexAny(language, "-_"); i > 0 {
		language = language[:i]
	}
	if l, ok := locales[language]; ok {
		return l
	}
	return monday.LocaleEnUS
}

// ParseWorkoutDate parses a workout date as sent by the API (RFC1123, e.g.
// "Sun, 03 Oct 2021 08:00:00 GMT") or in RFC3339.
func ParseWorkoutDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC1123, time.RFC1123Z, time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// InTimezone renders a UTC workout date in the user's timezone.
// An empty timezone means UTC.
func InTimezone(value, timezone, pattern, language string) (string, error) {
	t, err := ParseWorkoutDate(value)
	if err != nil {
		return "", err
	}
	loc, err := LoadLocation(timezone)
	if err != nil {
		return "", err
	}
	return Format(t.In(loc), pattern, language), nil
}

func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return loc, nil
}
