package ast

import (
	"fmt"
	"strings"
)

// Date and time values used by OBO clauses. Entity `creation_date`
// clauses carry ISO 8601 dates or datetimes; the header `date` clause
// uses its own naive `dd:MM:yyyy HH:mm` form. Values round-trip
// exactly, including fractional seconds and timezone spelling, which
// is why they are kept as parsed components instead of time.Time.

// IsoDate is a calendar date in ISO 8601 YYYY-MM-DD form.
type IsoDate struct {
	Year  int
	Month int
	Day   int
}

func (d IsoDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsoTime is a time of day with optional fractional seconds and an
// optional timezone. Fraction keeps the source digits so `.50` does
// not reserialize as `.5`; Timezone keeps the source spelling, either
// "Z" or a signed offset.
type IsoTime struct {
	Hour     int
	Minute   int
	Second   int
	Fraction string
	Timezone string
}

func (t IsoTime) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t IsoTime) write(b *strings.Builder) {
	fmt.Fprintf(b, "%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Fraction != "" {
		b.WriteByte('.')
		b.WriteString(t.Fraction)
	}
	b.WriteString(t.Timezone)
}

// IsoDateTime composes a date and a time joined by 'T'.
type IsoDateTime struct {
	Date IsoDate
	Time IsoTime
}

func (dt IsoDateTime) String() string {
	var b strings.Builder
	b.WriteString(dt.Date.String())
	b.WriteByte('T')
	dt.Time.write(&b)
	return b.String()
}

// CreationDate is the value of a creation_date clause. Many published
// ontologies write a bare date where the format asks for a datetime,
// so both forms are accepted and the parsed shape is preserved.
type CreationDate struct {
	Date IsoDate
	Time *IsoTime
}

func (c CreationDate) String() string {
	if c.Time == nil {
		return c.Date.String()
	}
	return IsoDateTime{Date: c.Date, Time: *c.Time}.String()
}

// NaiveDateTime is the header `date` clause value, a timezone-less
// dd:MM:yyyy HH:mm timestamp.
type NaiveDateTime struct {
	Day    int
	Month  int
	Year   int
	Hour   int
	Minute int
}

func (n NaiveDateTime) String() string {
	return fmt.Sprintf("%02d:%02d:%04d %02d:%02d", n.Day, n.Month, n.Year, n.Hour, n.Minute)
}

// ParseIsoDate parses YYYY-MM-DD.
func ParseIsoDate(text string) (IsoDate, error) {
	var d IsoDate
	var ok bool
	if d.Year, text, ok = cutInt(text, 4, '-'); !ok {
		return d, fmt.Errorf("invalid ISO date %q", text)
	}
	if d.Month, text, ok = cutInt(text, 2, '-'); !ok {
		return d, fmt.Errorf("invalid ISO date month")
	}
	if d.Day, text, ok = cutInt(text, 2, 0); !ok || text != "" {
		return d, fmt.Errorf("invalid ISO date day")
	}
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return d, fmt.Errorf("ISO date out of range")
	}
	return d, nil
}

// ParseIsoTime parses HH:MM:SS with optional fractional seconds and
// an optional trailing timezone ("Z" or a signed HH, HHMM or HH:MM
// offset).
func ParseIsoTime(text string) (IsoTime, error) {
	var t IsoTime
	var ok bool
	if t.Hour, text, ok = cutInt(text, 2, ':'); !ok {
		return t, fmt.Errorf("invalid ISO time hour")
	}
	if t.Minute, text, ok = cutInt(text, 2, ':'); !ok {
		return t, fmt.Errorf("invalid ISO time minute")
	}
	if t.Second, text, ok = cutInt(text, 2, 0); !ok {
		return t, fmt.Errorf("invalid ISO time second")
	}
	if strings.HasPrefix(text, ".") {
		i := 1
		for i < len(text) && isDigit(text[i]) {
			i++
		}
		if i == 1 {
			return t, fmt.Errorf("invalid ISO time fraction")
		}
		t.Fraction = text[1:i]
		text = text[i:]
	}
	if text != "" {
		if err := checkTimezone(text); err != nil {
			return t, err
		}
		t.Timezone = text
	}
	if t.Hour > 23 || t.Minute > 59 || t.Second > 60 {
		return t, fmt.Errorf("ISO time out of range")
	}
	return t, nil
}

// ParseIsoDateTime parses a date and a time joined by 'T'.
func ParseIsoDateTime(text string) (IsoDateTime, error) {
	var dt IsoDateTime
	day, clock, found := strings.Cut(text, "T")
	if !found {
		return dt, fmt.Errorf("invalid ISO datetime %q", text)
	}
	var err error
	if dt.Date, err = ParseIsoDate(day); err != nil {
		return dt, err
	}
	if dt.Time, err = ParseIsoTime(clock); err != nil {
		return dt, err
	}
	return dt, nil
}

// ParseCreationDate accepts a full ISO datetime or a bare ISO date.
func ParseCreationDate(text string) (CreationDate, error) {
	if strings.ContainsRune(text, 'T') {
		dt, err := ParseIsoDateTime(text)
		if err != nil {
			return CreationDate{}, err
		}
		return CreationDate{Date: dt.Date, Time: &dt.Time}, nil
	}
	d, err := ParseIsoDate(text)
	if err != nil {
		return CreationDate{}, err
	}
	return CreationDate{Date: d}, nil
}

// ParseNaiveDateTime parses the header date form dd:MM:yyyy HH:mm.
func ParseNaiveDateTime(text string) (NaiveDateTime, error) {
	var n NaiveDateTime
	var ok bool
	if n.Day, text, ok = cutInt(text, 2, ':'); !ok {
		return n, fmt.Errorf("invalid header date day")
	}
	if n.Month, text, ok = cutInt(text, 2, ':'); !ok {
		return n, fmt.Errorf("invalid header date month")
	}
	if n.Year, text, ok = cutInt(text, 4, ' '); !ok {
		return n, fmt.Errorf("invalid header date year")
	}
	if n.Hour, text, ok = cutInt(text, 2, ':'); !ok {
		return n, fmt.Errorf("invalid header date hour")
	}
	if n.Minute, text, ok = cutInt(text, 2, 0); !ok || text != "" {
		return n, fmt.Errorf("invalid header date minute")
	}
	if n.Month < 1 || n.Month > 12 || n.Day < 1 || n.Day > 31 || n.Hour > 23 || n.Minute > 59 {
		return n, fmt.Errorf("header date out of range")
	}
	return n, nil
}

func checkTimezone(text string) error {
	if text == "Z" {
		return nil
	}
	if len(text) < 3 || (text[0] != '+' && text[0] != '-') {
		return fmt.Errorf("invalid ISO timezone %q", text)
	}
	for i := 1; i < len(text); i++ {
		if !isDigit(text[i]) && text[i] != ':' {
			return fmt.Errorf("invalid ISO timezone %q", text)
		}
	}
	return nil
}

// cutInt reads exactly width digits, then the separator sep when sep
// is nonzero, and returns the value and the remaining text.
func cutInt(text string, width int, sep byte) (int, string, bool) {
	if len(text) < width {
		return 0, text, false
	}
	v := 0
	for i := 0; i < width; i++ {
		if !isDigit(text[i]) {
			return 0, text, false
		}
		v = v*10 + int(text[i]-'0')
	}
	text = text[width:]
	if sep != 0 {
		if len(text) == 0 || text[0] != sep {
			return 0, text, false
		}
		text = text[1:]
	}
	return v, text, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
