package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// CalendarDate is a day in the Solar Hijri (Jalali) calendar, the local
// calendar of the product. It has no time-of-day or zone component.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// Supported year window. Four-digit years keep the "YYYY/MM/DD" text form
// ordered by byte comparison.
const (
	MinCalendarYear = 1300
	MaxCalendarYear = 1500
)

// NewCalendarDate validates and builds a CalendarDate.
func NewCalendarDate(year, month, day int) (CalendarDate, error) {
	if year < MinCalendarYear || year > MaxCalendarYear {
		return CalendarDate{}, fmt.Errorf("calendar date: year %d out of range", year)
	}
	if month < 1 || month > 12 {
		return CalendarDate{}, fmt.Errorf("calendar date: month %d out of range", month)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return CalendarDate{}, fmt.Errorf("calendar date: day %d out of range for %d/%02d", day, year, month)
	}
	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// ParseCalendarDate parses "1403/05/10". A dash separator is accepted too.
func ParseCalendarDate(s string) (CalendarDate, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(strings.ReplaceAll(s, "-", "/"), "/")
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("calendar date: invalid format %q", s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return CalendarDate{}, fmt.Errorf("calendar date: invalid format %q", s)
		}
		nums[i] = n
	}
	return NewCalendarDate(nums[0], nums[1], nums[2])
}

// CalendarDateOf returns the Jalali day that contains t in t's location.
func CalendarDateOf(t time.Time) CalendarDate {
	pt := ptime.New(t)
	return CalendarDate{Year: pt.Year(), Month: int(pt.Month()), Day: pt.Day()}
}

// Time returns midnight of the day in loc.
func (d CalendarDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return ptime.Date(d.Year, ptime.Month(d.Month), d.Day, 0, 0, 0, 0, loc).Time()
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// IsZero reports whether d is the zero value.
func (d CalendarDate) IsZero() bool { return d == CalendarDate{} }

func (d CalendarDate) ordinal() int { return d.Year*10000 + d.Month*100 + d.Day }

// Compare returns -1, 0 or +1.
func (d CalendarDate) Compare(o CalendarDate) int {
	switch a, b := d.ordinal(), o.ordinal(); {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (d CalendarDate) Before(o CalendarDate) bool { return d.Compare(o) < 0 }
func (d CalendarDate) After(o CalendarDate) bool  { return d.Compare(o) > 0 }

// Between reports whether d falls inside the inclusive range [start, end].
func (d CalendarDate) Between(start, end CalendarDate) bool {
	return !d.Before(start) && !d.After(end)
}

// AddDays moves d by n days, crossing month and year boundaries.
func (d CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// Weekday returns the day index in the Persian week: 0 is Saturday, 6 is Friday.
func (d CalendarDate) Weekday() int {
	return (int(d.Time(time.UTC).Weekday()) + 1) % 7
}

// WeekStart returns the Saturday on or before d.
func (d CalendarDate) WeekStart() CalendarDate {
	return d.AddDays(-d.Weekday())
}

// MonthStart returns the first day of d's month.
func (d CalendarDate) MonthStart() CalendarDate {
	return CalendarDate{Year: d.Year, Month: d.Month, Day: 1}
}

// MonthEnd returns the last day of d's month.
func (d CalendarDate) MonthEnd() CalendarDate {
	return CalendarDate{Year: d.Year, Month: d.Month, Day: daysInMonth(d.Year, d.Month)}
}

// YearsSince returns the number of full years from birth to d, never negative.
func (d CalendarDate) YearsSince(birth CalendarDate) int {
	years := d.Year - birth.Year
	if d.Month < birth.Month || (d.Month == birth.Month && d.Day < birth.Day) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// daysInMonth follows the Jalali layout: six months of 31 days, five of 30,
// and Esfand with 29 or 30 depending on the leap year.
func daysInMonth(year, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	}
	nextNowruz := ptime.Date(year+1, ptime.Month(1), 1, 12, 0, 0, 0, time.UTC).Time()
	return ptime.New(nextNowruz.AddDate(0, 0, -1)).Day()
}

// MarshalText implements encoding.TextMarshaler.
func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *CalendarDate) UnmarshalText(b []byte) error {
	parsed, err := ParseCalendarDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the date as its "Y/m/d" text form.
func (d CalendarDate) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan reads the "Y/m/d" text form.
func (d *CalendarDate) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case nil:
		*d = CalendarDate{}
		return nil
	}
	return fmt.Errorf("calendar date: cannot scan %T", src)
}
