package gate

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml"

	"github.com/sig-0/twdrates/storage/types"
)

// TableCalendar is a holiday calendar backed by a date-keyed table
type TableCalendar struct {
	holidays map[string]string // YYYY-MM-DD -> label
}

// NewTableCalendar creates a calendar from the given date -> label table
func NewTableCalendar(holidays map[string]string) *TableCalendar {
	return &TableCalendar{
		holidays: holidays,
	}
}

func (c *TableCalendar) Holiday(t time.Time) (string, bool) {
	label, ok := c.holidays[t.Format(types.DateFormat)]

	return label, ok
}

// calendarFile is the TOML layout of a holiday calendar file
type calendarFile struct {
	Holidays map[string]string `toml:"holidays"`
}

// LoadCalendar reads a TOML holiday calendar from the given path.
// Keys are ISO dates, values are the holiday labels, ex:
//
//	[holidays]
//	"2024-01-01" = "元旦"
//	"2024-02-28" = "和平紀念日"
func LoadCalendar(path string) (*TableCalendar, error) {
	// Read the calendar file
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse it
	var cf calendarFile

	if err := toml.Unmarshal(content, &cf); err != nil {
		return nil, err
	}

	// Validate the date keys
	for date := range cf.Holidays {
		if _, err := time.Parse(types.DateFormat, date); err != nil {
			return nil, fmt.Errorf("invalid holiday date %q: %w", date, err)
		}
	}

	return NewTableCalendar(cf.Holidays), nil
}
