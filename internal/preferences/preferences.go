package preferences

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitstats/internal/datefmt"
)

var ErrNotFound = errors.New("preferences not found")

const (
	DefaultTimezone   = "UTC"
	DefaultDateFormat = "dd/MM/yyyy"
	DefaultLanguage   = "en"
)

// Preferences are the per user display settings the stats and records
// formatting depends on.
type Preferences struct {
	User               string `json:"user"`
	WeekStartingMonday bool   `json:"weekStartingMonday"`
	ImperialUnits      bool   `json:"imperialUnits"`
	Timezone           string `json:"timezone"`
	DateFormat         string `json:"dateFormat"`
	Language           string `json:"language"`
	DisplayAscent      bool   `json:"displayAscent"`
}

// Default is used for users that never saved their preferences.
func Default(user string) Preferences {
	return Preferences{
		User:               user,
		WeekStartingMonday: true,
		ImperialUnits:      false,
		Timezone:           DefaultTimezone,
		DateFormat:         DefaultDateFormat,
		Language:           DefaultLanguage,
		DisplayAscent:      true,
	}
}

func (p Preferences) Validate() error {
	if strings.TrimSpace(p.User) == "" {
		return errors.New("user empty")
	}
	if _, err := datefmt.LoadLocation(p.Timezone); err != nil {
		return err
	}
	if strings.TrimSpace(p.DateFormat) == "" {
		return errors.New("date format empty")
	}
	if len(p.DateFormat) > 30 {
		return fmt.Errorf("date format too long: %d", len(p.DateFormat))
	}
	if p.Language == "" || len(p.Language) > 10 {
		return fmt.Errorf("invalid language [%s]", p.Language)
	}
	return nil
}

func (p Preferences) Location() *time.Location {
	loc, err := datefmt.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
