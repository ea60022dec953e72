package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidRecordType = errors.New("invalid record type")

// RecordType is the kind of a personal record. The set is closed,
// every value outside of it is rejected.
type RecordType string

const (
	AverageSpeed     RecordType = "AS"
	FarthestDistance RecordType = "FD"
	HighestAscent    RecordType = "HA"
	LongestDuration  RecordType = "LD"
	MaxDescent       RecordType = "MD"
	MaxSpeed         RecordType = "MS"
)

// RecordTypes lists the valid record types, sorted.
var RecordTypes = []RecordType{
	AverageSpeed,
	FarthestDistance,
	HighestAscent,
	LongestDuration,
	MaxDescent,
	MaxSpeed,
}

func (rt RecordType) Validate() error {
	for _, valid := range RecordTypes {
		if rt == valid {
			return nil
		}
	}
	return invalidRecordTypeErr(rt)
}

func (rt *RecordType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("record type: %w", err)
	}
	parsed := RecordType(s)
	if err := parsed.Validate(); err != nil {
		return err
	}
	*rt = parsed
	return nil
}

func invalidRecordTypeErr(rt RecordType) error {
	quoted := make([]string, 0, len(RecordTypes))
	for _, valid := range RecordTypes {
		quoted = append(quoted, strconv.Quote(string(valid)))
	}
	return fmt.Errorf("%w, expected: %s, got: %q", ErrInvalidRecordType, strings.Join(quoted, ", "), string(rt))
}

// Value is a record value: a number for speeds, distances and elevations,
// a duration string ("1:05:30") for the longest duration.
type Value struct {
	number   float64
	text     string
	isNumber bool
}

func NumberValue(v float64) Value {
	return Value{number: v, isNumber: true}
}

func TextValue(s string) Value {
	return Value{text: s}
}

// Float returns the numeric value, parsing a numeric string if needed.
func (v Value) Float() (float64, error) {
	if v.isNumber {
		return v.number, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
	if err != nil {
		return 0, fmt.Errorf("record value %q is not a number", v.text)
	}
	return f, nil
}

func (v Value) String() string {
	if v.isNumber {
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	}
	return v.text
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.isNumber {
		return json.Marshal(v.number)
	}
	return json.Marshal(v.text)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("record value: %w", err)
	}
	*v = NumberValue(f)
	return nil
}

// Record is a personal record as sent by the API.
type Record struct {
	ID          int        `json:"id"`
	RecordType  RecordType `json:"record_type"`
	SportID     int        `json:"sport_id"`
	User        string     `json:"user,omitempty"`
	Value       Value      `json:"value"`
	WorkoutDate string     `json:"workout_date"`
	WorkoutID   string     `json:"workout_id"`
}

type FormattedRecord struct {
	ID          int        `json:"id"`
	RecordType  RecordType `json:"record_type"`
	Value       string     `json:"value"`
	WorkoutDate string     `json:"workout_date"`
	WorkoutID   string     `json:"workout_id"`
}

// RecordGroup holds the formatted records of one sport.
type RecordGroup struct {
	Label   string            `json:"label"`
	Color   *string           `json:"color"`
	Records []FormattedRecord `json:"records"`
}
