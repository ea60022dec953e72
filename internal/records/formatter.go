package records

import (
	"fmt"
	"strconv"

	"github.com/2beens/fitstats/internal/datefmt"
	"github.com/2beens/fitstats/internal/sports"
	"github.com/2beens/fitstats/internal/units"

	log "github.com/sirupsen/logrus"
)

// FormatRecord renders the record value with its unit and the workout date
// in the user's timezone. Unknown record types are an error.
func FormatRecord(record Record, timezone string, useImperialUnits bool, dateFormat string) (FormattedRecord, error) {
	value, err := formatValue(record, useImperialUnits)
	if err != nil {
		return FormattedRecord{}, err
	}

	workoutDate, err := datefmt.InTimezone(record.WorkoutDate, timezone, dateFormat, "en")
	if err != nil {
		return FormattedRecord{}, fmt.Errorf("record %d: %w", record.ID, err)
	}

	return FormattedRecord{
		ID:          record.ID,
		RecordType:  record.RecordType,
		Value:       value,
		WorkoutDate: workoutDate,
		WorkoutID:   record.WorkoutID,
	}, nil
}

func formatValue(record Record, useImperialUnits bool) (string, error) {
	switch record.RecordType {
	case AverageSpeed, MaxSpeed:
		return withUnit(record, units.DistanceUnit(useImperialUnits), "/h")
	case FarthestDistance:
		return withUnit(record, units.DistanceUnit(useImperialUnits), "")
	case HighestAscent, MaxDescent:
		return withUnit(record, units.ElevationUnit(useImperialUnits), "")
	case LongestDuration:
		return record.Value.String(), nil
	default:
		return "", invalidRecordTypeErr(record.RecordType)
	}
}

func withUnit(record Record, unit units.Unit, suffix string) (string, error) {
	raw, err := record.Value.Float()
	if err != nil {
		return "", fmt.Errorf("record %d (%s): %w", record.ID, record.RecordType, err)
	}
	converted, err := units.Convert(raw, unit)
	if err != nil {
		return "", fmt.Errorf("record %d (%s): %w", record.ID, record.RecordType, err)
	}
	return strconv.FormatFloat(converted, 'f', -1, 64) + " " + string(unit) + suffix, nil
}

// GetRecordsBySports groups the formatted records by translated sport label.
// Records of unknown sports are skipped with a warning. Highest ascent records are dropped
// before grouping unless includeHighestAscent is set, so a sport having only
// those gets no group.
func GetRecordsBySports(
	records []Record,
	translatedSports []sports.TranslatedSport,
	timezone string,
	useImperialUnits bool,
	includeHighestAscent bool,
	dateFormat string,
) (map[string]RecordGroup, error) {
	sportsByID := make(map[int]sports.TranslatedSport, len(translatedSports))
	for _, s := range translatedSports {
		sportsByID[s.ID] = s
	}

	groups := make(map[string]RecordGroup)
	for _, record := range records {
		if record.RecordType == HighestAscent && !includeHighestAscent {
			continue
		}

		sport, ok := sportsByID[record.SportID]
		if !ok {
			log.Warnf("record %d (%s) skipped: unknown sport %d", record.ID, record.RecordType, record.SportID)
			continue
		}
		label := sport.TranslatedLabel
		if label == "" {
			label = sport.Label
		}

		formatted, err := FormatRecord(record, timezone, useImperialUnits, dateFormat)
		if err != nil {
			return nil, err
		}

		group, ok := groups[label]
		if !ok {
			group = RecordGroup{
				Label:   label,
				Color:   sport.Color,
				Records: []FormattedRecord{},
			}
		}
		group.Records = append(group.Records, formatted)
		groups[label] = group
	}

	return groups, nil
}
