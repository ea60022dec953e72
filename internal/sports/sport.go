package sports

// Sport is the reference data returned by the API sports endpoint.
type Sport struct {
	ID                    int     `json:"id"`
	Label                 string  `json:"label"`
	Color                 *string `json:"color"`
	IsActive              bool    `json:"is_active"`
	HasWorkouts           bool    `json:"has_workouts"`
	StoppedSpeedThreshold float64 `json:"stopped_speed_threshold"`
}

// TranslatedSport is a Sport with its label passed through a Translator
// and its display color resolved.
type TranslatedSport struct {
	Sport
	TranslatedLabel string `json:"translated_label"`
	DisplayColor    string `json:"display_color"`
}

// Translator resolves a translation key (the raw sport label) to the user facing string.
type Translator func(key string) string

// Identity is the Translator used when no translations are configured.
func Identity(key string) string {
	return key
}

// LabelTranslator returns a Translator backed by a lookup table,
// falling back to the key itself.
func LabelTranslator(labels map[string]string) Translator {
	return func(key string) string {
		if label, ok := labels[key]; ok && label != "" {
			return label
		}
		return key
	}
}

// Translate returns the sports with translated labels and resolved colors,
// in the same order.
func Translate(sports []Sport, t Translator) []TranslatedSport {
	if t == nil {
		t = Identity
	}
	translated := make([]TranslatedSport, 0, len(sports))
	for _, s := range sports {
		translated = append(translated, TranslatedSport{
			Sport:           s,
			TranslatedLabel: t(s.Label),
			DisplayColor:    ColorFor(s.ID, sports, Palette),
		})
	}
	return translated
}

// Untranslated strips translations, returning the underlying sports.
func Untranslated(translated []TranslatedSport) []Sport {
	res := make([]Sport, 0, len(translated))
	for _, s := range translated {
		res = append(res, s.Sport)
	}
	return res
}
