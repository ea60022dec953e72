package sports

// Palette is used for sports without an explicit color.
var Palette = []string{
	"#55a8a3",
	"#98c3a9",
	"#d0838a",
	"#ecc77e",
	"#926692",
	"#77a4e5",
	"#bb757c",
}

// ColorFor returns the color of the given sport: the admin set color when
// there is one, otherwise the palette entry at the sport's position among
// all sports. The position is taken in allSports, never in a filtered
// subset, so a sport keeps its color whatever else is displayed.
// An unknown sport or an empty palette gives an empty string.
func ColorFor(sportID int, allSports []Sport, palette []string) string {
	for i, s := range allSports {
		if s.ID != sportID {
			continue
		}
		if s.Color != nil && *s.Color != "" {
			return *s.Color
		}
		if len(palette) == 0 {
			return ""
		}
		return palette[i%len(palette)]
	}
	return ""
}
