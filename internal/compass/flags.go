package compass

// countryFlags maps exact stored country names to flag glyphs. A missing
// entry yields no flag, not an error.
var countryFlags = map[string]string{
	"Australia":      "\U0001F1E6\U0001F1FA",
	"Austria":        "\U0001F1E6\U0001F1F9",
	"Belgium":        "\U0001F1E7\U0001F1EA",
	"Brazil":         "\U0001F1E7\U0001F1F7",
	"Canada":         "\U0001F1E8\U0001F1E6",
	"Czech Republic": "\U0001F1E8\U0001F1FF",
	"Denmark":        "\U0001F1E9\U0001F1F0",
	"Finland":        "\U0001F1EB\U0001F1EE",
	"France":         "\U0001F1EB\U0001F1F7",
	"Germany":        "\U0001F1E9\U0001F1EA",
	"Greece":         "\U0001F1EC\U0001F1F7",
	"Hungary":        "\U0001F1ED\U0001F1FA",
	"Ireland":        "\U0001F1EE\U0001F1EA",
	"Italy":          "\U0001F1EE\U0001F1F9",
	"Japan":          "\U0001F1EF\U0001F1F5",
	"Netherlands":    "\U0001F1F3\U0001F1F1",
	"Norway":         "\U0001F1F3\U0001F1F4",
	"Poland":         "\U0001F1F5\U0001F1F1",
	"Portugal":       "\U0001F1F5\U0001F1F9",
	"Slovakia":       "\U0001F1F8\U0001F1F0",
	"Spain":          "\U0001F1EA\U0001F1F8",
	"Sweden":         "\U0001F1F8\U0001F1EA",
	"Switzerland":    "\U0001F1E8\U0001F1ED",
	"United Kingdom": "\U0001F1EC\U0001F1E7",
	"United States":  "\U0001F1FA\U0001F1F8",
}

// Flag returns the flag glyph for a country name, or "" when unknown.
func Flag(country string) string {
	return countryFlags[country]
}
