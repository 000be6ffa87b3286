package converter

import (
	"regexp"
	"strings"
)

var (
	slugStrip     = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces    = regexp.MustCompile(`\s+`)
	slugHyphens   = regexp.MustCompile(`-+`)
	htmlTags      = regexp.MustCompile(`</?[^>]+(>|$)`)
	fieldStrip    = regexp.MustCompile(`[^a-zA-Z0-9\s.,'()\-&€$£%]`)
	fieldSpaces   = regexp.MustCompile(`\s+`)
	mojibakeFixer = strings.NewReplacer(
		"â€™", "'",
		"â€“", "-",
		"|", "-",
		"–", "-",
		"—", "-",
	)
)

// Slugify turns a product name into its canonical URL path segment:
// lowercase, "&" becomes "and", characters outside [a-z0-9\s-] are stripped,
// whitespace runs collapse to a single hyphen and hyphen runs to one.
// Deterministic with no locale dependency.
func Slugify(name string) string {
	if name == "" {
		return ""
	}
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "&", "and")
	s = slugStrip.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = slugSpaces.ReplaceAllString(s, "-")
	return slugHyphens.ReplaceAllString(s, "-")
}

// SanitizeField cleans user-entered text for spreadsheet output: HTML tags
// removed, common mojibake sequences repaired, pipes and long dashes turned
// into hyphens, remaining non-standard characters dropped, whitespace
// collapsed.
func SanitizeField(text string) string {
	if text == "" {
		return ""
	}
	s := htmlTags.ReplaceAllString(text, " ")
	s = mojibakeFixer.Replace(s)
	s = fieldStrip.ReplaceAllString(s, "")
	return strings.TrimSpace(fieldSpaces.ReplaceAllString(s, " "))
}
