package export

import (
	"fmt"
	"strings"
	"unicode"

	"glassdesk/internal/domain/document"
	"glassdesk/internal/domain/registry"
)

// maxClientRunes bounds the client part of a filename.
const maxClientRunes = 20

// BuildFilename produces the deterministic download name of an export:
// <type>_<number>_<client>_<yyyyMMdd>.pdf. The same document always maps to
// the same name, so re-exports overwrite instead of piling up copies.
func BuildFilename(doc *document.Document) string {
	return fmt.Sprintf("%s_%s_%s_%s.pdf",
		registry.TypeLabel(doc.Type),
		doc.Number,
		sanitizeClientName(doc.Client.Name),
		doc.Date.Format("20060102"),
	)
}

// sanitizeClientName keeps letters and digits (Greek included), collapses
// whitespace runs to single underscores, drops everything else, and truncates
// to maxClientRunes runes.
func sanitizeClientName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	cleaned := strings.Join(strings.Fields(b.String()), "_")
	if cleaned == "" {
		cleaned = "Πελάτης"
	}

	runes := []rune(cleaned)
	if len(runes) > maxClientRunes {
		runes = runes[:maxClientRunes]
		cleaned = strings.TrimRight(string(runes), "_")
	}
	return cleaned
}
