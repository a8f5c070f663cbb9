// Package textfmt holds the two display filters used by the page templates:
// a timezone-converting date formatter and a newline-to-paragraph formatter.
package textfmt

import (
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/cylin-dev/guestbook/internal/logger"
)

const displayTimeLayout = "2006/01/02 15:04"

var displayLocation = loadDisplayLocation()

func loadDisplayLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		// No tzdata on the host; Taipei has no DST so a fixed offset is exact.
		logger.Log.Warn("tzdata unavailable, falling back to fixed UTC+8", "error", err)
		return time.FixedZone("UTC+8", 8*60*60)
	}
	return loc
}

// FormatTime renders a stored UTC timestamp in the display timezone (UTC+8)
// as YYYY/MM/DD HH:MM.
func FormatTime(utc time.Time) string {
	return utc.UTC().In(displayLocation).Format(displayTimeLayout)
}

var paragraphRe = regexp.MustCompile(`(?:\r\n|\r|\n){2,}`)

// Paragraphs converts a plain-text message body into paragraph-wrapped
// markup: blank-line boundaries split paragraphs, single newlines become
// <br>. The input is escaped BEFORE any tags are added, so user-supplied
// markup can never reach the page unescaped.
func Paragraphs(text string) template.HTML {
	escaped := template.HTMLEscapeString(text)

	paragraphs := paragraphRe.Split(escaped, -1)
	for i, p := range paragraphs {
		paragraphs[i] = "<p>" + strings.ReplaceAll(p, "\n", "<br>\n") + "</p>"
	}
	return template.HTML(strings.Join(paragraphs, "\n\n"))
}
