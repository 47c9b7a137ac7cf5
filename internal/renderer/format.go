package renderer

import (
	"strconv"
	"strings"

	"lifemate-backend/internal/domain"
)

const (
	displayDateLayout = "Jan 2006"
	presentLabel      = "Present"
	placeholder       = "N/A"
	inlineSeparator   = " | "
)

func formatDate(d domain.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(displayDateLayout)
}

func formatDatePtr(d *domain.Date) string {
	if d == nil {
		return ""
	}
	return formatDate(*d)
}

// dateRange renders "Start - End". A missing end reads "Present" only when current,
// otherwise just the start date is shown.
func dateRange(start, end string, current bool) string {
	if end == "" && current {
		end = presentLabel
	}
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	}
	return start + " - " + end
}

// joinNonEmpty joins the trimmed non-empty values so that absent fields never leave
// a dangling separator.
func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return strings.TrimSpace(s)
}

type rgb struct {
	r, g, b int
}

// parseHexColor accepts #RGB or #RRGGBB and falls back on anything else.
func parseHexColor(s string, fallback rgb) rgb {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return rgb{r: int(v >> 16 & 0xff), g: int(v >> 8 & 0xff), b: int(v & 0xff)}
}
