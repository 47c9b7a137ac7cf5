package renderer

import (
	"strings"

	"github.com/go-pdf/fpdf"

	"lifemate-backend/internal/domain"
)

// Page geometry in points on A4.
const (
	marginLeft   = 60.0
	marginRight  = 60.0
	marginTop    = 50.0
	marginBottom = 50.0
)

var (
	defaultPrimary = rgb{r: 0x1F, g: 0x29, b: 0x37}
	defaultAccent  = rgb{r: 0x25, g: 0x63, b: 0xEB}
	mutedText      = rgb{r: 0x4B, g: 0x55, b: 0x63}
)

type style struct {
	family     string
	size       float64
	lineFactor float64
	primary    rgb
	accent     rgb
}

func newStyle(s domain.Styling) style {
	st := style{
		family:     "Helvetica",
		size:       domain.DefaultFontSize,
		lineFactor: 1.35,
		primary:    parseHexColor(s.PrimaryColor, defaultPrimary),
		accent:     parseHexColor(s.AccentColor, defaultAccent),
	}
	switch s.FontFamily {
	case "Times", "Courier":
		st.family = s.FontFamily
	}
	if s.FontSize >= 8 && s.FontSize <= 16 {
		st.size = float64(s.FontSize)
	}
	switch s.Spacing {
	case domain.SpacingCompact:
		st.lineFactor = 1.15
	case domain.SpacingRelaxed:
		st.lineFactor = 1.6
	}
	return st
}

// layout owns the PDF document and its cursor for the duration of one render.
// It is never shared between renders.
type layout struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	style style
	width float64
}

func newLayout(pdf *fpdf.Fpdf, st style, text textSink) *layout {
	pageW, _ := pdf.GetPageSize()
	return &layout{
		pdf:   pdf,
		tr:    text.translate,
		style: st,
		width: pageW - marginLeft - marginRight,
	}
}

func (l *layout) lineHeight(size float64) float64 {
	return size * l.style.lineFactor
}

func (l *layout) font(fontStyle string, size float64, c rgb) {
	l.pdf.SetFont(l.style.family, fontStyle, size)
	l.pdf.SetTextColor(c.r, c.g, c.b)
}

func (l *layout) gap(factor float64) {
	l.pdf.Ln(l.style.size * factor)
}

// ensureSpace starts a new page when fewer than h points remain.
func (l *layout) ensureSpace(h float64) {
	_, pageH := l.pdf.GetPageSize()
	if l.pdf.GetY()+h > pageH-marginBottom {
		l.pdf.AddPage()
	}
}

func (l *layout) centered(text, fontStyle string, size float64, c rgb) {
	l.font(fontStyle, size, c)
	l.pdf.MultiCell(l.width, l.lineHeight(size), l.tr(text), "", "C", false)
}

func (l *layout) paragraph(text string) {
	l.font("", l.style.size, l.style.primary)
	l.pdf.MultiCell(l.width, l.lineHeight(l.style.size), l.tr(text), "", "L", false)
}

// heading draws the rule line followed by the bold section title.
func (l *layout) heading(title string) {
	size := l.style.size + 2
	l.ensureSpace(l.lineHeight(size) * 3)
	l.gap(0.6)

	y := l.pdf.GetY()
	l.pdf.SetDrawColor(l.style.accent.r, l.style.accent.g, l.style.accent.b)
	l.pdf.SetLineWidth(0.8)
	l.pdf.Line(marginLeft, y, marginLeft+l.width, y)
	l.pdf.Ln(4)

	l.font("B", size, l.style.accent)
	l.pdf.CellFormat(l.width, l.lineHeight(size), l.tr(title), "", 1, "L", false, 0, "")
	l.gap(0.2)
}

// entryTitle draws a bold title with an optional right-aligned date on the same line.
func (l *layout) entryTitle(title, date string) {
	size := l.style.size + 0.5
	h := l.lineHeight(size)
	l.ensureSpace(h * 2)

	l.font("B", size, l.style.primary)
	dateW := 0.0
	if date != "" {
		dateW = l.pdf.GetStringWidth(l.tr(date)) + 4
	}
	titleW := l.width - dateW
	if l.pdf.GetStringWidth(l.tr(title)) > titleW {
		l.pdf.MultiCell(l.width, h, l.tr(title), "", "L", false)
		if date != "" {
			l.font("", l.style.size, mutedText)
			l.pdf.CellFormat(l.width, l.lineHeight(l.style.size), l.tr(date), "", 1, "R", false, 0, "")
		}
		return
	}
	if date == "" {
		l.pdf.CellFormat(l.width, h, l.tr(title), "", 1, "L", false, 0, "")
		return
	}
	l.pdf.CellFormat(titleW, h, l.tr(title), "", 0, "L", false, 0, "")
	l.font("", l.style.size, mutedText)
	l.pdf.CellFormat(dateW, h, l.tr(date), "", 1, "R", false, 0, "")
}

func (l *layout) subtitle(text string) {
	if text == "" {
		return
	}
	l.font("I", l.style.size, mutedText)
	l.pdf.MultiCell(l.width, l.lineHeight(l.style.size), l.tr(text), "", "L", false)
}

func (l *layout) bullets(items []string) {
	const indent = 12.0
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		l.font("", l.style.size, l.style.primary)
		h := l.lineHeight(l.style.size)
		l.ensureSpace(h)
		l.pdf.SetX(marginLeft + indent/2)
		l.pdf.CellFormat(indent/2, h, l.tr("-"), "", 0, "L", false, 0, "")
		l.pdf.MultiCell(l.width-indent, h, l.tr(item), "", "L", false)
	}
}

func (l *layout) labelValue(label, value string) {
	h := l.lineHeight(l.style.size)
	l.ensureSpace(h)
	l.font("B", l.style.size, l.style.primary)
	labelW := l.pdf.GetStringWidth(l.tr(label+": ")) + 2
	l.pdf.CellFormat(labelW, h, l.tr(label+":"), "", 0, "L", false, 0, "")
	l.font("", l.style.size, l.style.primary)
	l.pdf.MultiCell(l.width-labelW, h, l.tr(value), "", "L", false)
}

func (l *layout) entryEnd() {
	l.gap(0.4)
}
