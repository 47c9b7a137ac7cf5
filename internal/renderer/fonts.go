package renderer

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/charmap"

	"lifemate-backend/internal/domain"
)

// unicodeFamily is the embedded family used when text falls outside cp1252.
const unicodeFamily = "DejaVu"

var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	dejaVuRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	dejaVuBold []byte
	//go:embed fonts/DejaVuSansCondensed-Oblique.ttf
	dejaVuOblique []byte
	//go:embed fonts/DejaVuSansCondensed-BoldOblique.ttf
	dejaVuBoldOblique []byte
)

type face struct {
	style string
	data  []byte
}

var unicodeFaces = []face{
	{style: "", data: dejaVuRegular},
	{style: "B", data: dejaVuBold},
	{style: "I", data: dejaVuOblique},
	{style: "BI", data: dejaVuBoldOblique},
}

var (
	parseFacesOnce sync.Once
	parsedFaces    []*sfnt.Font
	parseFacesErr  error
)

func loadFaces() ([]*sfnt.Font, error) {
	parseFacesOnce.Do(func() {
		for _, f := range unicodeFaces {
			parsed, err := sfnt.Parse(f.data)
			if err != nil {
				parseFacesErr = fmt.Errorf("parse %s face: %w", unicodeFamily, err)
				return
			}
			parsedFaces = append(parsedFaces, parsed)
		}
	})
	return parsedFaces, parseFacesErr
}

func registerUnicodeFonts(pdf *fpdf.Fpdf) {
	for _, f := range unicodeFaces {
		pdf.AddUTF8FontFromBytes(unicodeFamily, f.style, f.data)
	}
}

// textSink sees every string on its way into the PDF and records runes the
// active font cannot draw.
type textSink interface {
	translate(s string) string
	missing() []rune
}

// coreText encodes to cp1252 for the built-in fonts.
type coreText struct {
	tr  func(string) string
	bad map[rune]struct{}
}

func newCoreText(pdf *fpdf.Fpdf) *coreText {
	return &coreText{tr: pdf.UnicodeTranslatorFromDescriptor(""), bad: map[rune]struct{}{}}
}

func (c *coreText) translate(s string) string {
	for _, r := range s {
		if r < 0x80 {
			continue
		}
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			c.bad[r] = struct{}{}
		}
	}
	return c.tr(s)
}

func (c *coreText) missing() []rune { return sortedRunes(c.bad) }

// unicodeText passes UTF-8 through and checks every rune against all embedded faces.
type unicodeText struct {
	faces []*sfnt.Font
	buf   sfnt.Buffer
	seen  map[rune]bool
	bad   map[rune]struct{}
}

func newUnicodeText(faces []*sfnt.Font) *unicodeText {
	return &unicodeText{faces: faces, seen: map[rune]bool{}, bad: map[rune]struct{}{}}
}

func (u *unicodeText) translate(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 || unicode.IsControl(r) {
			return r
		}
		ok, checked := u.seen[r]
		if !checked {
			ok = u.covered(r)
			u.seen[r] = ok
		}
		if ok {
			return r
		}
		// reported below; fpdf never measures a glyph the font lacks
		u.bad[r] = struct{}{}
		return '?'
	}, s)
}

func (u *unicodeText) covered(r rune) bool {
	// fpdf writes UTF-16 without surrogate pairs
	if r > 0xFFFF {
		return false
	}
	for _, f := range u.faces {
		idx, err := f.GlyphIndex(&u.buf, r)
		if err != nil || idx == 0 {
			return false
		}
	}
	return true
}

func (u *unicodeText) missing() []rune { return sortedRunes(u.bad) }

func sortedRunes(set map[rune]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func unsupportedTextError(runes []rune) error {
	codes := make([]string, len(runes))
	for i, r := range runes {
		codes[i] = fmt.Sprintf("U+%04X", r)
	}
	return fmt.Errorf("%w: %w: %s", domain.ErrRenderFailure, domain.ErrUnsupportedText, strings.Join(codes, " "))
}
