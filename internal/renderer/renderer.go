// Package renderer turns a resume document into a paginated PDF.
package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/ledongthuc/pdf"

	"lifemate-backend/internal/domain"
)

// fixedEpoch stamps documents that have never been saved so output stays reproducible.
var fixedEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type Options struct {
	// DisableCompression writes plain content streams. Useful for inspecting output.
	DisableCompression bool
}

type Renderer struct {
	opts Options
}

func New() *Renderer {
	return &Renderer{}
}

func NewWithOptions(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render produces the complete PDF or fails with an error wrapping domain.ErrRenderFailure.
// The same resume value always yields byte-identical output.
func (rd *Renderer) Render(resume *domain.Resume) (*domain.RenderedDocument, error) {
	out, err := rd.render(resume)
	if err != nil {
		return nil, err
	}
	return &domain.RenderedDocument{Data: out.data, PageCount: out.pages}, nil
}

type output struct {
	data  []byte
	pages int
	// drawn lists the section keys that produced output, in order.
	drawn []string
}

// render lays the document out with the built-in fonts and switches to the
// embedded unicode family only when some text has no cp1252 encoding.
func (rd *Renderer) render(resume *domain.Resume) (*output, error) {
	if resume == nil {
		return nil, fmt.Errorf("%w: nil resume", domain.ErrRenderFailure)
	}
	out, missing, err := rd.layoutPass(resume, false)
	if err != nil || len(missing) == 0 {
		return out, err
	}
	out, missing, err = rd.layoutPass(resume, true)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, unsupportedTextError(missing)
	}
	return out, nil
}

func (rd *Renderer) layoutPass(resume *domain.Resume, unicodeFonts bool) (out *output, missing []rune, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out, missing = nil, nil
			err = fmt.Errorf("%w: %v", domain.ErrRenderFailure, rec)
		}
	}()

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetCompression(!rd.opts.DisableCompression)
	doc.SetCatalogSort(true)
	stamp := resume.UpdatedAt
	if stamp.IsZero() {
		stamp = fixedEpoch
	}
	doc.SetCreationDate(stamp)
	doc.SetModificationDate(stamp)
	doc.SetTitle(resume.Title, true)
	doc.SetAuthor(orPlaceholder(resume.PersonalInfo.FullName), true)
	doc.SetCreator("LifeMate", false)

	doc.SetMargins(marginLeft, marginTop, marginRight)
	doc.SetAutoPageBreak(true, marginBottom)

	st := newStyle(resume.Styling)
	var text textSink = newCoreText(doc)
	if unicodeFonts {
		faces, err := loadFaces()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
		}
		registerUnicodeFonts(doc)
		st.family = unicodeFamily
		text = newUnicodeText(faces)
	}
	doc.AddPage()

	out = &output{}
	l := newLayout(doc, st, text)
	drawHeader(l, resume)

	for _, key := range resume.EffectiveSectionOrder() {
		sec, ok := registry[key]
		if !ok || !sec.has(resume) {
			continue
		}
		if sec.title != "" {
			l.heading(sec.title)
		}
		sec.draw(l, resume)
		out.drawn = append(out.drawn, key)
	}

	if missing = text.missing(); len(missing) > 0 {
		return out, missing, nil
	}
	if doc.Err() {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrRenderFailure, doc.Error())
	}

	out.pages = doc.PageCount()
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
	}
	out.data = buf.Bytes()
	// Prefer the page count read back from the written file.
	if n, err := countPages(out.data); err == nil {
		out.pages = n
	}
	return out, nil, nil
}

func countPages(data []byte) (int, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	return r.NumPage(), nil
}

var _ domain.ResumeRenderer = (*Renderer)(nil)
