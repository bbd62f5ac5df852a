package export

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/creator"
	"github.com/unidoc/unipdf/v3/model"
)

// PDFFilename is the download name of the summary PDF.
const PDFFilename = "application-details.pdf"

// PDFRenderer draws summary documents onto A4 pages.
type PDFRenderer struct {
	licenseKey string
	log        *slog.Logger

	once       sync.Once
	licenseErr error
}

func NewPDFRenderer(licenseKey string, log *slog.Logger) *PDFRenderer {
	if log == nil {
		log = slog.Default()
	}
	return &PDFRenderer{licenseKey: strings.TrimSpace(licenseKey), log: log}
}

func (r *PDFRenderer) init() {
	if r.licenseKey == "" {
		return
	}
	r.once.Do(func() {
		r.licenseErr = license.SetMeteredKey(r.licenseKey)
		if r.licenseErr != nil {
			r.log.Warn("pdf license rejected", "err", r.licenseErr)
		}
	})
}

// Write renders doc and writes the PDF to w.
func (r *PDFRenderer) Write(w io.Writer, doc Document) error {
	r.init()

	regular, err := model.NewStandard14Font(model.HelveticaName)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	bold, err := model.NewStandard14Font(model.HelveticaBoldName)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	c := creator.New()
	c.SetPageSize(creator.PageSizeA4)
	c.NewPage()

	title := c.NewParagraph(doc.Title)
	title.SetFont(bold)
	title.SetFontSize(18)
	title.SetMargins(0, 0, 0, 12)
	if err := c.Draw(title); err != nil {
		return fmt.Errorf("draw title: %w", err)
	}

	for _, s := range doc.Sections {
		h := c.NewParagraph(s.Heading)
		h.SetFont(bold)
		h.SetFontSize(13)
		h.SetMargins(0, 0, 10, 4)
		if err := c.Draw(h); err != nil {
			return fmt.Errorf("draw heading %q: %w", s.Heading, err)
		}

		for _, l := range s.Lines {
			p := c.NewParagraph(l)
			p.SetFont(regular)
			p.SetFontSize(11)
			p.SetMargins(0, 0, 2, 2)
			if err := c.Draw(p); err != nil {
				return fmt.Errorf("draw line: %w", err)
			}
		}
	}

	if err := c.Write(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
