package output

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
)

// Page geometry of the text PDF, in points. Vertical positions are measured
// from the bottom of the page.
const (
	PageWidth    = 612.0
	PageHeight   = 792.0
	LeftMargin   = 40.0
	TitleTop     = 40.0
	BodyTop      = 70.0
	BottomMargin = 60.0
	LineAdvance  = 12.0
	ChunkSize    = 200
	TitleSize    = 16.0
	BodySize     = 10.0
)

// PlacedLine is one chunk of body text and the baseline it is drawn at.
type PlacedLine struct {
	Text string
	Y    float64
}

// Paginate splits lines into chunks of at most ChunkSize characters and
// assigns each chunk a page and baseline. Chunks are cut by character count,
// not at word boundaries; an empty line produces no chunk.
func Paginate(lines []string) [][]PlacedLine {
	pages := [][]PlacedLine{nil}
	y := PageHeight - BodyTop

	for _, line := range lines {
		r := []rune(line)
		for i := 0; i < len(r); i += ChunkSize {
			end := i + ChunkSize
			if end > len(r) {
				end = len(r)
			}
			if y < BottomMargin {
				pages = append(pages, nil)
				y = PageHeight - TitleTop
			}
			last := len(pages) - 1
			pages[last] = append(pages[last], PlacedLine{Text: string(r[i:end]), Y: y})
			y -= LineAdvance
		}
	}
	return pages
}

// PDF renders a letter-size document: a bold title at the top of the first
// page, then the body lines as laid out by Paginate.
func PDF(title string, lines []string) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetCatalogSort(true)
	pdf.SetTitle(title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, page := range Paginate(lines) {
		pdf.AddPage()
		if i == 0 {
			pdf.SetFont("Helvetica", "B", TitleSize)
			pdf.Text(LeftMargin, TitleTop, tr(title))
		}
		pdf.SetFont("Helvetica", "", BodySize)
		for _, pl := range page {
			pdf.Text(LeftMargin, PageHeight-pl.Y, tr(pl.Text))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, exportError(FormatPDF, err)
	}
	return buf.Bytes(), nil
}
