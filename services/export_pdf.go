package services

import (
	"bytes"
	"fmt"
	"log"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
)

// Page geometry in millimeters on A4 portrait.
const (
	leftMargin    = 15
	rightMargin   = 15
	bottomMargin  = 40
	lineH         = 5
	termsLineH    = 4
	letterheadW   = 190
	customHeaderH = 30
	signatureW    = 45
)

// The bundled letterhead is 767x68; the signature scan is 289x68. Custom
// uploads get a fixed height instead so arbitrary aspect ratios stay sane.
const (
	letterheadAspect = 68.0 / 767.0
	signatureAspect  = 68.0 / 289.0
)

// GenerateQuotationPDF lays out a validated quotation as a paginated A4
// document and returns the raw PDF bytes. Broken or missing images degrade
// (text header, skipped signature); any other rendering fault is returned.
func GenerateQuotationPDF(q Quotation, assets PDFAssets) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(q.QuoteName, true)

	l := &quoteLayout{pdf: pdf, q: q}
	l.pageW, l.pageH = pdf.GetPageSize()

	l.prepareImages(assets)

	pdf.AddPage()
	l.addHeader()
	l.addRecipient()
	l.addLineItemTable()
	l.checkOverflow()
	l.addTerms()
	l.addSignature()
	l.addFooter()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("quotation pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// quoteLayout tracks the vertical cursor while sections are placed top to
// bottom, the way the document flows on paper.
type quoteLayout struct {
	pdf          *gofpdf.Fpdf
	q            Quotation
	pageW, pageH float64
	y            float64

	headerImage string // registered image name, "" when unavailable
	headerH     float64
	signature   string
	signatureH  float64
}

// prepareImages validates and registers the header and signature images.
// A custom uploaded letterhead takes precedence over the bundled asset.
func (l *quoteLayout) prepareImages(assets PDFAssets) {
	if l.q.HeaderImage != "" {
		data, format, err := DecodeImageDataURL(l.q.HeaderImage)
		if err != nil {
			log.Printf("quotation pdf: stored header image unusable, falling back: %v", err)
		} else if l.registerImage("header", format, data) {
			l.headerImage = "header"
			l.headerH = customHeaderH
		}
	}
	if l.headerImage == "" && assets.Letterhead != nil {
		format, err := sniffImageFormat(assets.Letterhead)
		if err == nil && l.registerImage("header", format, assets.Letterhead) {
			l.headerImage = "header"
			l.headerH = letterheadW * letterheadAspect
		} else {
			log.Printf("quotation pdf: bundled letterhead unusable, using text header")
		}
	}

	if assets.Signature != nil {
		format, err := sniffImageFormat(assets.Signature)
		if err == nil && l.registerImage("signature", format, assets.Signature) {
			l.signature = "signature"
			l.signatureH = signatureW * signatureAspect
		} else {
			log.Printf("quotation pdf: signature image unusable, skipping")
		}
	}
}

// registerImage decodes the payload first so a corrupt image is rejected
// here instead of poisoning the document's error state mid-layout.
func (l *quoteLayout) registerImage(name, format string, data []byte) bool {
	if _, err := imaging.Decode(bytes.NewReader(data)); err != nil {
		log.Printf("quotation pdf: %s image does not decode: %v", name, err)
		return false
	}
	opts := gofpdf.ImageOptions{ImageType: format}
	l.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if l.pdf.Err() {
		log.Printf("quotation pdf: registering %s image failed: %v", name, l.pdf.Error())
		l.pdf.ClearError()
		return false
	}
	return true
}

const companyTagline = "All Kinds of Industrial & Decorative Painting, Sand & Shot Blasting & All Types of Labour Job Works."

// addHeader draws the letterhead image, or a centered two-line text header
// when no image is available, and positions the cursor below it. It is
// redrawn at the top of every overflow page.
func (l *quoteLayout) addHeader() {
	if l.headerImage != "" {
		l.pdf.ImageOptions(l.headerImage, 10, 5, letterheadW, l.headerH, false, gofpdf.ImageOptions{}, 0, "")
		l.y = 5 + l.headerH + 10
	} else {
		l.pdf.SetFont("Times", "B", 18)
		l.textCentered(l.q.CompanyName, 15)
		l.pdf.SetFont("Times", "", 10)
		l.textCentered(companyTagline, 22)
		l.y = 35
	}
}

func (l *quoteLayout) textCentered(s string, y float64) {
	l.pdf.Text((l.pageW-l.pdf.GetStringWidth(s))/2, y, s)
}

// addRecipient draws the date line, the "To," block, the optional kind
// attention line, the subject and the salutation.
func (l *quoteLayout) addRecipient() {
	l.pdf.SetFont("Times", "", 11)
	dateStr := "Date: " + l.q.QuoteDate.Format("02-01-2006")
	l.pdf.Text(l.pageW-rightMargin-l.pdf.GetStringWidth(dateStr), l.y, dateStr)

	l.pdf.Text(leftMargin, l.y, "To,")
	l.y += 6

	l.pdf.SetFont("Times", "B", 12)
	l.writeLines(leftMargin, l.pdf.SplitText(l.q.CustomerName, 100), lineH)
	l.pdf.SetFont("Times", "", 12)
	l.writeLines(leftMargin, l.pdf.SplitText(l.q.CustomerAddress, 100), lineH)

	l.pdf.SetFontSize(11)
	if l.q.KindAttention != "" {
		l.y += 2
		l.pdf.SetFontStyle("B")
		l.pdf.Text(leftMargin, l.y, "Kind Attention:-")
		l.pdf.SetFontStyle("")
		l.pdf.Text(45, l.y, l.q.KindAttention)
		l.y += lineH
	}

	l.y += 5
	l.pdf.SetFontStyle("B")
	l.pdf.Text(leftMargin, l.y, "Sub:-")
	l.pdf.SetFontStyle("")
	l.writeLines(27, l.pdf.SplitText(l.q.Subject, 160), lineH)
	l.y += 5

	l.pdf.Text(leftMargin, l.y, "Dear Sir,")
	l.y += 7
}

// writeLines draws pre-wrapped lines at x, advancing the cursor per line.
func (l *quoteLayout) writeLines(x float64, lines []string, h float64) {
	for _, line := range lines {
		l.pdf.Text(x, l.y, line)
		l.y += h
	}
}

// Table column widths. Description takes whatever the fixed columns leave of
// the 180mm table width.
var tableCols = []struct {
	title string
	width float64
}{
	{"Sr. No.", 15},
	{"Description", 65},
	{"Qty", 22},
	{"Unit", 18},
	{"Rate", 28},
	{"Amount", 32},
}

func tableWidth() float64 {
	var w float64
	for _, c := range tableCols {
		w += c.width
	}
	return w
}

// addLineItemTable draws the grid of line items followed by a totals row
// that fills only the Amount column. Rows that would cross the bottom margin
// push the table onto a fresh page with the header and table head redrawn
// first.
func (l *quoteLayout) addLineItemTable() {
	l.pdf.SetLineWidth(0.1)
	l.pdf.SetDrawColor(0, 0, 0)
	l.drawTableHead()

	for i, item := range l.q.LineItems {
		cells := []string{
			fmt.Sprintf("%d", i+1),
			item.Description,
			FormatAmount(item.Quantity),
			item.Unit,
			FormatAmount(rateOrZero(item)),
			FormatAmount(LineAmount(item)),
		}
		l.drawTableRow(cells, false)
	}

	// Totals row: rule above, bold amount, everything else blank.
	total := TotalAmount(l.q.LineItems)
	l.pdf.Line(leftMargin, l.y, leftMargin+tableWidth(), l.y)
	l.drawTableRow([]string{"", "", "", "", "", FormatAmount(total)}, true)
}

func rateOrZero(item LineItem) float64 {
	if item.Rate == nil {
		return 0
	}
	return *item.Rate
}

func (l *quoteLayout) drawTableHead() {
	l.pdf.SetFont("Times", "B", 10)
	x := float64(leftMargin)
	const headH = 8.0
	for _, col := range tableCols {
		l.pdf.Rect(x, l.y, col.width, headH, "D")
		l.pdf.Text(x+(col.width-l.pdf.GetStringWidth(col.title))/2, l.y+5.5, col.title)
		x += col.width
	}
	l.y += headH
	l.pdf.SetFont("Times", "", 10)
}

// drawTableRow draws one grid row, wrapping the description cell. The row
// height follows the wrapped line count.
func (l *quoteLayout) drawTableRow(cells []string, boldAmount bool) {
	descLines := l.pdf.SplitText(cells[1], tableCols[1].width-4)
	if len(descLines) == 0 {
		descLines = []string{""}
	}
	rowH := float64(len(descLines))*lineH + 3

	if l.y+rowH > l.pageH-bottomMargin {
		l.newPage()
		l.drawTableHead()
	}

	x := float64(leftMargin)
	for i, col := range tableCols {
		l.pdf.Rect(x, l.y, col.width, rowH, "D")
		switch i {
		case 1:
			for j, line := range descLines {
				l.pdf.Text(x+2, l.y+5.5+float64(j)*lineH, line)
			}
		case 5:
			if boldAmount {
				l.pdf.SetFontStyle("B")
			}
			l.pdf.Text(x+(col.width-l.pdf.GetStringWidth(cells[i]))/2, l.y+5.5, cells[i])
			l.pdf.SetFontStyle("")
		default:
			l.pdf.Text(x+(col.width-l.pdf.GetStringWidth(cells[i]))/2, l.y+5.5, cells[i])
		}
		x += col.width
	}
	l.y += rowH
}

// newPage starts an overflow page and redraws the header block on top.
func (l *quoteLayout) newPage() {
	l.pdf.AddPage()
	l.addHeader()
}

// checkOverflow starts a new page when the cursor has crossed the bottom
// margin threshold.
func (l *quoteLayout) checkOverflow() {
	if l.y > l.pageH-bottomMargin {
		l.newPage()
	}
}

func (l *quoteLayout) addTerms() {
	l.y += 10
	l.pdf.SetFont("Times", "B", 10)
	l.pdf.Text(leftMargin, l.y, "Term's & Condition :-")
	l.y += 5

	l.pdf.SetFont("Times", "", 9)
	lines := l.pdf.SplitText(l.q.Terms, 180)
	if l.y+float64(len(lines))*termsLineH > l.pageH-bottomMargin {
		l.newPage()
		l.pdf.SetFont("Times", "", 9)
	}
	l.writeLines(leftMargin, lines, termsLineH)
	l.y += 10
	l.checkOverflow()
}

// addSignature draws the "For, <company>" line, the signature image (or a
// fixed gap when unavailable) and the signatory name.
func (l *quoteLayout) addSignature() {
	l.pdf.SetFont("Times", "B", 11)
	l.pdf.Text(leftMargin, l.y, "For, "+l.q.CompanyName)

	if l.signature != "" {
		l.y += 2
		l.pdf.ImageOptions(l.signature, leftMargin, l.y, signatureW, l.signatureH, false, gofpdf.ImageOptions{}, 0, "")
		l.y += l.signatureH
	} else {
		l.y += 15
	}

	l.checkOverflow()
	l.pdf.Text(leftMargin, l.y, l.q.AuthorisedSignatory)
}

// addFooter draws a bordered contact box anchored to the bottom of the final
// page. Its height follows the wrapped company address plus one contact line.
func (l *quoteLayout) addFooter() {
	l.pdf.SetFont("Times", "", 9)

	addressLines := l.pdf.SplitText("Add: "+l.q.CompanyAddress, l.pageW-25)
	contactLine := fmt.Sprintf("Email- %s (M) %s", l.q.CompanyEmail, l.q.CompanyPhone)

	textH := float64(len(addressLines))*termsLineH + termsLineH
	rectH := textH + 6
	rectY := l.pageH - rectH - 5

	l.pdf.Rect(10, rectY, l.pageW-20, rectH, "D")

	y := rectY + 5
	for _, line := range addressLines {
		l.pdf.Text((l.pageW-l.pdf.GetStringWidth(line))/2, y, line)
		y += termsLineH
	}
	l.pdf.Text((l.pageW-l.pdf.GetStringWidth(contactLine))/2, y, contactLine)
}
