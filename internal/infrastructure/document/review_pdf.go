// Package document renders the internal review PDF attached to dispatch
// emails.
package document

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"coyne_ecology/internal/domain/entities"
	"coyne_ecology/internal/domain/quote"
	"coyne_ecology/internal/usecase/interfaces"
)

// Page geometry in millimetres (A4 portrait).
const (
	marginLeft   = 15.0
	marginTop    = 28.0
	marginRight  = 15.0
	marginBottom = 24.0
	headerBandH  = 20.0
	lineH        = 5.5
)

const companyFooterLine = "Coyne Environmental Ltd, 4 Heron Court, St Albans, Hertfordshire AL1 1RN"

// ReviewPDFRenderer builds the multi-page review document for a draft. It is
// side-effect free: no I/O, output is a completed byte buffer.
type ReviewPDFRenderer struct{}

var _ interfaces.IReviewDocumentRenderer = (*ReviewPDFRenderer)(nil)

func NewReviewPDFRenderer() *ReviewPDFRenderer {
	return &ReviewPDFRenderer{}
}

// reviewDoc carries the per-render cursor state. Each add* section measures
// its own height against the remaining space and breaks the page (re-emitting
// the header band) before drawing, so content never reaches the footer region.
type reviewDoc struct {
	pdf       *gofpdf.Fpdf
	tr        func(string) string
	draft     entities.QuoteDraft
	reference string
	prepared  string
	bodyW     float64
}

func (r *ReviewPDFRenderer) Render(draft entities.QuoteDraft) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)

	pageW, _ := pdf.GetPageSize()
	d := &reviewDoc{
		pdf:       pdf,
		tr:        pdf.UnicodeTranslatorFromDescriptor(""),
		draft:     draft,
		reference: quote.Reference(draft.ID),
		prepared:  draft.SubmittedAt.UTC().Format("2006-01-02"),
		bodyW:     pageW - marginLeft - marginRight,
	}

	pdf.SetHeaderFunc(d.header)
	pdf.SetFooterFunc(d.footer)
	pdf.AddPage()

	d.addCallout()
	d.addProjectBrief()
	d.addScopeOutputs()
	d.addCommercialPosition()
	d.addCommercialNotes()
	d.addReviewActions()

	if pdf.Err() {
		return nil, fmt.Errorf("failed to assemble review document: %w", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate review document: %w", err)
	}
	return buf.Bytes(), nil
}

// header paints the branded band repeated at the top of every page.
func (d *reviewDoc) header() {
	pdf := d.pdf
	pageW, _ := pdf.GetPageSize()

	pdf.SetFillColor(20, 45, 38)
	pdf.Rect(0, 0, pageW, headerBandH, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(marginLeft, 4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(110, 7, "COYNE ENVIRONMENTAL", "", 1, "L", false, 0, "")
	pdf.SetX(marginLeft)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(190, 210, 200)
	title := "Internal Quote Review Draft"
	if pdf.PageNo() > 1 {
		title = "Internal Quote Review Draft (Continuation)"
	}
	pdf.CellFormat(110, 5, title, "", 0, "L", false, 0, "")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(pageW-marginRight-70, 4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(70, 7, d.reference, "", 2, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(190, 210, 200)
	pdf.CellFormat(70, 5, "Prepared "+d.prepared, "", 0, "R", false, 0, "")

	pdf.SetTextColor(30, 30, 30)
	pdf.SetY(marginTop)
}

// footer paints the company strip repeated at the bottom of every page.
func (d *reviewDoc) footer() {
	pdf := d.pdf
	pageW, pageH := pdf.GetPageSize()

	pdf.SetY(pageH - marginBottom + 6)
	pdf.SetDrawColor(210, 215, 212)
	pdf.Line(marginLeft, pdf.GetY(), pageW-marginRight, pdf.GetY())

	pdf.SetY(pdf.GetY() + 2)
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetX(marginLeft)
	pdf.CellFormat(d.bodyW/2, 4, companyFooterLine, "", 0, "L", false, 0, "")
	pdf.CellFormat(d.bodyW/2, 4, fmt.Sprintf("%s | %s | page %d", d.reference, d.prepared, pdf.PageNo()), "", 0, "R", false, 0, "")
	pdf.SetTextColor(30, 30, 30)
}

// ensureSpace breaks the page when fewer than h millimetres remain above the
// footer region. The registered header is re-emitted on the new page.
func (d *reviewDoc) ensureSpace(h float64) {
	_, pageH := d.pdf.GetPageSize()
	if d.pdf.GetY()+h > pageH-marginBottom {
		d.pdf.AddPage()
	}
}

func (d *reviewDoc) sectionTitle(title string) {
	d.ensureSpace(12)
	pdf := d.pdf
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(46, 106, 79)
	pdf.SetX(marginLeft)
	pdf.CellFormat(d.bodyW, 6, title, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(46, 106, 79)
	pdf.Line(marginLeft, pdf.GetY(), marginLeft+d.bodyW, pdf.GetY())
	pdf.Ln(2)
	pdf.SetTextColor(30, 30, 30)
}

// addCallout draws the review-draft panel summarising urgency routing.
func (d *reviewDoc) addCallout() {
	const panelH = 16.0
	d.ensureSpace(panelH + 4)
	pdf := d.pdf

	routing := "Standard submission: review within two working days."
	if d.draft.Request.IsUrgent {
		routing = "Urgent submission: route to a principal ecologist for same-day review."
	}

	top := pdf.GetY()
	pdf.SetFillColor(240, 245, 242)
	pdf.SetDrawColor(46, 106, 79)
	pdf.Rect(marginLeft, top, d.bodyW, panelH, "FD")

	pdf.SetXY(marginLeft+4, top+3)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(46, 106, 79)
	pdf.CellFormat(d.bodyW-8, 5, "REVIEW DRAFT - NOT CLIENT FACING", "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetX(marginLeft + 4)
	pdf.CellFormat(d.bodyW-8, 5, routing, "", 0, "L", false, 0, "")

	pdf.SetTextColor(30, 30, 30)
	pdf.SetY(top + panelH + 3)
}

// detailRow draws one label/value line of the two-column layout.
func (d *reviewDoc) detailRow(label, value string) {
	d.ensureSpace(lineH)
	pdf := d.pdf
	pdf.SetX(marginLeft)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(42, lineH, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)
	pdf.MultiCell(d.bodyW-42, lineH, d.tr(value), "", "L", false)
}

func (d *reviewDoc) addProjectBrief() {
	req := d.draft.Request
	d.sectionTitle("PROJECT BRIEF")

	urgency := "Standard mobilisation"
	if req.IsUrgent {
		urgency = "Priority mobilisation requested"
	}
	requiredBy := req.RequiredBy
	if requiredBy == "" {
		requiredBy = "Not provided"
	}

	d.detailRow("Project", req.ProjectName)
	d.detailRow("Contact", req.ContactEmail)
	d.detailRow("Service", quote.ServiceConfigFor(req.Service).Label)
	d.detailRow("Stage", quote.StageConfigFor(req.Stage).Label)
	d.detailRow("Site context", quote.ContextConfigFor(req.SiteContext).Label)
	d.detailRow("Site area", fmt.Sprintf("%.1f ha", req.Hectares))
	d.detailRow("Urgency", urgency)
	d.detailRow("Required by", requiredBy)
}

// bullet draws one wrapped bullet line, measuring its height first so the
// whole entry moves to the next page rather than splitting over the footer.
func (d *reviewDoc) bullet(textVal string) {
	pdf := d.pdf
	translated := d.tr(textVal)
	lines := pdf.SplitLines([]byte(translated), d.bodyW-8)
	d.ensureSpace(float64(len(lines)) * lineH)

	pdf.SetX(marginLeft)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(5, lineH, "-", "", 0, "L", false, 0, "")
	pdf.MultiCell(d.bodyW-8, lineH, translated, "", "L", false)
}

func (d *reviewDoc) addScopeOutputs() {
	d.sectionTitle("PROPOSED SCOPE OUTPUTS")
	for _, output := range d.draft.Outputs {
		d.bullet(output)
	}
}

func (d *reviewDoc) addCommercialPosition() {
	p := d.draft.Pricing
	d.sectionTitle("INTERNAL COMMERCIAL POSITION")

	rows := []struct {
		label     string
		value     string
		highlight bool
	}{
		{"Base fee", quote.FormatGBP(p.BaseFee), false},
		{"Calculated fee", quote.FormatGBP(p.CalculatedFee), false},
		{"Contingency", quote.FormatGBP(p.Contingency), false},
		{"Recommended fee", quote.FormatGBP(p.RecommendedFee), true},
		{"Commercial range", quote.FormatGBP(p.FeeRangeLow) + " - " + quote.FormatGBP(p.FeeRangeHigh), false},
		{"Lead time", fmt.Sprintf("%d-%d working days", p.LeadDaysMin, p.LeadDaysMax), false},
		{"Complexity score", fmt.Sprintf("%d / 10", p.ComplexityScore), false},
	}

	pdf := d.pdf
	for _, row := range rows {
		d.ensureSpace(lineH + 1)
		pdf.SetX(marginLeft)
		fill := false
		if row.highlight {
			pdf.SetFillColor(240, 245, 242)
			fill = true
		}
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(42, lineH+1, row.label, "", 0, "L", fill, 0, "")
		style := ""
		if row.highlight {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.SetTextColor(30, 30, 30)
		pdf.CellFormat(d.bodyW-42, lineH+1, d.tr(row.value), "", 1, "L", fill, 0, "")
	}
}

// addCommercialNotes is skipped entirely when pricing carries no notes.
func (d *reviewDoc) addCommercialNotes() {
	if len(d.draft.Pricing.Notes) == 0 {
		return
	}
	d.sectionTitle("COMMERCIAL NOTES")
	for _, note := range d.draft.Pricing.Notes {
		d.bullet(note)
	}
}

func (d *reviewDoc) addReviewActions() {
	d.sectionTitle("REVIEW ACTIONS")
	actions := []string{
		"Validate assumptions and scope.",
		"Confirm final fee position and margin.",
		"Approve release of client-facing quote letter.",
	}

	pdf := d.pdf
	for i, action := range actions {
		d.ensureSpace(lineH + 1)
		pdf.SetX(marginLeft)
		pdf.SetDrawColor(100, 100, 100)
		pdf.Rect(marginLeft+1, pdf.GetY()+1, 3.2, 3.2, "D")
		pdf.SetX(marginLeft + 7)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(d.bodyW-7, lineH+1, fmt.Sprintf("%d. %s", i+1, action), "", 1, "L", false, 0, "")
	}
}
