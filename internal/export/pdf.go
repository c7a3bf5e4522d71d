package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/attafarid/studyai/internal/examgen"
)

const (
	pageMargin = 15.0
	lineHeight = 6.0
)

// FPDFRenderer renders an exam to PDF on A4 pages. The zero value is
// ready to use.
type FPDFRenderer struct{}

// fontsFor maps a theme to (header, body) core font families.
func fontsFor(theme examgen.FontTheme) (string, string) {
	switch theme {
	case examgen.ThemeModern:
		return "Helvetica", "Helvetica"
	case examgen.ThemeElegant:
		return "Times", "Times"
	default: // Classic: sans headers, serif body
		return "Helvetica", "Times"
	}
}

func newDoc(cfg examgen.ExamConfig) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	if cfg.WatermarkText != "" && cfg.WatermarkOpacity > 0 {
		pdf.SetHeaderFunc(func() {
			drawWatermark(pdf, cfg)
		})
	}
	pdf.SetFooterFunc(func() {
		_, bodyFont := fontsFor(cfg.PDFFontTheme)
		pdf.SetY(-12)
		pdf.SetFont(bodyFont, "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d", pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})

	return pdf
}

// drawWatermark paints the watermark text diagonally across the page
// center at the configured opacity.
func drawWatermark(pdf *fpdf.Fpdf, cfg examgen.ExamConfig) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	w, h := pdf.GetPageSize()

	pdf.SetAlpha(cfg.WatermarkOpacity, "Normal")
	pdf.SetFont("Helvetica", "B", 60)
	pdf.SetTextColor(100, 100, 100)

	pdf.TransformBegin()
	pdf.TransformRotate(45, w/2, h/2)
	pdf.SetXY(0, h/2-15)
	pdf.CellFormat(w, 30, tr(cfg.WatermarkText), "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetAlpha(1, "Normal")
	pdf.SetTextColor(0, 0, 0)
}

func renderHeader(pdf *fpdf.Fpdf, cfg examgen.ExamConfig) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	headerFont, bodyFont := fontsFor(cfg.PDFFontTheme)

	size := float64(cfg.HeaderFontSize)
	if size <= 0 {
		size = 22
	}

	if cfg.ShowLogo {
		pdf.SetFont(headerFont, "B", 10)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(0, 5, "STUDY.AI", "", 1, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.SetFont(headerFont, "B", size)
	pdf.MultiCell(0, size*0.5, tr(cfg.ExamName), "", "C", false)

	if cfg.Subtitle != "" {
		pdf.SetFont(bodyFont, "I", 12)
		pdf.SetTextColor(80, 80, 80)
		pdf.CellFormat(0, 7, tr(cfg.Subtitle), "", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.Ln(3)

	if cfg.StudentNameLine {
		pdf.SetFont(bodyFont, "", 11)
		pdf.CellFormat(0, 8,
			"Name: ______________________________          Score: ________",
			"", 1, "L", false, 0, "")
	}

	x, y := pageMargin, pdf.GetY()+2
	w, _ := pdf.GetPageSize()
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(x, y, w-pageMargin, y)
	pdf.Ln(6)
}

// Render writes the exam as a question paper: header, then every
// question in order with its number, type-specific body, and working
// space. Answers and notes never appear on the paper.
func (FPDFRenderer) Render(w io.Writer, exam *examgen.GeneratedExam, cfg examgen.ExamConfig) error {
	pdf := newDoc(cfg)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, bodyFont := fontsFor(cfg.PDFFontTheme)

	pdf.AddPage()
	renderHeader(pdf, cfg)

	for i, q := range exam.Questions {
		pdf.SetFont(bodyFont, "B", 11)
		pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("%d. %s", i+1, q.Question)), "", "L", false)
		pdf.SetFont(bodyFont, "", 11)

		switch q.Type {
		case examgen.TypeMCQ:
			for j, opt := range q.Options {
				label := fmt.Sprintf("(%c) %s", 'a'+j, opt)
				pdf.SetX(pageMargin + 6)
				pdf.MultiCell(0, lineHeight, tr(label), "", "L", false)
			}
		case examgen.TypeTrueFalse:
			pdf.SetX(pageMargin + 6)
			pdf.CellFormat(0, lineHeight, "True  /  False", "", 1, "L", false, 0, "")
		case examgen.TypeMatching:
			renderMatching(pdf, tr, q.Pairs)
		case examgen.TypeShortAnswer, examgen.TypeFillBlank:
			answerLines(pdf, 2)
		case examgen.TypeEssay, examgen.TypeLongAnswer:
			answerLines(pdf, 5)
		}

		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render exam pdf: %w", err)
	}
	return nil
}

// renderMatching lays out the pairs as two numbered columns: left items
// as "1. …" and right items, shown alongside, as "A. …".
func renderMatching(pdf *fpdf.Fpdf, tr func(string) string, pairs []examgen.Pair) {
	w, _ := pdf.GetPageSize()
	colW := (w - 2*pageMargin - 6) / 2

	for i, p := range pairs {
		pdf.SetX(pageMargin + 6)
		pdf.CellFormat(colW, lineHeight, tr(fmt.Sprintf("%d. %s", i+1, p.Left)),
			"", 0, "L", false, 0, "")
		pdf.CellFormat(colW, lineHeight, tr(fmt.Sprintf("%c. %s", 'A'+i, p.Right)),
			"", 1, "L", false, 0, "")
	}
}

// answerLines draws n ruled lines for handwritten answers.
func answerLines(pdf *fpdf.Fpdf, n int) {
	w, _ := pdf.GetPageSize()
	pdf.SetDrawColor(170, 170, 170)
	for range n {
		pdf.Ln(8)
		y := pdf.GetY()
		pdf.Line(pageMargin+6, y, w-pageMargin, y)
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.Ln(2)
}

// RenderAnswerKey writes the grading key: every question with its
// answer, matching pair solutions, and any grader notes.
func (FPDFRenderer) RenderAnswerKey(w io.Writer, exam *examgen.GeneratedExam, cfg examgen.ExamConfig) error {
	keyCfg := cfg
	keyCfg.ExamName = cfg.ExamName + " - Answer Key"
	keyCfg.StudentNameLine = false

	pdf := newDoc(keyCfg)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, bodyFont := fontsFor(cfg.PDFFontTheme)

	pdf.AddPage()
	renderHeader(pdf, keyCfg)

	for i, q := range exam.Questions {
		pdf.SetFont(bodyFont, "B", 11)
		pdf.MultiCell(0, lineHeight, tr(fmt.Sprintf("%d. %s", i+1, q.Question)), "", "L", false)
		pdf.SetFont(bodyFont, "", 11)

		if q.Type == examgen.TypeMatching {
			for j, p := range q.Pairs {
				pdf.SetX(pageMargin + 6)
				pdf.MultiCell(0, lineHeight,
					tr(fmt.Sprintf("%d. %s  ->  %s", j+1, p.Left, p.Right)),
					"", "L", false)
			}
		} else if q.Answer != "" {
			pdf.SetX(pageMargin + 6)
			pdf.MultiCell(0, lineHeight, tr("Answer: "+q.Answer), "", "L", false)
		}

		if q.Notes != "" {
			pdf.SetFont(bodyFont, "I", 10)
			pdf.SetTextColor(100, 100, 100)
			pdf.SetX(pageMargin + 6)
			pdf.MultiCell(0, 5, tr("Note: "+q.Notes), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont(bodyFont, "", 11)
		}

		pdf.Ln(3)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render answer key pdf: %w", err)
	}
	return nil
}
