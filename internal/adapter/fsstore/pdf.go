package fsstore

import (
	"strings"

	"github.com/go-pdf/fpdf"

	"audience-intel/internal/core/domain"
)

// renderPDF writes a simple PDF rendering of the plan's Markdown report.
// It understands headings, rules and bullet lists; inline emphasis
// markers are stripped rather than styled.
func renderPDF(path string, plan *domain.Plan, markdown string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Audience Intelligence Plan - "+plan.Client.BusinessName, true)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimRight(line, " ")
		switch {
		case strings.HasPrefix(line, "### "):
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 6, tr(plain(strings.TrimPrefix(line, "### "))), "", "L", false)
		case strings.HasPrefix(line, "## "):
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 14)
			pdf.MultiCell(0, 7, tr(plain(strings.TrimPrefix(line, "## "))), "", "L", false)
		case strings.HasPrefix(line, "# "):
			pdf.SetFont("Helvetica", "B", 18)
			pdf.MultiCell(0, 9, tr(plain(strings.TrimPrefix(line, "# "))), "", "L", false)
		case line == "---":
			pdf.Ln(3)
		case strings.HasPrefix(line, "- "):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr("  • "+plain(strings.TrimPrefix(line, "- "))), "", "L", false)
		case line == "":
			pdf.Ln(2)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(plain(line)), "", "L", false)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// plain drops inline Markdown markers the renderer does not style.
func plain(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.TrimPrefix(s, "> ")
	return s
}
