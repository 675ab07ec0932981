// file: internals/features/billing/render/pdf.go
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	designSvc "gasku_backend/internals/features/templates/design/service"
)

// Renderer PDF. Output SELALU dibuffer penuh sebelum dikirim ke klien —
// tidak ada chunked delivery; controller baru menulis response setelah
// seluruh byte siap.

// RenderPDF menggambar Document ke PDF mengikuti desain tenant.
func RenderPDF(doc Document, d designSvc.Design) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", d.PageSize, "")
	pdf.SetMargins(d.MarginLeft, d.MarginTop, d.MarginRight)
	pdf.SetAutoPageBreak(true, d.MarginBottom)
	pdf.AddPage()

	pr, pg, pb := hexToRGB(d.PrimaryColor, 28, 91, 255)
	ar, ag, ab := hexToRGB(d.AccentColor, 238, 243, 255)
	tr, tg, tb := hexToRGB(d.TextColor, 26, 26, 26)

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - d.MarginLeft - d.MarginRight

	// ===== Header: identitas bisnis + logo =====
	headTop := pdf.GetY()
	pdf.SetFont(d.Font, "B", d.FontSizeBase*1.6)
	pdf.SetTextColor(pr, pg, pb)
	pdf.CellFormat(contentW-45, 8, doc.Business.Name, "", 1, "L", false, 0, "")

	pdf.SetFont(d.Font, "", d.FontSizeBase)
	pdf.SetTextColor(tr, tg, tb)
	if doc.Business.Address != "" {
		pdf.CellFormat(contentW-45, 5, doc.Business.Address, "", 1, "L", false, 0, "")
	}
	if doc.Business.Phone != "" {
		pdf.CellFormat(contentW-45, 5, "Phone: "+doc.Business.Phone, "", 1, "L", false, 0, "")
	}

	if doc.LogoURI != "" {
		placeDataURIImage(pdf, doc.LogoURI, "doc-logo", pageW-d.MarginRight-28, headTop, 28)
	}
	pdf.Ln(4)

	// ===== Judul dokumen =====
	pdf.SetFont(d.Font, "B", d.FontSizeBase*1.4)
	pdf.SetTextColor(pr, pg, pb)
	title := doc.Title
	if doc.Number != "" {
		title += " - " + doc.Number
	}
	pdf.CellFormat(contentW, 9, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)

	// ===== Meta rows =====
	pdf.SetTextColor(tr, tg, tb)
	for _, m := range doc.Meta {
		pdf.SetFont(d.Font, "B", d.FontSizeBase)
		pdf.CellFormat(35, 6, m.Label+":", "", 0, "L", false, 0, "")
		pdf.SetFont(d.Font, "", d.FontSizeBase)
		pdf.CellFormat(contentW-35, 6, m.Value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// ===== Tabel entry =====
	if doc.Table != nil {
		widths := columnWidths(doc.Table.Columns, contentW)

		pdf.SetFont(d.Font, "B", d.FontSizeBase)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFillColor(pr, pg, pb)
		for i, col := range doc.Table.Columns {
			pdf.CellFormat(widths[i], 8, col, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont(d.Font, "", d.FontSizeBase*0.95)
		pdf.SetTextColor(tr, tg, tb)
		pdf.SetFillColor(ar, ag, ab)
		for rIdx, row := range doc.Table.Rows {
			fill := rIdx%2 == 1
			for i, cell := range row {
				align := "L"
				if isNumericCol(doc.Table.Columns[i]) {
					align = "R"
				}
				pdf.CellFormat(widths[i], 7, cell, "1", 0, align, fill, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(2)
	}

	// ===== Summary (kanan bawah tabel) =====
	if len(doc.Summary) > 0 {
		labelW, valueW := 45.0, 40.0
		indent := contentW - labelW - valueW
		for _, s := range doc.Summary {
			style := ""
			if s.Emphasis {
				style = "B"
				pdf.SetTextColor(pr, pg, pb)
			} else {
				pdf.SetTextColor(tr, tg, tb)
			}
			pdf.SetX(d.MarginLeft + indent)
			pdf.SetFont(d.Font, "B", d.FontSizeBase)
			pdf.CellFormat(labelW, 7, s.Label, "", 0, "R", false, 0, "")
			pdf.SetFont(d.Font, style, d.FontSizeBase)
			pdf.CellFormat(valueW, 7, s.Value, "", 1, "R", false, 0, "")
		}
		pdf.SetTextColor(tr, tg, tb)
		pdf.Ln(2)
	}

	// ===== Notes =====
	if doc.Notes != "" {
		pdf.SetFillColor(ar, ag, ab)
		pdf.SetFont(d.Font, "B", d.FontSizeBase)
		pdf.CellFormat(contentW, 7, "Notes", "", 1, "L", true, 0, "")
		pdf.SetFont(d.Font, "", d.FontSizeBase*0.95)
		pdf.MultiCell(contentW, 6, doc.Notes, "", "L", true)
		pdf.Ln(3)
	}

	// ===== Signature area =====
	if doc.SignatureStyle != "" {
		pdf.Ln(10)
		sigW := 55.0
		x := d.MarginLeft
		y := pdf.GetY()
		switch doc.SignatureStyle {
		case "box":
			pdf.Rect(x, y, sigW, 18, "D")
			pdf.SetY(y + 19)
		default: // line & image keduanya memakai garis dasar
			pdf.Line(x, y, x+sigW, y)
			pdf.SetY(y + 1)
		}
		pdf.SetFont(d.Font, "", d.FontSizeBase*0.9)
		pdf.CellFormat(sigW, 5, "Authorized Signature", "", 1, "L", false, 0, "")
	}

	// ===== Barcode / QR =====
	if doc.BarcodeURI != "" || doc.QRURI != "" {
		pdf.Ln(4)
		x := d.MarginLeft
		y := pdf.GetY()
		if doc.BarcodeURI != "" {
			placeDataURIImage(pdf, doc.BarcodeURI, "doc-barcode", x, y, 40)
			x += 46
		}
		if doc.QRURI != "" {
			placeDataURIImage(pdf, doc.QRURI, "doc-qr", x, y, 18)
		}
		pdf.SetY(y + 20)
	}

	// ===== Footer =====
	if doc.FooterText != "" {
		pdf.SetY(-d.MarginBottom - 12)
		pdf.SetDrawColor(217, 217, 217)
		pdf.Line(d.MarginLeft, pdf.GetY(), pageW-d.MarginRight, pdf.GetY())
		pdf.SetFont(d.Font, "", d.FontSizeBase*0.9)
		pdf.SetTextColor(119, 119, 119)
		pdf.CellFormat(contentW, 8, doc.FooterText, "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF rendering failed: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths membagi lebar konten: kolom angka sempit, sisanya rata.
func columnWidths(cols []string, contentW float64) []float64 {
	widths := make([]float64, len(cols))
	remaining := contentW
	flexible := 0
	for i, c := range cols {
		switch c {
		case "No":
			widths[i] = 12
			remaining -= 12
		case "Qty", "Qty Returned":
			widths[i] = 22
			remaining -= 22
		case "Unit Price", "Total", "Cash Received":
			widths[i] = 30
			remaining -= 30
		default:
			flexible++
		}
	}
	if flexible > 0 {
		per := remaining / float64(flexible)
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = per
			}
		}
	}
	return widths
}

func isNumericCol(col string) bool {
	switch col {
	case "Qty", "Qty Returned", "Unit Price", "Total", "Cash Received":
		return true
	}
	return false
}

// placeDataURIImage meletakkan image data-URI (png/jpeg) dengan lebar w mm.
// Data rusak atau format tak dikenal di-skip diam-diam; layout lain jalan terus.
func placeDataURIImage(pdf *gofpdf.Fpdf, uri, name string, x, y, w float64) {
	mime, raw, ok := designSvc.DataURIBytes(uri)
	if !ok {
		return
	}
	var imgType string
	switch {
	case strings.Contains(mime, "png"):
		imgType = "PNG"
	case strings.Contains(mime, "jpeg"), strings.Contains(mime, "jpg"):
		imgType = "JPG"
	default:
		return
	}
	opts := gofpdf.ImageOptions{ImageType: imgType, ReadDpi: true}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
	if pdf.Err() {
		// image rusak: reset error supaya dokumen tetap tergenerate
		pdf.ClearError()
		return
	}
	pdf.ImageOptions(name, x, y, w, 0, false, opts, 0, "")
}

// hexToRGB: "#rrggbb" → komponen; fallback ke default saat rusak.
func hexToRGB(hex string, dr, dg, db int) (int, int, int) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return dr, dg, db
	}
	r, err1 := strconv.ParseInt(s[0:2], 16, 32)
	g, err2 := strconv.ParseInt(s[2:4], 16, 32)
	b, err3 := strconv.ParseInt(s[4:6], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return dr, dg, db
	}
	return int(r), int(g), int(b)
}
