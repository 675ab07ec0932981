// file: internals/features/billing/render/render_test.go
package render

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	designSvc "gasku_backend/internals/features/templates/design/service"
)

func TestRenderHTMLContainsFigures(t *testing.T) {
	d := designSvc.DefaultDesign()
	rem := decimal.NewFromInt(1500)
	doc := BuildEntryDoc(KindDelivered, "CB-TEST42", testDate, deliveredLine(), testBusiness(), testCustomer(), d, &rem)

	html, err := RenderHTML(doc, d)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}

	for _, want := range []string{
		"CYLINDER BILL",
		"CB-TEST42",
		"Ali Gas Traders",
		"C001 · Hotel Faisal",
		"Rs 5,000",
		"Rs 6,500",
		d.PrimaryColor,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML tidak memuat %q", want)
		}
	}
}

func TestRenderHTMLAllSectionsOff(t *testing.T) {
	d := designSvc.DefaultDesign()
	d.ShowLogo = false
	d.ShowPrices = false
	d.ShowTable = false
	d.ShowNotesSection = false
	d.ShowSignatureArea = false
	d.ShowFooter = false

	doc := BuildEntryDoc(KindDelivered, "CB-OFF", testDate, deliveredLine(), testBusiness(), testCustomer(), d, nil)

	html, err := RenderHTML(doc, d)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if strings.Contains(html, "Rs ") {
		t.Error("harga masih muncul padahal ShowPrices=false")
	}
	if !strings.Contains(html, "CYLINDER BILL") {
		t.Error("judul hilang pada dokumen minimal")
	}
}

func TestRenderPDF(t *testing.T) {
	d := designSvc.DefaultDesign()
	rem := decimal.NewFromInt(1500)
	doc := BuildEntryDoc(KindDelivered, "CB-PDF", testDate, deliveredLine(), testBusiness(), testCustomer(), d, &rem)

	pdfBytes, err := RenderPDF(doc, d)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("PDF kosong")
	}
	if !strings.HasPrefix(string(pdfBytes[:5]), "%PDF-") {
		t.Errorf("header PDF salah: %q", pdfBytes[:5])
	}
}

func TestRenderPDFVariants(t *testing.T) {
	rem := decimal.NewFromInt(100)

	cases := []struct {
		name  string
		patch func(*designSvc.Design)
	}{
		{"all off", func(d *designSvc.Design) {
			d.ShowLogo = false
			d.ShowPrices = false
			d.ShowTable = false
			d.ShowNotesSection = false
			d.ShowSignatureArea = false
			d.ShowFooter = false
		}},
		{"letter courier", func(d *designSvc.Design) {
			d.PageSize = "Letter"
			d.Font = "Courier"
		}},
		{"signature box", func(d *designSvc.Design) {
			d.SignatureStyle = "box"
		}},
		{"logo rusak tidak fatal", func(d *designSvc.Design) {
			d.LogoDataURI = "data:image/png;base64,bukan-base64-valid"
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := designSvc.DefaultDesign()
			tc.patch(&d)
			doc := BuildEntryDoc(KindDelivered, "CB-V", testDate, deliveredLine(), testBusiness(), testCustomer(), d, &rem)
			pdfBytes, err := RenderPDF(doc, d)
			if err != nil {
				t.Fatalf("RenderPDF: %v", err)
			}
			if len(pdfBytes) < 100 {
				t.Errorf("PDF terlalu kecil: %d byte", len(pdfBytes))
			}
		})
	}
}

// Kedua renderer harus memakai angka identik karena membaca Document
// yang sama — builder yang memformat, bukan renderer.
func TestHTMLAndPDFShareDocument(t *testing.T) {
	d := designSvc.DefaultDesign()
	rem := decimal.NewFromInt(1500)
	doc := BuildEntryDoc(KindDelivered, "CB-SAME", testDate, deliveredLine(), testBusiness(), testCustomer(), d, &rem)

	html, err := RenderHTML(doc, d)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if _, err := RenderPDF(doc, d); err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}

	// setiap nilai summary (sumber tunggal) harus muncul di HTML
	for _, row := range doc.Summary {
		if !strings.Contains(html, row.Value) {
			t.Errorf("HTML tidak memuat nilai summary %q", row.Value)
		}
	}
}
