// file: internals/features/billing/render/document.go
package render

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	designSvc "gasku_backend/internals/features/templates/design/service"
)

/* =========================================================
   Document: bentuk antara yang dirender kedua target.

   SEMUA keputusan layout — kolom mana yang tampil, section mana
   yang muncul, format angka/tanggal — diambil SEKALI di builder.
   RenderHTML dan RenderPDF tinggal menggambar Document apa adanya,
   jadi keduanya tidak mungkin mengambil keputusan berbeda.
   ========================================================= */

type EntryKind string

const (
	KindDelivered EntryKind = "DELIVERED"
	KindReceived  EntryKind = "RECEIVED"
)

// Line: satu baris entry tabung yang akan jadi baris tabel.
type Line struct {
	CustomerName string
	Label        string
	Quantity     int
	UnitPrice    decimal.Decimal
	Amount       decimal.Decimal
	CashReceived decimal.Decimal
	Note         string
}

// Business: identitas distributor di kepala dokumen.
type Business struct {
	Name    string
	Address string
	Phone   string
}

// CustomerInfo: identitas pelanggan pada bill.
type CustomerInfo struct {
	Code    string
	Name    string
	Phone   string
	Address string
}

type MetaRow struct {
	Label string
	Value string
}

type Table struct {
	Columns []string
	Rows    [][]string
}

type SummaryRow struct {
	Label    string
	Value    string
	Emphasis bool
}

type Document struct {
	Title    string
	Number   string
	Business Business
	Customer *CustomerInfo
	Meta     []MetaRow

	Table   *Table // nil = section tabel disembunyikan
	Summary []SummaryRow

	Notes          string // kosong = hidden
	SignatureStyle string // kosong = hidden; line|box|image
	FooterText     string // kosong = hidden

	LogoURI    string
	BarcodeURI string
	QRURI      string

	GeneratedAt time.Time
}

/* =========================================================
   Builders
   ========================================================= */

// BuildEntryDoc menyusun dokumen bill untuk SATU entry tabung.
// remaining: sisa tagihan pelanggan dari bill outstanding (boleh nil).
func BuildEntryDoc(kind EntryKind, number string, date time.Time, line Line, biz Business, cust *CustomerInfo, d designSvc.Design, remaining *decimal.Decimal) Document {
	doc := newBaseDoc(biz, cust, d)
	doc.Number = number

	switch kind {
	case KindReceived:
		doc.Title = "CYLINDER RETURN RECEIPT"
	default:
		doc.Title = "CYLINDER BILL"
	}

	doc.Meta = append(doc.Meta, MetaRow{Label: "Date", Value: FormatDate(date)})
	if cust != nil {
		doc.Meta = append(doc.Meta, MetaRow{Label: "Customer", Value: customerDisplay(cust)})
		if cust.Phone != "" {
			doc.Meta = append(doc.Meta, MetaRow{Label: "Phone", Value: cust.Phone})
		}
	}

	if d.ShowTable {
		doc.Table = buildEntryTable(kind, []Line{line}, d.ShowPrices, false)
	}

	if kind == KindDelivered && d.ShowPrices {
		doc.Summary = append(doc.Summary, SummaryRow{Label: "Total", Value: FormatPKR(line.Amount)})
		if remaining != nil {
			rem := clampZero(*remaining)
			doc.Summary = append(doc.Summary,
				SummaryRow{Label: "Previous Balance", Value: FormatPKR(rem)},
				SummaryRow{Label: "Grand Total", Value: FormatPKR(line.Amount.Add(rem)), Emphasis: true},
			)
		}
	}

	return doc
}

// BuildDailyDoc menyusun bill harian: semua entry DELIVERED untuk satu
// tanggal, opsional difilter satu pelanggan. remaining = sisa tagihan
// agregat dari bill outstanding (sudah lintas bulan), diclamp ≥ 0.
func BuildDailyDoc(date time.Time, lines []Line, biz Business, cust *CustomerInfo, d designSvc.Design, remaining decimal.Decimal) Document {
	doc := newBaseDoc(biz, cust, d)
	doc.Title = "DAILY CYLINDER BILL"
	doc.Number = "DB-" + date.Format("20060102")

	doc.Meta = append(doc.Meta, MetaRow{Label: "Date", Value: FormatDate(date)})
	if cust != nil {
		doc.Meta = append(doc.Meta, MetaRow{Label: "Customer", Value: customerDisplay(cust)})
	} else {
		doc.Meta = append(doc.Meta, MetaRow{Label: "Customer", Value: "All customers"})
	}

	withCustomerCol := cust == nil
	if d.ShowTable {
		doc.Table = buildEntryTable(KindDelivered, lines, d.ShowPrices, withCustomerCol)
	}

	if d.ShowPrices {
		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.Amount)
		}
		rem := clampZero(remaining)
		doc.Summary = append(doc.Summary,
			SummaryRow{Label: "Total", Value: FormatPKR(total)},
			SummaryRow{Label: "Remaining Payment", Value: FormatPKR(rem)},
			SummaryRow{Label: "Grand Total", Value: FormatPKR(total.Add(rem)), Emphasis: true},
		)
	}

	return doc
}

// ReportRow: satu baris rollup bulanan per pelanggan.
type ReportRow struct {
	Customer  string
	Cylinders int
	Previous  decimal.Decimal
	Current   decimal.Decimal
	Paid      decimal.Decimal
	Remaining decimal.Decimal
	Status    string
}

// ReportTotals: angka ringkasan di bawah tabel laporan.
type ReportTotals struct {
	Cylinders int
	Billed    decimal.Decimal
	Paid      decimal.Decimal
	Remaining decimal.Decimal
}

// BuildReportDoc menyusun laporan bulanan lewat jalur keputusan yang
// sama dengan bill: toggle tabel/harga desain dihormati di sini, dan
// sisa tagihan yang tampil diclamp ≥ 0 (kelebihan bayar bukan hutang).
func BuildReportDoc(month time.Time, rows []ReportRow, totals ReportTotals, biz Business, d designSvc.Design) Document {
	doc := newBaseDoc(biz, nil, d)
	doc.Title = "MONTHLY REPORT"
	doc.Number = "RPT-" + month.Format("200601")
	doc.Meta = append(doc.Meta, MetaRow{Label: "Month", Value: month.Format("January 2006")})

	if d.ShowTable {
		t := &Table{Columns: []string{"No", "Customer", "Cylinders"}}
		if d.ShowPrices {
			t.Columns = append(t.Columns, "Previous", "This Month", "Paid", "Remaining")
		}
		t.Columns = append(t.Columns, "Status")

		for i, r := range rows {
			row := []string{FormatQty(i + 1), r.Customer, FormatQty(r.Cylinders)}
			if d.ShowPrices {
				row = append(row,
					FormatPKR(r.Previous),
					FormatPKR(r.Current),
					FormatPKR(r.Paid),
					FormatPKR(clampZero(r.Remaining)),
				)
			}
			row = append(row, r.Status)
			t.Rows = append(t.Rows, row)
		}
		doc.Table = t
	}

	doc.Summary = append(doc.Summary, SummaryRow{Label: "Cylinders Delivered", Value: FormatQty(totals.Cylinders)})
	if d.ShowPrices {
		doc.Summary = append(doc.Summary,
			SummaryRow{Label: "Total Billed", Value: FormatPKR(totals.Billed)},
			SummaryRow{Label: "Total Paid", Value: FormatPKR(totals.Paid)},
			SummaryRow{Label: "Total Remaining", Value: FormatPKR(clampZero(totals.Remaining)), Emphasis: true},
		)
	}

	return doc
}

func newBaseDoc(biz Business, cust *CustomerInfo, d designSvc.Design) Document {
	doc := Document{
		Business:    biz,
		Customer:    cust,
		GeneratedAt: time.Now(),
	}

	if d.ShowLogo {
		doc.LogoURI = d.LogoDataURI
	}
	if d.ShowNotesSection {
		doc.Notes = d.NotesText
	}
	if d.ShowSignatureArea {
		doc.SignatureStyle = d.SignatureStyle
	}
	if d.ShowFooter {
		doc.FooterText = d.FooterText
		if doc.FooterText == "" {
			doc.FooterText = "Thank you for your business."
		}
	}
	doc.BarcodeURI = d.BarcodeDataURI
	doc.QRURI = d.QRDataURI

	return doc
}

// buildEntryTable memilih set kolom per tipe entry + flag showPrices.
// DELIVERED: No, [Customer], Cylinder, Qty, [Unit Price, Total]
// RECEIVED : No, [Customer], Cylinder, Qty Returned, Cash Received, Notes
func buildEntryTable(kind EntryKind, lines []Line, showPrices, withCustomerCol bool) *Table {
	t := &Table{}

	t.Columns = append(t.Columns, "No")
	if withCustomerCol {
		t.Columns = append(t.Columns, "Customer")
	}
	t.Columns = append(t.Columns, "Cylinder")

	if kind == KindReceived {
		t.Columns = append(t.Columns, "Qty Returned", "Cash Received", "Notes")
	} else {
		t.Columns = append(t.Columns, "Qty")
		if showPrices {
			t.Columns = append(t.Columns, "Unit Price", "Total")
		}
	}

	for i, l := range lines {
		row := []string{FormatQty(i + 1)}
		if withCustomerCol {
			row = append(row, l.CustomerName)
		}
		row = append(row, l.Label)
		if kind == KindReceived {
			row = append(row, FormatQty(l.Quantity), FormatPKR(l.CashReceived), l.Note)
		} else {
			row = append(row, FormatQty(l.Quantity))
			if showPrices {
				row = append(row, FormatPKR(l.UnitPrice), FormatPKR(l.Amount))
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

func customerDisplay(c *CustomerInfo) string {
	code := strings.TrimSpace(c.Code)
	name := strings.TrimSpace(c.Name)
	if code == "" {
		return name
	}
	if name == "" {
		return code
	}
	return code + " · " + name
}

func clampZero(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
