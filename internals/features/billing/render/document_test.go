// file: internals/features/billing/render/document_test.go
package render

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	designSvc "gasku_backend/internals/features/templates/design/service"
)

var testDate = time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

func deliveredLine() Line {
	return Line{
		Label:     "45kg",
		Quantity:  10,
		UnitPrice: decimal.NewFromInt(500),
		Amount:    decimal.NewFromInt(5000),
	}
}

func testBusiness() Business {
	return Business{Name: "Ali Gas Traders", Address: "Main Rd", Phone: "0300-1234567"}
}

func testCustomer() *CustomerInfo {
	return &CustomerInfo{Code: "C001", Name: "Hotel Faisal", Phone: "0345-7654321"}
}

func TestBuildEntryDocDelivered(t *testing.T) {
	d := designSvc.DefaultDesign()
	rem := decimal.NewFromInt(1500)

	doc := BuildEntryDoc(KindDelivered, "CB-ABCD1234", testDate, deliveredLine(), testBusiness(), testCustomer(), d, &rem)

	if doc.Title != "CYLINDER BILL" {
		t.Fatalf("Title = %q", doc.Title)
	}
	if doc.Number != "CB-ABCD1234" {
		t.Fatalf("Number = %q", doc.Number)
	}
	if doc.Table == nil {
		t.Fatal("Table nil padahal ShowTable=true")
	}
	wantCols := []string{"No", "Cylinder", "Qty", "Unit Price", "Total"}
	if !reflect.DeepEqual(doc.Table.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", doc.Table.Columns, wantCols)
	}
	wantRow := []string{"1", "45kg", "10", "Rs 500", "Rs 5,000"}
	if !reflect.DeepEqual(doc.Table.Rows[0], wantRow) {
		t.Errorf("Row = %v, want %v", doc.Table.Rows[0], wantRow)
	}

	// Total / Previous Balance / Grand Total
	if len(doc.Summary) != 3 {
		t.Fatalf("Summary = %d baris, want 3", len(doc.Summary))
	}
	if doc.Summary[0].Value != "Rs 5,000" {
		t.Errorf("Total = %q", doc.Summary[0].Value)
	}
	if doc.Summary[1].Value != "Rs 1,500" {
		t.Errorf("Previous Balance = %q", doc.Summary[1].Value)
	}
	if doc.Summary[2].Value != "Rs 6,500" || !doc.Summary[2].Emphasis {
		t.Errorf("Grand Total = %+v", doc.Summary[2])
	}
}

func TestBuildEntryDocReceivedColumns(t *testing.T) {
	d := designSvc.DefaultDesign()
	line := Line{
		Label:        "45kg",
		Quantity:     4,
		CashReceived: decimal.NewFromInt(2000),
		Note:         "partial",
	}

	doc := BuildEntryDoc(KindReceived, "CB-XYZ", testDate, line, testBusiness(), testCustomer(), d, nil)

	if doc.Title != "CYLINDER RETURN RECEIPT" {
		t.Fatalf("Title = %q", doc.Title)
	}
	wantCols := []string{"No", "Cylinder", "Qty Returned", "Cash Received", "Notes"}
	if !reflect.DeepEqual(doc.Table.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", doc.Table.Columns, wantCols)
	}
	// receipt tidak pernah punya summary harga
	if len(doc.Summary) != 0 {
		t.Errorf("Summary = %v, want kosong", doc.Summary)
	}
}

func TestBuildEntryDocPricesHidden(t *testing.T) {
	d := designSvc.DefaultDesign()
	d.ShowPrices = false
	rem := decimal.NewFromInt(1500)

	doc := BuildEntryDoc(KindDelivered, "CB-1", testDate, deliveredLine(), testBusiness(), testCustomer(), d, &rem)

	wantCols := []string{"No", "Cylinder", "Qty"}
	if !reflect.DeepEqual(doc.Table.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", doc.Table.Columns, wantCols)
	}
	if len(doc.Summary) != 0 {
		t.Errorf("Summary harus kosong saat ShowPrices=false, got %v", doc.Summary)
	}
}

func TestBuildEntryDocTableHidden(t *testing.T) {
	d := designSvc.DefaultDesign()
	d.ShowTable = false

	doc := BuildEntryDoc(KindDelivered, "CB-1", testDate, deliveredLine(), testBusiness(), testCustomer(), d, nil)
	if doc.Table != nil {
		t.Error("Table harus nil saat ShowTable=false")
	}
}

func TestBuildDailyDoc(t *testing.T) {
	d := designSvc.DefaultDesign()
	lines := []Line{
		{CustomerName: "Hotel Faisal", Label: "45kg", Quantity: 10, UnitPrice: decimal.NewFromInt(500), Amount: decimal.NewFromInt(5000)},
		{CustomerName: "Cafe Noor", Label: "11kg", Quantity: 2, UnitPrice: decimal.NewFromInt(300), Amount: decimal.NewFromInt(600)},
	}

	// tanpa filter customer → kolom Customer muncul
	doc := BuildDailyDoc(testDate, lines, testBusiness(), nil, d, decimal.NewFromInt(-200))

	if doc.Title != "DAILY CYLINDER BILL" {
		t.Fatalf("Title = %q", doc.Title)
	}
	if doc.Number != "DB-20250610" {
		t.Fatalf("Number = %q", doc.Number)
	}
	wantCols := []string{"No", "Customer", "Cylinder", "Qty", "Unit Price", "Total"}
	if !reflect.DeepEqual(doc.Table.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", doc.Table.Columns, wantCols)
	}

	// remaining negatif (kredit) diclamp → 0
	if doc.Summary[0].Value != "Rs 5,600" {
		t.Errorf("Total = %q", doc.Summary[0].Value)
	}
	if doc.Summary[1].Value != "Rs 0" {
		t.Errorf("Remaining Payment = %q, want clamp ke Rs 0", doc.Summary[1].Value)
	}
	if doc.Summary[2].Value != "Rs 5,600" {
		t.Errorf("Grand Total = %q", doc.Summary[2].Value)
	}

	// dengan filter customer → kolom Customer hilang
	doc2 := BuildDailyDoc(testDate, lines[:1], testBusiness(), testCustomer(), d, decimal.NewFromInt(1500))
	wantCols2 := []string{"No", "Cylinder", "Qty", "Unit Price", "Total"}
	if !reflect.DeepEqual(doc2.Table.Columns, wantCols2) {
		t.Errorf("Columns (filtered) = %v, want %v", doc2.Table.Columns, wantCols2)
	}
	if doc2.Summary[2].Value != "Rs 6,500" {
		t.Errorf("Grand Total (filtered) = %q", doc2.Summary[2].Value)
	}
}

func TestCustomerDisplay(t *testing.T) {
	cases := []struct {
		cust CustomerInfo
		want string
	}{
		{CustomerInfo{Code: "C001", Name: "Hotel Faisal"}, "C001 · Hotel Faisal"},
		{CustomerInfo{Code: "", Name: "Hotel Faisal"}, "Hotel Faisal"},
		{CustomerInfo{Code: "C001", Name: ""}, "C001"},
	}
	for _, tc := range cases {
		if got := customerDisplay(&tc.cust); got != tc.want {
			t.Errorf("customerDisplay(%+v) = %q, want %q", tc.cust, got, tc.want)
		}
	}
}

func reportFixture() ([]ReportRow, ReportTotals) {
	rows := []ReportRow{
		{
			Customer:  "C001 · Hotel Faisal",
			Cylinders: 12,
			Previous:  decimal.NewFromInt(1000),
			Current:   decimal.NewFromInt(2000),
			Paid:      decimal.NewFromInt(1500),
			Remaining: decimal.NewFromInt(1500),
			Status:    "PARTIALLY_PAID",
		},
		{
			Customer:  "C002 · Karim Hotel",
			Cylinders: 4,
			Previous:  decimal.Zero,
			Current:   decimal.NewFromInt(2000),
			Paid:      decimal.NewFromInt(2500),
			Remaining: decimal.NewFromInt(-500), // kelebihan bayar
			Status:    "PAID",
		},
	}
	totals := ReportTotals{
		Cylinders: 16,
		Billed:    decimal.NewFromInt(4000),
		Paid:      decimal.NewFromInt(4000),
		Remaining: decimal.NewFromInt(1500),
	}
	return rows, totals
}

func TestBuildReportDoc(t *testing.T) {
	d := designSvc.DefaultDesign()
	rows, totals := reportFixture()

	doc := BuildReportDoc(testDate, rows, totals, testBusiness(), d)

	if doc.Title != "MONTHLY REPORT" || doc.Number != "RPT-202506" {
		t.Fatalf("header = %q / %q", doc.Title, doc.Number)
	}
	if doc.Table == nil {
		t.Fatal("Table nil padahal ShowTable=true")
	}
	wantCols := []string{"No", "Customer", "Cylinders", "Previous", "This Month", "Paid", "Remaining", "Status"}
	if !reflect.DeepEqual(doc.Table.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", doc.Table.Columns, wantCols)
	}

	// kelebihan bayar tidak boleh tampil negatif
	overpaid := doc.Table.Rows[1]
	if overpaid[6] != "Rs 0" {
		t.Errorf("Remaining overpaid = %q, want %q", overpaid[6], "Rs 0")
	}
	if doc.Table.Rows[0][6] != "Rs 1,500" {
		t.Errorf("Remaining = %q, want %q", doc.Table.Rows[0][6], "Rs 1,500")
	}

	if len(doc.Summary) != 4 {
		t.Fatalf("Summary = %d baris, want 4", len(doc.Summary))
	}
	if doc.Summary[3].Label != "Total Remaining" || doc.Summary[3].Value != "Rs 1,500" {
		t.Errorf("Total Remaining = %q %q", doc.Summary[3].Label, doc.Summary[3].Value)
	}
}

func TestBuildReportDocTotalNeverNegative(t *testing.T) {
	d := designSvc.DefaultDesign()
	rows, totals := reportFixture()
	totals.Remaining = decimal.NewFromInt(-500)

	doc := BuildReportDoc(testDate, rows, totals, testBusiness(), d)
	if doc.Summary[3].Value != "Rs 0" {
		t.Errorf("Total Remaining = %q, want %q", doc.Summary[3].Value, "Rs 0")
	}
}

func TestBuildReportDocDesignToggles(t *testing.T) {
	rows, totals := reportFixture()

	d := designSvc.DefaultDesign()
	d.ShowTable = false
	doc := BuildReportDoc(testDate, rows, totals, testBusiness(), d)
	if doc.Table != nil {
		t.Error("Table harus nil saat ShowTable=false")
	}

	d = designSvc.DefaultDesign()
	d.ShowPrices = false
	doc = BuildReportDoc(testDate, rows, totals, testBusiness(), d)
	wantCols := []string{"No", "Customer", "Cylinders", "Status"}
	if !reflect.DeepEqual(doc.Table.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", doc.Table.Columns, wantCols)
	}
	if len(doc.Summary) != 1 {
		t.Fatalf("Summary tanpa harga = %d baris, want 1 (hanya jumlah tabung)", len(doc.Summary))
	}
}
