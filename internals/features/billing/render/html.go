// file: internals/features/billing/render/html.go
package render

import (
	"bytes"
	"fmt"
	"html/template"

	designSvc "gasku_backend/internals/features/templates/design/service"
)

// Renderer HTML untuk preview di browser. Markup meniru layout PDF
// (kolom & section identik karena keduanya menggambar Document yang sama).

var billTmpl = template.Must(template.New("bill").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Doc.Title}} {{.Doc.Number}}</title>
<style>
  @page { size: {{.PageSize}}; margin: 0; }
  body {
    font-family: {{.FontFamily}}, sans-serif;
    font-size: {{.Design.FontSizeBase}}pt;
    color: {{.Design.TextColor}};
    margin: {{.Design.MarginTop}}mm {{.Design.MarginRight}}mm {{.Design.MarginBottom}}mm {{.Design.MarginLeft}}mm;
  }
  .head { display: flex; justify-content: space-between; align-items: flex-start; }
  .biz-name { color: {{.Design.PrimaryColor}}; font-size: {{.TitleSize}}pt; font-weight: bold; }
  .logo img { max-height: 22mm; }
  .title { color: {{.Design.PrimaryColor}}; font-size: {{.HeadingSize}}pt; font-weight: bold; margin-top: 6mm; }
  table.meta { margin-top: 3mm; border-collapse: collapse; }
  table.meta td { padding: 1mm 3mm 1mm 0; }
  table.meta td.k { font-weight: bold; }
  table.lines { width: 100%; border-collapse: collapse; margin-top: 5mm; }
  table.lines th {
    background: {{.Design.PrimaryColor}}; color: #ffffff;
    padding: 2.5mm 2mm; text-align: left; border: 0.3mm solid {{.Design.PrimaryColor}};
  }
  table.lines td { padding: 2mm; border: 0.3mm solid #d9d9d9; }
  table.lines tr:nth-child(even) td { background: {{.Design.AccentColor}}; }
  table.summary { margin-top: 4mm; margin-left: auto; border-collapse: collapse; }
  table.summary td { padding: 1.5mm 3mm; }
  table.summary td.k { font-weight: bold; text-align: right; }
  table.summary tr.emph td { color: {{.Design.PrimaryColor}}; font-weight: bold; border-top: 0.5mm solid {{.Design.PrimaryColor}}; }
  .notes { margin-top: 6mm; padding: 3mm; background: {{.Design.AccentColor}}; }
  .notes .h { font-weight: bold; margin-bottom: 1mm; }
  .sign { margin-top: 14mm; width: 55mm; }
  .sign.line { border-top: 0.4mm solid {{.Design.TextColor}}; padding-top: 1mm; }
  .sign.box { border: 0.4mm solid {{.Design.TextColor}}; height: 18mm; padding: 1mm; }
  .footer { margin-top: 10mm; padding-top: 2mm; border-top: 0.3mm solid #d9d9d9; color: #777777; }
  .codes { margin-top: 5mm; }
  .codes img { max-height: 18mm; margin-right: 5mm; }
</style>
</head>
<body>
  <div class="head">
    <div>
      <div class="biz-name">{{.Doc.Business.Name}}</div>
      {{if .Doc.Business.Address}}<div>{{.Doc.Business.Address}}</div>{{end}}
      {{if .Doc.Business.Phone}}<div>Phone: {{.Doc.Business.Phone}}</div>{{end}}
    </div>
    {{if .LogoURL}}<div class="logo"><img src="{{.LogoURL}}" alt="logo"></div>{{end}}
  </div>

  <div class="title">{{.Doc.Title}}{{if .Doc.Number}} — {{.Doc.Number}}{{end}}</div>

  {{if .Doc.Meta}}
  <table class="meta">
    {{range .Doc.Meta}}<tr><td class="k">{{.Label}}:</td><td>{{.Value}}</td></tr>{{end}}
  </table>
  {{end}}

  {{if .Doc.Table}}
  <table class="lines">
    <tr>{{range .Doc.Table.Columns}}<th>{{.}}</th>{{end}}</tr>
    {{range .Doc.Table.Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
  </table>
  {{end}}

  {{if .Doc.Summary}}
  <table class="summary">
    {{range .Doc.Summary}}<tr{{if .Emphasis}} class="emph"{{end}}><td class="k">{{.Label}}</td><td>{{.Value}}</td></tr>{{end}}
  </table>
  {{end}}

  {{if .Doc.Notes}}
  <div class="notes"><div class="h">Notes</div>{{.Doc.Notes}}</div>
  {{end}}

  {{if .Doc.SignatureStyle}}
  <div class="sign {{.Doc.SignatureStyle}}">Authorized Signature</div>
  {{end}}

  {{if or .BarcodeURL .QRURL}}
  <div class="codes">
    {{if .BarcodeURL}}<img src="{{.BarcodeURL}}" alt="barcode">{{end}}
    {{if .QRURL}}<img src="{{.QRURL}}" alt="qr">{{end}}
  </div>
  {{end}}

  {{if .Doc.FooterText}}<div class="footer">{{.Doc.FooterText}}</div>{{end}}
</body>
</html>
`))

type htmlView struct {
	Doc      Document
	Design   designSvc.Design
	PageSize string
	// template.CSS: nama font berisi koma/kutip yang akan ditolak
	// filter CSS html/template
	FontFamily  template.CSS
	TitleSize   float64
	HeadingSize float64
	// template.URL: src berisi data-URI yang akan ditolak filter URL
	LogoURL    template.URL
	BarcodeURL template.URL
	QRURL      template.URL
}

// RenderHTML menghasilkan markup preview untuk sebuah Document.
func RenderHTML(doc Document, d designSvc.Design) (string, error) {
	view := htmlView{
		Doc:         doc,
		Design:      d,
		PageSize:    d.PageSize,
		FontFamily:  template.CSS(htmlFontFamily(d.Font)),
		TitleSize:   d.FontSizeBase * 1.6,
		HeadingSize: d.FontSizeBase * 1.4,
		LogoURL:     template.URL(doc.LogoURI),
		BarcodeURL:  template.URL(doc.BarcodeURI),
		QRURL:       template.URL(doc.QRURI),
	}

	var buf bytes.Buffer
	if err := billTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("HTML rendering failed: %w", err)
	}
	return buf.String(), nil
}

func htmlFontFamily(font string) string {
	switch font {
	case "Courier":
		return "'Courier New', monospace"
	case "Times":
		return "'Times New Roman', serif"
	default:
		return "Helvetica, Inter"
	}
}
