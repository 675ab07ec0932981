// file: internals/features/templates/design/service/design.go
package service

import (
	"encoding/json"
	"regexp"
	"strings"
)

/* =========================
   Design: opsi visual bill/report
   ========================= */

// Design adalah bentuk ternormalisasi dari blob JSON desain milik tenant.
// SEMUA konsumen (HTML renderer, PDF renderer, preview) hanya boleh membaca
// bentuk ini; default dan sanitasi terjadi di satu tempat: Normalize.
type Design struct {
	PrimaryColor string `json:"primary_color"`
	AccentColor  string `json:"accent_color"`
	TextColor    string `json:"text_color"`

	Font         string  `json:"font"`
	FontSizeBase float64 `json:"font_size_base"`

	PageSize     string  `json:"page_size"` // A4 | Letter
	MarginTop    float64 `json:"margin_top"`
	MarginRight  float64 `json:"margin_right"`
	MarginBottom float64 `json:"margin_bottom"`
	MarginLeft   float64 `json:"margin_left"`

	ShowLogo          bool `json:"show_logo"`
	ShowPrices        bool `json:"show_prices"`
	ShowTable         bool `json:"show_table"`
	ShowNotesSection  bool `json:"show_notes_section"`
	ShowSignatureArea bool `json:"show_signature_area"`
	ShowFooter        bool `json:"show_footer"`

	SignatureStyle string `json:"signature_style"` // line | box | image

	LogoDataURI    string `json:"logo_data_uri,omitempty"`
	BarcodeDataURI string `json:"barcode_data_uri,omitempty"`
	QRDataURI      string `json:"qr_data_uri,omitempty"`

	FooterText string `json:"footer_text,omitempty"`
	NotesText  string `json:"notes_text,omitempty"`
}

// Default values (dipakai saat key tidak ada ATAU nilainya rusak).
const (
	DefaultPrimaryColor = "#1c5bff"
	DefaultAccentColor  = "#eef3ff"
	DefaultTextColor    = "#1a1a1a"
	DefaultFont         = "Helvetica"
	DefaultFontSize     = 10.0
	DefaultPageSize     = "A4"
	DefaultMargin       = 15.0
	DefaultSignature    = "line"
)

var allowedFonts = map[string]struct{}{
	"Helvetica": {},
	"Courier":   {},
	"Times":     {},
	"Arial":     {}, // alias lama dari frontend; dipetakan ke Helvetica
}

var allowedPageSizes = map[string]struct{}{
	"A4":     {},
	"Letter": {},
}

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// rawDesign: bentuk longgar blob tersimpan. Semua pointer supaya bisa
// membedakan "tidak ada" dari zero value.
type rawDesign struct {
	PrimaryColor *string  `json:"primary_color"`
	AccentColor  *string  `json:"accent_color"`
	TextColor    *string  `json:"text_color"`
	Font         *string  `json:"font"`
	FontSizeBase *float64 `json:"font_size_base"`
	PageSize     *string  `json:"page_size"`
	MarginTop    *float64 `json:"margin_top"`
	MarginRight  *float64 `json:"margin_right"`
	MarginBottom *float64 `json:"margin_bottom"`
	MarginLeft   *float64 `json:"margin_left"`

	ShowLogo          *bool `json:"show_logo"`
	ShowPrices        *bool `json:"show_prices"`
	ShowTable         *bool `json:"show_table"`
	ShowNotesSection  *bool `json:"show_notes_section"`
	ShowSignatureArea *bool `json:"show_signature_area"`
	ShowFooter        *bool `json:"show_footer"`

	SignatureStyle *string `json:"signature_style"`

	LogoDataURI    *string `json:"logo_data_uri"`
	BarcodeDataURI *string `json:"barcode_data_uri"`
	QRDataURI      *string `json:"qr_data_uri"`

	FooterText *string `json:"footer_text"`
	NotesText  *string `json:"notes_text"`
}

// DefaultDesign mengembalikan desain dengan semua nilai default.
func DefaultDesign() Design {
	return Design{
		PrimaryColor:      DefaultPrimaryColor,
		AccentColor:       DefaultAccentColor,
		TextColor:         DefaultTextColor,
		Font:              DefaultFont,
		FontSizeBase:      DefaultFontSize,
		PageSize:          DefaultPageSize,
		MarginTop:         DefaultMargin,
		MarginRight:       DefaultMargin,
		MarginBottom:      DefaultMargin,
		MarginLeft:        DefaultMargin,
		ShowLogo:          true,
		ShowPrices:        true,
		ShowTable:         true,
		ShowNotesSection:  true,
		ShowSignatureArea: true,
		ShowFooter:        true,
		SignatureStyle:    DefaultSignature,
	}
}

// Normalize: satu-satunya titik substitusi default & sanitasi nilai rusak.
// Blob nil / JSON invalid → full default.
func Normalize(raw []byte) Design {
	d := DefaultDesign()
	if len(raw) == 0 {
		return d
	}

	var r rawDesign
	if err := json.Unmarshal(raw, &r); err != nil {
		return d
	}

	d.PrimaryColor = sanitizeColor(r.PrimaryColor, DefaultPrimaryColor)
	d.AccentColor = sanitizeColor(r.AccentColor, DefaultAccentColor)
	d.TextColor = sanitizeColor(r.TextColor, DefaultTextColor)
	d.Font = sanitizeFont(r.Font)
	d.FontSizeBase = clampFloat(r.FontSizeBase, 6, 24, DefaultFontSize)
	d.PageSize = sanitizePageSize(r.PageSize)
	d.MarginTop = clampFloat(r.MarginTop, 0, 50, DefaultMargin)
	d.MarginRight = clampFloat(r.MarginRight, 0, 50, DefaultMargin)
	d.MarginBottom = clampFloat(r.MarginBottom, 0, 50, DefaultMargin)
	d.MarginLeft = clampFloat(r.MarginLeft, 0, 50, DefaultMargin)

	d.ShowLogo = boolOr(r.ShowLogo, true)
	d.ShowPrices = boolOr(r.ShowPrices, true)
	d.ShowTable = boolOr(r.ShowTable, true)
	d.ShowNotesSection = boolOr(r.ShowNotesSection, true)
	d.ShowSignatureArea = boolOr(r.ShowSignatureArea, true)
	d.ShowFooter = boolOr(r.ShowFooter, true)

	d.SignatureStyle = sanitizeSignature(r.SignatureStyle)

	d.LogoDataURI = dataURIOr(r.LogoDataURI)
	d.BarcodeDataURI = dataURIOr(r.BarcodeDataURI)
	d.QRDataURI = dataURIOr(r.QRDataURI)

	if r.FooterText != nil {
		d.FooterText = strings.TrimSpace(*r.FooterText)
	}
	if r.NotesText != nil {
		d.NotesText = strings.TrimSpace(*r.NotesText)
	}

	return d
}

func sanitizeColor(v *string, def string) string {
	if v == nil {
		return def
	}
	s := strings.TrimSpace(*v)
	if !hexColorRe.MatchString(s) {
		return def
	}
	// bentuk pendek #abc → #aabbcc supaya kedua renderer memakai bentuk sama
	if len(s) == 4 {
		s = "#" + strings.Repeat(string(s[1]), 2) + strings.Repeat(string(s[2]), 2) + strings.Repeat(string(s[3]), 2)
	}
	return strings.ToLower(s)
}

func sanitizeFont(v *string) string {
	if v == nil {
		return DefaultFont
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return DefaultFont
	}
	// case-insensitive match ke font yang dikenal
	for f := range allowedFonts {
		if strings.EqualFold(f, s) {
			if f == "Arial" {
				return DefaultFont
			}
			return f
		}
	}
	return DefaultFont
}

func sanitizePageSize(v *string) string {
	if v == nil {
		return DefaultPageSize
	}
	s := strings.TrimSpace(*v)
	for p := range allowedPageSizes {
		if strings.EqualFold(p, s) {
			return p
		}
	}
	return DefaultPageSize
}

func sanitizeSignature(v *string) string {
	if v == nil {
		return DefaultSignature
	}
	switch strings.ToLower(strings.TrimSpace(*v)) {
	case "line":
		return "line"
	case "box":
		return "box"
	case "image":
		return "image"
	}
	return DefaultSignature
}

func clampFloat(v *float64, min, max, def float64) float64 {
	if v == nil {
		return def
	}
	f := *v
	if f < min || f > max {
		return def
	}
	return f
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func dataURIOr(v *string) string {
	if v == nil {
		return ""
	}
	s := strings.TrimSpace(*v)
	if !strings.HasPrefix(s, "data:image/") {
		return ""
	}
	return s
}
