// file: internals/features/templates/design/service/design_test.go
package service

import (
	"testing"
)

func TestNormalizeEmptyAndInvalid(t *testing.T) {
	def := DefaultDesign()

	for _, raw := range [][]byte{nil, {}, []byte("bukan json"), []byte(`"string"`)} {
		got := Normalize(raw)
		if got != def {
			t.Errorf("Normalize(%q) = %+v, want default", raw, got)
		}
	}
}

func TestNormalizeColors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"valid 6 digit", `{"primary_color":"#FF8800"}`, "#ff8800"},
		{"bentuk pendek diperluas", `{"primary_color":"#abc"}`, "#aabbcc"},
		{"tanpa pagar", `{"primary_color":"ff8800"}`, DefaultPrimaryColor},
		{"nama warna", `{"primary_color":"red"}`, DefaultPrimaryColor},
		{"injeksi css", `{"primary_color":"#fff;} body{display:none"}`, DefaultPrimaryColor},
		{"kosong", `{"primary_color":""}`, DefaultPrimaryColor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize([]byte(tc.raw))
			if got.PrimaryColor != tc.want {
				t.Errorf("PrimaryColor = %q, want %q", got.PrimaryColor, tc.want)
			}
		})
	}
}

func TestNormalizeFontAndPageSize(t *testing.T) {
	cases := []struct {
		raw      string
		wantFont string
		wantPage string
	}{
		{`{"font":"Courier","page_size":"Letter"}`, "Courier", "Letter"},
		{`{"font":"courier","page_size":"letter"}`, "Courier", "Letter"},
		{`{"font":"Arial"}`, "Helvetica", "A4"}, // alias lama
		{`{"font":"Comic Sans","page_size":"A3"}`, "Helvetica", "A4"},
	}
	for _, tc := range cases {
		got := Normalize([]byte(tc.raw))
		if got.Font != tc.wantFont {
			t.Errorf("Normalize(%s).Font = %q, want %q", tc.raw, got.Font, tc.wantFont)
		}
		if got.PageSize != tc.wantPage {
			t.Errorf("Normalize(%s).PageSize = %q, want %q", tc.raw, got.PageSize, tc.wantPage)
		}
	}
}

func TestNormalizeNumericClamp(t *testing.T) {
	got := Normalize([]byte(`{"font_size_base":99,"margin_top":-5,"margin_left":200}`))
	if got.FontSizeBase != DefaultFontSize {
		t.Errorf("FontSizeBase = %v, want default saat di luar rentang", got.FontSizeBase)
	}
	if got.MarginTop != DefaultMargin {
		t.Errorf("MarginTop = %v, want default saat negatif", got.MarginTop)
	}
	if got.MarginLeft != DefaultMargin {
		t.Errorf("MarginLeft = %v, want default saat kebesaran", got.MarginLeft)
	}

	ok := Normalize([]byte(`{"font_size_base":12,"margin_top":0}`))
	if ok.FontSizeBase != 12 {
		t.Errorf("FontSizeBase = %v, want 12", ok.FontSizeBase)
	}
	if ok.MarginTop != 0 {
		t.Errorf("MarginTop = %v, want 0 (batas bawah valid)", ok.MarginTop)
	}
}

func TestNormalizeToggles(t *testing.T) {
	got := Normalize([]byte(`{"show_prices":false,"show_footer":false}`))
	if got.ShowPrices {
		t.Error("ShowPrices harus false")
	}
	if got.ShowFooter {
		t.Error("ShowFooter harus false")
	}
	// yang tidak disebut tetap default true
	if !got.ShowTable || !got.ShowLogo {
		t.Error("toggle yang tidak dikirim harus tetap true")
	}
}

func TestNormalizeSignatureStyle(t *testing.T) {
	cases := map[string]string{
		`{"signature_style":"box"}`:     "box",
		`{"signature_style":"IMAGE"}`:   "image",
		`{"signature_style":"scribble"}`: DefaultSignature,
		`{}`:                            DefaultSignature,
	}
	for raw, want := range cases {
		if got := Normalize([]byte(raw)).SignatureStyle; got != want {
			t.Errorf("Normalize(%s).SignatureStyle = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeDataURIs(t *testing.T) {
	got := Normalize([]byte(`{"logo_data_uri":"data:image/png;base64,iVBOR","qr_data_uri":"https://evil.test/x.png"}`))
	if got.LogoDataURI != "data:image/png;base64,iVBOR" {
		t.Errorf("LogoDataURI = %q", got.LogoDataURI)
	}
	// URL eksternal bukan data URI → dibuang
	if got.QRDataURI != "" {
		t.Errorf("QRDataURI = %q, want kosong", got.QRDataURI)
	}
}
