// file: internals/features/templates/design/service/logo_service.go
package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	logoMaxWidth  = 512
	logoMaxHeight = 512
	logoMaxBytes  = 2 * 1024 * 1024 // 2MB upload cap
)

// LogoToDataURI menormalisasi upload logo (png/jpeg/webp) menjadi PNG
// data-URI yang aman dipakai kedua renderer. Resize mengikuti pipeline
// gambar yang sama dengan upload aset lain (imaging.Fit, proporsi dijaga).
func LogoToDataURI(fh *multipart.FileHeader) (string, error) {
	if fh.Size > logoMaxBytes {
		return "", fmt.Errorf("ukuran logo melebihi %dKB", logoMaxBytes/1024)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file logo: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("gagal membaca file logo: %w", err)
	}

	img, err := decodeLogo(buf.Bytes(), fh.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	if b := img.Bounds(); b.Dx() > logoMaxWidth || b.Dy() > logoMaxHeight {
		img = imaging.Fit(img, logoMaxWidth, logoMaxHeight, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := png.Encode(out, img); err != nil {
		return "", fmt.Errorf("gagal encode logo: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(out.Bytes()), nil
}

func decodeLogo(data []byte, contentType string) (image.Image, error) {
	// webp tidak terdaftar di image stdlib; decode eksplisit
	if strings.Contains(contentType, "webp") || bytes.HasPrefix(data, []byte("RIFF")) {
		img, err := webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("file webp tidak valid: %w", err)
		}
		return img, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("format logo tidak didukung (png/jpeg/webp): %w", err)
	}
	return img, nil
}

// DataURIBytes membongkar data-URI image menjadi (mime, bytes) untuk
// dipakai renderer PDF saat embed logo/barcode/QR.
func DataURIBytes(uri string) (string, []byte, bool) {
	if !strings.HasPrefix(uri, "data:image/") {
		return "", nil, false
	}
	rest := strings.TrimPrefix(uri, "data:")
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, false
	}
	mime := rest[:sep]
	raw, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil || len(raw) == 0 {
		return "", nil, false
	}
	return mime, raw, true
}
