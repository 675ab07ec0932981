// file: internals/features/billing/render/format.go
package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Format uang & tanggal dipakai DUA renderer sekaligus. Jangan pernah
// memformat angka di tempat lain — ini satu-satunya sumber kebenaran
// supaya HTML dan PDF tidak pernah beda angka.

// FormatPKR: locale en-PK, currency PKR, tanpa digit pecahan.
// Contoh: 5000 → "Rs 5,000", -1250 → "-Rs 1,250".
func FormatPKR(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	neg := rounded.IsNegative()
	digits := rounded.Abs().String()

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("Rs ")
	b.WriteString(groupThousands(digits))
	return b.String()
}

// FormatQty: kuantitas polos dengan pemisah ribuan.
func FormatQty(q int) string {
	return groupThousands(strconv.Itoa(q))
}

// FormatDate: pola human-readable tetap untuk semua dokumen.
func FormatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
