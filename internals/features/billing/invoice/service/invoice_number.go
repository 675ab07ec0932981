// file: internals/features/billing/invoice/service/invoice_number.go
package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

/* =========================================================
   Penomoran invoice: INV-<YYYYMM bulan bill>-<urutan>.
   Urutan per tenant per bulan, diturunkan dari suffix numerik
   TERTINGGI yang sudah ada (bukan jumlah baris) — jadi
   menghapus nomor lama tidak membuat nomor berikutnya tabrakan.
   ========================================================= */

// NumberPrefix: bagian tetap nomor invoice untuk satu bulan bill.
func NumberPrefix(month time.Time) string {
	return "INV-" + month.Format("200601")
}

// NumberSuffix membaca urutan numerik dari sebuah nomor invoice.
// Format tak dikenal dianggap 0 supaya tidak pernah memblokir generate.
func NumberSuffix(number string) int64 {
	idx := strings.LastIndex(number, "-")
	if idx < 0 || idx == len(number)-1 {
		return 0
	}
	n, err := strconv.ParseInt(number[idx+1:], 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// MaxSuffix: suffix tertinggi di antara nomor-nomor yang sudah ada.
func MaxSuffix(numbers []string) int64 {
	var max int64
	for _, n := range numbers {
		if s := NumberSuffix(n); s > max {
			max = s
		}
	}
	return max
}

// NextNumber menyusun nomor berikutnya dari suffix tertinggi saat ini.
func NextNumber(month time.Time, maxSuffix int64) string {
	return fmt.Sprintf("%s-%04d", NumberPrefix(month), maxSuffix+1)
}
