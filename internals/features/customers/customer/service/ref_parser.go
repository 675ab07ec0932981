// file: internals/features/customers/customer/service/ref_parser.go
package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "gasku_backend/internals/features/customers/customer/model"
)

/* =========================================================
   Referensi pelanggan datang dalam dua bentuk dari frontend lama:
   UUID, atau string denormalisasi "CODE · Name". Keduanya harus
   diparse defensif — jangan percaya pemisahnya selalu rapi.
   ========================================================= */

// SplitRef membongkar "CODE · Name" → (code, name). Toleran terhadap
// spasi hilang, middle-dot ganda, atau bagian nama kosong.
func SplitRef(ref string) (code, name string) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ""
	}
	if i := strings.Index(ref, "·"); i >= 0 {
		code = strings.TrimSpace(ref[:i])
		name = strings.TrimSpace(strings.ReplaceAll(ref[i+len("·"):], "·", " "))
		return code, name
	}
	return ref, ""
}

// ResolveRef mencari pelanggan dari UUID atau string "CODE · Name".
// Urutan: UUID → code → nama persis. Query selalu tenant-scoped kecuali
// bypass (owner).
func ResolveRef(db *gorm.DB, adminID uuid.UUID, bypass bool, ref string) (*model.Customer, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Referensi pelanggan kosong")
	}

	scoped := func() *gorm.DB {
		q := model.ScopeAlive(db)
		if !bypass {
			q = q.Where("customer_admin_id = ?", adminID)
		}
		return q
	}

	if id, err := uuid.Parse(ref); err == nil {
		var cust model.Customer
		if err := scoped().First(&cust, "customer_id = ?", id).Error; err == nil {
			return &cust, nil
		}
		return nil, fiber.NewError(fiber.StatusNotFound, "Pelanggan tidak ditemukan")
	}

	code, name := SplitRef(ref)

	if code != "" {
		var cust model.Customer
		if err := scoped().First(&cust, "customer_code = ?", code).Error; err == nil {
			return &cust, nil
		}
	}
	if name != "" {
		var cust model.Customer
		if err := scoped().First(&cust, "customer_name = ?", name).Error; err == nil {
			return &cust, nil
		}
	}

	return nil, fiber.NewError(fiber.StatusNotFound, "Pelanggan tidak ditemukan untuk referensi: "+ref)
}
