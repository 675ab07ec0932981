// file: internals/features/cylinders/entry/controller/cylinder_entry_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	billService "gasku_backend/internals/features/billing/bill/service"
	"gasku_backend/internals/features/billing/render"
	customerModel "gasku_backend/internals/features/customers/customer/model"
	customerService "gasku_backend/internals/features/customers/customer/service"
	"gasku_backend/internals/features/cylinders/entry/dto"
	"gasku_backend/internals/features/cylinders/entry/model"
	"gasku_backend/internals/features/cylinders/entry/service"
	designService "gasku_backend/internals/features/templates/design/service"
	helper "gasku_backend/internals/helpers"
	helperAuth "gasku_backend/internals/helpers/auth"
)

type CylinderEntryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

/* =========================================================
   CREATE /api/a/cylinders
   ========================================================= */

func (ctrl *CylinderEntryController) Create(c *fiber.Ctx) error {
	if err := helperAuth.RequireEdit(c, helperAuth.ModCylinders); err != nil {
		return helper.FromFiberError(c, err)
	}

	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if bypass {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tenant tidak dikenali")
	}

	var req dto.CreateCylinderEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ref, err := req.CustomerRef()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	cust, err := customerService.ResolveRef(ctrl.DB, adminID, false, ref)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	entry, err := req.ToModel(adminID, cust.CustomerID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := service.CreateEntry(ctrl.DB, entry); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Entry tabung berhasil dibuat", entry)
}

/* =========================================================
   LIST /api/a/cylinders
   filter: customer (id/ref), type, label, date_from, date_to
   ========================================================= */

func (ctrl *CylinderEntryController) List(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModCylinders); err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.CylinderEntry{}).Scopes(model.ScopeAlive)
	q, err := helperAuth.ScopeTenant(q, c, "cylinder_entry_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	adminID, bypass, _ := helperAuth.TenantScope(c)
	if ref := strings.TrimSpace(c.Query("customer")); ref != "" {
		cust, err := customerService.ResolveRef(ctrl.DB, adminID, bypass, ref)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		q = q.Where("cylinder_entry_customer_id = ?", cust.CustomerID)
	}
	if t := strings.ToUpper(strings.TrimSpace(c.Query("type"))); t != "" {
		q = q.Where("cylinder_entry_type = ?", t)
	}
	if label := strings.TrimSpace(c.Query("label")); label != "" {
		q = q.Where("cylinder_entry_label = ?", label)
	}
	if from := strings.TrimSpace(c.Query("date_from")); from != "" {
		q = q.Where("cylinder_entry_date >= ?", from)
	}
	if to := strings.TrimSpace(c.Query("date_to")); to != "" {
		q = q.Where("cylinder_entry_date <= ?", to)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.CylinderEntry
	if err := q.
		Order("cylinder_entry_date DESC, cylinder_entry_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "Daftar entry tabung", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// Daily: ringkasan entry per tanggal ("YYYY-MM-DD").
func (ctrl *CylinderEntryController) Daily(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModCylinders); err != nil {
		return helper.FromFiberError(c, err)
	}
	date, err := parseDateParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.CylinderEntry{}).Scopes(model.ScopeAlive).
		Where("cylinder_entry_date = ?", date.Format("2006-01-02"))
	q, err = helperAuth.ScopeTenant(q, c, "cylinder_entry_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.CylinderEntry
	if err := q.Order("cylinder_entry_created_at ASC").Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Entry tabung harian", fiber.Map{
		"date":    date.Format("2006-01-02"),
		"entries": rows,
	})
}

func (ctrl *CylinderEntryController) GetByID(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModCylinders); err != nil {
		return helper.FromFiberError(c, err)
	}
	entry, err := ctrl.loadEntry(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Detail entry tabung", entry)
}

func (ctrl *CylinderEntryController) Delete(c *fiber.Ctx) error {
	if err := helperAuth.RequireEdit(c, helperAuth.ModCylinders); err != nil {
		return helper.FromFiberError(c, err)
	}
	entry, err := ctrl.loadEntry(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.DeleteEntry(ctrl.DB, entry); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Entry tabung berhasil dihapus", fiber.Map{"cylinder_entry_id": entry.CylinderEntryID})
}

/* =========================================================
   RENDER
   GET /:id/bill          → PDF satu entry
   GET /:id/bill/preview  → HTML satu entry
   GET /daily/:date/bill  → PDF harian (opsional ?customer=)
   ========================================================= */

func (ctrl *CylinderEntryController) EntryBillPDF(c *fiber.Ctx) error {
	doc, cust, date, err := ctrl.buildEntryDocument(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	design, derr := ctrl.billDesign(c)
	if derr != nil {
		return helper.FromFiberError(c, derr)
	}

	pdfBytes, err := render.RenderPDF(*doc, design)
	if err != nil {
		return helper.JsonErrorDetail(c, fiber.StatusInternalServerError, "Gagal merender bill", err.Error())
	}
	return sendPDF(c, pdfBytes, billFilename(cust, date))
}

func (ctrl *CylinderEntryController) EntryBillPreview(c *fiber.Ctx) error {
	doc, _, _, err := ctrl.buildEntryDocument(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	design, derr := ctrl.billDesign(c)
	if derr != nil {
		return helper.FromFiberError(c, derr)
	}

	html, err := render.RenderHTML(*doc, design)
	if err != nil {
		return helper.JsonErrorDetail(c, fiber.StatusInternalServerError, "Gagal merender bill", err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (ctrl *CylinderEntryController) DailyBillPDF(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModCylinders); err != nil {
		return helper.FromFiberError(c, err)
	}
	date, err := parseDateParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if bypass {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tenant tidak dikenali")
	}

	q := ctrl.DB.Model(&model.CylinderEntry{}).Scopes(model.ScopeAlive).
		Where("cylinder_entry_admin_id = ?", adminID).
		Where("cylinder_entry_type = ?", model.EntryTypeDelivered).
		Where("cylinder_entry_date = ?", date.Format("2006-01-02"))

	var custInfo *render.CustomerInfo
	var cust *customerModel.Customer
	if ref := strings.TrimSpace(c.Query("customer")); ref != "" {
		cust, err = customerService.ResolveRef(ctrl.DB, adminID, false, ref)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		q = q.Where("cylinder_entry_customer_id = ?", cust.CustomerID)
		custInfo = toCustomerInfo(cust)
	}

	var entries []model.CylinderEntry
	if err := q.Order("cylinder_entry_created_at ASC").Find(&entries).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if len(entries) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada pengantaran pada tanggal tersebut")
	}

	lines, err := ctrl.toLines(adminID, entries, cust == nil)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	// "Remaining Payment": sisa tagihan outstanding pelanggan ybs; untuk
	// bill semua-pelanggan dijumlahkan per pelanggan yang muncul di entry.
	remaining := decimal.Zero
	if cust != nil {
		remaining, err = billService.OutstandingRemaining(ctrl.DB, adminID, cust.CustomerID)
		if err != nil {
			return helper.WritePGError(c, err)
		}
	} else {
		seen := make(map[uuid.UUID]bool, len(entries))
		for i := range entries {
			cid := entries[i].CylinderEntryCustomerID
			if seen[cid] {
				continue
			}
			seen[cid] = true
			out, oerr := billService.OutstandingRemaining(ctrl.DB, adminID, cid)
			if oerr != nil {
				return helper.WritePGError(c, oerr)
			}
			remaining = remaining.Add(out)
		}
	}

	design, derr := ctrl.billDesign(c)
	if derr != nil {
		return helper.FromFiberError(c, derr)
	}

	doc := render.BuildDailyDoc(date, lines, ctrl.business(adminID), custInfo, design, remaining)
	pdfBytes, err := render.RenderPDF(doc, design)
	if err != nil {
		return helper.JsonErrorDetail(c, fiber.StatusInternalServerError, "Gagal merender bill harian", err.Error())
	}
	return sendPDF(c, pdfBytes, billFilename(cust, date))
}

/* =========================================================
   INTERNAL
   ========================================================= */

func (ctrl *CylinderEntryController) loadEntry(c *fiber.Ctx) (*model.CylinderEntry, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID entry tidak valid")
	}
	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil {
		return nil, err
	}
	return service.FindScoped(ctrl.DB, adminID, bypass, id)
}

// buildEntryDocument menyiapkan Document bill untuk satu entry.
func (ctrl *CylinderEntryController) buildEntryDocument(c *fiber.Ctx) (*render.Document, *customerModel.Customer, time.Time, error) {
	if err := helperAuth.RequireView(c, helperAuth.ModCylinders); err != nil {
		return nil, nil, time.Time{}, err
	}
	entry, err := ctrl.loadEntry(c)
	if err != nil {
		return nil, nil, time.Time{}, err
	}

	var cust customerModel.Customer
	if err := ctrl.DB.Where("customer_id = ?", entry.CylinderEntryCustomerID).First(&cust).Error; err != nil {
		return nil, nil, time.Time{}, fiber.NewError(fiber.StatusNotFound, "Customer tidak ditemukan")
	}

	var remaining *decimal.Decimal
	if entry.CylinderEntryType == model.EntryTypeDelivered {
		rem, err := billService.OutstandingRemaining(ctrl.DB, entry.CylinderEntryAdminID, entry.CylinderEntryCustomerID)
		if err != nil {
			return nil, nil, time.Time{}, err
		}
		// bill bulan ini sudah memuat entry ini (sync saat create);
		// keluarkan dulu supaya "Previous Balance" tidak menghitungnya
		rem = rem.Sub(entry.CylinderEntryAmount)
		remaining = &rem
	}

	design, derr := ctrl.billDesign(c)
	if derr != nil {
		return nil, nil, time.Time{}, derr
	}

	kind := render.KindDelivered
	if entry.CylinderEntryType == model.EntryTypeReceived {
		kind = render.KindReceived
	}

	line := render.Line{
		CustomerName: cust.CustomerName,
		Label:        entry.CylinderEntryLabel,
		Quantity:     entry.CylinderEntryQuantity,
		UnitPrice:    entry.CylinderEntryUnitPrice,
		Amount:       entry.CylinderEntryAmount,
	}
	if entry.CylinderEntryCashReceived != nil {
		line.CashReceived = *entry.CylinderEntryCashReceived
	}
	if entry.CylinderEntryPaymentNote != nil {
		line.Note = *entry.CylinderEntryPaymentNote
	}

	number := fmt.Sprintf("CB-%s", strings.ToUpper(entry.CylinderEntryID.String()[:8]))
	doc := render.BuildEntryDoc(kind, number, entry.CylinderEntryDate, line,
		ctrl.business(entry.CylinderEntryAdminID), toCustomerInfo(&cust), design, remaining)
	return &doc, &cust, entry.CylinderEntryDate, nil
}

func (ctrl *CylinderEntryController) billDesign(c *fiber.Ctx) (designService.Design, error) {
	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil {
		return designService.DefaultDesign(), err
	}
	if bypass {
		return designService.DefaultDesign(), nil
	}
	return designService.GetDesign(ctrl.DB, adminID, designService.KindBill)
}

func (ctrl *CylinderEntryController) business(adminID uuid.UUID) render.Business {
	settings, err := designService.GetSettings(ctrl.DB, adminID)
	if err != nil || settings == nil {
		return render.Business{Name: "Gas Distributor"}
	}
	biz := render.Business{Name: settings.TenantSettingsBusinessName}
	if biz.Name == "" {
		biz.Name = "Gas Distributor"
	}
	if settings.TenantSettingsBusinessAddress != nil {
		biz.Address = *settings.TenantSettingsBusinessAddress
	}
	if settings.TenantSettingsBusinessPhone != nil {
		biz.Phone = *settings.TenantSettingsBusinessPhone
	}
	return biz
}

// toLines memetakan entries jadi baris dokumen; withName=true menyertakan
// nama pelanggan per baris (mode harian semua pelanggan).
func (ctrl *CylinderEntryController) toLines(adminID uuid.UUID, entries []model.CylinderEntry, withName bool) ([]render.Line, error) {
	names := map[uuid.UUID]string{}
	if withName {
		ids := make([]uuid.UUID, 0, len(entries))
		for _, e := range entries {
			ids = append(ids, e.CylinderEntryCustomerID)
		}
		var custs []customerModel.Customer
		if err := ctrl.DB.
			Where("customer_admin_id = ?", adminID).
			Where("customer_id IN ?", ids).
			Find(&custs).Error; err != nil {
			return nil, err
		}
		for _, cu := range custs {
			names[cu.CustomerID] = cu.CustomerName
		}
	}

	lines := make([]render.Line, 0, len(entries))
	for _, e := range entries {
		l := render.Line{
			Label:     e.CylinderEntryLabel,
			Quantity:  e.CylinderEntryQuantity,
			UnitPrice: e.CylinderEntryUnitPrice,
			Amount:    e.CylinderEntryAmount,
		}
		if withName {
			l.CustomerName = names[e.CylinderEntryCustomerID]
		}
		lines = append(lines, l)
	}
	return lines, nil
}

func toCustomerInfo(cust *customerModel.Customer) *render.CustomerInfo {
	info := &render.CustomerInfo{
		Code: cust.CustomerCode,
		Name: cust.CustomerName,
	}
	if len(cust.CustomerPhones) > 0 {
		info.Phone = cust.CustomerPhones[0]
	}
	if cust.CustomerAddress != nil {
		info.Address = *cust.CustomerAddress
	}
	return info
}

func parseDateParam(c *fiber.Ctx) (time.Time, error) {
	date, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Tanggal harus berformat YYYY-MM-DD")
	}
	return date, nil
}

func sendPDF(c *fiber.Ctx, pdfBytes []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// billFilename: cylinder-bill-<customer>-<date>.pdf (customer opsional).
func billFilename(cust *customerModel.Customer, date time.Time) string {
	name := "all"
	if cust != nil {
		name = slugify(cust.CustomerName)
	}
	return fmt.Sprintf("cylinder-bill-%s-%s.pdf", name, date.Format("2006-01-02"))
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
