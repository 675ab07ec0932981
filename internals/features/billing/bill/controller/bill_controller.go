// file: internals/features/billing/bill/controller/bill_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gasku_backend/internals/features/billing/bill/dto"
	"gasku_backend/internals/features/billing/bill/model"
	paymentModel "gasku_backend/internals/features/billing/payment/model"
	customerModel "gasku_backend/internals/features/customers/customer/model"
	customerService "gasku_backend/internals/features/customers/customer/service"
	helper "gasku_backend/internals/helpers"
	helperAuth "gasku_backend/internals/helpers/auth"
)

// Bills tidak punya endpoint create/update: baris bill dikelola auto-sync
// dari entry DELIVERED. Controller ini read-only.
type BillController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

/* =========================================================
   LIST /api/a/bills
   filter: customer (id/ref), month ("YYYY-MM"), status
   ========================================================= */

func (ctrl *BillController) List(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModBilling); err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.Bill{}).Where("bill_deleted_at IS NULL")
	q, err := helperAuth.ScopeTenant(q, c, "bill_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	adminID, bypass, _ := helperAuth.TenantScope(c)
	if ref := strings.TrimSpace(c.Query("customer")); ref != "" {
		cust, err := customerService.ResolveRef(ctrl.DB, adminID, bypass, ref)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		q = q.Where("bill_customer_id = ?", cust.CustomerID)
	}
	if m := strings.TrimSpace(c.Query("month")); m != "" {
		month, err := time.Parse("2006-01", m)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "month harus berformat YYYY-MM")
		}
		q = q.Where("bill_month = ?", month.Format("2006-01-02"))
	}
	if st := strings.ToUpper(strings.TrimSpace(c.Query("status"))); st != "" {
		q = q.Where("bill_status = ?", st)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var bills []model.Bill
	if err := q.
		Order("bill_month DESC, bill_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&bills).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	resp, err := ctrl.decorate(bills)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Daftar bill", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================================================
   DETAIL /api/a/bills/:id → bill + ledger payments
   ========================================================= */

func (ctrl *BillController) GetByID(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModBilling); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bill tidak valid")
	}

	q := ctrl.DB.Where("bill_id = ? AND bill_deleted_at IS NULL", id)
	q, err = helperAuth.ScopeTenant(q, c, "bill_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var bill model.Bill
	if err := q.First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Bill tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	var payments []paymentModel.Payment
	if err := ctrl.DB.
		Where("payment_bill_id = ?", bill.BillID).
		Order("payment_paid_at ASC").
		Find(&payments).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.PaymentAmount)
	}

	code, name := ctrl.customerIdentity(bill.BillAdminID, bill.BillCustomerID)
	return helper.JsonOK(c, "Detail bill", fiber.Map{
		"bill":     dto.NewBillResponse(bill, paid, code, name),
		"payments": payments,
	})
}

/* =========================================================
   INTERNAL
   ========================================================= */

// decorate melengkapi daftar bill dengan paid/remaining (satu query
// agregat) dan identitas pelanggan.
func (ctrl *BillController) decorate(bills []model.Bill) ([]dto.BillResponse, error) {
	if len(bills) == 0 {
		return []dto.BillResponse{}, nil
	}

	ids := make([]uuid.UUID, 0, len(bills))
	custIDs := make([]uuid.UUID, 0, len(bills))
	for _, b := range bills {
		ids = append(ids, b.BillID)
		custIDs = append(custIDs, b.BillCustomerID)
	}

	type paidRow struct {
		PaymentBillID uuid.UUID
		Total         decimal.Decimal
	}
	var paidRows []paidRow
	if err := ctrl.DB.Model(&paymentModel.Payment{}).
		Select("payment_bill_id, COALESCE(SUM(payment_amount), 0) AS total").
		Where("payment_bill_id IN ?", ids).
		Group("payment_bill_id").
		Scan(&paidRows).Error; err != nil {
		return nil, err
	}
	paidBy := make(map[uuid.UUID]decimal.Decimal, len(paidRows))
	for _, r := range paidRows {
		paidBy[r.PaymentBillID] = r.Total
	}

	var custs []customerModel.Customer
	if err := ctrl.DB.Where("customer_id IN ?", custIDs).Find(&custs).Error; err != nil {
		return nil, err
	}
	custBy := make(map[uuid.UUID]customerModel.Customer, len(custs))
	for _, cu := range custs {
		custBy[cu.CustomerID] = cu
	}

	resp := make([]dto.BillResponse, 0, len(bills))
	for _, b := range bills {
		cu := custBy[b.BillCustomerID]
		resp = append(resp, dto.NewBillResponse(b, paidBy[b.BillID], cu.CustomerCode, cu.CustomerName))
	}
	return resp, nil
}

func (ctrl *BillController) customerIdentity(adminID, customerID uuid.UUID) (code, name string) {
	var cust customerModel.Customer
	if err := ctrl.DB.
		Where("customer_admin_id = ?", adminID).
		Where("customer_id = ?", customerID).
		First(&cust).Error; err != nil {
		return "", ""
	}
	return cust.CustomerCode, cust.CustomerName
}
