// file: internals/features/reports/report/controller/report_controller.go
package controller

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gasku_backend/internals/features/billing/render"
	"gasku_backend/internals/features/reports/report/service"
	designService "gasku_backend/internals/features/templates/design/service"
	helper "gasku_backend/internals/helpers"
	helperAuth "gasku_backend/internals/helpers/auth"
)

type ReportController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

/* =========================================================
   DASHBOARD /api/a/reports/dashboard
   ========================================================= */

func (ctrl *ReportController) Dashboard(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModReports); err != nil {
		return helper.FromFiberError(c, err)
	}
	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if bypass {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tenant tidak dikenali")
	}

	stats, err := service.Dashboard(ctrl.DB, adminID, time.Now())
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Statistik dashboard", stats)
}

/* =========================================================
   MONTHLY /api/a/reports/monthly/:month  ("YYYY-MM")
   ========================================================= */

func (ctrl *ReportController) Monthly(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModReports); err != nil {
		return helper.FromFiberError(c, err)
	}
	adminID, month, err := ctrl.scopeAndMonth(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	report, err := service.Monthly(ctrl.DB, adminID, month)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Laporan bulanan", report)
}

// MonthlyPDF merender laporan bulanan memakai desain "report" tenant.
func (ctrl *ReportController) MonthlyPDF(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModReports); err != nil {
		return helper.FromFiberError(c, err)
	}
	adminID, month, err := ctrl.scopeAndMonth(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	report, err := service.Monthly(ctrl.DB, adminID, month)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	design, err := designService.GetDesign(ctrl.DB, adminID, designService.KindReport)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	doc := ctrl.reportDocument(adminID, report, design)
	pdfBytes, err := render.RenderPDF(doc, design)
	if err != nil {
		return helper.JsonErrorDetail(c, fiber.StatusInternalServerError, "Gagal merender laporan", err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="monthly-report-%s.pdf"`, month.Format("2006-01")))
	return c.Send(pdfBytes)
}

/* =========================================================
   INTERNAL
   ========================================================= */

func (ctrl *ReportController) scopeAndMonth(c *fiber.Ctx) (uuid.UUID, time.Time, error) {
	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}
	if bypass {
		return uuid.Nil, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Tenant tidak dikenali")
	}
	month, err := time.Parse("2006-01", c.Params("month"))
	if err != nil {
		return uuid.Nil, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Bulan harus berformat YYYY-MM")
	}
	return adminID, month, nil
}

// reportDocument memetakan rollup bulanan ke builder render; semua
// keputusan layout (toggle desain, clamp angka) terjadi di sana.
func (ctrl *ReportController) reportDocument(adminID uuid.UUID, report *service.MonthlyReport, d designService.Design) render.Document {
	rows := make([]render.ReportRow, 0, len(report.Rows))
	for _, r := range report.Rows {
		rows = append(rows, render.ReportRow{
			Customer:  r.CustomerCode + " · " + r.CustomerName,
			Cylinders: r.CylinderCount,
			Previous:  r.LastMonthRemaining,
			Current:   r.CurrentMonthBill,
			Paid:      r.Paid,
			Remaining: r.Remaining,
			Status:    r.Status,
		})
	}
	totals := render.ReportTotals{
		Cylinders: report.TotalCylinders,
		Billed:    report.TotalBilled,
		Paid:      report.TotalPaid,
		Remaining: report.TotalRemaining,
	}
	return render.BuildReportDoc(report.Month, rows, totals, ctrl.business(adminID), d)
}

func (ctrl *ReportController) business(adminID uuid.UUID) render.Business {
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
