// file: internals/features/inventory/stock/dto/stock_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "gasku_backend/internals/features/inventory/stock/model"
)

type CreateStockPurchaseRequest struct {
	StockPurchaseLabel    string          `json:"stock_purchase_label"     validate:"required,max=40"`
	StockPurchaseQuantity int             `json:"stock_purchase_quantity"  validate:"required"`
	StockPurchaseUnitCost decimal.Decimal `json:"stock_purchase_unit_cost"`
	StockPurchaseSupplier *string         `json:"stock_purchase_supplier"  validate:"omitempty,max=120"`
	StockPurchaseDate     string          `json:"stock_purchase_date"      validate:"required,datetime=2006-01-02"`
}

func (r *CreateStockPurchaseRequest) ToModel(adminID uuid.UUID) (*model.StockPurchase, error) {
	date, err := time.Parse("2006-01-02", r.StockPurchaseDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "stock_purchase_date harus berformat YYYY-MM-DD")
	}
	return &model.StockPurchase{
		StockPurchaseAdminID:  adminID,
		StockPurchaseLabel:    strings.TrimSpace(r.StockPurchaseLabel),
		StockPurchaseQuantity: r.StockPurchaseQuantity,
		StockPurchaseUnitCost: r.StockPurchaseUnitCost,
		StockPurchaseSupplier: r.StockPurchaseSupplier,
		StockPurchaseDate:     date,
	}, nil
}
