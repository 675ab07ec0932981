// file: internals/features/inventory/stock/model/stock_purchase_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* =========================
   Model: stock_purchases
   ========================= */

// StockPurchase: pembelian isi ulang dari pangkalan/plant, per label
// tabung. Stok on-hand tidak disimpan — dihitung dari purchases dan
// pergerakan entry tabung.
type StockPurchase struct {
	StockPurchaseID uuid.UUID `json:"stock_purchase_id" gorm:"column:stock_purchase_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	StockPurchaseAdminID uuid.UUID `json:"stock_purchase_admin_id" gorm:"column:stock_purchase_admin_id;type:uuid;not null;index"`

	StockPurchaseLabel    string          `json:"stock_purchase_label"     gorm:"column:stock_purchase_label;type:varchar(40);not null;index"`
	StockPurchaseQuantity int             `json:"stock_purchase_quantity"  gorm:"column:stock_purchase_quantity;not null"`
	StockPurchaseUnitCost decimal.Decimal `json:"stock_purchase_unit_cost" gorm:"column:stock_purchase_unit_cost;type:numeric(14,2);not null"`

	StockPurchaseSupplier *string `json:"stock_purchase_supplier,omitempty" gorm:"column:stock_purchase_supplier;type:varchar(120)"`

	StockPurchaseDate time.Time `json:"stock_purchase_date" gorm:"column:stock_purchase_date;type:date;not null;index"`

	StockPurchaseCreatedAt time.Time      `json:"stock_purchase_created_at" gorm:"column:stock_purchase_created_at;autoCreateTime"`
	StockPurchaseDeletedAt gorm.DeletedAt `json:"-"                         gorm:"column:stock_purchase_deleted_at;index"`
}

func (StockPurchase) TableName() string { return "stock_purchases" }

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("stock_purchase_deleted_at IS NULL")
}
