// file: internals/features/inventory/stock/service/stock_service.go
package service

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	entryModel "gasku_backend/internals/features/cylinders/entry/model"
	"gasku_backend/internals/features/inventory/stock/model"
)

/* =========================================================
   STOCK SNAPSHOT
   on_hand = purchased − delivered + received, per label.
   Seluruhnya derivasi — tidak ada kolom stok yang disimpan.
   ========================================================= */

type LabelStock struct {
	Label     string `json:"label"`
	Purchased int    `json:"purchased"`
	Delivered int    `json:"delivered"`
	Received  int    `json:"received"`
	OnHand    int    `json:"on_hand"`
}

func Snapshot(db *gorm.DB, adminID uuid.UUID) ([]LabelStock, error) {
	type sumRow struct {
		Label string
		Total int64
	}

	byLabel := map[string]*LabelStock{}
	get := func(label string) *LabelStock {
		if s, ok := byLabel[label]; ok {
			return s
		}
		s := &LabelStock{Label: label}
		byLabel[label] = s
		return s
	}

	var purchases []sumRow
	if err := db.Model(&model.StockPurchase{}).Scopes(model.ScopeAlive).
		Where("stock_purchase_admin_id = ?", adminID).
		Select("stock_purchase_label AS label, COALESCE(SUM(stock_purchase_quantity), 0) AS total").
		Group("stock_purchase_label").
		Scan(&purchases).Error; err != nil {
		return nil, err
	}
	for _, r := range purchases {
		get(r.Label).Purchased = int(r.Total)
	}

	entrySums := func(entryType string) ([]sumRow, error) {
		var rows []sumRow
		err := db.Model(&entryModel.CylinderEntry{}).Scopes(entryModel.ScopeAlive).
			Where("cylinder_entry_admin_id = ?", adminID).
			Where("cylinder_entry_type = ?", entryType).
			Select("cylinder_entry_label AS label, COALESCE(SUM(cylinder_entry_quantity), 0) AS total").
			Group("cylinder_entry_label").
			Scan(&rows).Error
		return rows, err
	}

	delivered, err := entrySums(entryModel.EntryTypeDelivered)
	if err != nil {
		return nil, err
	}
	for _, r := range delivered {
		get(r.Label).Delivered = int(r.Total)
	}

	received, err := entrySums(entryModel.EntryTypeReceived)
	if err != nil {
		return nil, err
	}
	for _, r := range received {
		get(r.Label).Received = int(r.Total)
	}

	out := make([]LabelStock, 0, len(byLabel))
	for _, s := range byLabel {
		s.OnHand = s.Purchased - s.Delivered + s.Received
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}
