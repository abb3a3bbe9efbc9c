package model

import (
	"github.com/shopspring/decimal"
)

func init() {
	// tax_amount renders as a JSON number, matching the API contract
	decimal.MarshalJSONWithoutQuotes = true
}

// PurchaseRequest is a purchase awaiting approval, created atomically with its items
type PurchaseRequest struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Purchase  string          `gorm:"type:varchar(255)" json:"purchase"`
	Vendor    string          `gorm:"type:varchar(255)" json:"vendor"`
	TaxAmount decimal.Decimal `gorm:"column:tax_amount;type:decimal(18,4);default:0" json:"tax_amount"`
	Approved  bool            `gorm:"not null;default:false" json:"approved"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	User      User            `gorm:"foreignKey:UserID" json:"-"`
	Items     []Item          `gorm:"foreignKey:RequestID" json:"items"`
}

// Item is a line of a purchase request. Items only exist inside their owning
// request's creation transaction and are immutable afterwards.
type Item struct {
	RequestID   uint   `gorm:"not null;index" json:"-"`
	ItemNo      string `gorm:"type:varchar(100)" json:"item_no"`
	LegalEntity string `gorm:"type:varchar(100)" json:"legal_entity"`
}
