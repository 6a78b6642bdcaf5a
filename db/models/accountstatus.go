package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus : per-customer adjustment record, at most one per owner.
// The owner login is the primary key, which is what enforces the 1:1
// relationship. Updates are last-write-wins.
type AccountStatus struct {
	ID                          string          `json:"id" bun:",pk"`
	TotalUnapprovedInvoiceValue decimal.Decimal `json:"total_unapproved_invoice_value" bun:"type:numeric,notnull"`
	CreatedAt                   time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt                   time.Time       `json:"updated_at" bun:",nullzero,notnull,default:current_timestamp"`
}
