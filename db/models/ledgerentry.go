package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry : one financial movement on a customer's sales ledger.
// Amount is always a positive magnitude, the sign is implied by Type.
// Entries are immutable once written.
type LedgerEntry struct {
	ID          string          `json:"id" bun:",pk"`
	Login       string          `json:"login" bun:",notnull" validate:"required"`
	Type        string          `json:"type" bun:",notnull" validate:"required"`
	Amount      decimal.Decimal `json:"amount" bun:"type:numeric,notnull"`
	Description string          `json:"description" bun:",nullzero"`
	CreatedAt   time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt   time.Time       `json:"updated_at" bun:",nullzero,notnull,default:current_timestamp"`
}
