package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrentAccountTransaction : one movement on the drawn-cash current account,
// separate from the sales ledger. CreatedByAdmin holds the admin login when
// the record was created on behalf of the owner, empty for self-service.
type CurrentAccountTransaction struct {
	ID             string          `json:"id" bun:",pk"`
	Login          string          `json:"login" bun:",notnull" validate:"required"`
	Type           string          `json:"type" bun:",notnull" validate:"required"`
	Amount         decimal.Decimal `json:"amount" bun:"type:numeric,notnull"`
	Description    string          `json:"description" bun:",nullzero"`
	CreatedByAdmin string          `json:"created_by_admin,omitempty" bun:",nullzero"`
	CreatedAt      time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt      time.Time       `json:"updated_at" bun:",nullzero,notnull,default:current_timestamp"`
}
