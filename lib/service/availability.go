package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

type Availability struct {
	Gross decimal.Decimal `json:"gross"`
	Net   decimal.Decimal `json:"net"`
}

// ComputeAvailability derives the credit capacity from the sales ledger
// balance, the admin-set unapproved invoice adjustment and the outstanding
// current-account balance:
//
//	gross = advanceRate * (balance - unapproved)
//	net   = gross - currentAccountBalance
//
// Both values may be negative; no floor is applied. Presentation is the
// display layer's problem, not the calculator's.
func ComputeAvailability(salesLedgerBalance, totalUnapprovedInvoiceValue, currentAccountBalance, advanceRate decimal.Decimal) Availability {
	gross := advanceRate.Mul(salesLedgerBalance.Sub(totalUnapprovedInvoiceValue))
	return Availability{
		Gross: gross,
		Net:   gross.Sub(currentAccountBalance),
	}
}

// AvailabilityFor computes the owner's availability from the three record
// collections. A missing account status means no adjustment has been set
// yet and counts as zero.
func (svc *FactorhubService) AvailabilityFor(ctx context.Context, login string) (Availability, error) {
	balance, err := svc.SalesLedgerBalance(ctx, login)
	if err != nil {
		return Availability{}, err
	}

	unapproved := decimal.Zero
	status, err := svc.AccountStatusFor(ctx, login)
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		return Availability{}, err
	}
	if status != nil {
		unapproved = status.TotalUnapprovedInvoiceValue
	}

	currentAccountBalance, err := svc.CurrentAccountBalance(ctx, login)
	if err != nil {
		return Availability{}, err
	}

	return ComputeAvailability(balance, unapproved, currentAccountBalance, decimal.NewFromFloat(svc.Config.AdvanceRate)), nil
}
