package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/openfactor/factorhub/db/models"
	"github.com/shopspring/decimal"
)

// CreateAccountStatus creates the one account status record for an owner.
// The owner login is the primary key, so a second create for the same owner
// fails with ErrDuplicateRecord instead of overwriting the first.
func (svc *FactorhubService) CreateAccountStatus(ctx context.Context, login string, initialUnapprovedInvoiceValue decimal.Decimal) (*models.AccountStatus, error) {
	if login == "" {
		return nil, ErrLoginRequired
	}
	if initialUnapprovedInvoiceValue.IsNegative() {
		return nil, ErrNegativeUnapprovedValue
	}

	now := time.Now().UTC()
	status := &models.AccountStatus{
		ID:                          login,
		TotalUnapprovedInvoiceValue: initialUnapprovedInvoiceValue,
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}
	if err := svc.insertOnce(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}

// UpdateAccountStatus replaces the unapproved invoice value. Concurrent
// updates for the same owner are last-write-wins, there is no version check.
func (svc *FactorhubService) UpdateAccountStatus(ctx context.Context, id string, totalUnapprovedInvoiceValue decimal.Decimal) (*models.AccountStatus, error) {
	if id == "" {
		return nil, ErrLoginRequired
	}
	if totalUnapprovedInvoiceValue.IsNegative() {
		return nil, ErrNegativeUnapprovedValue
	}

	status := &models.AccountStatus{
		ID:                          id,
		TotalUnapprovedInvoiceValue: totalUnapprovedInvoiceValue,
		UpdatedAt:                   time.Now().UTC(),
	}
	res, err := svc.DB.NewUpdate().Model(status).
		Column("total_unapproved_invoice_value", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrRecordNotFound
	}
	return svc.AccountStatusFor(ctx, id)
}

func (svc *FactorhubService) AccountStatusFor(ctx context.Context, login string) (*models.AccountStatus, error) {
	var status models.AccountStatus
	err := svc.DB.NewSelect().Model(&status).Where("id = ?", login).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}
