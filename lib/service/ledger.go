package service

import (
	"context"
	"time"

	"github.com/openfactor/factorhub/common"
	"github.com/openfactor/factorhub/db/models"
	"github.com/shopspring/decimal"
)

// ComputeLedgerBalance folds a set of ledger entries into the sales ledger
// balance, applying the per-type sign rule. The fold is order-independent;
// callers must pass the complete entry set for the owner, the balance is
// never maintained incrementally.
func ComputeLedgerBalance(entries []models.LedgerEntry) decimal.Decimal {
	balance := decimal.Zero
	for _, entry := range entries {
		if common.LedgerEntrySign[entry.Type] < 0 {
			balance = balance.Sub(entry.Amount)
		} else {
			balance = balance.Add(entry.Amount)
		}
	}
	return balance
}

func (svc *FactorhubService) CreateLedgerEntry(ctx context.Context, login, entryType string, amount decimal.Decimal, description string) (*models.LedgerEntry, error) {
	if login == "" {
		return nil, ErrLoginRequired
	}
	if !amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	if _, ok := common.LedgerEntrySign[entryType]; !ok {
		return nil, ErrInvalidEntryType
	}

	id, err := newRecordID()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	entry := &models.LedgerEntry{
		ID:          id,
		Login:       login,
		Type:        entryType,
		Amount:      amount,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := svc.insertOnce(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// SalesLedgerBalance recomputes the balance from the owner's full entry
// history on every call. Histories are small per customer, correctness
// wins over caching here.
func (svc *FactorhubService) SalesLedgerBalance(ctx context.Context, login string) (decimal.Decimal, error) {
	var entries []models.LedgerEntry
	err := svc.DB.NewSelect().Model(&entries).Where("login = ?", login).Scan(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return ComputeLedgerBalance(entries), nil
}

func (svc *FactorhubService) LedgerEntriesFor(ctx context.Context, login string, pageSize int, pageToken string) ([]models.LedgerEntry, string, error) {
	pageSize = clampPageSize(pageSize)
	entries := []models.LedgerEntry{}
	query := svc.DB.NewSelect().Model(&entries).Where("login = ?", login).Order("id ASC").Limit(pageSize)
	if pageToken != "" {
		query = query.Where("id > ?", pageToken)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, "", err
	}
	nextToken := ""
	if len(entries) == pageSize {
		nextToken = entries[len(entries)-1].ID
	}
	return entries, nextToken, nil
}

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

func clampPageSize(pageSize int) int {
	if pageSize <= 0 {
		return defaultPageSize
	}
	if pageSize > maxPageSize {
		return maxPageSize
	}
	return pageSize
}
