package service

import (
	"context"
	"time"

	"github.com/openfactor/factorhub/common"
	"github.com/openfactor/factorhub/db/models"
	"github.com/shopspring/decimal"
)

// ComputeCurrentAccountBalance folds current-account transactions into the
// outstanding drawn balance: payment requests add, cash receipts subtract.
func ComputeCurrentAccountBalance(transactions []models.CurrentAccountTransaction) decimal.Decimal {
	balance := decimal.Zero
	for _, transaction := range transactions {
		if common.CurrentAccountSign[transaction.Type] < 0 {
			balance = balance.Sub(transaction.Amount)
		} else {
			balance = balance.Add(transaction.Amount)
		}
	}
	return balance
}

// AddCurrentAccountTransaction records one movement on the owner's current
// account. When actingLogin differs from the owner the record keeps track of
// the admin who created it. Exactly one durable write, no cascades: the
// account status is never touched from here.
func (svc *FactorhubService) AddCurrentAccountTransaction(ctx context.Context, login, transactionType string, amount decimal.Decimal, description, actingLogin string) (*models.CurrentAccountTransaction, error) {
	if login == "" {
		return nil, ErrLoginRequired
	}
	if !amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	if _, ok := common.CurrentAccountSign[transactionType]; !ok {
		return nil, ErrInvalidEntryType
	}

	id, err := newRecordID()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	transaction := &models.CurrentAccountTransaction{
		ID:          id,
		Login:       login,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if actingLogin != "" && actingLogin != login {
		transaction.CreatedByAdmin = actingLogin
	}
	if err := svc.insertOnce(ctx, transaction); err != nil {
		return nil, err
	}

	if svc.TransactionPubSub != nil {
		svc.TransactionPubSub.Publish(transaction.Type, *transaction)
	}
	return transaction, nil
}

func (svc *FactorhubService) CurrentAccountBalance(ctx context.Context, login string) (decimal.Decimal, error) {
	var transactions []models.CurrentAccountTransaction
	err := svc.DB.NewSelect().Model(&transactions).Where("login = ?", login).Scan(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return ComputeCurrentAccountBalance(transactions), nil
}

func (svc *FactorhubService) CurrentAccountTransactionsFor(ctx context.Context, login string, pageSize int, pageToken string) ([]models.CurrentAccountTransaction, string, error) {
	pageSize = clampPageSize(pageSize)
	transactions := []models.CurrentAccountTransaction{}
	query := svc.DB.NewSelect().Model(&transactions).Where("login = ?", login).Order("id ASC").Limit(pageSize)
	if pageToken != "" {
		query = query.Where("id > ?", pageToken)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, "", err
	}
	nextToken := ""
	if len(transactions) == pageSize {
		nextToken = transactions[len(transactions)-1].ID
	}
	return transactions, nextToken, nil
}
