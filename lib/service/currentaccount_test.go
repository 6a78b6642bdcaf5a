package service

import (
	"testing"

	"github.com/openfactor/factorhub/common"
	"github.com/openfactor/factorhub/db/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func transaction(transactionType string, amount int64) models.CurrentAccountTransaction {
	return models.CurrentAccountTransaction{Type: transactionType, Amount: decimal.NewFromInt(amount)}
}

func TestComputeCurrentAccountBalanceEmpty(t *testing.T) {
	assert.True(t, ComputeCurrentAccountBalance(nil).IsZero())
}

// Payment requests draw the current account down, cash receipts repay it.
func TestComputeCurrentAccountBalanceSignConvention(t *testing.T) {
	transactions := []models.CurrentAccountTransaction{
		transaction(common.CurrentAccountTypePaymentRequest, 500),
		transaction(common.CurrentAccountTypeCashReceipt, 200),
	}
	assert.Equal(t, "300", ComputeCurrentAccountBalance(transactions).String())
}

func TestComputeCurrentAccountBalanceFullyRepaid(t *testing.T) {
	transactions := []models.CurrentAccountTransaction{
		transaction(common.CurrentAccountTypePaymentRequest, 500),
		transaction(common.CurrentAccountTypeCashReceipt, 500),
		transaction(common.CurrentAccountTypeCashReceipt, 100),
	}
	assert.Equal(t, "-100", ComputeCurrentAccountBalance(transactions).String())
}
