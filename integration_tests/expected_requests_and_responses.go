package integration_tests

import (
	"github.com/openfactor/factorhub/db/models"
	"github.com/shopspring/decimal"
)

type ExpectedCreateUserResponseBody struct {
	Login    string   `json:"login"`
	Password string   `json:"password"`
	Groups   []string `json:"groups"`
}

type ExpectedAddLedgerEntryRequestBody struct {
	Login       string          `json:"login,omitempty"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

type ExpectedGetLedgerEntriesResponseBody struct {
	Entries       []models.LedgerEntry `json:"entries"`
	NextPageToken string               `json:"next_page_token,omitempty"`
}

type ExpectedBalanceResponseBody struct {
	Balance decimal.Decimal `json:"balance"`
}

type ExpectedAvailabilityResponseBody struct {
	Gross decimal.Decimal `json:"gross"`
	Net   decimal.Decimal `json:"net"`
}

type ExpectedCreateAccountStatusRequestBody struct {
	Login                         string          `json:"login"`
	InitialUnapprovedInvoiceValue decimal.Decimal `json:"initial_unapproved_invoice_value"`
}

type ExpectedUpdateAccountStatusRequestBody struct {
	TotalUnapprovedInvoiceValue decimal.Decimal `json:"total_unapproved_invoice_value"`
}

type ExpectedGetAccountStatusesResponseBody struct {
	AccountStatuses []models.AccountStatus `json:"account_statuses"`
}

type ExpectedAddCashReceiptRequestBody struct {
	Login       string          `json:"login"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

type ExpectedSendPaymentRequestRequestBody struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

type ExpectedPaymentRequestResponseBody struct {
	Message       string `json:"message"`
	TransactionId string `json:"transaction_id"`
	Warning       string `json:"warning,omitempty"`
}

type ExpectedGetCurrentAccountResponseBody struct {
	Balance       decimal.Decimal                    `json:"balance"`
	Transactions  []models.CurrentAccountTransaction `json:"transactions"`
	NextPageToken string                             `json:"next_page_token,omitempty"`
}
