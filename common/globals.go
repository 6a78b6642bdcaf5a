package common

const (
	LedgerEntryTypeInvoice            = "invoice"
	LedgerEntryTypeCreditNote         = "credit_note"
	LedgerEntryTypeIncreaseAdjustment = "increase_adjustment"
	LedgerEntryTypeDecreaseAdjustment = "decrease_adjustment"
	LedgerEntryTypeCashReceipt        = "cash_receipt"

	CurrentAccountTypeCashReceipt    = "cash_receipt"
	CurrentAccountTypePaymentRequest = "payment_request"
)

// LedgerEntrySign maps an entry type to the sign it contributes to the sales
// ledger balance. Amounts are stored as positive magnitudes only.
var LedgerEntrySign = map[string]int{
	LedgerEntryTypeInvoice:            1,
	LedgerEntryTypeIncreaseAdjustment: 1,
	LedgerEntryTypeCreditNote:         -1,
	LedgerEntryTypeDecreaseAdjustment: -1,
	LedgerEntryTypeCashReceipt:        -1,
}

// CurrentAccountSign maps a current-account transaction type to the sign it
// contributes to the outstanding drawn balance: payment requests draw cash
// down, cash receipts repay it.
var CurrentAccountSign = map[string]int{
	CurrentAccountTypePaymentRequest: 1,
	CurrentAccountTypeCashReceipt:    -1,
}
