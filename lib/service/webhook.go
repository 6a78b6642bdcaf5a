package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/openfactor/factorhub/common"
	"github.com/openfactor/factorhub/db/models"
)

// NotifyTransaction posts the persisted transaction to the configured
// webhook url. The record is already durable at this point; a delivery
// failure is the caller's cue to attach a warning to the response, never to
// report the whole operation as failed.
func (svc *FactorhubService) NotifyTransaction(ctx context.Context, transaction *models.CurrentAccountTransaction) error {
	if svc.Config.WebhookUrl == "" {
		return nil
	}

	payload := new(bytes.Buffer)
	err := json.NewEncoder(payload).Encode(transaction)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.Config.WebhookUrl, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(resp.Body)
		if err != nil {
			svc.Logger.Error(err)
		}
		return fmt.Errorf("webhook status code was %d, body: %s", resp.StatusCode, msg)
	}
	return nil
}

// SubscribeTransactions hands the rabbitmq publisher one channel per
// transaction topic.
func (svc *FactorhubService) SubscribeTransactions() (paymentRequests, cashReceipts chan models.CurrentAccountTransaction, err error) {
	paymentRequests = make(chan models.CurrentAccountTransaction)
	cashReceipts = make(chan models.CurrentAccountTransaction)
	if _, err = svc.TransactionPubSub.Subscribe(common.CurrentAccountTypePaymentRequest, paymentRequests); err != nil {
		return nil, nil, err
	}
	if _, err = svc.TransactionPubSub.Subscribe(common.CurrentAccountTypeCashReceipt, cashReceipts); err != nil {
		return nil, nil, err
	}
	return paymentRequests, cashReceipts, nil
}

// EncodeTransaction writes the wire representation the rabbitmq publisher
// sends to the exchange.
func (svc *FactorhubService) EncodeTransaction(ctx context.Context, w io.Writer, transaction models.CurrentAccountTransaction) error {
	return json.NewEncoder(w).Encode(transaction)
}
