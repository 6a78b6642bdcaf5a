package rabbitmq

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/getsentry/sentry-go"
	"github.com/labstack/gommon/log"
	"github.com/openfactor/factorhub/db/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ziflex/lecho/v3"
)

// bufPool is a classic buffer pool pattern that allows more clever reuse of
// heap memory. Instead of allocating new memory every time we encode a
// transaction we reuse buffers from this pool.
var bufPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

const (
	contentTypeJSON  = "application/json"
	defaultHeartbeat = 10 * time.Second
	defaultLocale    = "en_US"
)

type (
	SubscribeTransactionsFunc = func() (paymentRequests, cashReceipts chan models.CurrentAccountTransaction, err error)
	EncodeTransactionFunc     = func(ctx context.Context, w io.Writer, transaction models.CurrentAccountTransaction) error
)

type Client interface {
	StartPublishTransactions(context.Context, SubscribeTransactionsFunc, EncodeTransactionFunc) error
	// Close will close all connections to rabbitmq
	Close() error
}

type DefaultClient struct {
	conn           *amqp.Connection
	uri            string
	publishChannel *amqp.Channel

	notifyCloseChan chan *amqp.Error

	logger *lecho.Logger

	transactionExchange string
}

type ClientOption = func(client *DefaultClient)

func WithTransactionExchange(exchange string) ClientOption {
	return func(client *DefaultClient) {
		client.transactionExchange = exchange
	}
}

func WithLogger(logger *lecho.Logger) ClientOption {
	return func(client *DefaultClient) {
		client.logger = logger
	}
}

// Dial sets up a connection to rabbitmq with a channel ready to publish.
// A background routine re-dials with exponential backoff when the broker
// closes the connection.
func Dial(uri string, options ...ClientOption) (Client, error) {
	client := &DefaultClient{
		uri: uri,
		logger: lecho.New(
			os.Stdout,
			lecho.WithLevel(log.DEBUG),
			lecho.WithTimestamp(),
		),
		transactionExchange: "factorhub_transaction",
	}

	for _, opt := range options {
		opt(client)
	}

	if err := client.connect(); err != nil {
		return nil, err
	}

	go client.reconnectionLoop()

	return client, nil
}

func (client *DefaultClient) connect() error {
	conn, err := amqp.DialConfig(client.uri, amqp.Config{
		Heartbeat: defaultHeartbeat,
		Locale:    defaultLocale,
		Dial:      amqp.DefaultDial(time.Second * 3),
	})
	if err != nil {
		return err
	}

	publishChannel, err := conn.Channel()
	if err != nil {
		return err
	}

	notifyCloseChan := make(chan *amqp.Error)
	conn.NotifyClose(notifyCloseChan)

	client.conn = conn
	client.publishChannel = publishChannel
	client.notifyCloseChan = notifyCloseChan

	return nil
}

func (client *DefaultClient) reconnectionLoop() {
	for amqpError := range client.notifyCloseChan {
		client.logger.Error(amqpError)

		exponentialBackoff := backoff.NewExponentialBackOff()
		exponentialBackoff.MaxInterval = time.Second * 10
		exponentialBackoff.MaxElapsedTime = time.Minute

		client.logger.Info("amqp: trying to reconnect...")
		if err := backoff.Retry(client.connect, exponentialBackoff); err != nil {
			captureErr(client.logger, err)
			return
		}
		client.logger.Info("amqp: successfully reconnected")
	}
}

func (client *DefaultClient) Close() error { return client.conn.Close() }

func (client *DefaultClient) StartPublishTransactions(ctx context.Context, subscribeFunc SubscribeTransactionsFunc, payloadFunc EncodeTransactionFunc) error {
	err := client.publishChannel.ExchangeDeclare(
		client.transactionExchange,
		// topic is a type of exchange that allows routing messages to different queue's based on a routing key
		"topic",
		// Durable and Non-Auto-Deleted exchanges will survive server restarts and remain
		// declared when there are no remaining bindings.
		true,
		false,
		// Non-Internal exchange's accept direct publishing
		false,
		// Nowait: We set this to false as we want to wait for a server response
		// to check whether the exchange was created succesfully
		false,
		nil,
	)
	if err != nil {
		return err
	}

	client.logger.Info("Starting rabbitmq publisher")

	paymentRequests, cashReceipts, err := subscribeFunc()
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return context.Canceled
		case paymentRequest := <-paymentRequests:
			err = client.publishToTransactionExchange(ctx, paymentRequest, payloadFunc)

			if err != nil {
				captureErr(client.logger, err)
			}
		case cashReceipt := <-cashReceipts:
			err = client.publishToTransactionExchange(ctx, cashReceipt, payloadFunc)

			if err != nil {
				captureErr(client.logger, err)
			}
		}
	}
}

func (client *DefaultClient) publishToTransactionExchange(ctx context.Context, transaction models.CurrentAccountTransaction, payloadFunc EncodeTransactionFunc) error {
	payload := bufPool.Get().(*bytes.Buffer)
	payload.Reset()
	defer bufPool.Put(payload)

	err := payloadFunc(ctx, payload, transaction)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("transaction.%s.%s", transaction.Login, transaction.Type)

	err = client.publishChannel.PublishWithContext(ctx,
		client.transactionExchange,
		key,
		false,
		false,
		amqp.Publishing{
			ContentType: contentTypeJSON,
			Body:        payload.Bytes(),
		},
	)
	if err != nil {
		captureErr(client.logger, err)
		return err
	}

	client.logger.Debugf("Successfully published transaction to rabbitmq with id %s", transaction.ID)

	return nil
}

func captureErr(logger *lecho.Logger, err error) {
	logger.Error(err)
	sentry.CaptureException(err)
}
