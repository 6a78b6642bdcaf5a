package service

type Config struct {
	DatabaseUri                 string  `envconfig:"DATABASE_URI" required:"true"`
	DatabaseMaxConns            int     `envconfig:"DATABASE_MAX_CONNS" default:"10"`
	DatabaseMaxIdleConns        int     `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"5"`
	DatabaseConnMaxLifetime     int     `envconfig:"DATABASE_CONN_MAX_LIFETIME" default:"1800"` // 30 minutes
	SentryDSN                   string  `envconfig:"SENTRY_DSN"`
	SentryTracesSampleRate      float64 `envconfig:"SENTRY_TRACES_SAMPLE_RATE"`
	DatadogAgentUrl             string  `envconfig:"DATADOG_AGENT_URL"`
	LogFilePath                 string  `envconfig:"LOG_FILE_PATH"`
	JWTSecret                   []byte  `envconfig:"JWT_SECRET" required:"true"`
	JWTAccessTokenExpiry        int     `envconfig:"JWT_ACCESS_EXPIRY" default:"172800"` // in seconds, default 2 days
	AdminGroupName              string  `envconfig:"ADMIN_GROUP_NAME" default:"Admin"`
	AdvanceRate                 float64 `envconfig:"ADVANCE_RATE" default:"0.90"` // fraction of the adjusted ledger balance released as credit
	Host                        string  `envconfig:"HOST" default:"localhost:3000"`
	Port                        int     `envconfig:"PORT" default:"3000"`
	DefaultRateLimit            int     `envconfig:"DEFAULT_RATE_LIMIT" default:"10"`
	StrictRateLimit             int     `envconfig:"STRICT_RATE_LIMIT" default:"10"`
	BurstRateLimit              int     `envconfig:"BURST_RATE_LIMIT" default:"1"`
	EnablePrometheus            bool    `envconfig:"ENABLE_PROMETHEUS" default:"false"`
	PrometheusPort              int     `envconfig:"PROMETHEUS_PORT" default:"9092"`
	WebhookUrl                  string  `envconfig:"WEBHOOK_URL"`
	AllowAccountCreation        bool    `envconfig:"ALLOW_ACCOUNT_CREATION" default:"true"`
	MinPasswordEntropy          int     `envconfig:"MIN_PASSWORD_ENTROPY" default:"0"`
	RabbitMQUri                 string  `envconfig:"RABBITMQ_URI"`
	RabbitMQTransactionExchange string  `envconfig:"RABBITMQ_TRANSACTION_EXCHANGE" default:"factorhub_transaction"`
}
