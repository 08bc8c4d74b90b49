package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

// Config is the process-wide configuration.
//
// Precedence: environment > config file > defaults. The environment names keep
// the historical billing-service names (AWS_REGION, DYNAMODB_ENDPOINT,
// MERCADOPAGO_ACCESS_TOKEN, ...) so existing deployments keep working.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Workshop WorkshopConfig `mapstructure:"workshop"`
	Storage  StorageConfig  `mapstructure:"storage"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Payments PaymentsConfig `mapstructure:"payments"`
}

type ServerConfig struct {
	Port    int  `mapstructure:"port"`
	Swagger bool `mapstructure:"swagger"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// WorkshopConfig holds the calendar settings shared by every schedule computation.
type WorkshopConfig struct {
	Timezone              string  `mapstructure:"timezone"`
	DefaultDailyHoursGoal float64 `mapstructure:"default_daily_hours_goal"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type DynamoDBConfig struct {
	Region            string `mapstructure:"region"`
	Endpoint          string `mapstructure:"endpoint"`
	AccessKeyID       string `mapstructure:"access_key_id"`
	SecretAccessKey   string `mapstructure:"secret_access_key"`
	WorkOrdersTable   string `mapstructure:"work_orders_table"`
	MechanicsTable    string `mapstructure:"mechanics_table"`
	CustomersTable    string `mapstructure:"customers_table"`
	InvoicesTable     string `mapstructure:"invoices_table"`
	PaymentsTable     string `mapstructure:"payments_table"`
	PaymentsInvoiceIx string `mapstructure:"payments_invoice_index"`
}

type PostgresConfig struct {
	URL             string        `mapstructure:"url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	Migrate         bool          `mapstructure:"migrate"`
}

// RedisConfig is optional: an empty URL disables the board cache and the
// schedule change stream.
type RedisConfig struct {
	URL                  string        `mapstructure:"url"`
	BoardRefreshInterval time.Duration `mapstructure:"board_refresh_interval"`
	ScheduleStream       string        `mapstructure:"schedule_stream"`
	StreamMaxLen         int64         `mapstructure:"stream_max_len"`
}

type PaymentsConfig struct {
	AccessToken     string `mapstructure:"access_token"`
	Mock            string `mapstructure:"mock"`
	TestPayerEmail  string `mapstructure:"test_payer_email"`
	TestPayerUserID string `mapstructure:"test_payer_user_id"`
}

// Sandbox reports whether the access token belongs to a Mercado Pago test account.
func (p PaymentsConfig) Sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(p.AccessToken), "TEST-")
}

// MockEnabled reports whether the payment gateway should be bypassed.
func (p PaymentsConfig) MockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(p.Mock)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

// Load reads configuration from defaults, an optional YAML file and the environment.
// An empty path looks for ./config.yaml and ./config/config.yaml.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.swagger", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("workshop.timezone", "Australia/Sydney")
	v.SetDefault("workshop.default_daily_hours_goal", 8.0)

	v.SetDefault("storage.driver", StorageDynamoDB)

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.work_orders_table", "work_orders")
	v.SetDefault("dynamodb.mechanics_table", "mechanics")
	v.SetDefault("dynamodb.customers_table", "customers")
	v.SetDefault("dynamodb.invoices_table", "invoices")
	v.SetDefault("dynamodb.payments_table", "invoice_payments")
	v.SetDefault("dynamodb.payments_invoice_index", "invoice_id-index")

	v.SetDefault("postgres.url", "")
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.conn_max_lifetime", 15*time.Minute)
	v.SetDefault("postgres.migrate", true)

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.board_refresh_interval", 60*time.Second)
	v.SetDefault("redis.schedule_stream", "workshop.schedule")
	v.SetDefault("redis.stream_max_len", 10000)

	v.SetDefault("payments.access_token", "")
	v.SetDefault("payments.mock", "")
	v.SetDefault("payments.test_payer_email", "")
	v.SetDefault("payments.test_payer_user_id", "")
}

// bindEnv maps keys whose environment names predate the nested layout.
func bindEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"dynamodb.region":                   {"AWS_REGION"},
		"dynamodb.access_key_id":            {"AWS_ACCESS_KEY_ID"},
		"dynamodb.secret_access_key":        {"AWS_SECRET_ACCESS_KEY"},
		"dynamodb.endpoint":                 {"DYNAMODB_ENDPOINT"},
		"dynamodb.work_orders_table":        {"WORK_ORDERS_TABLE"},
		"dynamodb.mechanics_table":          {"MECHANICS_TABLE"},
		"dynamodb.customers_table":          {"CUSTOMERS_TABLE"},
		"dynamodb.invoices_table":           {"INVOICES_TABLE"},
		"dynamodb.payments_table":           {"PAYMENTS_TABLE"},
		"redis.board_refresh_interval":      {"BOARD_REFRESH_INTERVAL"},
		"redis.schedule_stream":             {"SCHEDULE_STREAM"},
		"payments.access_token":             {"MERCADOPAGO_ACCESS_TOKEN"},
		"payments.mock":                     {"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
		"payments.test_payer_email":         {"MERCADOPAGO_TEST_PAYER_EMAIL"},
		"payments.test_payer_user_id":       {"MERCADOPAGO_TEST_PAYER_USER_ID"},
		"workshop.default_daily_hours_goal": {"WORKSHOP_DEFAULT_DAILY_HOURS_GOAL"},
	}
	for key, envs := range bindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return nil
}

// Validate checks the settings the process cannot start without.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid config: workshop.timezone %q: %w", c.Workshop.Timezone, err)
	}
	if c.Workshop.DefaultDailyHoursGoal < 0 {
		return fmt.Errorf("invalid config: workshop.default_daily_hours_goal must not be negative")
	}
	switch c.Storage.Driver {
	case StorageDynamoDB:
	case StoragePostgres:
		if strings.TrimSpace(c.Postgres.URL) == "" {
			return fmt.Errorf("invalid config: postgres.url is required when storage.driver=postgres")
		}
	default:
		return fmt.Errorf("invalid config: unknown storage.driver %q", c.Storage.Driver)
	}
	return nil
}

// Location returns the single timezone used to bucket every schedule timestamp.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Workshop.Timezone)
}
