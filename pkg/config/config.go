package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Delivery DeliveryConfig
	Payment  PaymentConfig
	Catalog  CatalogConfig
	Location LocationConfig
	DB       DBConfig
	Redis    RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env            string   `envconfig:"MRB_APP_ENV" default:"dev"`
	Port           string   `envconfig:"MRB_APP_PORT" default:"8080"`
	LogLevel       string   `envconfig:"MRB_LOG_LEVEL" default:"info"`
	LogWarnStack   bool     `envconfig:"MRB_LOG_WARN_STACK" default:"false"`
	AllowedOrigins []string `envconfig:"MRB_ALLOWED_ORIGINS" default:"*"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig carries the storefront identity stamped into outgoing
// order messages and payment links.
type StoreConfig struct {
	Name           string `envconfig:"MRB_STORE_NAME" default:"Mana Raitu Bazaar"`
	Branch         string `envconfig:"MRB_STORE_BRANCH" default:"Morthad"`
	WhatsAppNumber string `envconfig:"MRB_STORE_WHATSAPP_NUMBER" default:"919494719306"`
	PinCode        string `envconfig:"MRB_STORE_PIN_CODE" default:"503225"`
	DefaultVillage string `envconfig:"MRB_STORE_DEFAULT_VILLAGE" default:"Morthad"`
}

type DeliveryConfig struct {
	ChargeRupees        int64 `envconfig:"MRB_DELIVERY_CHARGE" default:"20"`
	FreeThresholdRupees int64 `envconfig:"MRB_DELIVERY_FREE_THRESHOLD" default:"100"`
}

// Charge returns the flat delivery charge as a decimal rupee amount.
func (d DeliveryConfig) Charge() decimal.Decimal {
	return decimal.NewFromInt(d.ChargeRupees)
}

// FreeThreshold returns the subtotal at which delivery becomes free.
func (d DeliveryConfig) FreeThreshold() decimal.Decimal {
	return decimal.NewFromInt(d.FreeThresholdRupees)
}

type PaymentConfig struct {
	UPIVPA        string `envconfig:"MRB_PAYMENT_UPI_VPA" default:"9494719306@ybl"`
	PayeeName     string `envconfig:"MRB_PAYMENT_PAYEE_NAME" default:"Mana Raitu Bazaar"`
	AdvanceRupees int64  `envconfig:"MRB_PAYMENT_ADVANCE" default:"20"`
	OrderIDPrefix string `envconfig:"MRB_PAYMENT_ORDER_ID_PREFIX" default:"MRB"`
}

// Advance returns the cash-on-delivery advance as a decimal rupee amount.
func (p PaymentConfig) Advance() decimal.Decimal {
	return decimal.NewFromInt(p.AdvanceRupees)
}

type CatalogConfig struct {
	UseDB    bool `envconfig:"MRB_CATALOG_USE_DB" default:"false"`
	AutoSeed bool `envconfig:"MRB_CATALOG_AUTO_SEED" default:"true"`
}

type LocationConfig struct {
	Timeout time.Duration `envconfig:"MRB_LOCATION_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	DSN    string `envconfig:"MRB_DB_DSN" default:"file:manaraitubazaar.db?_fk=1"`
	Driver string `envconfig:"MRB_DB_DRIVER" default:"sqlite"`

	MaxOpenConns    int           `envconfig:"MRB_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"MRB_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"MRB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MRB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MRB_REDIS_URL"`
	Address      string        `envconfig:"MRB_REDIS_ADDR"`
	Password     string        `envconfig:"MRB_REDIS_PASSWORD"`
	DB           int           `envconfig:"MRB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MRB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MRB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MRB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MRB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MRB_REDIS_WRITE_TIMEOUT" default:"5s"`
	SessionTTL   time.Duration `envconfig:"MRB_REDIS_SESSION_TTL" default:"24h"`
}

// Enabled reports whether any Redis endpoint was configured. When false the
// server keeps session state in process memory.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}
