package config

// EnvPrefix namespaces every configuration variable read by envconfig.
const EnvPrefix = "MRB"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv       = "MRB_APP_ENV"
	EnvPort         = "MRB_APP_PORT"
	EnvLogLevel     = "MRB_LOG_LEVEL"
	EnvLogWarnStack = "MRB_LOG_WARN_STACK"

	EnvDBDSN    = "MRB_DB_DSN"
	EnvDBDriver = "MRB_DB_DRIVER"

	EnvRedisURL  = "MRB_REDIS_URL"
	EnvRedisAddr = "MRB_REDIS_ADDR"

	EnvStoreWhatsApp = "MRB_STORE_WHATSAPP_NUMBER"
	EnvUPIVPA        = "MRB_PAYMENT_UPI_VPA"
)
