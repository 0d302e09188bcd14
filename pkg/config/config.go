package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the envconfig prefix shared by every CakeApp variable.
const EnvPrefix = "CAKEAPP"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvDBDSN  = "CAKEAPP_DB_DSN"
	EnvDBHost = "CAKEAPP_DB_HOST"
	EnvDBUser = "CAKEAPP_DB_USER"
	EnvDBName = "CAKEAPP_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Sendgrid      SendgridConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	// CAKEAPP_USE_SQLITE is the single local-run switch; it wins over
	// CAKEAPP_DB_DRIVER.
	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = "sqlite"
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"CAKEAPP_APP_ENV" required:"true"`
	Port         string   `envconfig:"CAKEAPP_APP_PORT" default:"8080"`
	LogLevel     string   `envconfig:"CAKEAPP_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"CAKEAPP_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"CAKEAPP_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CAKEAPP_DB_DSN"`
	Driver string `envconfig:"CAKEAPP_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CAKEAPP_DB_HOST"`
	LegacyPort     int    `envconfig:"CAKEAPP_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CAKEAPP_DB_USER"`
	LegacyPassword string `envconfig:"CAKEAPP_DB_PASSWORD"`
	LegacyName     string `envconfig:"CAKEAPP_DB_NAME"`
	LegacySSLMode  string `envconfig:"CAKEAPP_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CAKEAPP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CAKEAPP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CAKEAPP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CAKEAPP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CAKEAPP_REDIS_URL"`
	Address      string        `envconfig:"CAKEAPP_REDIS_ADDR"`
	Password     string        `envconfig:"CAKEAPP_REDIS_PASSWORD"`
	DB           int           `envconfig:"CAKEAPP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CAKEAPP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CAKEAPP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CAKEAPP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CAKEAPP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CAKEAPP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// JWTConfig carries token signing settings. Secret is deliberately not
// required at load time: a missing secret surfaces as a configuration
// error when login tries to mint a token.
type JWTConfig struct {
	Secret            string `envconfig:"CAKEAPP_JWT_SECRET"`
	Issuer            string `envconfig:"CAKEAPP_JWT_ISSUER" default:"cakeapp"`
	ExpirationMinutes int    `envconfig:"CAKEAPP_JWT_EXPIRATION_MINUTES" default:"60"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"CAKEAPP_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"CAKEAPP_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"CAKEAPP_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"CAKEAPP_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"CAKEAPP_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"CAKEAPP_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"CAKEAPP_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"CAKEAPP_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"CAKEAPP_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"CAKEAPP_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"CAKEAPP_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
	ResendWindow       time.Duration `envconfig:"CAKEAPP_AUTH_RATE_LIMIT_RESEND_WINDOW" default:"5m"`
	ResendEmailLimit   int           `envconfig:"CAKEAPP_AUTH_RATE_LIMIT_RESEND_EMAIL_LIMIT" default:"3"`
	ResendIPLimit      int           `envconfig:"CAKEAPP_AUTH_RATE_LIMIT_RESEND_IP_LIMIT" default:"20"`
	VerifyWindow       time.Duration `envconfig:"CAKEAPP_AUTH_RATE_LIMIT_VERIFY_WINDOW" default:"10m"`
	VerifyEmailLimit   int           `envconfig:"CAKEAPP_AUTH_RATE_LIMIT_VERIFY_EMAIL_LIMIT" default:"5"`
	VerifyIPLimit      int           `envconfig:"CAKEAPP_AUTH_RATE_LIMIT_VERIFY_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"CAKEAPP_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"CAKEAPP_AUTO_MIGRATE" default:"false"`
}

type SendgridConfig struct {
	APIKey      string `envconfig:"CAKEAPP_SENDGRID_API_KEY"`
	DefaultFrom string `envconfig:"CAKEAPP_SENDGRID_FROM_EMAIL" default:"noreply@cakeapp.example"`
	FromName    string `envconfig:"CAKEAPP_SENDGRID_FROM_NAME" default:"CakeApp"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
