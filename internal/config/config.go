package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable is invalid")

const (
	appEnvEnvKey          = "APP_ENV"
	apiPortEnvKey         = "API_PORT"
	dbHostEnvKey          = "DB_HOST"
	dbPortEnvKey          = "DB_PORT"
	dbUserEnvKey          = "DB_USER"
	dbPasswordEnvKey      = "DB_PASSWORD"
	dbNameEnvKey          = "DB_NAME"
	dbSSLModeEnvKey       = "DB_SSLMODE"
	dbTimeoutEnvKey       = "DB_TIMEOUT_MS"
	sessionSecretEnvKey   = "SESSION_SECRET"
	sessionTTLEnvKey      = "SESSION_TTL_SECONDS"
	bcryptCostEnvKey      = "BCRYPT_COST"
	redisAddrEnvKey       = "REDIS_ADDR"
	loginRateLimitEnvKey  = "LOGIN_RATE_LIMIT"
	loginRateWindowEnvKey = "LOGIN_RATE_WINDOW_SECONDS"
	logLevelEnvKey        = "LOG_LEVEL"
	adminUsernameEnvKey   = "ADMIN_USERNAME"
	adminPasswordEnvKey   = "ADMIN_PASSWORD"

	developmentEnv     = "development"
	productionEnv      = "production"
	devSessionSecret   = "eoex-dev-session-secret"
	defaultEnvFileName = ".env"
)

type App struct {
	Environment     string
	Port            string
	DBConnectionURL string
	DBTimeout       time.Duration
	SessionSecret   string
	SessionTTL      time.Duration
	BcryptCost      int
	RedisAddr       string
	LoginRateLimit  int
	LoginRateWindow time.Duration
	LogLevel        string
	AdminUsername   string
	AdminPassword   string
}

// NewAppConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables win.
func NewAppConfig() (App, error) {
	if err := godotenv.Load(defaultEnvFileName); err != nil && !errors.Is(err, os.ErrNotExist) {
		return App{}, fmt.Errorf("load %s: %w", defaultEnvFileName, err)
	}

	return fromEnv()
}

func fromEnv() (App, error) {
	env := lookupOr(appEnvEnvKey, productionEnv)

	dbTimeout, err := intOr(dbTimeoutEnvKey, 3000)
	if err != nil {
		return App{}, err
	}

	sessionTTL, err := intOr(sessionTTLEnvKey, 86400)
	if err != nil {
		return App{}, err
	}

	bcryptCost, err := intOr(bcryptCostEnvKey, bcrypt.DefaultCost)
	if err != nil {
		return App{}, err
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return App{}, fmt.Errorf("%w: %s out of range", errEnvVarInvalid, bcryptCostEnvKey)
	}

	rateLimit, err := intOr(loginRateLimitEnvKey, 10)
	if err != nil {
		return App{}, err
	}

	rateWindow, err := intOr(loginRateWindowEnvKey, 60)
	if err != nil {
		return App{}, err
	}

	secret, ok := os.LookupEnv(sessionSecretEnvKey)
	if !ok || secret == "" {
		if env != developmentEnv {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, sessionSecretEnvKey)
		}
		secret = devSessionSecret
	}

	return App{
		Environment: env,
		Port:        lookupOr(apiPortEnvKey, "8080"),
		DBConnectionURL: postgresURL(
			lookupOr(dbHostEnvKey, "localhost"),
			lookupOr(dbPortEnvKey, "5432"),
			lookupOr(dbUserEnvKey, "postgres"),
			lookupOr(dbPasswordEnvKey, "postgres"),
			lookupOr(dbNameEnvKey, "eoex_store"),
			lookupOr(dbSSLModeEnvKey, "disable"),
		),
		DBTimeout:       time.Duration(dbTimeout) * time.Millisecond,
		SessionSecret:   secret,
		SessionTTL:      time.Duration(sessionTTL) * time.Second,
		BcryptCost:      bcryptCost,
		RedisAddr:       lookupOr(redisAddrEnvKey, ""),
		LoginRateLimit:  rateLimit,
		LoginRateWindow: time.Duration(rateWindow) * time.Second,
		LogLevel:        lookupOr(logLevelEnvKey, "info"),
		AdminUsername:   lookupOr(adminUsernameEnvKey, ""),
		AdminPassword:   lookupOr(adminPasswordEnvKey, ""),
	}, nil
}

func postgresURL(host, port, user, password, name, sslMode string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     host + ":" + port,
		Path:     "/" + name,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}

func lookupOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func intOr(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, v)
	}
	return n, nil
}
