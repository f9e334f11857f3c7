package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// FieldMapping names the users table and its columns in the existing game
// database. It is resolved once at startup and injected into the auth and
// ledger repositories; nothing introspects the schema at request time.
type FieldMapping struct {
	UsersTable       string
	IDColumn         string
	NameColumn       string
	PasswordColumn   string
	MoneyColumn      string
	DonateColumn     string
	LevelColumn      string
	AdminLevelColumn string
	OnlineColumn     string
	LastActionColumn string
}

// Config holds the application configuration.
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// StoreTimeout bounds every backing-store call; on expiry the request
	// fails with a retryable store error instead of hanging.
	StoreTimeout time.Duration

	// CatalogCap limits how many catalog rows feed a case's eligible set.
	CatalogCap int

	// LegacySlotEncoding switches inventory writes to the 3-field slot
	// format used by game servers that predate the from_case flag. In that
	// mode every inventory item is sellable.
	LegacySlotEncoding bool

	// SellReturnRate is the fraction of the catalog price paid out when a
	// player resells a case-won item.
	SellReturnRate float64

	// IP guard thresholds.
	GuardMaxAttempts   int
	GuardBlockDuration time.Duration

	Users FieldMapping
}

// Load loads the configuration from environment variables. A .env file is
// honored when present but not required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		Environment: getEnv("ENVIRONMENT", "prod"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "companion"),
		Users: FieldMapping{
			UsersTable:       getEnv("USERS_TABLE", "users"),
			IDColumn:         getEnv("USERS_ID_COLUMN", "u_id"),
			NameColumn:       getEnv("USERS_NAME_COLUMN", "u_name"),
			PasswordColumn:   getEnv("USERS_PASSWORD_COLUMN", "u_password"),
			MoneyColumn:      getEnv("USERS_MONEY_COLUMN", "u_money"),
			DonateColumn:     getEnv("USERS_DONATE_COLUMN", "u_donate"),
			LevelColumn:      getEnv("USERS_LEVEL_COLUMN", "u_level"),
			AdminLevelColumn: getEnv("USERS_ADMIN_COLUMN", "u_admin"),
			OnlineColumn:     getEnv("USERS_ONLINE_COLUMN", "u_online"),
			LastActionColumn: getEnv("USERS_LAST_ACTION_COLUMN", "u_last_action"),
		},
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.CatalogCap, err = getEnvInt("CATALOG_CAP", 100); err != nil {
		return nil, err
	}
	if cfg.GuardMaxAttempts, err = getEnvInt("GUARD_MAX_ATTEMPTS", 5); err != nil {
		return nil, err
	}

	blockMinutes, err := getEnvInt("GUARD_BLOCK_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	cfg.GuardBlockDuration = time.Duration(blockMinutes) * time.Minute

	timeoutMillis, err := getEnvInt("STORE_TIMEOUT_MS", 5000)
	if err != nil {
		return nil, err
	}
	cfg.StoreTimeout = time.Duration(timeoutMillis) * time.Millisecond

	cfg.LegacySlotEncoding = getEnv("LEGACY_SLOT_ENCODING", "false") == "true"

	rateStr := getEnv("SELL_RETURN_RATE", "0.7")
	cfg.SellReturnRate, err = strconv.ParseFloat(rateStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SELL_RETURN_RATE value: %w", err)
	}
	if cfg.SellReturnRate <= 0 || cfg.SellReturnRate > 1 {
		return nil, fmt.Errorf("SELL_RETURN_RATE must be in (0, 1], got %v", cfg.SellReturnRate)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// GetDBConnString returns the PostgreSQL connection string.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
