package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Vault     VaultConfig     `mapstructure:"vault"`
	Secrets   SecretsConfig   `mapstructure:"secrets"`
	Chain     ChainConfig     `mapstructure:"chain"`
	Guardrail GuardrailConfig `mapstructure:"guardrail"`
	Pool      PoolConfig      `mapstructure:"pool"`
	Revenue   RevenueConfig   `mapstructure:"revenue"`
	Vanity    VanityConfig    `mapstructure:"vanity"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
	// BootstrapKey gates the token-minting endpoint. Empty disables it.
	BootstrapKey string `mapstructure:"bootstrap_key"`
}

// VaultConfig configures the AES-256 key that protects pool wallet keys and
// the encrypted custody seed blob. The key is derived from the passphrase
// with Argon2id; the salt must stay stable across restarts.
type VaultConfig struct {
	Passphrase string `mapstructure:"passphrase"`
	Salt       string `mapstructure:"salt"`
}

// SecretsConfig selects how the custody signing key is resolved.
type SecretsConfig struct {
	Mode          string        `mapstructure:"mode"`           // env, encrypted, remote
	SeedHex       string        `mapstructure:"seed_hex"`       // env mode: plaintext hex seed (dev only)
	EncryptedSeed string        `mapstructure:"encrypted_seed"` // encrypted mode: vault-encrypted hex seed
	RemoteURL     string        `mapstructure:"remote_url"`     // remote mode: managed-store endpoint
	RemoteToken   string        `mapstructure:"remote_token"`   // remote mode: bearer token
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
}

type ChainConfig struct {
	RPCURL          string        `mapstructure:"rpc_url"`
	NetworkFee      uint64        `mapstructure:"network_fee"` // fixed fee per transfer, base units
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ConfirmInterval time.Duration `mapstructure:"confirm_interval"`
	ConfirmAttempts int           `mapstructure:"confirm_attempts"`
}

// GuardrailConfig holds spend policy limits. Concrete values are
// configuration, not invariants: deployments tune them per environment.
type GuardrailConfig struct {
	MaxPerCall       uint64            `mapstructure:"max_per_call"`
	CallerOverrides  map[string]uint64 `mapstructure:"caller_overrides"`
	WindowMax        uint64            `mapstructure:"window_max"`
	WindowDuration   time.Duration     `mapstructure:"window_duration"`
	AllowedAddresses []string          `mapstructure:"allowed_addresses"` // empty = any not denied
	DeniedAddresses  []string          `mapstructure:"denied_addresses"`
}

type PoolConfig struct {
	FundingAmount   uint64        `mapstructure:"funding_amount"`
	FeeBuffer       uint64        `mapstructure:"fee_buffer"`
	FundDelay       time.Duration `mapstructure:"fund_delay"`
	StalenessWindow time.Duration `mapstructure:"staleness_window"`
	SweepInterval   time.Duration `mapstructure:"sweep_interval"`
}

type RevenueConfig struct {
	SharePercent     float64       `mapstructure:"share_percent"` // clamped to [0,1]
	MinDustThreshold uint64        `mapstructure:"min_dust_threshold"`
	SubmitterAddress string        `mapstructure:"submitter_address"`
	RetryInterval    time.Duration `mapstructure:"retry_interval"`
}

type VanityConfig struct {
	Suffix     string        `mapstructure:"suffix"` // empty = plain random keypairs
	MaxWorkers int           `mapstructure:"max_workers"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CTY_ (Custody Treasury).
// Nested keys use underscore: CTY_DATABASE_HOST, CTY_CHAIN_RPC_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "custody_treasury")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "custody-treasury")
	v.SetDefault("jwt.bootstrap_key", "")
	v.SetDefault("vault.passphrase", "")
	v.SetDefault("vault.salt", "")
	v.SetDefault("secrets.mode", "env")
	v.SetDefault("secrets.cache_ttl", "5m")
	v.SetDefault("chain.rpc_url", "http://localhost:8899")
	v.SetDefault("chain.network_fee", 5000)
	v.SetDefault("chain.request_timeout", "15s")
	v.SetDefault("chain.confirm_interval", "2s")
	v.SetDefault("chain.confirm_attempts", 30)
	v.SetDefault("guardrail.max_per_call", 1_000_000_000)
	v.SetDefault("guardrail.window_max", 10_000_000_000)
	v.SetDefault("guardrail.window_duration", "24h")
	v.SetDefault("pool.funding_amount", 10_000_000)
	v.SetDefault("pool.fee_buffer", 10_000)
	v.SetDefault("pool.fund_delay", "500ms")
	v.SetDefault("pool.staleness_window", "30m")
	v.SetDefault("pool.sweep_interval", "1h")
	v.SetDefault("revenue.share_percent", 0.5)
	v.SetDefault("revenue.min_dust_threshold", 10_000)
	v.SetDefault("revenue.retry_interval", "15m")
	v.SetDefault("vanity.suffix", "")
	v.SetDefault("vanity.max_workers", 8)
	v.SetDefault("vanity.timeout", "2m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CTY_DATABASE_HOST -> database.host
	v.SetEnvPrefix("CTY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Clamp share percent to [0,1]
	if cfg.Revenue.SharePercent < 0 {
		cfg.Revenue.SharePercent = 0
	}
	if cfg.Revenue.SharePercent > 1 {
		cfg.Revenue.SharePercent = 1
	}

	return &cfg, nil
}
