package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/stellar/go/network"
)

// Network names accepted in network.name.
const (
	NetworkPublic    = "public"
	NetworkTestnet   = "testnet"
	NetworkFuturenet = "futurenet"

	futurenetPassphrase = "Test SDF Future Network ; October 2022"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Session     SessionConfig     `mapstructure:"session"`
	Network     NetworkConfig     `mapstructure:"network"`
	Transaction TransactionConfig `mapstructure:"transaction"`
	Submit      SubmitConfig      `mapstructure:"submit"`
	Security    SecurityConfig    `mapstructure:"security"`
	Keystore    KeystoreConfig    `mapstructure:"keystore"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	Mode           string        `mapstructure:"mode"` // debug, release, test
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
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

// SessionConfig controls the JWT issued after a successful passcode check.
type SessionConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type NetworkConfig struct {
	Name              string `mapstructure:"name"` // public, testnet, futurenet
	HorizonURL        string `mapstructure:"horizon_url"`
	Passphrase        string `mapstructure:"passphrase"`
	MinAccountReserve string `mapstructure:"min_account_reserve"` // XLM, decimal string
	// SorobanRPCURL serves contract simulation. Empty disables contract transfers.
	SorobanRPCURL string `mapstructure:"soroban_rpc_url"`
}

// Resolve fills the Horizon URL, Soroban RPC URL and passphrase from the
// network name when they are not set explicitly. The public network has no
// public RPC preset.
func (n NetworkConfig) Resolve() (NetworkConfig, error) {
	var url, rpcURL, passphrase string
	switch n.Name {
	case NetworkPublic:
		url, passphrase = "https://horizon.stellar.org", network.PublicNetworkPassphrase
	case NetworkTestnet:
		url, passphrase = "https://horizon-testnet.stellar.org", network.TestNetworkPassphrase
		rpcURL = "https://soroban-testnet.stellar.org"
	case NetworkFuturenet:
		url, passphrase = "https://horizon-futurenet.stellar.org", futurenetPassphrase
		rpcURL = "https://rpc-futurenet.stellar.org"
	default:
		if n.HorizonURL == "" || n.Passphrase == "" {
			return n, fmt.Errorf("unknown network %q without explicit horizon_url and passphrase", n.Name)
		}
	}
	if n.HorizonURL == "" {
		n.HorizonURL = url
	}
	if n.Passphrase == "" {
		n.Passphrase = passphrase
	}
	if n.SorobanRPCURL == "" {
		n.SorobanRPCURL = rpcURL
	}
	return n, nil
}

// IsMainnet reports whether the configuration targets the public network.
func (n NetworkConfig) IsMainnet() bool {
	return n.Name == NetworkPublic || n.Passphrase == network.PublicNetworkPassphrase
}

// TransactionConfig holds the defaults applied when an intent omits a value.
type TransactionConfig struct {
	DefaultFee      string  `mapstructure:"default_fee"`      // XLM
	DefaultTimeout  int64   `mapstructure:"default_timeout"`  // seconds
	DefaultSlippage float64 `mapstructure:"default_slippage"` // percent
}

type SubmitConfig struct {
	RetryInterval time.Duration `mapstructure:"retry_interval"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	LockTTL       time.Duration `mapstructure:"lock_ttl"`
}

type SecurityConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	ScannerURL string        `mapstructure:"scanner_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type KeystoreConfig struct {
	Backend      string `mapstructure:"backend"` // file, postgres
	Dir          string `mapstructure:"dir"`
	DeviceKey    string `mapstructure:"device_key"` // 32-byte hex-encoded key for AES-256
	KDF          string `mapstructure:"kdf"`        // scrypt, argon2id
	PasscodeHash string `mapstructure:"passcode_hash"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SWC_ (Stellar Wallet Core).
// Nested keys use underscore: SWC_NETWORK_NAME, SWC_KEYSTORE_DEVICE_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.request_timeout", "30s")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wallet_core")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("session.secret", "")
	v.SetDefault("session.expiry", "15m")
	v.SetDefault("session.issuer", "stellar-wallet-core")
	v.SetDefault("network.name", NetworkTestnet)
	v.SetDefault("network.horizon_url", "")
	v.SetDefault("network.passphrase", "")
	v.SetDefault("network.min_account_reserve", "1")
	v.SetDefault("network.soroban_rpc_url", "")
	v.SetDefault("transaction.default_fee", "0.00001")
	v.SetDefault("transaction.default_timeout", 180)
	v.SetDefault("transaction.default_slippage", 1.0)
	v.SetDefault("submit.retry_interval", "2s")
	v.SetDefault("submit.cache_ttl", "24h")
	v.SetDefault("submit.lock_ttl", "5m")
	v.SetDefault("security.enabled", true)
	v.SetDefault("security.scanner_url", "https://freighter-backend-prd.stellar.org/api/v1")
	v.SetDefault("security.timeout", "10s")
	v.SetDefault("keystore.backend", "file")
	v.SetDefault("keystore.dir", "./keychain")
	v.SetDefault("keystore.device_key", "")
	v.SetDefault("keystore.kdf", "scrypt")
	v.SetDefault("keystore.passcode_hash", "")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// SWC_NETWORK_NAME -> network.name
	v.SetEnvPrefix("SWC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	resolved, err := cfg.Network.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolving network: %w", err)
	}
	cfg.Network = resolved

	return &cfg, nil
}
