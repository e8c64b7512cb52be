package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/dig"

	"github.com/davidbz/feequote/internal/domain"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config represents the service configuration.
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Fee    FeeConfig
	Quote  QuoteConfig
	Store  StoreConfig
	Redis  RedisConfig
	Admin  AdminConfig
	Log    LogConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"30"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization,X-Requester-Id"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// FeeConfig holds the named numeric options of the fee schedule.
type FeeConfig struct {
	Tier1Max  decimal.Decimal `env:"FEE_TIER1_MAX"  envDefault:"5000"`
	Tier1Rate decimal.Decimal `env:"FEE_TIER1_RATE" envDefault:"0.10"`
	Tier2Max  decimal.Decimal `env:"FEE_TIER2_MAX"  envDefault:"20000"`
	Tier2Rate decimal.Decimal `env:"FEE_TIER2_RATE" envDefault:"0.08"`
	Tier3Max  decimal.Decimal `env:"FEE_TIER3_MAX"  envDefault:"50000"`
	Tier3Rate decimal.Decimal `env:"FEE_TIER3_RATE" envDefault:"0.06"`
	Tier4Rate decimal.Decimal `env:"FEE_TIER4_RATE" envDefault:"0.04"`

	ComplexitySimple   decimal.Decimal `env:"FEE_COMPLEXITY_SIMPLE"   envDefault:"0.8"`
	ComplexityStandard decimal.Decimal `env:"FEE_COMPLEXITY_STANDARD" envDefault:"1.0"`
	ComplexityComplex  decimal.Decimal `env:"FEE_COMPLEXITY_COMPLEX"  envDefault:"1.5"`
	// Unset means enterprise campaigns are priced like complex ones.
	ComplexityEnterprise decimal.Decimal `env:"FEE_COMPLEXITY_ENTERPRISE"`

	SilverMinSpend   decimal.Decimal `env:"FEE_SPEND_SILVER_MIN"    envDefault:"10000"`
	SilverRate       decimal.Decimal `env:"FEE_SPEND_SILVER_RATE"   envDefault:"0.05"`
	GoldMinSpend     decimal.Decimal `env:"FEE_SPEND_GOLD_MIN"      envDefault:"50000"`
	GoldRate         decimal.Decimal `env:"FEE_SPEND_GOLD_RATE"     envDefault:"0.15"`
	PlatinumMinSpend decimal.Decimal `env:"FEE_SPEND_PLATINUM_MIN"  envDefault:"100000"`
	PlatinumRate     decimal.Decimal `env:"FEE_SPEND_PLATINUM_RATE" envDefault:"0.25"`
	MaxDiscountRate  decimal.Decimal `env:"FEE_MAX_DISCOUNT_RATE"   envDefault:"0.40"`

	TokenDiscountRate decimal.Decimal `env:"FEE_TOKEN_DISCOUNT_RATE" envDefault:"0.20"`

	OracleBaseFee      decimal.Decimal `env:"FEE_ORACLE_BASE"          envDefault:"50"`
	OraclePerKPIFee    decimal.Decimal `env:"FEE_ORACLE_PER_KPI"       envDefault:"10"`
	OracleIncludedKPIs int             `env:"FEE_ORACLE_INCLUDED_KPIS" envDefault:"3"`
	OraclePremiumRate  decimal.Decimal `env:"FEE_ORACLE_PREMIUM_RATE"  envDefault:"0.40"`

	BufferRate decimal.Decimal `env:"FEE_BUFFER_RATE" envDefault:"0.10"`
}

// QuoteConfig contains fee estimate issuance settings.
type QuoteConfig struct {
	SigningSecret string        `env:"QUOTE_SIGNING_SECRET"`
	Validity      time.Duration `env:"QUOTE_VALIDITY"       envDefault:"15m"`
}

// StoreConfig selects where quotes and requester profiles live.
type StoreConfig struct {
	Backend string `env:"STORE_BACKEND" envDefault:"memory"`
}

// RedisConfig contains Redis connection settings.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"       envDefault:"0"`
}

// AdminConfig guards the operator endpoints used by the user service to sync requester profiles.
type AdminConfig struct {
	// Empty disables the operator endpoints.
	Token string `env:"ADMIN_TOKEN"`
}

// LogConfig selects the logger flavour.
type LogConfig struct {
	Level       string `env:"LOG_LEVEL"       envDefault:"info"`
	Development bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*QuoteConfig
	*StoreConfig
	*RedisConfig
	*AdminConfig
	*LogConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Quote,
		&cfg.Store,
		&cfg.Redis,
		&cfg.Admin,
		&cfg.Log,
	}
}

// FeeSchedule assembles the domain fee schedule from the configured options.
func (c *Config) FeeSchedule() domain.FeeSchedule {
	f := c.Fee
	return domain.FeeSchedule{
		Brackets: []domain.RateBracket{
			{UpTo: f.Tier1Max, Rate: f.Tier1Rate},
			{UpTo: f.Tier2Max, Rate: f.Tier2Rate},
			{UpTo: f.Tier3Max, Rate: f.Tier3Rate},
		},
		UncappedRate:         f.Tier4Rate,
		SimpleMultiplier:     f.ComplexitySimple,
		StandardMultiplier:   f.ComplexityStandard,
		ComplexMultiplier:    f.ComplexityComplex,
		EnterpriseMultiplier: f.ComplexityEnterprise,
		SpendTiers: []domain.SpendTier{
			{Name: "bronze", MinSpend: decimal.Zero, Rate: decimal.Zero},
			{Name: "silver", MinSpend: f.SilverMinSpend, Rate: f.SilverRate},
			{Name: "gold", MinSpend: f.GoldMinSpend, Rate: f.GoldRate},
			{Name: "platinum", MinSpend: f.PlatinumMinSpend, Rate: f.PlatinumRate},
		},
		MaxDiscountRate:    f.MaxDiscountRate,
		TokenDiscountRate:  f.TokenDiscountRate,
		OracleBaseFee:      f.OracleBaseFee,
		OraclePerKPIFee:    f.OraclePerKPIFee,
		OracleIncludedKPIs: f.OracleIncludedKPIs,
		OraclePremiumRate:  f.OraclePremiumRate,
		BufferRate:         f.BufferRate,
		QuoteValidity:      c.Quote.Validity,
	}
}
