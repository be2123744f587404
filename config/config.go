package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	FilePath       string        `mapstructure:"FILE_PATH"`
	DatabaseURL    string        `mapstructure:"DATABASE_URL"`
	MigrationsPath string        `mapstructure:"MIGRATIONS_PATH"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	ServerPort     string        `mapstructure:"SERVER_PORT"`
	CSVSeparator   string        `mapstructure:"CSV_SEPARATOR"`
	InsertWorkers  int           `mapstructure:"INSERT_WORKERS"`
	InsertTimeout  time.Duration `mapstructure:"INSERT_TIMEOUT"`
	MaxUploadBytes int64         `mapstructure:"MAX_UPLOAD_BYTES"`
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int           `mapstructure:"REDIS_DB"`
	CacheTTL       time.Duration `mapstructure:"CACHE_TTL"`
	KafkaBrokers   []string      `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic     string        `mapstructure:"KAFKA_TOPIC"`
}

func LoadEnvs() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("FILE_PATH", "")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "file://database/migrations")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", "8083")
	v.SetDefault("CSV_SEPARATOR", ",")
	v.SetDefault("INSERT_WORKERS", 16)
	v.SetDefault("INSERT_TIMEOUT", "10s")
	v.SetDefault("MAX_UPLOAD_BYTES", 64<<20)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "stock-ingestions")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.KafkaBrokers = splitList(config.KafkaBrokers)

	return &config, nil
}

// Separator returns the first rune of CSVSeparator, falling back to a comma.
func (c *Config) Separator() rune {
	for _, r := range c.CSVSeparator {
		return r
	}
	return ','
}

// splitList flattens comma separated env values and drops blanks.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
