package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Database reúne a conexão com o PostgreSQL. É tudo o que o utilitário de migração precisa.
type Database struct {
	DatabaseURL      string        `envconfig:"DATABASE_URL"`
	DBHost           string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort           string        `envconfig:"DB_PORT" default:"5432"`
	DBUser           string        `envconfig:"DB_USER" default:"postgres"`
	DBPassword       string        `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName           string        `envconfig:"DB_NAME" default:"gestor_pme"`
	DBSSLMode        string        `envconfig:"DB_SSL_MODE" default:"disable"`
	DBMaxConnections int32         `envconfig:"DB_MAX_CONNECTIONS" default:"10"`
	DBMinConnections int32         `envconfig:"DB_MIN_CONNECTIONS" default:"2"`
	DBMaxLifetime    time.Duration `envconfig:"DB_MAX_LIFETIME" default:"5m"`
}

// Config reúne as configurações da aplicação lidas do ambiente
type Config struct {
	Env        string `envconfig:"APP_ENV" default:"development"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`

	Database

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	JWTSecretKey  string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	JWTExpiration time.Duration `envconfig:"JWT_EXPIRATION" default:"24h"`

	CartTTL            time.Duration `envconfig:"CART_TTL" default:"12h"`
	LoginRateLimit     int           `envconfig:"LOGIN_RATE_LIMIT" default:"20"`
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS"`
}

// Load carrega o arquivo .env (se existir) e lê as variáveis de ambiente.
// O retorno envLoaded indica se o .env foi encontrado.
func Load() (cfg *Config, envLoaded bool, err error) {
	envLoaded = godotenv.Load() == nil

	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, envLoaded, fmt.Errorf("erro ao carregar configuração: %w", err)
	}
	return cfg, envLoaded, nil
}

// LoadDatabase carrega apenas a configuração do banco, sem exigir as chaves do servidor
func LoadDatabase() (db *Database, envLoaded bool, err error) {
	envLoaded = godotenv.Load() == nil

	db = &Database{}
	if err := envconfig.Process("", db); err != nil {
		return nil, envLoaded, fmt.Errorf("erro ao carregar configuração do banco: %w", err)
	}
	return db, envLoaded, nil
}

// IsProduction indica se a aplicação está rodando em produção
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// PostgresURL retorna a URL de conexão, montando-a a partir das partes quando DATABASE_URL não foi informada
func (c *Database) PostgresURL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// Address retorna o endereço em que o servidor HTTP escuta
func (c *Config) Address() string {
	return ":" + c.ServerPort
}
