package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DevJWTSecret é o segredo usado como fallback quando ENV=development.
// Nunca é aceito fora de desenvolvimento.
const DevJWTSecret = "startuphub-dev-secret-nao-use-em-producao-0001"

// Config representa a configuração completa da aplicação
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Logging  LoggingConfig
}

// ServerConfig contém configurações do servidor HTTP
type ServerConfig struct {
	Port         int
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLS          bool
	CertFile     string
	KeyFile      string
}

// DatabaseConfig contém configurações do banco de dados
type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

// RedisOptions contém configurações específicas para Redis
type RedisOptions struct {
	Address  string
	Password string
	DB       int
}

// CacheConfig contém configurações do cache
type CacheConfig struct {
	Enabled bool
	Type    string // redis, memory
	TTL     time.Duration
	Redis   RedisOptions
}

// AuthConfig contém configurações de autenticação
type AuthConfig struct {
	JWTSecret       string
	TokenExpiration time.Duration
}

// LoggingConfig contém configurações de logging
type LoggingConfig struct {
	Level      string
	Production bool
}

// LoadConfig carrega a configuração de diversas fontes (arquivo, env, defaults)
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/startuphub")

	if err := v.ReadInConfig(); err != nil {
		// Ignorar se o arquivo não for encontrado
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("erro ao ler arquivo de configuração: %w", err)
		}
	}

	// Ler variáveis de ambiente com prefixo SH_
	v.SetEnvPrefix("SH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("erro ao mapear configuração: %w", err)
	}

	// Aceita também a variável JWT_SECRET sem prefixo
	if config.Auth.JWTSecret == "" {
		config.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults define valores padrão para a configuração
func setDefaults(v *viper.Viper) {
	// Servidor
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.readTimeout", "5s")
	v.SetDefault("server.writeTimeout", "10s")
	v.SetDefault("server.idleTimeout", "30s")
	v.SetDefault("server.tls", false)

	// Banco de dados
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "file:startuphub.db?cache=shared")
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.connMaxLifetime", "1h")
	v.SetDefault("database.slowThreshold", "200ms")

	// Cache
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "1m")
	v.SetDefault("cache.redis.address", "localhost:6379")
	v.SetDefault("cache.redis.db", 0)

	// Autenticação
	v.SetDefault("auth.jwtSecret", "")
	v.SetDefault("auth.tokenExpiration", "8h")

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.production", true)
}

// validateConfig valida a configuração
func validateConfig(config *Config) error {
	// O segredo JWT é obrigatório fora de desenvolvimento. Em desenvolvimento
	// aplicamos um fallback fixo.
	if config.Auth.JWTSecret == "" {
		if os.Getenv("ENV") != "development" {
			return fmt.Errorf("JWT secret não definido: configure SH_AUTH_JWTSECRET ou JWT_SECRET")
		}
		config.Auth.JWTSecret = DevJWTSecret
	}

	if config.Auth.TokenExpiration <= 0 {
		return fmt.Errorf("tempo de expiração do token inválido: %s", config.Auth.TokenExpiration)
	}

	validDrivers := map[string]bool{"sqlite": true, "mysql": true, "postgres": true}
	if !validDrivers[config.Database.Driver] {
		return fmt.Errorf("driver de banco de dados inválido: %s", config.Database.Driver)
	}

	if config.Server.TLS {
		if config.Server.CertFile == "" || config.Server.KeyFile == "" {
			return fmt.Errorf("TLS habilitado, mas CertFile ou KeyFile não estão definidos")
		}
	}

	if config.Cache.Enabled {
		validTypes := map[string]bool{"memory": true, "redis": true}
		if !validTypes[config.Cache.Type] {
			return fmt.Errorf("tipo de cache inválido: %s", config.Cache.Type)
		}

		if config.Cache.Type == "redis" && config.Cache.Redis.Address == "" {
			return fmt.Errorf("tipo de cache redis requer um endereço")
		}
	}

	return nil
}
