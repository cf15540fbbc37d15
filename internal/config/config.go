package config

import (
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config reúne as variáveis de ambiente do serviço.
type Config struct {
	HTTPPort string `env:"HTTP_PORT,default=8080"`

	DBHost           string `env:"DB_HOST,default=localhost"`
	DBPort           uint   `env:"DB_PORT,default=5432"`
	DBName           string `env:"DB_NAME,default=loja"`
	DBUsername       string `env:"DB_USERNAME,default=postgres"`
	DBPassword       string `env:"DB_PASSWORD,default=postgres"`
	DBSSLModeDisable bool   `env:"DB_SSL_MODE_DISABLE,default=true"`
}

// Load carrega o .env, se existir, e decodifica as variáveis de ambiente.
// Variáveis já exportadas têm precedência sobre o arquivo.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
