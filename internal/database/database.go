package database

import (
	"fmt"

	"github.com/moscardini-carvalho/api-loja/internal/config"
	"github.com/moscardini-carvalho/api-loja/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect abre a conexão com o Postgres usando as credenciais do ambiente.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var sslMode string
	if cfg.DBSSLModeDisable {
		sslMode = " sslmode=disable"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		cfg.DBHost, cfg.DBUsername, cfg.DBPassword, cfg.DBName, cfg.DBPort, sslMode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}

// Migrate cria/atualiza as tabelas de todas as entidades.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Categoria{},
		&models.Cliente{},
		&models.Fornecedor{},
		&models.Produto{},
		&models.ImagemProduto{},
		&models.Pedido{},
		&models.ItemPedido{},
		&models.FotoPedido{},
	)
}
