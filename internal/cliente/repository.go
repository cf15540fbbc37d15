package cliente

import (
	"github.com/moscardini-carvalho/api-loja/internal/crud"
	"github.com/moscardini-carvalho/api-loja/internal/models"
	"github.com/moscardini-carvalho/api-loja/internal/relacoes"
	"gorm.io/gorm"
)

// Relacoes lista os parâmetros de query que embutem relações nas respostas.
var Relacoes = relacoes.NewResolver("pedidos")

type Repository interface {
	Criar(db *gorm.DB, c *models.Cliente) error
	ListarTodos(db *gorm.DB, inc relacoes.Inclusao) ([]models.Cliente, error)
	BuscarPorID(db *gorm.DB, id uint, inc relacoes.Inclusao) (*models.Cliente, error)
	Atualizar(db *gorm.DB, id uint, dados *AtualizarClienteRequest) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct {
	crud.Repositorio[models.Cliente]
}

func NewRepository() Repository {
	return &repositoryImpl{crud.Repositorio[models.Cliente]{Ordenacao: "nome"}}
}

func preloads(inc relacoes.Inclusao) []string {
	var ps []string
	if inc["pedidos"] {
		ps = append(ps, "Pedidos")
	}
	return ps
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB, inc relacoes.Inclusao) ([]models.Cliente, error) {
	return r.Repositorio.ListarTodos(db, preloads(inc)...)
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint, inc relacoes.Inclusao) (*models.Cliente, error) {
	return r.Repositorio.BuscarPorID(db, id, preloads(inc)...)
}

// Atualizar aplica somente os campos presentes no corpo da requisição.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, dados *AtualizarClienteRequest) error {
	var existente models.Cliente
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	dados.AplicarEm(&existente)
	return db.Save(&existente).Error
}

// Deletar remove em cascata: primeiro os itens e fotos dos pedidos do
// cliente, depois os pedidos e por fim o próprio cliente.
func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	pedidosDoCliente := db.Model(&models.Pedido{}).Select("id").Where("cliente_id = ?", id)

	if err := db.Where("pedido_id IN (?)", pedidosDoCliente).Delete(&models.ItemPedido{}).Error; err != nil {
		return err
	}
	if err := db.Where("pedido_id IN (?)", pedidosDoCliente).Delete(&models.FotoPedido{}).Error; err != nil {
		return err
	}
	if err := db.Where("cliente_id = ?", id).Delete(&models.Pedido{}).Error; err != nil {
		return err
	}
	return r.Repositorio.Deletar(db, id)
}
