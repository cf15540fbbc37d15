package pedido

import (
	"github.com/moscardini-carvalho/api-loja/internal/crud"
	"github.com/moscardini-carvalho/api-loja/internal/models"
	"github.com/moscardini-carvalho/api-loja/internal/relacoes"
	"gorm.io/gorm"
)

// Relacoes e RelacoesItens listam os parâmetros de query que embutem
// relações nas respostas de pedidos e de itens, respectivamente.
var (
	Relacoes      = relacoes.NewResolver("cliente", "itens", "fotos")
	RelacoesItens = relacoes.NewResolver("produto")
)

type Repository interface {
	Criar(db *gorm.DB, p *models.Pedido) error
	ListarTodos(db *gorm.DB, inc relacoes.Inclusao) ([]models.Pedido, error)
	BuscarPorID(db *gorm.DB, id uint, inc relacoes.Inclusao) (*models.Pedido, error)
	Atualizar(db *gorm.DB, id uint, dados *AtualizarPedidoRequest) error
	Deletar(db *gorm.DB, id uint) error

	CriarItem(db *gorm.DB, item *models.ItemPedido) error
	ListarItens(db *gorm.DB, pedidoID uint, inc relacoes.Inclusao) ([]models.ItemPedido, error)
	BuscarItem(db *gorm.DB, itemID, pedidoID uint) (*models.ItemPedido, error)
	AtualizarItem(db *gorm.DB, itemID, pedidoID uint, dados *AtualizarItemRequest) error
	DeletarItem(db *gorm.DB, itemID, pedidoID uint) error

	CriarFoto(db *gorm.DB, foto *models.FotoPedido) error
	ListarFotos(db *gorm.DB, pedidoID uint) ([]models.FotoPedido, error)
	BuscarFoto(db *gorm.DB, fotoID uint) (*models.FotoPedido, error)
	DeletarFoto(db *gorm.DB, fotoID uint) error
}

type repositoryImpl struct {
	crud.Repositorio[models.Pedido]
}

func NewRepository() Repository {
	return &repositoryImpl{crud.Repositorio[models.Pedido]{Ordenacao: "num_pedido"}}
}

func aplicarPreloads(db *gorm.DB, inc relacoes.Inclusao) *gorm.DB {
	tx := db
	if inc["cliente"] {
		tx = tx.Preload("Cliente")
	}
	if inc["itens"] {
		tx = tx.Preload("Itens", func(db *gorm.DB) *gorm.DB {
			return db.Order("num_item asc")
		})
	}
	if inc["fotos"] {
		tx = tx.Preload("Fotos")
	}
	return tx
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB, inc relacoes.Inclusao) ([]models.Pedido, error) {
	var pedidos []models.Pedido
	err := aplicarPreloads(db, inc).Order("num_pedido asc").Find(&pedidos).Error
	return pedidos, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint, inc relacoes.Inclusao) (*models.Pedido, error) {
	var p models.Pedido
	if err := aplicarPreloads(db, inc).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Atualizar aplica somente os campos presentes no corpo da requisição.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, dados *AtualizarPedidoRequest) error {
	var existente models.Pedido
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	dados.AplicarEm(&existente)
	return db.Save(&existente).Error
}

// Deletar remove os itens e fotos do pedido antes do próprio pedido.
func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	if err := db.Where("pedido_id = ?", id).Delete(&models.ItemPedido{}).Error; err != nil {
		return err
	}
	if err := db.Where("pedido_id = ?", id).Delete(&models.FotoPedido{}).Error; err != nil {
		return err
	}
	return r.Repositorio.Deletar(db, id)
}

func (r *repositoryImpl) CriarItem(db *gorm.DB, item *models.ItemPedido) error {
	return db.Create(item).Error
}

func (r *repositoryImpl) ListarItens(db *gorm.DB, pedidoID uint, inc relacoes.Inclusao) ([]models.ItemPedido, error) {
	tx := db
	if inc["produto"] {
		tx = tx.Preload("Produto")
	}
	var itens []models.ItemPedido
	err := tx.Where("pedido_id = ?", pedidoID).Order("num_item asc").Find(&itens).Error
	return itens, err
}

// BuscarItem usa a chave composta: um item só é encontrado no contexto do
// pedido declarado na rota, nunca apenas pelo próprio id.
func (r *repositoryImpl) BuscarItem(db *gorm.DB, itemID, pedidoID uint) (*models.ItemPedido, error) {
	var item models.ItemPedido
	if err := db.Where("id = ? AND pedido_id = ?", itemID, pedidoID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repositoryImpl) AtualizarItem(db *gorm.DB, itemID, pedidoID uint, dados *AtualizarItemRequest) error {
	item, err := r.BuscarItem(db, itemID, pedidoID)
	if err != nil {
		return err
	}
	dados.AplicarEm(item)
	return db.Save(item).Error
}

func (r *repositoryImpl) DeletarItem(db *gorm.DB, itemID, pedidoID uint) error {
	res := db.Where("id = ? AND pedido_id = ?", itemID, pedidoID).Delete(&models.ItemPedido{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) CriarFoto(db *gorm.DB, foto *models.FotoPedido) error {
	return db.Create(foto).Error
}

func (r *repositoryImpl) ListarFotos(db *gorm.DB, pedidoID uint) ([]models.FotoPedido, error) {
	var fotos []models.FotoPedido
	err := db.Where("pedido_id = ?", pedidoID).Find(&fotos).Error
	return fotos, err
}

// BuscarFoto é direta pelo id, sem revalidar o pedido dono.
func (r *repositoryImpl) BuscarFoto(db *gorm.DB, fotoID uint) (*models.FotoPedido, error) {
	var foto models.FotoPedido
	if err := db.First(&foto, fotoID).Error; err != nil {
		return nil, err
	}
	return &foto, nil
}

func (r *repositoryImpl) DeletarFoto(db *gorm.DB, fotoID uint) error {
	res := db.Delete(&models.FotoPedido{}, fotoID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
