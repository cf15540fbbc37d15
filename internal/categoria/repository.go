package categoria

import (
	"github.com/moscardini-carvalho/api-loja/internal/crud"
	"github.com/moscardini-carvalho/api-loja/internal/models"
	"github.com/moscardini-carvalho/api-loja/internal/relacoes"
	"gorm.io/gorm"
)

// Relacoes lista os parâmetros de query que embutem relações nas respostas.
var Relacoes = relacoes.NewResolver("produtos")

type Repository interface {
	Criar(db *gorm.DB, c *models.Categoria) error
	ListarTodos(db *gorm.DB, inc relacoes.Inclusao) ([]models.Categoria, error)
	BuscarPorID(db *gorm.DB, id uint, inc relacoes.Inclusao) (*models.Categoria, error)
	Atualizar(db *gorm.DB, id uint, dados *AtualizarCategoriaRequest) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct {
	crud.Repositorio[models.Categoria]
}

func NewRepository() Repository {
	return &repositoryImpl{crud.Repositorio[models.Categoria]{Ordenacao: "descricao"}}
}

func preloads(inc relacoes.Inclusao) []string {
	var ps []string
	if inc["produtos"] {
		ps = append(ps, "Produtos")
	}
	return ps
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB, inc relacoes.Inclusao) ([]models.Categoria, error) {
	return r.Repositorio.ListarTodos(db, preloads(inc)...)
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint, inc relacoes.Inclusao) (*models.Categoria, error) {
	return r.Repositorio.BuscarPorID(db, id, preloads(inc)...)
}

// Atualizar aplica somente os campos presentes no corpo da requisição.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, dados *AtualizarCategoriaRequest) error {
	var existente models.Categoria
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	dados.AplicarEm(&existente)
	return db.Save(&existente).Error
}
