package produto

import (
	"github.com/moscardini-carvalho/api-loja/internal/crud"
	"github.com/moscardini-carvalho/api-loja/internal/models"
	"github.com/moscardini-carvalho/api-loja/internal/relacoes"
	"gorm.io/gorm"
)

// Relacoes lista os parâmetros de query que embutem relações nas respostas.
var Relacoes = relacoes.NewResolver("categoria", "fornecedores", "imagens")

type Repository interface {
	Criar(db *gorm.DB, p *models.Produto) error
	ListarTodos(db *gorm.DB, inc relacoes.Inclusao) ([]models.Produto, error)
	BuscarPorID(db *gorm.DB, id uint, inc relacoes.Inclusao) (*models.Produto, error)
	Atualizar(db *gorm.DB, id uint, dados *AtualizarProdutoRequest) error
	Deletar(db *gorm.DB, id uint) error

	CriarImagem(db *gorm.DB, img *models.ImagemProduto) error
	ListarImagens(db *gorm.DB, produtoID uint) ([]models.ImagemProduto, error)
	BuscarImagem(db *gorm.DB, id uint) (*models.ImagemProduto, error)
	DeletarImagem(db *gorm.DB, id uint) error
}

type repositoryImpl struct {
	crud.Repositorio[models.Produto]
}

func NewRepository() Repository {
	return &repositoryImpl{crud.Repositorio[models.Produto]{Ordenacao: "nome"}}
}

func preloads(inc relacoes.Inclusao) []string {
	var ps []string
	if inc["categoria"] {
		ps = append(ps, "Categoria")
	}
	if inc["imagens"] {
		ps = append(ps, "Imagens")
	}
	return ps
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB, inc relacoes.Inclusao) ([]models.Produto, error) {
	produtos, err := r.Repositorio.ListarTodos(db, preloads(inc)...)
	if err != nil {
		return nil, err
	}
	if inc["fornecedores"] {
		for i := range produtos {
			if err := carregarFornecedores(db, &produtos[i]); err != nil {
				return nil, err
			}
		}
	}
	return produtos, nil
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint, inc relacoes.Inclusao) (*models.Produto, error) {
	p, err := r.Repositorio.BuscarPorID(db, id, preloads(inc)...)
	if err != nil {
		return nil, err
	}
	if inc["fornecedores"] {
		if err := carregarFornecedores(db, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// carregarFornecedores materializa a lista fornecedor_ids; não é uma
// associação do GORM, então a carga é feita manualmente por id.
func carregarFornecedores(db *gorm.DB, p *models.Produto) error {
	if len(p.FornecedorIDs) == 0 {
		return nil
	}
	return db.Where("id IN ?", p.FornecedorIDs).Find(&p.Fornecedores).Error
}

// Atualizar aplica somente os campos presentes no corpo da requisição.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, dados *AtualizarProdutoRequest) error {
	var existente models.Produto
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	dados.AplicarEm(&existente)
	return db.Save(&existente).Error
}

// Deletar remove as imagens do produto antes do próprio produto.
func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	if err := db.Where("produto_id = ?", id).Delete(&models.ImagemProduto{}).Error; err != nil {
		return err
	}
	return r.Repositorio.Deletar(db, id)
}

func (r *repositoryImpl) CriarImagem(db *gorm.DB, img *models.ImagemProduto) error {
	return db.Create(img).Error
}

func (r *repositoryImpl) ListarImagens(db *gorm.DB, produtoID uint) ([]models.ImagemProduto, error) {
	var imagens []models.ImagemProduto
	err := db.Where("produto_id = ?", produtoID).Find(&imagens).Error
	return imagens, err
}

func (r *repositoryImpl) BuscarImagem(db *gorm.DB, id uint) (*models.ImagemProduto, error) {
	var img models.ImagemProduto
	if err := db.First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *repositoryImpl) DeletarImagem(db *gorm.DB, id uint) error {
	res := db.Delete(&models.ImagemProduto{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
