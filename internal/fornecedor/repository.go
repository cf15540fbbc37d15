package fornecedor

import (
	"github.com/moscardini-carvalho/api-loja/internal/crud"
	"github.com/moscardini-carvalho/api-loja/internal/models"
	"github.com/moscardini-carvalho/api-loja/internal/relacoes"
	"gorm.io/gorm"
)

// Relacoes lista os parâmetros de query que embutem relações nas respostas.
var Relacoes = relacoes.NewResolver("produtos")

type Repository interface {
	Criar(db *gorm.DB, f *models.Fornecedor) error
	ListarTodos(db *gorm.DB, inc relacoes.Inclusao) ([]models.Fornecedor, error)
	BuscarPorID(db *gorm.DB, id uint, inc relacoes.Inclusao) (*models.Fornecedor, error)
	Atualizar(db *gorm.DB, id uint, dados *AtualizarFornecedorRequest) error
	Deletar(db *gorm.DB, id uint) error
	AdicionarProduto(db *gorm.DB, fornecedorID, produtoID uint) error
}

type repositoryImpl struct {
	crud.Repositorio[models.Fornecedor]
}

func NewRepository() Repository {
	return &repositoryImpl{crud.Repositorio[models.Fornecedor]{Ordenacao: "nome"}}
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB, inc relacoes.Inclusao) ([]models.Fornecedor, error) {
	fornecedores, err := r.Repositorio.ListarTodos(db)
	if err != nil {
		return nil, err
	}
	if inc["produtos"] {
		for i := range fornecedores {
			if err := carregarProdutos(db, &fornecedores[i]); err != nil {
				return nil, err
			}
		}
	}
	return fornecedores, nil
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint, inc relacoes.Inclusao) (*models.Fornecedor, error) {
	f, err := r.Repositorio.BuscarPorID(db, id)
	if err != nil {
		return nil, err
	}
	if inc["produtos"] {
		if err := carregarProdutos(db, f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// carregarProdutos materializa a lista reversa produto_ids; não é uma
// associação do GORM, então a carga é feita manualmente por id.
func carregarProdutos(db *gorm.DB, f *models.Fornecedor) error {
	if len(f.ProdutoIDs) == 0 {
		return nil
	}
	return db.Where("id IN ?", f.ProdutoIDs).Find(&f.Produtos).Error
}

// Atualizar aplica somente os campos presentes no corpo da requisição.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, dados *AtualizarFornecedorRequest) error {
	var existente models.Fornecedor
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}
	dados.AplicarEm(&existente)
	return db.Save(&existente).Error
}

// AdicionarProduto inclui o produto na lista reversa do fornecedor. A lista
// é tratada como conjunto: se o produto já consta, nada muda. A remoção
// nunca acontece por aqui; o vínculo reverso só acumula.
func (r *repositoryImpl) AdicionarProduto(db *gorm.DB, fornecedorID, produtoID uint) error {
	var f models.Fornecedor
	if err := db.First(&f, fornecedorID).Error; err != nil {
		return err
	}
	for _, id := range f.ProdutoIDs {
		if id == produtoID {
			return nil
		}
	}
	f.ProdutoIDs = append(f.ProdutoIDs, produtoID)
	return db.Model(&f).Update("produto_ids", f.ProdutoIDs).Error
}
