package produto

import "github.com/moscardini-carvalho/api-loja/internal/models"

// AtualizarProdutoRequest carrega apenas os campos presentes no corpo da
// requisição; campos ausentes não são alterados. FornecedorIDs nulo
// significa "nenhuma alteração pedida" e não dispara a sincronização.
type AtualizarProdutoRequest struct {
	Nome          *string  `json:"nome"`
	Marca         *string  `json:"marca"`
	Detalhes      *string  `json:"detalhes"`
	Quantidade    *float64 `json:"quantidade"`
	UnidadeMedida *string  `json:"unidade_medida"`
	PrecoUnitario *float64 `json:"preco_unitario"`
	QtdEstoque    *float64 `json:"qtd_estoque"`
	CategoriaID   *uint    `json:"categoria_id"`
	FornecedorIDs *[]uint  `json:"fornecedor_ids"`
}

func (req *AtualizarProdutoRequest) AplicarEm(p *models.Produto) {
	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.Marca != nil {
		p.Marca = *req.Marca
	}
	if req.Detalhes != nil {
		p.Detalhes = *req.Detalhes
	}
	if req.Quantidade != nil {
		p.Quantidade = *req.Quantidade
	}
	if req.UnidadeMedida != nil {
		p.UnidadeMedida = *req.UnidadeMedida
	}
	if req.PrecoUnitario != nil {
		p.PrecoUnitario = *req.PrecoUnitario
	}
	if req.QtdEstoque != nil {
		p.QtdEstoque = *req.QtdEstoque
	}
	if req.CategoriaID != nil {
		p.CategoriaID = *req.CategoriaID
	}
	if req.FornecedorIDs != nil {
		p.FornecedorIDs = *req.FornecedorIDs
	}
}
