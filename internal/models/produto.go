package models

import "time"

// Produto representa um item do catálogo da loja.
type Produto struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Nome          string  `gorm:"size:255;not null" json:"nome" validate:"required"`
	Marca         string  `gorm:"size:100" json:"marca"`
	Detalhes      string  `gorm:"size:500" json:"detalhes"`
	Quantidade    float64 `json:"quantidade"`
	UnidadeMedida string  `gorm:"size:20" json:"unidade_medida"`
	PrecoUnitario float64 `json:"preco_unitario"`
	QtdEstoque    float64 `json:"qtd_estoque"`

	CategoriaID uint       `gorm:"index" json:"categoria_id"`
	Categoria   *Categoria `gorm:"foreignKey:CategoriaID" json:"categoria,omitempty"`

	FornecedorIDs []uint `gorm:"type:jsonb;serializer:json" json:"fornecedor_ids"`

	// Carregado manualmente a partir de FornecedorIDs; não é associação do GORM.
	Fornecedores []Fornecedor `gorm:"-" json:"fornecedores,omitempty"`

	Imagens []ImagemProduto `gorm:"foreignKey:ProdutoID" json:"imagens,omitempty"`
}

// ImagemProduto guarda o binário da imagem junto com seus metadados,
// no mesmo documento. O binário nunca aparece no JSON de listagem.
type ImagemProduto struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProdutoID uint      `gorm:"not null;index" json:"produto_id"`
	Nome      string    `gorm:"size:255" json:"nome"`
	MimeType  string    `gorm:"size:100" json:"mime_type"`
	Imagem    []byte    `gorm:"type:bytea" json:"-"`
	CriadoEm  time.Time `gorm:"autoCreateTime" json:"criado_em"`
}
