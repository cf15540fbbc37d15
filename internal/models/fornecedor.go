package models

// Fornecedor mantém em produto_ids a lista reversa dos produtos que fornece,
// espelhando manualmente a referência direta fornecedor_ids de Produto.
type Fornecedor struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Nome        string `gorm:"size:255;not null" json:"nome" validate:"required"`
	CNPJ        string `gorm:"size:18" json:"cnpj"`
	Email       string `gorm:"size:255" json:"email" validate:"omitempty,email"`
	Celular     string `gorm:"size:20" json:"celular"`
	Logradouro  string `gorm:"size:255" json:"logradouro"`
	NumCasa     string `gorm:"size:10" json:"num_casa"`
	Complemento string `gorm:"size:255" json:"complemento"`
	Bairro      string `gorm:"size:100" json:"bairro"`
	Municipio   string `gorm:"size:100" json:"municipio"`
	UF          string `gorm:"size:2" json:"uf"`
	CEP         string `gorm:"size:9" json:"cep"`

	ProdutoIDs []uint `gorm:"type:jsonb;serializer:json" json:"produto_ids"`

	// Carregado manualmente a partir de ProdutoIDs; não é associação do GORM.
	Produtos []Produto `gorm:"-" json:"produtos,omitempty"`
}
