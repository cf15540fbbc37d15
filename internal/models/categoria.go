package models

// Categoria classifica os produtos da loja.
type Categoria struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Descricao string `gorm:"size:255;not null" json:"descricao" validate:"required"`

	Produtos []Produto `gorm:"foreignKey:CategoriaID" json:"produtos,omitempty"`
}
