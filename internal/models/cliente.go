package models

// Cliente representa um cliente da loja.
type Cliente struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Nome           string `gorm:"size:255;not null" json:"nome" validate:"required"`
	CPF            string `gorm:"size:14" json:"cpf"`
	DataNascimento Data   `gorm:"type:timestamptz" json:"data_nascimento"`
	Email          string `gorm:"size:255" json:"email" validate:"omitempty,email"`
	Celular        string `gorm:"size:20" json:"celular"`
	Logradouro     string `gorm:"size:255" json:"logradouro"`
	NumCasa        string `gorm:"size:10" json:"num_casa"`
	Complemento    string `gorm:"size:255" json:"complemento"`
	Bairro         string `gorm:"size:100" json:"bairro"`
	Municipio      string `gorm:"size:100" json:"municipio"`
	UF             string `gorm:"size:2" json:"uf"`
	CEP            string `gorm:"size:9" json:"cep"`

	Pedidos []Pedido `gorm:"foreignKey:ClienteID" json:"pedidos,omitempty"`
}
