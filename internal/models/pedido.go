package models

import "time"

// Pedido representa um pedido feito por um cliente.
type Pedido struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	NumPedido int       `gorm:"not null;index" json:"num_pedido"`
	DataHora  time.Time `json:"data_hora"`

	ClienteID uint     `gorm:"not null;index" json:"cliente_id" validate:"required"`
	Cliente   *Cliente `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`

	Itens []ItemPedido `gorm:"foreignKey:PedidoID" json:"itens,omitempty"`
	Fotos []FotoPedido `gorm:"foreignKey:PedidoID" json:"fotos,omitempty"`
}

// ItemPedido pertence a exatamente um pedido; a chave de busca é composta
// (id do item + id do pedido declarado na rota).
type ItemPedido struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	NumItem    int     `gorm:"not null;index" json:"num_item"`
	Quantidade float64 `json:"quantidade"`

	PedidoID uint `gorm:"not null;index" json:"pedido_id"`

	ProdutoID uint     `gorm:"index" json:"produto_id"`
	Produto   *Produto `gorm:"foreignKey:ProdutoID" json:"produto,omitempty"`
}

// FotoPedido guarda o binário da foto junto com seus metadados.
type FotoPedido struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	PedidoID uint      `gorm:"not null;index" json:"pedido_id"`
	Nome     string    `gorm:"size:255" json:"nome"`
	MimeType string    `gorm:"size:100" json:"mime_type"`
	Imagem   []byte    `gorm:"type:bytea" json:"-"`
	CriadoEm time.Time `gorm:"autoCreateTime" json:"criado_em"`
}
