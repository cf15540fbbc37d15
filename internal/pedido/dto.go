package pedido

import (
	"time"

	"github.com/moscardini-carvalho/api-loja/internal/models"
)

// AtualizarPedidoRequest carrega apenas os campos presentes no corpo da
// requisição; campos ausentes não são alterados.
type AtualizarPedidoRequest struct {
	NumPedido *int       `json:"num_pedido"`
	DataHora  *time.Time `json:"data_hora"`
	ClienteID *uint      `json:"cliente_id"`
}

func (req *AtualizarPedidoRequest) AplicarEm(p *models.Pedido) {
	if req.NumPedido != nil {
		p.NumPedido = *req.NumPedido
	}
	if req.DataHora != nil {
		p.DataHora = *req.DataHora
	}
	if req.ClienteID != nil {
		p.ClienteID = *req.ClienteID
	}
}

// AtualizarItemRequest segue a mesma regra de atualização parcial dos
// demais; o pedido dono do item nunca muda por aqui.
type AtualizarItemRequest struct {
	NumItem    *int     `json:"num_item"`
	Quantidade *float64 `json:"quantidade"`
	ProdutoID  *uint    `json:"produto_id"`
}

func (req *AtualizarItemRequest) AplicarEm(i *models.ItemPedido) {
	if req.NumItem != nil {
		i.NumItem = *req.NumItem
	}
	if req.Quantidade != nil {
		i.Quantidade = *req.Quantidade
	}
	if req.ProdutoID != nil {
		i.ProdutoID = *req.ProdutoID
	}
}
