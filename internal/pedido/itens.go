package pedido

import (
	"encoding/json"
	"net/http"

	"github.com/moscardini-carvalho/api-loja/internal/api"
	"github.com/moscardini-carvalho/api-loja/internal/models"
	"gorm.io/gorm"
)

// Itens de pedido sempre são endereçados no contexto do pedido declarado na
// rota: toda busca, atualização e exclusão usa a chave composta
// (id do item, id do pedido).

// CriarItem adiciona um item ao pedido da rota
func (h *Handler) CriarItem(w http.ResponseWriter, r *http.Request) {
	pedidoID, err := api.IDDaRota(r, "id")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	var item models.ItemPedido
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	item.PedidoID = pedidoID

	if err := h.Repository.CriarItem(h.DB, &item); err != nil {
		api.ResponderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// ListarItens retorna os itens do pedido em ordem de num_item
func (h *Handler) ListarItens(w http.ResponseWriter, r *http.Request) {
	pedidoID, err := api.IDDaRota(r, "id")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	inc := RelacoesItens.Inclusoes(r.URL.Query())
	itens, err := h.Repository.ListarItens(h.DB, pedidoID, inc)
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	api.ResponderJSON(w, itens)
}

// BuscarItem retorna um item pela chave composta (item, pedido)
func (h *Handler) BuscarItem(w http.ResponseWriter, r *http.Request) {
	pedidoID, err1 := api.IDDaRota(r, "id")
	itemID, err2 := api.IDDaRota(r, "itemId")
	if err1 != nil || err2 != nil {
		api.ResponderErro(w, gorm.ErrRecordNotFound)
		return
	}
	item, err := h.Repository.BuscarItem(h.DB, itemID, pedidoID)
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	api.ResponderJSON(w, item)
}

// AtualizarItem altera somente os campos presentes no corpo
func (h *Handler) AtualizarItem(w http.ResponseWriter, r *http.Request) {
	pedidoID, err1 := api.IDDaRota(r, "id")
	itemID, err2 := api.IDDaRota(r, "itemId")
	if err1 != nil || err2 != nil {
		api.ResponderErro(w, gorm.ErrRecordNotFound)
		return
	}
	var dados AtualizarItemRequest
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.AtualizarItem(h.DB, itemID, pedidoID, &dados); err != nil {
		api.ResponderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeletarItem remove um item pela chave composta (item, pedido)
func (h *Handler) DeletarItem(w http.ResponseWriter, r *http.Request) {
	pedidoID, err1 := api.IDDaRota(r, "id")
	itemID, err2 := api.IDDaRota(r, "itemId")
	if err1 != nil || err2 != nil {
		api.ResponderErro(w, gorm.ErrRecordNotFound)
		return
	}
	if err := h.Repository.DeletarItem(h.DB, itemID, pedidoID); err != nil {
		api.ResponderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
