package pedido

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/moscardini-carvalho/api-loja/internal/api"
	"github.com/moscardini-carvalho/api-loja/internal/models"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	validate   *validator.Validate
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		validate:   validator.New(),
	}
}

// CriarPedido cadastra um novo pedido
func (h *Handler) CriarPedido(w http.ResponseWriter, r *http.Request) {
	var p models.Pedido
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repository.Criar(h.DB, &p); err != nil {
		api.ResponderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// ListarPedidos retorna todos os pedidos em ordem de número
func (h *Handler) ListarPedidos(w http.ResponseWriter, r *http.Request) {
	inc := Relacoes.Inclusoes(r.URL.Query())
	pedidos, err := h.Repository.ListarTodos(h.DB, inc)
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	api.ResponderJSON(w, pedidos)
}

// BuscarPorID retorna um pedido pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDDaRota(r, "id")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	inc := Relacoes.Inclusoes(r.URL.Query())
	obj, err := h.Repository.BuscarPorID(h.DB, id, inc)
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	api.ResponderJSON(w, obj)
}

// AtualizarPedido altera somente os campos presentes no corpo
func (h *Handler) AtualizarPedido(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDDaRota(r, "id")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	var dados AtualizarPedidoRequest
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, id, &dados); err != nil {
		api.ResponderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeletarPedido remove os itens e fotos do pedido e depois o próprio pedido
func (h *Handler) DeletarPedido(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDDaRota(r, "id")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	if err := h.Repository.Deletar(h.DB, id); err != nil {
		api.ResponderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
