package cliente

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

// CriarCliente cadastra um novo cliente. Datas sem horário em
// data_nascimento são normalizadas para meia-noite UTC pelo tipo Data.
func (h *Handler) CriarCliente(w http.ResponseWriter, r *http.Request) {
	var c models.Cliente
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&c); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repository.Criar(h.DB, &c); err != nil {
		api.ResponderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// ListarClientes retorna todos os clientes em ordem de nome
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	inc := Relacoes.Inclusoes(r.URL.Query())
	clientes, err := h.Repository.ListarTodos(h.DB, inc)
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	api.ResponderJSON(w, clientes)
}

// BuscarPorID retorna um cliente pelo ID
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

// AtualizarCliente altera somente os campos presentes no corpo
func (h *Handler) AtualizarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDDaRota(r, "id")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	var dados AtualizarClienteRequest
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

// DeletarCliente exclui os pedidos do cliente e depois o próprio cliente
func (h *Handler) DeletarCliente(w http.ResponseWriter, r *http.Request) {
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
