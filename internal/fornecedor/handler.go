package fornecedor

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

// CriarFornecedor cadastra um novo fornecedor
func (h *Handler) CriarFornecedor(w http.ResponseWriter, r *http.Request) {
	var f models.Fornecedor
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&f); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repository.Criar(h.DB, &f); err != nil {
		api.ResponderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// ListarFornecedores retorna todos os fornecedores em ordem de nome
func (h *Handler) ListarFornecedores(w http.ResponseWriter, r *http.Request) {
	inc := Relacoes.Inclusoes(r.URL.Query())
	fornecedores, err := h.Repository.ListarTodos(h.DB, inc)
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	api.ResponderJSON(w, fornecedores)
}

// BuscarPorID retorna um fornecedor pelo ID
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

// AtualizarFornecedor altera somente os campos presentes no corpo
func (h *Handler) AtualizarFornecedor(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDDaRota(r, "id")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	var dados AtualizarFornecedorRequest
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

// DeletarFornecedor remove um fornecedor
func (h *Handler) DeletarFornecedor(w http.ResponseWriter, r *http.Request) {
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
