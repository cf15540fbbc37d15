package categoria

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

// CriarCategoria cadastra uma nova categoria
func (h *Handler) CriarCategoria(w http.ResponseWriter, r *http.Request) {
	var c models.Categoria
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

// ListarCategorias retorna todas as categorias em ordem de descrição
func (h *Handler) ListarCategorias(w http.ResponseWriter, r *http.Request) {
	inc := Relacoes.Inclusoes(r.URL.Query())
	categorias, err := h.Repository.ListarTodos(h.DB, inc)
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	api.ResponderJSON(w, categorias)
}

// BuscarPorID retorna uma categoria pelo ID
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

// AtualizarCategoria altera somente os campos presentes no corpo
func (h *Handler) AtualizarCategoria(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDDaRota(r, "id")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	var dados AtualizarCategoriaRequest
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

// DeletarCategoria remove uma categoria
func (h *Handler) DeletarCategoria(w http.ResponseWriter, r *http.Request) {
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
