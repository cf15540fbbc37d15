package produto

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/moscardini-carvalho/api-loja/internal/api"
	"github.com/moscardini-carvalho/api-loja/internal/models"
	"github.com/moscardini-carvalho/api-loja/internal/upload"
	"gorm.io/gorm"
)

// Handler encapsula DB, repository e o sincronizador de fornecedores
type Handler struct {
	DB            *gorm.DB
	Repository    Repository
	Sincronizador *Sincronizador
	validate      *validator.Validate
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:            db,
		Repository:    NewRepository(),
		Sincronizador: NewSincronizador(),
		validate:      validator.New(),
	}
}

// CriarProduto cadastra um novo produto. Aceita JSON ou multipart/form-data
// com até cinco imagens no campo "imagens". Após a criação, o vínculo com
// cada fornecedor listado em fornecedor_ids é propagado para a lista
// reversa do fornecedor.
func (h *Handler) CriarProduto(w http.ResponseWriter, r *http.Request) {
	var p models.Produto
	var imagens []upload.Arquivo

	if ehMultipart(r) {
		if err := preencherDoForm(r, &p); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		arquivos, err := upload.LerImagens(r, "imagens", upload.MaxImagens)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		imagens = arquivos
	} else {
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "payload inválido", http.StatusBadRequest)
			return
		}
	}
	if err := h.validate.Struct(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repository.Criar(h.DB, &p); err != nil {
		api.ResponderErro(w, err)
		return
	}
	for _, a := range imagens {
		img := models.ImagemProduto{
			ProdutoID: p.ID,
			Nome:      a.Nome,
			MimeType:  a.MimeType,
			Imagem:    a.Dados,
		}
		if err := h.Repository.CriarImagem(h.DB, &img); err != nil {
			api.ResponderErro(w, err)
			return
		}
	}
	if err := h.Sincronizador.Sincronizar(h.DB, p.ID, p.FornecedorIDs); err != nil {
		api.ResponderErro(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// ListarProdutos retorna todos os produtos em ordem de nome
func (h *Handler) ListarProdutos(w http.ResponseWriter, r *http.Request) {
	inc := Relacoes.Inclusoes(r.URL.Query())
	produtos, err := h.Repository.ListarTodos(h.DB, inc)
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	api.ResponderJSON(w, produtos)
}

// BuscarPorID retorna um produto pelo ID
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

// AtualizarProduto altera somente os campos presentes na requisição. Quando
// fornecedor_ids vem no corpo, a lista reversa de cada fornecedor listado é
// atualizada depois do produto; as duas escritas não são transacionais.
func (h *Handler) AtualizarProduto(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDDaRota(r, "id")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}

	var dados *AtualizarProdutoRequest
	var imagens []upload.Arquivo

	if ehMultipart(r) {
		if dados, err = atualizarDoForm(r); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if imagens, err = upload.LerImagens(r, "imagens", upload.MaxImagens); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		dados = &AtualizarProdutoRequest{}
		if err := json.NewDecoder(r.Body).Decode(dados); err != nil {
			http.Error(w, "payload inválido", http.StatusBadRequest)
			return
		}
	}

	if err := h.Repository.Atualizar(h.DB, id, dados); err != nil {
		api.ResponderErro(w, err)
		return
	}
	for _, a := range imagens {
		img := models.ImagemProduto{
			ProdutoID: id,
			Nome:      a.Nome,
			MimeType:  a.MimeType,
			Imagem:    a.Dados,
		}
		if err := h.Repository.CriarImagem(h.DB, &img); err != nil {
			api.ResponderErro(w, err)
			return
		}
	}
	if dados.FornecedorIDs != nil {
		if err := h.Sincronizador.Sincronizar(h.DB, id, *dados.FornecedorIDs); err != nil {
			api.ResponderErro(w, err)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeletarProduto remove as imagens do produto e depois o próprio produto
func (h *Handler) DeletarProduto(w http.ResponseWriter, r *http.Request) {
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

// ListarImagens retorna os metadados das imagens de um produto, nunca o
// binário.
func (h *Handler) ListarImagens(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDDaRota(r, "id")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	imagens, err := h.Repository.ListarImagens(h.DB, id)
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	api.ResponderJSON(w, imagens)
}

// ServirImagem devolve o binário de uma imagem com o MIME type armazenado.
// A busca é direta pelo id da imagem, sem revalidar o produto dono.
func (h *Handler) ServirImagem(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDDaRota(r, "id")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	img, err := h.Repository.BuscarImagem(h.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Imagem não encontrada.", http.StatusNotFound)
			return
		}
		api.ResponderErro(w, err)
		return
	}
	w.Header().Set("Content-Type", img.MimeType)
	w.Write(img.Imagem)
}

// DeletarImagem remove uma imagem pelo seu id
func (h *Handler) DeletarImagem(w http.ResponseWriter, r *http.Request) {
	id, err := api.IDDaRota(r, "id")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	if err := h.Repository.DeletarImagem(h.DB, id); err != nil {
		api.ResponderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
