package pedido

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/moscardini-carvalho/api-loja/internal/api"
	"github.com/moscardini-carvalho/api-loja/internal/models"
	"github.com/moscardini-carvalho/api-loja/internal/upload"
	"gorm.io/gorm"
)

// UploadFoto recebe uma única imagem no campo "foto" e a grava inteira no
// banco, vinculada ao pedido da rota.
func (h *Handler) UploadFoto(w http.ResponseWriter, r *http.Request) {
	pedidoID, err := api.IDDaRota(r, "id")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}

	arquivo, err := upload.LerImagem(r, "foto")
	if err != nil {
		if errors.Is(err, upload.ErrSemArquivo) {
			http.Error(w, "Nenhuma imagem enviada.", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// confirma que o pedido existe antes de gravar a foto
	if _, err := h.Repository.BuscarPorID(h.DB, pedidoID, nil); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Pedido não encontrado.", http.StatusNotFound)
			return
		}
		api.ResponderErro(w, err)
		return
	}

	foto := models.FotoPedido{
		PedidoID: pedidoID,
		Nome:     arquivo.Nome,
		MimeType: arquivo.MimeType,
		Imagem:   arquivo.Dados,
	}
	if err := h.Repository.CriarFoto(h.DB, &foto); err != nil {
		api.ResponderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(foto)
}

// ListarFotos retorna os metadados das fotos do pedido, nunca o binário
func (h *Handler) ListarFotos(w http.ResponseWriter, r *http.Request) {
	pedidoID, err := api.IDDaRota(r, "id")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	fotos, err := h.Repository.ListarFotos(h.DB, pedidoID)
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	api.ResponderJSON(w, fotos)
}

// ServirFoto devolve o binário de uma foto com o MIME type armazenado.
// A busca é direta pelo id da foto, sem revalidar o pedido dono.
func (h *Handler) ServirFoto(w http.ResponseWriter, r *http.Request) {
	fotoID, err := api.IDDaRota(r, "fotoId")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	foto, err := h.Repository.BuscarFoto(h.DB, fotoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Foto não encontrada.", http.StatusNotFound)
			return
		}
		api.ResponderErro(w, err)
		return
	}
	w.Header().Set("Content-Type", foto.MimeType)
	w.Write(foto.Imagem)
}

// DeletarFoto remove uma foto pelo seu id
func (h *Handler) DeletarFoto(w http.ResponseWriter, r *http.Request) {
	fotoID, err := api.IDDaRota(r, "fotoId")
	if err != nil {
		api.ResponderErro(w, err)
		return
	}
	if err := h.Repository.DeletarFoto(h.DB, fotoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Foto não encontrada para exclusão.", http.StatusNotFound)
			return
		}
		api.ResponderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
