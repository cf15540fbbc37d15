package pedido

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/moscardini-carvalho/api-loja/internal/models"
	"github.com/moscardini-carvalho/api-loja/internal/relacoes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRepo implementa Repository em memória para testar os handlers sem
// banco, preservando a busca de itens pela chave composta.
type fakeRepo struct {
	pedidos map[uint]models.Pedido
	itens   map[uint]models.ItemPedido
	fotos   map[uint]models.FotoPedido
	proxID  uint
}

func novoFakeRepo() *fakeRepo {
	return &fakeRepo{
		pedidos: map[uint]models.Pedido{},
		itens:   map[uint]models.ItemPedido{},
		fotos:   map[uint]models.FotoPedido{},
	}
}

func (f *fakeRepo) Criar(db *gorm.DB, p *models.Pedido) error {
	f.proxID++
	p.ID = f.proxID
	f.pedidos[p.ID] = *p
	return nil
}

func (f *fakeRepo) ListarTodos(db *gorm.DB, inc relacoes.Inclusao) ([]models.Pedido, error) {
	var todos []models.Pedido
	for _, p := range f.pedidos {
		todos = append(todos, p)
	}
	return todos, nil
}

func (f *fakeRepo) BuscarPorID(db *gorm.DB, id uint, inc relacoes.Inclusao) (*models.Pedido, error) {
	p, ok := f.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakeRepo) Atualizar(db *gorm.DB, id uint, dados *AtualizarPedidoRequest) error {
	p, ok := f.pedidos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	dados.AplicarEm(&p)
	f.pedidos[id] = p
	return nil
}

func (f *fakeRepo) Deletar(db *gorm.DB, id uint) error {
	if _, ok := f.pedidos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.pedidos, id)
	return nil
}

func (f *fakeRepo) CriarItem(db *gorm.DB, item *models.ItemPedido) error {
	f.proxID++
	item.ID = f.proxID
	f.itens[item.ID] = *item
	return nil
}

func (f *fakeRepo) ListarItens(db *gorm.DB, pedidoID uint, inc relacoes.Inclusao) ([]models.ItemPedido, error) {
	var doPedido []models.ItemPedido
	for _, item := range f.itens {
		if item.PedidoID == pedidoID {
			doPedido = append(doPedido, item)
		}
	}
	return doPedido, nil
}

func (f *fakeRepo) BuscarItem(db *gorm.DB, itemID, pedidoID uint) (*models.ItemPedido, error) {
	item, ok := f.itens[itemID]
	if !ok || item.PedidoID != pedidoID {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (f *fakeRepo) AtualizarItem(db *gorm.DB, itemID, pedidoID uint, dados *AtualizarItemRequest) error {
	item, err := f.BuscarItem(db, itemID, pedidoID)
	if err != nil {
		return err
	}
	dados.AplicarEm(item)
	f.itens[itemID] = *item
	return nil
}

func (f *fakeRepo) DeletarItem(db *gorm.DB, itemID, pedidoID uint) error {
	if _, err := f.BuscarItem(db, itemID, pedidoID); err != nil {
		return err
	}
	delete(f.itens, itemID)
	return nil
}

func (f *fakeRepo) CriarFoto(db *gorm.DB, foto *models.FotoPedido) error {
	f.proxID++
	foto.ID = f.proxID
	f.fotos[foto.ID] = *foto
	return nil
}

func (f *fakeRepo) ListarFotos(db *gorm.DB, pedidoID uint) ([]models.FotoPedido, error) {
	var doPedido []models.FotoPedido
	for _, foto := range f.fotos {
		if foto.PedidoID == pedidoID {
			doPedido = append(doPedido, foto)
		}
	}
	return doPedido, nil
}

func (f *fakeRepo) BuscarFoto(db *gorm.DB, fotoID uint) (*models.FotoPedido, error) {
	foto, ok := f.fotos[fotoID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &foto, nil
}

func (f *fakeRepo) DeletarFoto(db *gorm.DB, fotoID uint) error {
	if _, ok := f.fotos[fotoID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.fotos, fotoID)
	return nil
}

func novoRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/pedidos", h.CriarPedido).Methods("POST")
	r.HandleFunc("/pedidos/{id:[0-9]+}", h.BuscarPorID).Methods("GET")
	r.HandleFunc("/pedidos/{id:[0-9]+}", h.DeletarPedido).Methods("DELETE")
	r.HandleFunc("/pedidos/{id:[0-9]+}/itens", h.CriarItem).Methods("POST")
	r.HandleFunc("/pedidos/{id:[0-9]+}/itens/{itemId}", h.BuscarItem).Methods("GET")
	r.HandleFunc("/pedidos/{id:[0-9]+}/itens/{itemId}", h.DeletarItem).Methods("DELETE")
	r.HandleFunc("/pedidos/{id:[0-9]+}/fotos", h.UploadFoto).Methods("POST")
	r.HandleFunc("/pedidos/fotos/{fotoId}", h.ServirFoto).Methods("GET")
	return r
}

func TestItemSoEhEncontradoNoPedidoDono(t *testing.T) {
	h := NewHandler(nil)
	fake := novoFakeRepo()
	fake.pedidos[1] = models.Pedido{ID: 1, NumPedido: 10, ClienteID: 1}
	fake.pedidos[2] = models.Pedido{ID: 2, NumPedido: 11, ClienteID: 1}
	fake.proxID = 2
	h.Repository = fake
	router := novoRouter(h)

	rec := httptest.NewRecorder()
	corpo := `{"num_item":1,"quantidade":2,"produto_id":5}`
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pedidos/1/itens", strings.NewReader(corpo)))
	require.Equal(t, http.StatusCreated, rec.Code)

	// o item criado recebeu o id 3 e pertence ao pedido 1
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pedidos/1/itens/3", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var item models.ItemPedido
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, uint(1), item.PedidoID)
	assert.Equal(t, 1, item.NumItem)

	// mesmo id de item sob outro pedido: não encontrado
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pedidos/2/itens/3", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// a exclusão respeita a mesma chave composta
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/pedidos/2/itens/3", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func requisicaoComFoto(t *testing.T, url, mimeType string) *http.Request {
	t.Helper()

	var corpo bytes.Buffer
	writer := multipart.NewWriter(&corpo)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="foto"; filename="entrega.jpg"`)
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("bytes-da-foto"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, &corpo)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadFoto(t *testing.T) {
	h := NewHandler(nil)
	fake := novoFakeRepo()
	fake.pedidos[1] = models.Pedido{ID: 1, NumPedido: 10, ClienteID: 1}
	fake.proxID = 1
	h.Repository = fake
	router := novoRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, requisicaoComFoto(t, "/pedidos/1/fotos", "image/jpeg"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var foto models.FotoPedido
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &foto))
	assert.Equal(t, "entrega.jpg", foto.Nome)
	assert.Equal(t, "image/jpeg", foto.MimeType)
	assert.Equal(t, uint(1), foto.PedidoID)

	// o binário é servido de volta com o MIME type armazenado
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pedidos/fotos/2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "bytes-da-foto", rec.Body.String())
}

func TestUploadFotoSemArquivo(t *testing.T) {
	h := NewHandler(nil)
	fake := novoFakeRepo()
	fake.pedidos[1] = models.Pedido{ID: 1}
	h.Repository = fake
	router := novoRouter(h)

	var corpo bytes.Buffer
	writer := multipart.NewWriter(&corpo)
	require.NoError(t, writer.WriteField("outro", "campo"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/pedidos/1/fotos", &corpo)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nenhuma imagem enviada")
}

func TestUploadFotoPedidoInexistente(t *testing.T) {
	h := NewHandler(nil)
	h.Repository = novoFakeRepo()
	router := novoRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, requisicaoComFoto(t, "/pedidos/9/fotos", "image/png"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadFotoRejeitaMimeInvalido(t *testing.T) {
	h := NewHandler(nil)
	fake := novoFakeRepo()
	fake.pedidos[1] = models.Pedido{ID: 1}
	h.Repository = fake
	router := novoRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, requisicaoComFoto(t, "/pedidos/1/fotos", "application/pdf"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestItemComIDQueNaoResolveEquivaleANaoEncontrado(t *testing.T) {
	h := NewHandler(nil)
	fake := novoFakeRepo()
	fake.pedidos[1] = models.Pedido{ID: 1}
	h.Repository = fake
	router := novoRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pedidos/1/itens/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletarPedidoInexistente(t *testing.T) {
	h := NewHandler(nil)
	h.Repository = novoFakeRepo()
	router := novoRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/pedidos/7", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
