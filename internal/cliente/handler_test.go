package cliente

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/moscardini-carvalho/api-loja/internal/models"
	"github.com/moscardini-carvalho/api-loja/internal/relacoes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRepo implementa Repository em memória para testar os handlers sem
// banco. A atualização parcial passa pelo mesmo DTO do repositório real.
type fakeRepo struct {
	clientes  map[uint]models.Cliente
	proxID    uint
	ultimoInc relacoes.Inclusao
}

func novoFakeRepo() *fakeRepo {
	return &fakeRepo{clientes: map[uint]models.Cliente{}}
}

func (f *fakeRepo) Criar(db *gorm.DB, c *models.Cliente) error {
	f.proxID++
	c.ID = f.proxID
	f.clientes[c.ID] = *c
	return nil
}

func (f *fakeRepo) ListarTodos(db *gorm.DB, inc relacoes.Inclusao) ([]models.Cliente, error) {
	f.ultimoInc = inc
	var todos []models.Cliente
	for _, c := range f.clientes {
		todos = append(todos, c)
	}
	return todos, nil
}

func (f *fakeRepo) BuscarPorID(db *gorm.DB, id uint, inc relacoes.Inclusao) (*models.Cliente, error) {
	f.ultimoInc = inc
	c, ok := f.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fakeRepo) Atualizar(db *gorm.DB, id uint, dados *AtualizarClienteRequest) error {
	c, ok := f.clientes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	dados.AplicarEm(&c)
	f.clientes[id] = c
	return nil
}

func (f *fakeRepo) Deletar(db *gorm.DB, id uint) error {
	if _, ok := f.clientes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.clientes, id)
	return nil
}

func novoRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/clientes", h.CriarCliente).Methods("POST")
	r.HandleFunc("/clientes", h.ListarClientes).Methods("GET")
	r.HandleFunc("/clientes/{id}", h.BuscarPorID).Methods("GET")
	r.HandleFunc("/clientes/{id}", h.AtualizarCliente).Methods("PUT")
	r.HandleFunc("/clientes/{id}", h.DeletarCliente).Methods("DELETE")
	return r
}

func TestCriarEBuscarCliente(t *testing.T) {
	h := NewHandler(nil)
	fake := novoFakeRepo()
	h.Repository = fake
	router := novoRouter(h)

	corpo := `{"nome":"Ana Souza","cpf":"123.456.789-00","data_nascimento":"1990-03-15","email":"ana@exemplo.com"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(corpo)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clientes/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var salvo models.Cliente
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &salvo))
	assert.Equal(t, "Ana Souza", salvo.Nome)
	assert.Equal(t, "ana@exemplo.com", salvo.Email)
	// data sem horário normalizada para meia-noite UTC
	assert.Equal(t, time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC), salvo.DataNascimento.Time)
}

func TestCriarClienteSemNome(t *testing.T) {
	h := NewHandler(nil)
	h.Repository = novoFakeRepo()
	router := novoRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(`{"email":"x@y.com"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBuscarAtualizarDeletarInexistente(t *testing.T) {
	h := NewHandler(nil)
	h.Repository = novoFakeRepo()
	router := novoRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clientes/99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/clientes/99", strings.NewReader(`{"nome":"X"}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/clientes/99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIDQueNaoResolveEquivaleANaoEncontrado(t *testing.T) {
	h := NewHandler(nil)
	h.Repository = novoFakeRepo()
	router := novoRouter(h)

	// id não numérico
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clientes/abc", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// id além da faixa de 32 bits
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/clientes/99999999999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAtualizarClienteEhParcial(t *testing.T) {
	h := NewHandler(nil)
	fake := novoFakeRepo()
	fake.clientes[1] = models.Cliente{ID: 1, Nome: "Ana", Email: "ana@exemplo.com", Municipio: "Campinas"}
	fake.proxID = 1
	h.Repository = fake
	router := novoRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/clientes/1", strings.NewReader(`{"municipio":"Valinhos"}`)))
	require.Equal(t, http.StatusNoContent, rec.Code)

	// campos ausentes no corpo permanecem intactos
	assert.Equal(t, "Ana", fake.clientes[1].Nome)
	assert.Equal(t, "ana@exemplo.com", fake.clientes[1].Email)
	assert.Equal(t, "Valinhos", fake.clientes[1].Municipio)
}

func TestListarClientesHonraParametroDeInclusao(t *testing.T) {
	h := NewHandler(nil)
	fake := novoFakeRepo()
	h.Repository = fake
	router := novoRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clientes?pedidos&desconhecido", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.True(t, fake.ultimoInc["pedidos"])
	assert.False(t, fake.ultimoInc["desconhecido"])
}

func TestDeletarClienteExistente(t *testing.T) {
	h := NewHandler(nil)
	fake := novoFakeRepo()
	fake.clientes[1] = models.Cliente{ID: 1, Nome: "Ana"}
	h.Repository = fake
	router := novoRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/clientes/1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, fake.clientes)
}
