package produto

import (
	"errors"
	"sync"
	"testing"

	"github.com/moscardini-carvalho/api-loja/internal/fornecedor"
	"github.com/moscardini-carvalho/api-loja/internal/models"
	"github.com/moscardini-carvalho/api-loja/internal/relacoes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeFornecedores implementa fornecedor.Repository em memória, tratando a
// lista reversa como conjunto, para exercitar o sincronizador sem banco.
type fakeFornecedores struct {
	mu       sync.Mutex
	reversas map[uint][]uint // fornecedorID -> produto_ids
	falharEm uint
}

func novoFakeFornecedores() *fakeFornecedores {
	return &fakeFornecedores{reversas: map[uint][]uint{}}
}

func (f *fakeFornecedores) AdicionarProduto(db *gorm.DB, fornecedorID, produtoID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fornecedorID == f.falharEm && f.falharEm != 0 {
		return errors.New("fornecedor indisponível")
	}
	for _, id := range f.reversas[fornecedorID] {
		if id == produtoID {
			return nil
		}
	}
	f.reversas[fornecedorID] = append(f.reversas[fornecedorID], produtoID)
	return nil
}

func (f *fakeFornecedores) Criar(db *gorm.DB, forn *models.Fornecedor) error { return nil }
func (f *fakeFornecedores) ListarTodos(db *gorm.DB, inc relacoes.Inclusao) ([]models.Fornecedor, error) {
	return nil, nil
}
func (f *fakeFornecedores) BuscarPorID(db *gorm.DB, id uint, inc relacoes.Inclusao) (*models.Fornecedor, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeFornecedores) Atualizar(db *gorm.DB, id uint, dados *fornecedor.AtualizarFornecedorRequest) error {
	return nil
}
func (f *fakeFornecedores) Deletar(db *gorm.DB, id uint) error { return nil }

func TestSincronizarPropagaParaTodosOsFornecedores(t *testing.T) {
	fake := novoFakeFornecedores()
	s := &Sincronizador{Fornecedores: fake}

	require.NoError(t, s.Sincronizar(nil, 42, []uint{1, 2, 3}))

	assert.Contains(t, fake.reversas[1], uint(42))
	assert.Contains(t, fake.reversas[2], uint(42))
	assert.Contains(t, fake.reversas[3], uint(42))
}

func TestSincronizarEhIdempotente(t *testing.T) {
	fake := novoFakeFornecedores()
	s := &Sincronizador{Fornecedores: fake}

	require.NoError(t, s.Sincronizar(nil, 42, []uint{1}))
	require.NoError(t, s.Sincronizar(nil, 42, []uint{1}))

	// a lista reversa é um conjunto: nada de entradas duplicadas
	assert.Equal(t, []uint{42}, fake.reversas[1])
}

func TestSincronizarListaVaziaNaoFazNada(t *testing.T) {
	fake := novoFakeFornecedores()
	s := &Sincronizador{Fornecedores: fake}

	require.NoError(t, s.Sincronizar(nil, 42, nil))

	assert.Empty(t, fake.reversas)
}

func TestSincronizarNaoDesfazAtualizacoesJaAplicadas(t *testing.T) {
	fake := novoFakeFornecedores()
	fake.falharEm = 2
	s := &Sincronizador{Fornecedores: fake}

	err := s.Sincronizar(nil, 42, []uint{1, 2, 3})
	require.Error(t, err)

	// as atualizações independentes dos demais fornecedores permanecem
	assert.Contains(t, fake.reversas[1], uint(42))
	assert.Contains(t, fake.reversas[3], uint(42))
	assert.Empty(t, fake.reversas[2])
}
