package produto

import (
	"sync"

	"github.com/moscardini-carvalho/api-loja/internal/fornecedor"
	"gorm.io/gorm"
)

// Sincronizador propaga o vínculo produto→fornecedor para a lista reversa
// produto_ids de cada fornecedor referenciado. As atualizações são emitidas
// de forma independente e concorrente: quando uma falha, as já aplicadas não
// são desfeitas. Remover um fornecedor da lista do produto nunca remove a
// referência reversa; o vínculo só acumula.
type Sincronizador struct {
	Fornecedores fornecedor.Repository
}

func NewSincronizador() *Sincronizador {
	return &Sincronizador{Fornecedores: fornecedor.NewRepository()}
}

// Sincronizar garante que cada fornecedor referenciado liste o produto em
// produto_ids. Devolve o primeiro erro observado, se houver.
func (s *Sincronizador) Sincronizar(db *gorm.DB, produtoID uint, fornecedorIDs []uint) error {
	if len(fornecedorIDs) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	erros := make(chan error, len(fornecedorIDs))
	for _, id := range fornecedorIDs {
		wg.Add(1)
		go func(fornecedorID uint) {
			defer wg.Done()
			if err := s.Fornecedores.AdicionarProduto(db, fornecedorID, produtoID); err != nil {
				erros <- err
			}
		}(id)
	}
	wg.Wait()
	close(erros)

	for err := range erros {
		return err
	}
	return nil
}
