package relacoes

import "net/url"

// Inclusao indica, por nome, quais relações devem ser embutidas na resposta
// de uma leitura. Relações fora do mapa ficam representadas apenas pela
// chave estrangeira.
type Inclusao map[string]bool

// Resolver traduz os parâmetros de query de uma requisição em instruções de
// inclusão de relações. Cada entidade declara a própria lista de relações
// válidas; nomes fora da lista são ignorados em silêncio.
type Resolver struct {
	validas map[string]struct{}
}

// NewResolver cria um resolver com a lista de relações aceitas pela entidade.
func NewResolver(nomes ...string) *Resolver {
	validas := make(map[string]struct{}, len(nomes))
	for _, nome := range nomes {
		validas[nome] = struct{}{}
	}
	return &Resolver{validas: validas}
}

// Inclusoes é uma função pura da query: devolve true para cada parâmetro
// reconhecido como relação da entidade, sem ordem definida.
func (r *Resolver) Inclusoes(query url.Values) Inclusao {
	inc := Inclusao{}
	for nome := range query {
		if _, ok := r.validas[nome]; ok {
			inc[nome] = true
		}
	}
	return inc
}
