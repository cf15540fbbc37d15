package fornecedor

import "github.com/moscardini-carvalho/api-loja/internal/models"

// AtualizarFornecedorRequest carrega apenas os campos presentes no corpo da
// requisição; campos ausentes não são alterados.
type AtualizarFornecedorRequest struct {
	Nome        *string `json:"nome"`
	CNPJ        *string `json:"cnpj"`
	Email       *string `json:"email"`
	Celular     *string `json:"celular"`
	Logradouro  *string `json:"logradouro"`
	NumCasa     *string `json:"num_casa"`
	Complemento *string `json:"complemento"`
	Bairro      *string `json:"bairro"`
	Municipio   *string `json:"municipio"`
	UF          *string `json:"uf"`
	CEP         *string `json:"cep"`
	ProdutoIDs  *[]uint `json:"produto_ids"`
}

func (req *AtualizarFornecedorRequest) AplicarEm(f *models.Fornecedor) {
	if req.Nome != nil {
		f.Nome = *req.Nome
	}
	if req.CNPJ != nil {
		f.CNPJ = *req.CNPJ
	}
	if req.Email != nil {
		f.Email = *req.Email
	}
	if req.Celular != nil {
		f.Celular = *req.Celular
	}
	if req.Logradouro != nil {
		f.Logradouro = *req.Logradouro
	}
	if req.NumCasa != nil {
		f.NumCasa = *req.NumCasa
	}
	if req.Complemento != nil {
		f.Complemento = *req.Complemento
	}
	if req.Bairro != nil {
		f.Bairro = *req.Bairro
	}
	if req.Municipio != nil {
		f.Municipio = *req.Municipio
	}
	if req.UF != nil {
		f.UF = *req.UF
	}
	if req.CEP != nil {
		f.CEP = *req.CEP
	}
	if req.ProdutoIDs != nil {
		f.ProdutoIDs = *req.ProdutoIDs
	}
}
