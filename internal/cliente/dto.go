package cliente

import "github.com/moscardini-carvalho/api-loja/internal/models"

// AtualizarClienteRequest carrega apenas os campos presentes no corpo da
// requisição; campos ausentes não são alterados.
type AtualizarClienteRequest struct {
	Nome           *string      `json:"nome"`
	CPF            *string      `json:"cpf"`
	DataNascimento *models.Data `json:"data_nascimento"`
	Email          *string      `json:"email"`
	Celular        *string      `json:"celular"`
	Logradouro     *string      `json:"logradouro"`
	NumCasa        *string      `json:"num_casa"`
	Complemento    *string      `json:"complemento"`
	Bairro         *string      `json:"bairro"`
	Municipio      *string      `json:"municipio"`
	UF             *string      `json:"uf"`
	CEP            *string      `json:"cep"`
}

func (req *AtualizarClienteRequest) AplicarEm(c *models.Cliente) {
	if req.Nome != nil {
		c.Nome = *req.Nome
	}
	if req.CPF != nil {
		c.CPF = *req.CPF
	}
	if req.DataNascimento != nil {
		c.DataNascimento = *req.DataNascimento
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Celular != nil {
		c.Celular = *req.Celular
	}
	if req.Logradouro != nil {
		c.Logradouro = *req.Logradouro
	}
	if req.NumCasa != nil {
		c.NumCasa = *req.NumCasa
	}
	if req.Complemento != nil {
		c.Complemento = *req.Complemento
	}
	if req.Bairro != nil {
		c.Bairro = *req.Bairro
	}
	if req.Municipio != nil {
		c.Municipio = *req.Municipio
	}
	if req.UF != nil {
		c.UF = *req.UF
	}
	if req.CEP != nil {
		c.CEP = *req.CEP
	}
}
