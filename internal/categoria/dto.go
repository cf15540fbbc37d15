package categoria

import "github.com/moscardini-carvalho/api-loja/internal/models"

// AtualizarCategoriaRequest carrega apenas os campos presentes no corpo da
// requisição; campos ausentes não são alterados.
type AtualizarCategoriaRequest struct {
	Descricao *string `json:"descricao"`
}

func (req *AtualizarCategoriaRequest) AplicarEm(c *models.Categoria) {
	if req.Descricao != nil {
		c.Descricao = *req.Descricao
	}
}
