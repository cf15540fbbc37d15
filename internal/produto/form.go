package produto

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/moscardini-carvalho/api-loja/internal/models"
	"github.com/moscardini-carvalho/api-loja/internal/upload"
)

// O front-end de administração envia produtos como multipart/form-data:
// campos escalares como valores de form, fornecedor_ids[] repetido e até
// cinco arquivos no campo imagens.

func ehMultipart(r *http.Request) bool {
	tipo, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && tipo == "multipart/form-data"
}

func preencherDoForm(r *http.Request, p *models.Produto) error {
	if err := r.ParseMultipartForm(upload.MaxImagens * upload.TamanhoMaximo); err != nil {
		return err
	}

	p.Nome = r.FormValue("nome")
	p.Marca = r.FormValue("marca")
	p.Detalhes = r.FormValue("detalhes")
	p.UnidadeMedida = r.FormValue("unidade_medida")

	var err error
	if p.Quantidade, err = valorFloat(r, "quantidade"); err != nil {
		return err
	}
	if p.PrecoUnitario, err = valorFloat(r, "preco_unitario"); err != nil {
		return err
	}
	if p.QtdEstoque, err = valorFloat(r, "qtd_estoque"); err != nil {
		return err
	}
	if v := r.FormValue("categoria_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("categoria_id inválido: %q", v)
		}
		p.CategoriaID = uint(id)
	}

	ids, err := idsDoForm(r)
	if err != nil {
		return err
	}
	p.FornecedorIDs = ids
	return nil
}

// atualizarDoForm monta a atualização parcial: só entram os campos que o
// form realmente trouxe.
func atualizarDoForm(r *http.Request) (*AtualizarProdutoRequest, error) {
	if err := r.ParseMultipartForm(upload.MaxImagens * upload.TamanhoMaximo); err != nil {
		return nil, err
	}

	req := &AtualizarProdutoRequest{}
	if v, ok := valorForm(r, "nome"); ok {
		req.Nome = &v
	}
	if v, ok := valorForm(r, "marca"); ok {
		req.Marca = &v
	}
	if v, ok := valorForm(r, "detalhes"); ok {
		req.Detalhes = &v
	}
	if v, ok := valorForm(r, "unidade_medida"); ok {
		req.UnidadeMedida = &v
	}
	if v, ok := valorForm(r, "quantidade"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("quantidade inválida: %q", v)
		}
		req.Quantidade = &f
	}
	if v, ok := valorForm(r, "preco_unitario"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("preco_unitario inválido: %q", v)
		}
		req.PrecoUnitario = &f
	}
	if v, ok := valorForm(r, "qtd_estoque"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("qtd_estoque inválido: %q", v)
		}
		req.QtdEstoque = &f
	}
	if v, ok := valorForm(r, "categoria_id"); ok {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("categoria_id inválido: %q", v)
		}
		u := uint(id)
		req.CategoriaID = &u
	}
	if temIDsNoForm(r) {
		ids, err := idsDoForm(r)
		if err != nil {
			return nil, err
		}
		req.FornecedorIDs = &ids
	}
	return req, nil
}

func valorForm(r *http.Request, campo string) (string, bool) {
	if vs, ok := r.MultipartForm.Value[campo]; ok && len(vs) > 0 {
		return vs[0], true
	}
	return "", false
}

func valorFloat(r *http.Request, campo string) (float64, error) {
	v := r.FormValue(campo)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s inválido: %q", campo, v)
	}
	return f, nil
}

func temIDsNoForm(r *http.Request) bool {
	_, ok := r.MultipartForm.Value["fornecedor_ids[]"]
	if !ok {
		_, ok = r.MultipartForm.Value["fornecedor_ids"]
	}
	return ok
}

func idsDoForm(r *http.Request) ([]uint, error) {
	valores := r.Form["fornecedor_ids[]"]
	if len(valores) == 0 {
		valores = r.Form["fornecedor_ids"]
	}
	var ids []uint
	for _, v := range valores {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("fornecedor_ids inválido: %q", v)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
