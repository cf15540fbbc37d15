package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

const (
	// TamanhoMaximo limita cada arquivo a 5 MiB.
	TamanhoMaximo = 5 << 20
	// MaxImagens limita a quantidade de arquivos por requisição de produto.
	MaxImagens = 5
)

var (
	ErrSemArquivo     = errors.New("nenhuma imagem enviada")
	ErrTipoInvalido   = errors.New("apenas imagens são permitidas")
	ErrMuitosArquivos = errors.New("quantidade máxima de imagens excedida")
)

// Arquivo carrega o conteúdo de uma imagem recebida e seus metadados,
// inteiramente bufferizado em memória antes de uma única escrita no banco.
type Arquivo struct {
	Nome     string
	MimeType string
	Dados    []byte
}

// LerImagens extrai do form multipart até max arquivos do campo indicado.
// A ausência de arquivos não é erro: devolve a lista vazia. Exceder max
// rejeita a requisição inteira.
func LerImagens(r *http.Request, campo string, max int) ([]Arquivo, error) {
	if err := r.ParseMultipartForm(int64(max) * TamanhoMaximo); err != nil {
		return nil, err
	}
	if r.MultipartForm == nil {
		return nil, nil
	}
	cabecalhos := r.MultipartForm.File[campo]
	if len(cabecalhos) > max {
		return nil, ErrMuitosArquivos
	}
	arquivos := make([]Arquivo, 0, len(cabecalhos))
	for _, fh := range cabecalhos {
		arquivo, err := lerArquivo(fh)
		if err != nil {
			return nil, err
		}
		arquivos = append(arquivos, *arquivo)
	}
	return arquivos, nil
}

// LerImagem extrai um único arquivo obrigatório do campo indicado.
func LerImagem(r *http.Request, campo string) (*Arquivo, error) {
	if err := r.ParseMultipartForm(TamanhoMaximo); err != nil {
		return nil, ErrSemArquivo
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File[campo]) == 0 {
		return nil, ErrSemArquivo
	}
	return lerArquivo(r.MultipartForm.File[campo][0])
}

func lerArquivo(fh *multipart.FileHeader) (*Arquivo, error) {
	tipo := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(tipo, "image/") {
		return nil, ErrTipoInvalido
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dados, err := io.ReadAll(io.LimitReader(f, TamanhoMaximo+1))
	if err != nil {
		return nil, err
	}
	if len(dados) > TamanhoMaximo {
		return nil, fmt.Errorf("imagem %s excede o limite de 5MB", fh.Filename)
	}
	return &Arquivo{Nome: fh.Filename, MimeType: tipo, Dados: dados}, nil
}
