package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ResponderJSON serializa o corpo da resposta com HTTP 200.
func ResponderJSON(w http.ResponseWriter, corpo interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(corpo)
}

// ResponderErro mapeia registro não encontrado para 404; qualquer outro erro
// vai para o log e volta ao chamador como 500 com o texto bruto do erro.
func ResponderErro(w http.ResponseWriter, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	logrus.WithError(err).Error("erro não tratado na requisição")
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// IDDaRota extrai um id numérico de uma variável de rota. Um valor que não
// resolve para um id equivale a um registro inexistente.
func IDDaRota(r *http.Request, nome string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[nome], 10, 32)
	if err != nil {
		return 0, gorm.ErrRecordNotFound
	}
	return uint(id), nil
}
