package middleware

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
)

// Encadear aplica recuperação de pânico, log de requisições, compressão e
// CORS liberado para o front-end de administração.
func Encadear(h http.Handler) http.Handler {
	h = handlers.CompressHandler(h)
	h = handlers.LoggingHandler(os.Stdout, h)
	h = handlers.RecoveryHandler()(h)
	return cors.AllowAll().Handler(h)
}
