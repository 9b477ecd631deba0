package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors lets the card page be served from a different origin than the game
// socket. The game carries no credentials, so any origin is accepted.
func Cors() Middleware {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	}
	return cors.New(options).Handler
}
