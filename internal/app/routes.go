package app

import (
	"hash/maphash"
	"math/rand/v2"
	"net/http"

	"github.com/vancomm/scratchcard/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	card := handlers.NewCardHandler(a.logger, a.card, a.ws, createRand)

	p := a.basePath
	a.router.HandleFunc("GET "+p+"/healthz", handlers.Health(a.logger))
	a.router.HandleFunc("GET "+p+"/card/defaults", card.Defaults)
	a.router.HandleFunc("GET "+p+"/card/connect", card.Connect)

	if a.assets != nil {
		files := http.FileServerFS(a.assets)
		a.router.Handle("GET "+p+"/static/", http.StripPrefix(p+"/static", files))
		a.router.HandleFunc("GET "+p+"/{$}", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFileFS(w, r, a.assets, "index.html")
		})
	}
}
