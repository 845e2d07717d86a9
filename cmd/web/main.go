package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/joeshaw/envdecode"
	"github.com/scimas/judgment/server"
)

type config struct {
	Port     int `env:"PORT,default=8000"`
	MaxRooms int `env:"MAX_ROOMS,default=100"`
}

func main() {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatal(err.Error())
	}

	// one key pair for the process lifetime; credentials die with it
	_, signingKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatal(err.Error())
	}

	registry := server.NewRegistry(signingKey, cfg.MaxRooms)
	gameServer := server.NewGameServer(registry)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
	)

	log.Printf("Listening on port %d...", cfg.Port)
	log.Fatal(http.ListenAndServe(
		fmt.Sprintf(":%d", cfg.Port),
		handlers.LoggingHandler(os.Stdout, cors(gameServer)),
	))
}
