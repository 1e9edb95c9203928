package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/TangilJ/litama/internal/hub"
	"github.com/TangilJ/litama/internal/logging"
	"github.com/TangilJ/litama/internal/match"
	"github.com/TangilJ/litama/internal/server"
	"github.com/TangilJ/litama/internal/storage"
)

func main() {
	addr := flag.String("addr", ":5000", "listen address")
	dsn := flag.String("dsn", "", "postgres DSN; matches stay in memory when empty")
	ping := flag.Duration("ping-interval", 15*time.Second, "connection liveness probe interval")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()
	logging.Debug = *debug

	var store match.Store
	if *dsn != "" {
		db, err := storage.New(*dsn)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		store = storage.NewStore(db)
	} else {
		store = storage.NewMemoryStore()
	}

	registry := hub.NewRegistry()
	go registry.KeepAlive(*ping)

	coord := match.NewCoordinator(store, server.NewBroadcaster(registry))
	srv := server.New(coord, registry)

	http.HandleFunc("/", srv.HandleSocket)

	log.Printf("Litama %s listening on %s ...", commit, *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
