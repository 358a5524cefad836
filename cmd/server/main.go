package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mvaldez/scholarmatch/internal/api"
	"github.com/mvaldez/scholarmatch/internal/catalog"
	"github.com/mvaldez/scholarmatch/internal/discover"
	"github.com/mvaldez/scholarmatch/internal/sentiment"
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	persister, err := catalog.NewFilePersister(dataDir)
	if err != nil {
		log.Fatalf("Failed to open data dir %s: %v", dataDir, err)
	}
	store := catalog.NewStore(persister)

	registry, err := discover.LoadRegistry()
	if err != nil {
		log.Fatalf("Failed to load source registry: %v", err)
	}

	srv := api.NewServer(store, discover.NewSimulated(registry), sentiment.NewKeywordAnalyzer())
	log.Printf("Server starting on port %s (data dir %s)...", port, dataDir)
	if err := srv.Start(port); err != nil {
		log.Fatal(err)
	}
}
