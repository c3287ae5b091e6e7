package main

import (
	"log"
	"os"

	"strategymint/internal/handlers"
	"strategymint/internal/ledger"
	"strategymint/internal/notify"
	"strategymint/internal/routes"
	"strategymint/internal/store"
	"strategymint/pkg/config"
	"strategymint/pkg/helius"
	"strategymint/pkg/solana"
)

func main() {
	// Initialize database
	config.InitDB()
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		config.ExecuteMigrations()
	}

	rootSeed := os.Getenv("LEDGER_ROOT_SEED")
	if rootSeed == "" {
		log.Fatal("LEDGER_ROOT_SEED is required")
	}

	rpcEndpoint := os.Getenv("DEFAULT_SOLANA_RPC")
	if rpcEndpoint == "" {
		rpcEndpoint = "https://api.devnet.solana.com"
	}

	keys := solana.NewKeyManager(os.Getenv("KEYSTORE_DIR"))
	chain := solana.NewClient(rpcEndpoint, []byte(rootSeed), keys, os.Getenv("KEYSTORE_PASSWORD"))

	// Event sinks: always the websocket hub, plus the queue when RabbitMQ is up
	hub := notify.NewHub()
	sinks := []ledger.Emitter{hub}

	// Initialize RabbitMQ (optional, will log warning if not configured)
	if os.Getenv("RABBITMQ_HOST") != "" {
		config.InitRabbitMQ()
		defer func() {
			if config.RabbitMQ != nil {
				config.RabbitMQ.Close()
			}
		}()

		publisher, err := config.NewPublisher()
		if err != nil {
			log.Fatal("Create publisher failed:", err)
		}
		defer publisher.Close()
		sinks = append(sinks, notify.NewQueueEmitter(publisher))
		log.Println("RabbitMQ initialized successfully")
	} else {
		log.Println("RabbitMQ not configured, skipping initialization")
	}
	emitter := notify.NewMultiEmitter(sinks...)

	collectionStore := store.NewCollectionStore(config.DB)
	treasuryStore := store.NewTreasuryStore(config.DB)

	treasuryAddress, _, err := chain.TreasuryAddress()
	if err != nil {
		log.Fatal("Failed to derive treasury address:", err)
	}

	collectionSvc := ledger.NewCollectionService(collectionStore, chain, emitter)
	mintSvc := ledger.NewMintService(collectionStore, chain, emitter, treasuryAddress)
	treasurySvc := ledger.NewTreasuryService(treasuryStore, chain, emitter)

	var heliusClient *helius.Client
	if apiKey := os.Getenv("HELIUS_API_KEY"); apiKey != "" {
		heliusClient = helius.NewClient(apiKey)
	}

	// Set up router
	r := routes.SetupRouter(routes.Handlers{
		Collection: handlers.NewCollectionHandler(collectionSvc),
		Mint:       handlers.NewMintHandler(mintSvc, heliusClient),
		Treasury:   handlers.NewTreasuryHandler(treasurySvc),
		Events:     handlers.NewEventHandler(hub),
		Chain:      handlers.NewChainHandler(chain),
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
