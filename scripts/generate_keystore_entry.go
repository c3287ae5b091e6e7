package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	smsolana "strategymint/pkg/solana"
)

func main() {
	// Define command line flags
	keystoreDir := flag.String("keystore-dir", "configs/keystore", "Directory holding the encrypted keystore entries")
	password := flag.String("password", "", "Password used to encrypt the generated key")
	flag.Parse()

	// Validate required flags
	if *password == "" {
		log.Error("Keystore password is required")
		fmt.Println("Usage example: go run scripts/generate_keystore_entry.go -password <password>")
		os.Exit(1)
	}

	km := smsolana.NewKeyManager(*keystoreDir)

	account, err := km.GenerateKeyPair()
	if err != nil {
		log.Fatalf("Failed to generate key pair: %v", err)
	}

	if err := km.SaveKeyStoreEntry(account, *password); err != nil {
		log.Fatalf("Failed to save keystore entry: %v", err)
	}

	fmt.Printf("\nKeystore entry created:\n")
	fmt.Printf("Address: %s\n", account.PublicKey.ToBase58())
	fmt.Printf("File: %s/%s.json\n", *keystoreDir, account.PublicKey.ToBase58())
}
