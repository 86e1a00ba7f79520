package main

import (
	"fmt"
	"log"

	"github.com/seungmo975/community-board/backend/internal/database"
	"github.com/seungmo975/community-board/backend/internal/server"
)

func main() {
	dsn := database.DSNFromEnv()

	// Bootstrap the schema over the raw connection so the foreign-key
	// and uniqueness constraints exist before anything is served.
	bootstrap, err := database.NewDatabase(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := bootstrap.Initialize(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	if err := bootstrap.Close(); err != nil {
		log.Printf("Failed to close bootstrap connection: %v", err)
	}

	db, err := database.New(dsn)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Seeding failure is non-fatal: the API serves without demo data.
	if err := database.Seed(db.GetDB()); err != nil {
		log.Printf("❌ Seeding failed, continuing without seed data: %v", err)
	}

	srv := server.NewHTTPServer(db)

	log.Printf("🚀 Server starting on %s\n", srv.Addr)
	fmt.Println("📝 Press Ctrl+C to stop the server")

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
