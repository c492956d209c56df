package main

import (
	"log"

	"uvtab-emis/app/config"
	"uvtab-emis/app/database"
)

func main() {
	log.Println("Starting database migration...")

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Migration completed successfully!")
}
