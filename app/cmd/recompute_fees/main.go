package main

import (
	"flag"
	"log"

	"uvtab-emis/app/config"
	"uvtab-emis/app/services"
)

func main() {
	apply := flag.Bool("apply", false, "persist corrected balances (default is a dry run)")
	center := flag.String("center", "", "limit to one assessment center ID")
	flag.Parse()

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}
	defer db.Close()

	checked, drifted, err := services.RecomputeCenterBalances(db, *center, *apply)
	if err != nil {
		log.Fatal("Recompute failed:", err)
	}

	mode := "dry run"
	if *apply {
		mode = "applied"
	}
	log.Printf("Checked %d candidates, %d balances drifted (%s)", checked, drifted, mode)
}
