package main

import (
	"flag"
	"log"

	"uvtab-emis/app/config"
	"uvtab-emis/app/services"
)

func main() {
	apply := flag.Bool("apply", false, "overwrite drifted ledger rows (default is a dry run)")
	flag.Parse()

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}
	defer db.Close()

	drifts, err := services.ReconcilePaymentLedger(db, *apply)
	if err != nil {
		log.Fatal("Reconciliation failed:", err)
	}

	if len(drifts) == 0 {
		log.Println("Payment ledger is consistent")
		return
	}
	mode := "reported only"
	if *apply {
		mode = "fixed"
	}
	log.Printf("%d drifted ledger rows (%s)", len(drifts), mode)
}
