package main

import (
	log "github.com/sirupsen/logrus"

	"geohash-service/migration"
)

func main() {
	if err := migration.RunMigrations(); err != nil {
		log.Fatalf("Migration error: %v", err)
	}
}
