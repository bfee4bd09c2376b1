// Package client owns the process-level connections to external
// resources. The simulator only needs the embedded sqlite database that
// backs named state snapshots.
package client

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"saas-sim/internal/store"
)

func InitSQLiteClient(databaseURL string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&store.Snapshot{}); err != nil {
		log.Fatal(err)
	}

	return db
}
