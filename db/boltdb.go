package db

import (
	"github.com/boltdb/bolt"
	"log"
	"path"
)

var db *bolt.DB

func InitDB(confDir string) {
	var err error
	db, err = bolt.Open(path.Join(confDir, "paintboard.db"), 0600, nil)
	if err != nil {
		log.Fatal(err)
	}
}

func DB() *bolt.DB {
	return db
}

// CloseDB releases the handle so tests can reopen the database elsewhere.
func CloseDB() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}
