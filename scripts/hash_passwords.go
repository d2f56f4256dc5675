// One-off migration that bcrypt-hashes any plaintext credentials left in the
// database. Fresh installs never need it; run it after importing data from a
// deployment that still stored teacher, branch or student passwords in clear
// text.
//
// Usage: go run scripts/hash_passwords.go
package main

import (
	"log"
	"strings"

	"college_portal_backend/internal/config"
	"college_portal_backend/internal/model"
	"college_portal_backend/pkg/database"
	"college_portal_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	hashed := 0

	var teachers []model.Teacher
	if err := db.Find(&teachers).Error; err != nil {
		log.Fatalf("failed to load teachers: %v", err)
	}
	for _, t := range teachers {
		if rehash(db, &model.Teacher{}, "username", t.Username, t.Password) {
			hashed++
		}
	}

	var branches []model.Branch
	if err := db.Find(&branches).Error; err != nil {
		log.Fatalf("failed to load branches: %v", err)
	}
	for _, b := range branches {
		if rehash(db, &model.Branch{}, "code", b.Code, b.Password) {
			hashed++
		}
	}

	var students []model.Student
	if err := db.Find(&students).Error; err != nil {
		log.Fatalf("failed to load students: %v", err)
	}
	for _, s := range students {
		if rehash(db, &model.Student{}, "usn", s.USN, s.Password) {
			hashed++
		}
	}

	log.Printf("Done. Hashed %d plaintext passwords.", hashed)
}

// rehash replaces a single plaintext password. Rows that already carry a
// bcrypt prefix are left untouched, so the script is safe to run twice.
func rehash(db *gorm.DB, m interface{}, keyColumn, key, password string) bool {
	if isBcryptHash(password) {
		return false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password for %s: %v", key, err)
	}

	if err := db.Model(m).
		Where(keyColumn+" = ?", key).
		Update("password", string(hash)).Error; err != nil {
		log.Fatalf("failed to update %s: %v", key, err)
	}

	log.Printf("hashed password for %s", key)
	return true
}

func isBcryptHash(password string) bool {
	return strings.HasPrefix(password, "$2a$") ||
		strings.HasPrefix(password, "$2b$") ||
		strings.HasPrefix(password, "$2y$")
}
