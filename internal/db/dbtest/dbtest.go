// Package dbtest provides throwaway databases for tests.
package dbtest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/appsalute/clinic-booking/internal/db"
	"github.com/appsalute/clinic-booking/internal/models"
)

// DefaultPassword is the plain-text password of every user created by SeedUser.
const DefaultPassword = "12345678"

// New opens a migrated in-memory sqlite database unique to the calling test.
func New(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:testdb_%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// SeedUser creates a user whose password is DefaultPassword.
func SeedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{Email: email, PasswordHash: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// SeedDoctors inserts the clinic's four doctors and returns them in id order.
func SeedDoctors(t *testing.T, db *gorm.DB) []models.Doctor {
	t.Helper()
	doctors := []models.Doctor{
		{Name: "Dott.ssa Aurora Neri", Specialization: "Dermatologa", ImagePath: "/public/icons-doc-3.png"},
		{Name: "Dott. Marco Verdi", Specialization: "Oculista", ImagePath: "/public/icons-doc-1.png"},
		{Name: "Dott. Luca Bianchi", Specialization: "Fisioterapista", ImagePath: "/public/icons-doc-2.png"},
		{Name: "Dott.ssa Giulia Viola", Specialization: "Nutrizionista", ImagePath: "/public/icons-doc-4.png"},
	}
	if err := db.Create(&doctors).Error; err != nil {
		t.Fatalf("failed to create doctors: %v", err)
	}
	return doctors
}

// SeedBooking inserts a booking row directly, bypassing the ledger's checks.
func SeedBooking(t *testing.T, db *gorm.DB, userID, doctorID uint, date, slot string) models.Booking {
	t.Helper()
	b := models.Booking{UserID: userID, DoctorID: doctorID, Date: date, TimeSlot: slot}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}
	return b
}
