package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/duetly/backend/config"
	"github.com/duetly/backend/internal/database"
	"github.com/duetly/backend/internal/models"
)

// Seeds a demo couple with two users and a few content records so local
// frontends have something to render.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demopassword123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	alice := models.User{Name: "Alice Demo", Email: "alice@example.com", PasswordHash: string(hashed), Gender: "female"}
	bob := models.User{Name: "Bob Demo", Email: "bob@example.com", PasswordHash: string(hashed), Gender: "male"}
	for _, u := range []*models.User{&alice, &bob} {
		if err := db.Where("email = ?", u.Email).FirstOrCreate(u).Error; err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Email, err)
		}
	}

	anniversary := time.Date(2022, time.June, 18, 0, 0, 0, 0, time.UTC)
	couple := models.Couple{
		Subdomain:   "alice-and-bob",
		Title:       "Alice & Bob",
		Bio:         "Our little corner of the internet.",
		Anniversary: &anniversary,
		Partner1ID:  alice.ID,
		Partner2ID:  &bob.ID,
	}
	if err := db.Where("subdomain = ?", couple.Subdomain).FirstOrCreate(&couple).Error; err != nil {
		log.Fatalf("Failed to seed couple: %v", err)
	}
	if err := db.Model(&models.User{}).
		Where("id IN ?", []string{alice.ID.String(), bob.ID.String()}).
		Update("couple_id", couple.ID).Error; err != nil {
		log.Fatalf("Failed to link partners: %v", err)
	}

	memory := models.Memory{
		Title:       "First trip together",
		Description: "Weekend in the mountains.",
		Date:        anniversary.AddDate(0, 2, 0),
		Mood:        "nostalgic",
	}
	memory.CoupleID = couple.ID
	memory.AuthorID = alice.ID

	note := models.Note{Title: "Good morning", Body: "Coffee is on the counter.", Mood: "happy"}
	note.CoupleID = couple.ID
	note.AuthorID = bob.ID

	item := models.BucketListItem{Title: "See the northern lights", Category: "travel"}
	item.CoupleID = couple.ID
	item.AuthorID = alice.ID

	if err := db.Create(&memory).Error; err != nil {
		log.Fatalf("Failed to seed memory: %v", err)
	}
	if err := db.Create(&note).Error; err != nil {
		log.Fatalf("Failed to seed note: %v", err)
	}
	if err := db.Create(&item).Error; err != nil {
		log.Fatalf("Failed to seed bucket list item: %v", err)
	}

	log.Printf("Seeded demo couple %q with users alice@example.com / bob@example.com", couple.Subdomain)
}
