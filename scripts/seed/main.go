package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/noah-isme/classroom-availability-api/internal/models"
	"github.com/noah-isme/classroom-availability-api/internal/repository"
	"github.com/noah-isme/classroom-availability-api/pkg/config"
	"github.com/noah-isme/classroom-availability-api/pkg/crypto"
	"github.com/noah-isme/classroom-availability-api/pkg/database"
)

type demoUser struct {
	username string
	password string
	role     models.UserRole
}

func main() {
	var (
		plaintext bool
		timeout   time.Duration
	)
	flag.BoolVar(&plaintext, "plaintext", false, "Store passwords without hashing (legacy data layout)")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Overall seed timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := repository.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	users, err := buildUsers(plaintext, []demoUser{
		{username: "alice", password: "correct", role: models.RoleStudent},
		{username: "bob", password: "lecture-hall", role: models.RoleFaculty},
		{username: "carol", password: "keys-to-everything", role: models.RoleAdmin},
	})
	if err != nil {
		log.Fatalf("failed to hash passwords: %v", err)
	}

	if err := repository.Seed(ctx, db, repository.SeedData{
		Classrooms: demoClassrooms(),
		TimeSlots:  demoTimeSlots(),
		Users:      users,
	}); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	log.Printf("seeded %s database: %d users", cfg.Database.Driver, len(users))
}

func buildUsers(plaintext bool, in []demoUser) ([]models.User, error) {
	out := make([]models.User, 0, len(in))
	for _, u := range in {
		password := u.password
		if !plaintext {
			hashed, err := crypto.HashPassword(u.password)
			if err != nil {
				return nil, err
			}
			password = hashed
		}
		out = append(out, models.User{Username: u.username, Password: password, Role: u.role})
	}
	return out, nil
}

func demoClassrooms() []models.Classroom {
	return []models.Classroom{
		{RoomNumber: "A101", Block: "A", Available: true},
		{RoomNumber: "A102", Block: "A", Available: false},
		{RoomNumber: "A103", Block: "A", Available: true},
		{RoomNumber: "B201", Block: "B", Available: true},
		{RoomNumber: "B202", Block: "B", Available: true},
		{RoomNumber: "C301", Block: "C", Available: true},
	}
}

func demoTimeSlots() []models.TimeSlot {
	room := func(s string) *string { return &s }
	return []models.TimeSlot{
		{DayOfWeek: "Monday", StartTime: "08:00", EndTime: "12:00", RoomNumber: room("A101")},
		{DayOfWeek: "Monday", StartTime: "13:00", EndTime: "17:00", RoomNumber: room("B201")},
		{DayOfWeek: "Tuesday", StartTime: "09:00", EndTime: "11:00", RoomNumber: room("A103")},
		{DayOfWeek: "Wednesday", StartTime: "08:00", EndTime: "18:00", RoomNumber: room("C301")},
		{DayOfWeek: "Thursday", StartTime: "10:00", EndTime: "12:00", RoomNumber: room("B202")},
		{DayOfWeek: "Friday", StartTime: "08:00", EndTime: "10:00", RoomNumber: room("A101")},
	}
}
