package main

import (
	"log"
	"time"

	"workforce-bot-api/internal/config"
	"workforce-bot-api/internal/model"
	"workforce-bot-api/pkg/database"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func main() {
	cfg := config.Load()
	if !cfg.IsDatabaseConfigured() {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.PoolConfig{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	defer database.Close(db)

	log.Println("Seeding demo contractors...")

	contractors := []model.Contractor{
		{
			TelegramId:      "100000001",
			FirstName:       strPtr("Dal"),
			LastName:        strPtr("Hughes"),
			Email:           strPtr("dal@example.com"),
			Username:        strPtr("dalhughes"),
			AdminPayRate:    floatPtr(18.50),
			IsCisRegistered: strPtr("true"),
			Status:          "approved",
		},
		{
			TelegramId:      "100000002",
			FirstName:       strPtr("Priya"),
			LastName:        strPtr("Shah"),
			Email:           strPtr("priya@example.com"),
			Username:        strPtr("priyashah"),
			IsCisRegistered: strPtr("false"),
			Status:          "approved",
		},
		{
			TelegramId: "100000003",
			FirstName:  strPtr("Pending"),
			LastName:   strPtr("Applicant"),
			Status:     "pending",
		},
	}

	for i := range contractors {
		c := &contractors[i]

		var existing model.Contractor
		if err := db.Where("telegram_id = ?", c.TelegramId).First(&existing).Error; err == nil {
			log.Printf("Contractor '%s' already exists, skipping...", c.TelegramId)
			*c = existing
			continue
		}

		if err := db.Create(c).Error; err != nil {
			log.Printf("Error creating contractor '%s': %v", c.TelegramId, err)
		} else {
			log.Printf("Created contractor: %s %s (%s)", *c.FirstName, *c.LastName, c.TelegramId)
		}
	}

	seedWork(db, contractors[0])
	seedWork(db, contractors[1])

	log.Println("Demo seeding completed!")
}

// seedWork adds sessions for the current week and a few jobs for c.
func seedWork(db *gorm.DB, c model.Contractor) {
	if c.Id == 0 {
		return
	}

	var count int64
	db.Model(&model.WorkSession{}).Where("contractor_id = ?", c.Id).Count(&count)
	if count > 0 {
		log.Printf("Work for contractor %d already seeded, skipping...", c.Id)
		return
	}

	name := *c.FirstName + " " + *c.LastName
	today := time.Now().Truncate(24 * time.Hour)

	shifts := []struct {
		total    string
		duration time.Duration
	}{
		{"7:45:00", 7*time.Hour + 45*time.Minute},
		{"8:30:00", 8*time.Hour + 30*time.Minute},
		{"6:15:00", 6*time.Hour + 15*time.Minute},
	}

	for i, shift := range shifts {
		start := today.AddDate(0, 0, -i).Add(8 * time.Hour)
		end := start.Add(shift.duration)
		session := model.WorkSession{
			ContractorId:    &c.Id,
			ContractorName:  name,
			StartTime:       start,
			EndTime:         &end,
			TotalHours:      strPtr(shift.total),
			JobSiteLocation: strPtr("12 Harbour Road"),
		}
		if err := db.Create(&session).Error; err != nil {
			log.Printf("Error creating session: %v", err)
		}
	}

	jobs := []model.Job{
		{
			ContractorId:   &c.Id,
			ContractorName: strPtr(name),
			Title:          "Kitchen refit",
			Location:       strPtr("12 Harbour Road"),
			Description:    strPtr("Strip out and refit kitchen units"),
			Status:         "assigned",
			DueDate:        strPtr(today.AddDate(0, 0, 14).Format("2006-01-02")),
			Phases:         datatypes.JSON([]byte(`[{"name":"Strip out","status":"completed"},{"name":"Fit units","status":"in_progress"}]`)),
		},
		{
			ContractorId:   &c.Id,
			ContractorName: strPtr(name),
			Title:          "Garden wall repair",
			Location:       strPtr("4 Mill Lane"),
			Status:         "pending",
		},
		{
			ContractorId:   &c.Id,
			ContractorName: strPtr(name),
			Title:          "Bathroom tiling",
			Location:       strPtr("7 Station Street"),
			Status:         "completed",
			DueDate:        strPtr(today.AddDate(0, 0, -3).Format("2006-01-02")),
		},
	}
	if err := db.Create(&jobs).Error; err != nil {
		log.Printf("Error creating jobs: %v", err)
	}

	log.Printf("Seeded %d sessions and %d jobs for %s", len(shifts), len(jobs), name)
}
