package config

import (
	"log"

	"navims-backend/internal/adapters/persistence/models"
	"navims-backend/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("running database seeders...")

	if err := s.seedBaselineSetups(); err != nil {
		log.Printf("setup seeder skipped: %v", err)
	}
	if err := s.seedAdminUser(); err != nil {
		log.Printf("admin seeder skipped: %v", err)
	}

	log.Println("database seeding completed")
	return nil
}

// seedBaselineSetups seeds the taxonomy roots the UI expects
func (s *Seeder) seedBaselineSetups() error {
	names := []string{"Equipment Type", "Command"}

	for _, name := range names {
		var count int64
		s.db.Model(&models.Setup{}).Where("setup_name = ?", name).Count(&count)
		if count > 0 {
			continue
		}
		if err := s.db.Create(&models.Setup{SetupName: name}).Error; err != nil {
			return err
		}
		log.Printf("setup created: %s", name)
	}
	return nil
}

// seedAdminUser seeds a default admin account for development.
// In production, create the admin through a secure process and
// rotate this password immediately.
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := password.Hash("admin123")
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: "admin",
		Password: hashed,
		FullName: "System Administrator",
		Role:     "admin",
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("admin user created: %s", admin.Username)
	return nil
}
