package services

import (
	"context"
	"log"
	"time"

	"navims-backend/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// warrantyHorizon is how far ahead the sweep looks for lapsing warranties
const warrantyHorizon = 30 * 24 * time.Hour

// CronService runs scheduled background jobs
type CronService struct {
	cron          *cron.Cron
	equipmentRepo *repositories.EquipmentRepository
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB) *CronService {
	return &CronService{
		cron:          cron.New(),
		equipmentRepo: repositories.NewEquipmentRepository(db),
	}
}

// Start schedules the warranty sweep (08:30 daily) and runs the cron loop
func (s *CronService) Start() {
	_, err := s.cron.AddFunc("30 8 * * *", s.runWarrantySweep)
	if err != nil {
		log.Printf("failed to schedule warranty sweep: %v", err)
		return
	}
	s.cron.Start()
	log.Println("cron service started (warranty sweep 08:30 daily)")
}

// Stop stops the cron loop
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("cron service stopped")
}

// runWarrantySweep logs how many active equipment records are out of
// warranty or about to fall out of it
func (s *CronService) runWarrantySweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()

	expired, err := s.equipmentRepo.CountWarrantyExpired(ctx, now)
	if err != nil {
		log.Printf("warranty sweep failed: %v", err)
		return
	}

	expiring, err := s.equipmentRepo.CountWarrantyExpiring(ctx, now, warrantyHorizon)
	if err != nil {
		log.Printf("warranty sweep failed: %v", err)
		return
	}

	log.Printf("warranty sweep: %d expired, %d expiring within 30 days", expired, expiring)
}
