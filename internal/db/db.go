package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	installNoOverlapConstraint(db)

	return db
}

// A constraint é a última barreira contra dois agendamentos sobrepostos do
// mesmo barbeiro, mesmo com várias réplicas da API.
const noOverlapSQL = `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
	) THEN
		ALTER TABLE appointments
		ADD CONSTRAINT appointments_no_overlap
		EXCLUDE USING gist (
			barber_id WITH =,
			tstzrange(start_time, end_time, '[)') WITH &&
		) WHERE (status <> 'canceled');
	END IF;
END
$$;`

func installNoOverlapConstraint(db *gorm.DB) {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Printf("db: btree_gist unavailable, overlap constraint skipped: %v", err)
		return
	}
	if err := db.Exec(noOverlapSQL).Error; err != nil {
		log.Printf("db: overlap constraint not installed: %v", err)
	}
}
