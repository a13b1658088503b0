package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/studiofade/barber-manager/internal/config"
	"github.com/studiofade/barber-manager/internal/models"
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
		&models.Shop{},
		&models.User{},
		&models.Service{},
		&models.Client{},
		&models.Appointment{},
		&models.MonthlyPlan{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Trigger que alimenta o canal de invalidação consumido pelo listener.
	db.Exec(`
        CREATE OR REPLACE FUNCTION notify_appointments_changed()
        RETURNS trigger AS $$
        BEGIN
            PERFORM pg_notify('appointments_changed', '');
            RETURN NULL;
        END;
        $$ LANGUAGE plpgsql
    `)
	db.Exec(`
        DROP TRIGGER IF EXISTS appointments_changed ON appointments
    `)
	db.Exec(`
        CREATE TRIGGER appointments_changed
        AFTER INSERT OR UPDATE OR DELETE ON appointments
        FOR EACH STATEMENT
        EXECUTE FUNCTION notify_appointments_changed()
    `)

	db.Exec(`
        UPDATE shops
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}
