package database

import (
	"time"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// APIKey represents the api_keys table
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"-"`
	KeyPreview string     `json:"key_preview"`
	Name       string     `gorm:"not null" json:"name"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table
type APIUsage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	KeyID        uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date         string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount int    `gorm:"default:0" json:"request_count"`
	TotalShifts  int    `gorm:"default:0" json:"total_shifts"`
	TotalMentors int    `gorm:"default:0" json:"total_mentors"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// MentorRecord represents the mentors table
type MentorRecord struct {
	ID                  uint     `gorm:"primaryKey"`
	Name                string   `gorm:"uniqueIndex;not null"`
	HoursWantedPerWeek  float64  `gorm:"not null"`
	HardDates           []int    `gorm:"type:text;serializer:json"`
	UnavailableWeekdays []string `gorm:"type:text;serializer:json"`
	PreferredWeekdays   []string `gorm:"type:text;serializer:json"`
	AutoFill            bool
	ShowOnCalendar      bool
	UpdatedAt           time.Time
}

// HolidaySetting represents the holiday_settings table, one row per month
type HolidaySetting struct {
	ID        uint  `gorm:"primaryKey"`
	Year      int   `gorm:"uniqueIndex:idx_holiday_month;not null"`
	Month     int   `gorm:"uniqueIndex:idx_holiday_month;not null"`
	Dates     []int `gorm:"type:text;serializer:json"`
	UpdatedAt time.Time
}

// ScheduleRecord represents the schedules table, one generated schedule per month
type ScheduleRecord struct {
	ID        uint                   `gorm:"primaryKey"`
	Year      int                    `gorm:"uniqueIndex:idx_schedule_month;not null"`
	Month     int                    `gorm:"uniqueIndex:idx_schedule_month;not null"`
	Result    *models.ScheduleResult `gorm:"type:text;serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InitDB opens PostgreSQL when databaseURL is set, SQLite at dataPath
// otherwise, and migrates the schema.
func InitDB(databaseURL, dataPath string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	if databaseURL != "" {
		dialector = postgres.New(postgres.Config{
			DSN:                  databaseURL,
			PreferSimpleProtocol: true,
		})
		cfg.PrepareStmt = false
	} else {
		dialector = sqlite.Open(dataPath)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&APIKey{}, &APIUsage{}, &MasterUser{}, &MentorRecord{}, &HolidaySetting{}, &ScheduleRecord{})
}
