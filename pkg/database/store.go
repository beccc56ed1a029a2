package database

import (
	"errors"
	"time"

	"github.com/arnavshah/mentor-scheduler-api/pkg/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("record not found")

// Store wraps the database with the queries the handlers need
type Store struct {
	DB *gorm.DB
}

// NewStore creates a store on an open database
func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func toMentor(r MentorRecord) *models.Mentor {
	return &models.Mentor{
		Name:                r.Name,
		HoursWantedPerWeek:  r.HoursWantedPerWeek,
		HardDates:           append([]int{}, r.HardDates...),
		UnavailableWeekdays: append([]string{}, r.UnavailableWeekdays...),
		PreferredWeekdays:   append([]string{}, r.PreferredWeekdays...),
		AutoFill:            r.AutoFill,
		ShowOnCalendar:      r.ShowOnCalendar,
	}
}

// ListMentors returns every stored mentor ordered by name
func (s *Store) ListMentors() ([]*models.Mentor, error) {
	var rows []MentorRecord
	if err := s.DB.Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*models.Mentor, 0, len(rows))
	for _, r := range rows {
		out = append(out, toMentor(r))
	}
	return out, nil
}

// GetMentor returns one mentor by name
func (s *Store) GetMentor(name string) (*models.Mentor, error) {
	var row MentorRecord
	if err := s.DB.Where("name = ?", name).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return toMentor(row), nil
}

// UpsertMentor inserts the mentor or replaces the stored constraints
func (s *Store) UpsertMentor(m *models.Mentor) error {
	row := MentorRecord{
		Name:                m.Name,
		HoursWantedPerWeek:  m.HoursWantedPerWeek,
		HardDates:           m.HardDates,
		UnavailableWeekdays: m.UnavailableWeekdays,
		PreferredWeekdays:   m.PreferredWeekdays,
		AutoFill:            m.AutoFill,
		ShowOnCalendar:      m.ShowOnCalendar,
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"hours_wanted_per_week", "hard_dates", "unavailable_weekdays",
			"preferred_weekdays", "auto_fill", "show_on_calendar", "updated_at",
		}),
	}).Create(&row).Error
}

// DeleteMentor removes a mentor by name
func (s *Store) DeleteMentor(name string) error {
	res := s.DB.Where("name = ?", name).Delete(&MentorRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetHolidays returns the holiday days of a month, empty when none are stored
func (s *Store) GetHolidays(year, month int) ([]int, error) {
	var row HolidaySetting
	err := s.DB.Where("year = ? AND month = ?", year, month).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []int{}, nil
	}
	if err != nil {
		return nil, err
	}
	if row.Dates == nil {
		return []int{}, nil
	}
	return row.Dates, nil
}

// SetHolidays replaces the holiday days of a month
func (s *Store) SetHolidays(year, month int, dates []int) error {
	row := HolidaySetting{Year: year, Month: month, Dates: append([]int{}, dates...)}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"dates", "updated_at"}),
	}).Create(&row).Error
}

// SaveSchedule stores the result, replacing any schedule for the same month
func (s *Store) SaveSchedule(r *models.ScheduleResult) error {
	row := ScheduleRecord{Year: r.Year, Month: r.Month, Result: r}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"result", "updated_at"}),
	}).Create(&row).Error
}

// GetSchedule loads the stored schedule of a month
func (s *Store) GetSchedule(year, month int) (*models.ScheduleResult, error) {
	var row ScheduleRecord
	if err := s.DB.Where("year = ? AND month = ?", year, month).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	if row.Result == nil {
		return nil, ErrNotFound
	}
	return row.Result, nil
}

// FindOrCreateAPIKey returns the usage record of a verified key
func (s *Store) FindOrCreateAPIKey(key, name string) (*APIKey, error) {
	var apiKey APIKey
	err := s.DB.Where(APIKey{Key: key}).Attrs(APIKey{
		Name:       name,
		KeyPreview: Preview(key),
		RateLimit:  10000,
	}).FirstOrCreate(&apiKey).Error
	if err != nil {
		return nil, err
	}
	return &apiKey, nil
}

// Preview shortens a key for display (e.g. abc...1234)
func Preview(key string) string {
	if len(key) > 8 {
		return key[:3] + "..." + key[len(key)-4:]
	}
	return "****"
}

// RecordUsage records API usage using a single-query upsert
// (supported by both Postgres and SQLite)
func (s *Store) RecordUsage(keyID uint, shiftCount, mentorCount int) error {
	today := time.Now().Format("2006-01-02")
	return s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count": gorm.Expr("request_count + ?", 1),
			"total_shifts":  gorm.Expr("total_shifts + ?", shiftCount),
			"total_mentors": gorm.Expr("total_mentors + ?", mentorCount),
		}),
	}).Create(&APIUsage{
		KeyID:        keyID,
		Date:         today,
		RequestCount: 1,
		TotalShifts:  shiftCount,
		TotalMentors: mentorCount,
	}).Error
}

// UsageHistory returns the last 30 days of usage for a key
func (s *Store) UsageHistory(keyID uint) ([]APIUsage, error) {
	var usage []APIUsage
	err := s.DB.Where("key_id = ?", keyID).Order("date desc").Limit(30).Find(&usage).Error
	return usage, err
}
