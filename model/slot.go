package model

import "time"

// Slot is a recurring availability window of one doctor. StartTime and
// EndTime keep the submitted text so ordering stays lexical.
// @Description Doctor availability slot
type Slot struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	DoctorID  string    `json:"doctor_id" gorm:"column:doctor_id;type:varchar(36);index;not null"`
	StartTime string    `json:"start_time" gorm:"column:start_time;type:varchar(32);not null" example:"2025-01-10T09:00"`
	EndTime   string    `json:"end_time" gorm:"column:end_time;type:varchar(32);not null" example:"2025-01-10T09:30"`
	IsActive  bool      `json:"is_active" gorm:"column:is_active"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Slot) TableName() string { return "telehealth_slots" }
