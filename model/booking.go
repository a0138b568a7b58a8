package model

import "time"

// TelehealthBooking records one completed booking wizard. SlotTimeStart is a
// copy of the chosen slot's start, not a reference to the slot row.
// @Description Telehealth consultation booking
type TelehealthBooking struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	DoctorID      string    `json:"doctor_id" gorm:"column:doctor_id;type:varchar(36);index;not null"`
	UserID        string    `json:"user_id" gorm:"column:user_id;type:varchar(36);index;not null"`
	BookingDate   string    `json:"booking_date" gorm:"column:booking_date;type:varchar(10);not null" example:"2025-01-10"`
	SlotTimeStart string    `json:"slot_time_start" gorm:"column:slot_time_start;type:varchar(8);not null" example:"09:00:00"`
	PatientName   string    `json:"patient_name" gorm:"column:patient_name;not null" example:"Test Patient"`
	PatientAge    int       `json:"patient_age" gorm:"column:patient_age" example:"30"`
	PatientGender string    `json:"patient_gender" gorm:"column:patient_gender" example:"female"`
	PatientNotes  string    `json:"patient_notes" gorm:"column:patient_notes;type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
}

func (TelehealthBooking) TableName() string { return "telehealth_bookings" }

// HomeCheckupBooking requests a home visit for a checkup package.
type HomeCheckupBooking struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PackageID      string    `json:"package_id" gorm:"column:package_id;type:varchar(36);index;not null"`
	UserID         string    `json:"user_id" gorm:"column:user_id;type:varchar(36);index;not null"`
	PatientName    string    `json:"patient_name" gorm:"column:patient_name;not null"`
	PatientAge     int       `json:"patient_age" gorm:"column:patient_age"`
	PatientAddress string    `json:"patient_address" gorm:"column:patient_address;type:text"`
	PatientContact string    `json:"patient_contact" gorm:"column:patient_contact"`
	PreferredDate  string    `json:"preferred_date" gorm:"column:preferred_date;type:varchar(10)" example:"2025-01-12"`
	PreferredTime  string    `json:"preferred_time" gorm:"column:preferred_time;type:varchar(8)" example:"10:30"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
}

func (HomeCheckupBooking) TableName() string { return "home_checkup_bookings" }

// CampBooking registers a patient for a community health camp.
type CampBooking struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CampID         string    `json:"camp_id" gorm:"column:camp_id;type:varchar(36);index;not null"`
	UserID         string    `json:"user_id" gorm:"column:user_id;type:varchar(36);index;not null"`
	PatientName    string    `json:"patient_name" gorm:"column:patient_name;not null"`
	PatientAge     int       `json:"patient_age" gorm:"column:patient_age"`
	PatientContact string    `json:"patient_contact" gorm:"column:patient_contact"`
	PatientGender  string    `json:"patient_gender" gorm:"column:patient_gender"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
}

func (CampBooking) TableName() string { return "camp_bookings" }
