package model

import (
	"time"

	"gorm.io/datatypes"
)

// CampReport is the medical report issued for one camp booking. Patient
// fields are a snapshot taken at issue time.
// @Description Camp medical report
type CampReport struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BookingID string `json:"booking_id" gorm:"column:booking_id;type:varchar(36);uniqueIndex;not null"`
	UserID    string `json:"user_id" gorm:"column:user_id;type:varchar(36);index"`

	PatientName    string `json:"patient_name" gorm:"column:patient_name"`
	PatientAge     int    `json:"patient_age" gorm:"column:patient_age"`
	PatientGender  string `json:"patient_gender" gorm:"column:patient_gender"`
	PatientAddress string `json:"patient_address" gorm:"column:patient_address;type:text"`
	PatientPhone   string `json:"patient_phone" gorm:"column:patient_phone"`
	PatientWard    string `json:"patient_ward" gorm:"column:patient_ward"`

	Departments datatypes.JSON `json:"departments" gorm:"column:departments;type:json" swaggertype:"array,string" example:"General Medicine,Dental"`

	VitalBP         string `json:"vital_bp" gorm:"column:vital_bp" example:"120/80"`
	VitalBloodSugar string `json:"vital_blood_sugar" gorm:"column:vital_blood_sugar" example:"96"`
	VitalWeight     string `json:"vital_weight" gorm:"column:vital_weight" example:"64"`
	VitalTemp       string `json:"vital_temp" gorm:"column:vital_temp" example:"98.6"`
	VitalSpO2       string `json:"vital_spo2" gorm:"column:vital_spo2" example:"98"`
	VitalPulse      string `json:"vital_pulse" gorm:"column:vital_pulse" example:"72"`

	DoctorsAdvice   string `json:"doctors_advice" gorm:"column:doctors_advice;type:text"`
	DoctorName      string `json:"doctor_name" gorm:"column:doctor_name"`
	DoctorSignature string `json:"doctor_signature" gorm:"column:doctor_signature"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (CampReport) TableName() string { return "camp_reports" }
