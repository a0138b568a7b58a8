package model

import "time"

// Doctor is a telehealth doctor profile. A signed-in user acts as this doctor
// when their email matches Email exactly.
// @Description Telehealth doctor profile
type Doctor struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)" example:"8f14e45f-ceea-467f-a0e6-5b7f3c1e2a10"`
	Email          string    `json:"email" gorm:"column:email;type:varchar(191);uniqueIndex;not null" example:"dr.sharma@example.com"`
	Name           string    `json:"name" gorm:"column:name;not null" example:"Dr. Asha Sharma"`
	Description    string    `json:"description" gorm:"column:description;type:text" example:"15 years in family medicine"`
	Category       string    `json:"category" gorm:"column:category;index" example:"Primary Care"`
	Specialization string    `json:"specialization" gorm:"column:specialization;index" example:"Physicians"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Doctor) TableName() string { return "telehealth_doctors" }
