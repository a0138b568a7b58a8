package model

import "time"

type HomeCheckupPackage struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string    `json:"title" gorm:"column:title;not null" example:"Full Body Checkup"`
	Price       float64   `json:"price" gorm:"column:price" example:"1499"`
	Description string    `json:"description" gorm:"column:description;type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (HomeCheckupPackage) TableName() string { return "home_checkup_packages" }

type Camp struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title         string    `json:"title" gorm:"column:title;not null" example:"Free Eye Camp"`
	CampDate      string    `json:"camp_date" gorm:"column:camp_date;type:varchar(10)" example:"2025-02-01"`
	CampTime      string    `json:"camp_time" gorm:"column:camp_time;type:varchar(32)" example:"09:00 - 13:00"`
	Venue         string    `json:"venue" gorm:"column:venue"`
	Price         float64   `json:"price" gorm:"column:price"`
	Description   string    `json:"description" gorm:"column:description;type:text"`
	GoogleMapLink string    `json:"google_map_link" gorm:"column:google_map_link"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Camp) TableName() string { return "upcoming_camps" }
