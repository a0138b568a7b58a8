package model

import "time"

type Profile struct {
	UserID    string    `json:"user_id" gorm:"primaryKey;column:user_id;type:varchar(36)"`
	Age       int       `json:"age" gorm:"column:age"`
	Phone     string    `json:"phone" gorm:"column:phone" example:"+977 9801234567"`
	Address   string    `json:"address" gorm:"column:address;type:text"`
	Gender    string    `json:"gender" gorm:"column:gender"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Profile) TableName() string { return "profiles" }
