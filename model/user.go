package model

import "time"

// User is an account able to sign in. Doctors are users whose email matches
// a Doctor row; there is no separate doctor role.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name         string    `json:"name" gorm:"column:name;not null" example:"Ram Thapa"`
	Email        string    `json:"email" gorm:"column:email;type:varchar(191);uniqueIndex;not null" example:"ram@example.com"`
	Password     string    `json:"-" gorm:"column:password;not null"`
	PasswordSalt string    `json:"-" gorm:"column:password_salt"`
	RoleID       uint32    `json:"role_id" gorm:"column:role_id;not null" example:"2"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}

func (User) TableName() string { return "users" }

// Session is a signed-in device. SessionToken travels in the session-token header.
type Session struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID       string    `json:"user_id" gorm:"column:user_id;type:varchar(36);index;not null"`
	SessionToken string    `json:"session_token" gorm:"column:session_token;type:varchar(512);uniqueIndex;not null"`
	ExpiresAt    time.Time `json:"expires_at" gorm:"column:expires_at"`
	ClientIP     string    `json:"client_ip" gorm:"column:client_ip"`
	Browser      string    `json:"browser" gorm:"column:browser"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Session) TableName() string { return "sessions" }
