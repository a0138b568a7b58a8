package model

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

const (
	RoleAdminID uint32 = 1
	RoleUserID  uint32 = 2
)

type Role struct {
	ID   uint32 `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
}

func (Role) TableName() string { return "roles" }

// RoleName maps a role id to its name; unknown ids are plain users.
func RoleName(id uint32) string {
	if id == RoleAdminID {
		return RoleAdmin
	}
	return RoleUser
}

// SeedRoles inserts the fixed roles if they are missing.
func SeedRoles(db *gorm.DB) error {
	roles := []Role{
		{ID: RoleAdminID, Name: RoleAdmin},
		{ID: RoleUserID, Name: RoleUser},
	}

	for _, role := range roles {
		var existing Role
		err := db.Where("name = ?", role.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&role).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role.Name, err)
		}
	}
	return nil
}
