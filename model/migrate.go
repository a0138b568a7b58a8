package model

import "gorm.io/gorm"

// AllModels lists every table owned by the service, in migration order.
var AllModels = []interface{}{
	&Role{},
	&User{},
	&Session{},
	&Profile{},
	&Doctor{},
	&Slot{},
	&TelehealthBooking{},
	&HomeCheckupPackage{},
	&HomeCheckupBooking{},
	&Camp{},
	&CampBooking{},
	&CampReport{},
	&SecurityLog{},
}

// Migrate creates or updates all tables and seeds the fixed roles.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels...); err != nil {
		return err
	}
	return SeedRoles(db)
}
