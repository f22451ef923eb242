package models

import "gorm.io/gorm"

// AllModels lists every table for AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Group{},
		&Category{},
		&MenuItem{},
		&CartLine{},
		&Order{},
		&OrderItem{},
	}
}

// EnsureGroups creates the role groups once at startup. Request handling
// assumes they exist and never creates groups lazily.
func EnsureGroups(db *gorm.DB) error {
	for _, name := range []string{GroupManager, GroupDeliveryCrew} {
		group := Group{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&group).Error; err != nil {
			return err
		}
	}
	return nil
}
