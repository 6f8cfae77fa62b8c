package migration

import (
	"fmt"
	"log"

	"recipe-box-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Instruction{}); err != nil {
		log.Fatalf("Error migrating instruction database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
