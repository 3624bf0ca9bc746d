package migration

import (
	"fmt"
	"log"

	"recipe-room-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeEditHistory{}); err != nil {
		log.Fatalf("Error migrating recipe edit history database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Rating{}); err != nil {
		log.Fatalf("Error migrating rating database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Bookmark{}); err != nil {
		log.Fatalf("Error migrating bookmark database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Comment{}); err != nil {
		log.Fatalf("Error migrating comment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeGroup{}); err != nil {
		log.Fatalf("Error migrating recipe group database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroupMember{}); err != nil {
		log.Fatalf("Error migrating group member database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroupRecipe{}); err != nil {
		log.Fatalf("Error migrating group recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PaymentTransaction{}); err != nil {
		log.Fatalf("Error migrating payment transaction database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
