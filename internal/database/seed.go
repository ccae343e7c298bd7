package database

import (
	"fmt"
	"log"
	"os"
	"sort"

	"procurehub/internal/engine"
	"procurehub/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedReferenceData populates the engine's lookup tables from the built-in
// defaults when they are empty. Idempotent: a non-empty supplier table skips
// the whole seed so admin edits survive restarts.
func SeedReferenceData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.SupplierOffer{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect supplier table: %w", err)
	}
	if count > 0 {
		return nil
	}

	catalog := engine.DefaultCatalog()
	items := make([]string, 0, len(catalog))
	for item := range catalog {
		items = append(items, item)
	}
	// Stable insert order keeps the catalog's tie-breaking deterministic.
	sort.Strings(items)

	return db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			for _, offer := range catalog[item] {
				row := model.SupplierOffer{
					Item:         item,
					Name:         offer.Name,
					UnitPrice:    offer.UnitPrice,
					Availability: offer.Availability,
					LeadTimeDays: offer.LeadTimeDays,
					Rating:       offer.Rating,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("failed to seed supplier %s/%s: %w", item, offer.Name, err)
				}
			}
		}

		for department, ledger := range engine.DefaultBudgets() {
			row := model.DepartmentBudget{
				Department: department,
				Total:      ledger.Total,
				Used:       ledger.Used,
				Remaining:  ledger.Remaining,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to seed budget for %s: %w", department, err)
			}
		}

		for department, matrix := range engine.DefaultApprovalMatrices() {
			row := model.ApprovalLimit{
				Department: department,
				Manager:    matrix.Manager,
				Director:   matrix.Director,
				VP:         matrix.VP,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to seed approval limits for %s: %w", department, err)
			}
		}

		for item, record := range engine.DefaultInventory() {
			row := model.InventoryLevel{
				Item:    item,
				Current: record.Current,
				Minimum: record.Minimum,
				Maximum: record.Maximum,
				OnOrder: record.OnOrder,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to seed inventory for %s: %w", item, err)
			}
		}

		return nil
	})
}

// SeedAdminUser creates the bootstrap admin account when the user table is
// empty. Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD, with dev
// defaults so a fresh checkout is usable immediately.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect user table: %w", err)
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" {
		email = "admin@procurehub.local"
	}
	if password == "" {
		password = "admin123"
		log.Println("ADMIN_PASSWORD not set, using default dev credentials")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := model.User{
		Username: "admin",
		Email:    email,
		Password: string(hashed),
		Role:     model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Bootstrap admin user created: %s", email)
	return nil
}
