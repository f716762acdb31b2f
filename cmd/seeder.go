package cmd

import (
	"fmt"
	"log"
	"time"

	categoryDatamodel "github.com/frahmantamala/expense-tracker/internal/core/datamodel/category"
	expenseDatamodel "github.com/frahmantamala/expense-tracker/internal/core/datamodel/expense"
	"github.com/spf13/cobra"
)

const seedUserID = "demo"

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := initGorm(db, cfg.Database.Driver)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"expenses", "categories", "cash_transactions"} {
				if err := gormDB.Exec(fmt.Sprintf("DELETE FROM %s WHERE user_id = ?", table), seedUserID).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data for user:", seedUserID)
		}

		categories := []categoryDatamodel.ExpenseCategory{
			{UserID: seedUserID, Name: "Food", Subcategories: categoryDatamodel.SubcategoryList{"Groceries", "Restaurants", "Takeout"}},
			{UserID: seedUserID, Name: "Transport", Subcategories: categoryDatamodel.SubcategoryList{"Fuel", "Public Transit", "Ride Hailing"}},
			{UserID: seedUserID, Name: "Utilities", Subcategories: categoryDatamodel.SubcategoryList{"Electricity", "Water", "Internet"}},
			{UserID: seedUserID, Name: "Entertainment", Subcategories: categoryDatamodel.SubcategoryList{"Streaming", "Movies"}},
			{UserID: seedUserID, Name: "Cash Withdrawal"},
		}

		for _, c := range categories {
			var count int64
			if err := gormDB.Model(&categoryDatamodel.ExpenseCategory{}).
				Where("user_id = ? AND name = ?", c.UserID, c.Name).
				Count(&count).Error; err != nil {
				log.Fatalf("failed to check category %s: %v", c.Name, err)
			}
			if count > 0 {
				continue
			}
			if err := gormDB.Create(&c).Error; err != nil {
				log.Fatalf("failed to insert category %s: %v", c.Name, err)
			}
		}
		fmt.Println("Seeded categories for user:", seedUserID)

		today := time.Now().Truncate(24 * time.Hour)
		expenses := []expenseDatamodel.Expense{
			{UserID: seedUserID, Amount: 54.20, Type: "need", Date: today.AddDate(0, 0, -6), Category: "Food", Subcategory: "Groceries", Description: "Weekly groceries", PaidBy: "Credit Card"},
			{UserID: seedUserID, Amount: 12.50, Type: "want", Date: today.AddDate(0, 0, -5), Category: "Food", Subcategory: "Takeout", Description: "Lunch delivery", PaidBy: "Cash", Tags: expenseDatamodel.TagList{"lunch"}},
			{UserID: seedUserID, Amount: 200.00, Type: "not_sure", Date: today.AddDate(0, 0, -4), Category: "Cash Withdrawal", Description: "ATM withdrawal", PaidBy: "Debit Card"},
			{UserID: seedUserID, Amount: 35.00, Type: "need", Date: today.AddDate(0, 0, -3), Category: "Transport", Subcategory: "Fuel", Description: "Gas station", PaidBy: "Credit Card"},
			{UserID: seedUserID, Amount: 15.99, Type: "want", Date: today.AddDate(0, 0, -2), Category: "Entertainment", Subcategory: "Streaming", Description: "Monthly subscription", PaidBy: "Credit Card", Tags: expenseDatamodel.TagList{"recurring", "subscription"}},
			{UserID: seedUserID, Amount: 80.00, Type: "need", Date: today.AddDate(0, 0, -1), Category: "Utilities", Subcategory: "Internet", Description: "Internet bill", PaidBy: "Bank Transfer", Tags: expenseDatamodel.TagList{"recurring"}},
		}

		for _, e := range expenses {
			if err := gormDB.Create(&e).Error; err != nil {
				log.Fatalf("failed to insert expense %q: %v", e.Description, err)
			}
		}
		fmt.Printf("Seeded %d expenses for user: %s\n", len(expenses), seedUserID)
	},
}
