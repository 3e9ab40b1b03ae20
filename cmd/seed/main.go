package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	"rentalhub/internal/config"
	"rentalhub/internal/database"
	"rentalhub/internal/domain"
	"rentalhub/internal/repository"
)

type seedItem struct {
	Category string
	Name     string
	SKU      string
	Rate     string
	Quantity int
}

var (
	categories = []domain.Category{
		{Name: "Cameras", Description: "Bodies and camcorders"},
		{Name: "Lenses", Description: "Prime and zoom lenses"},
		{Name: "Lighting", Description: "Strobes, LED panels and modifiers"},
	}

	items = []seedItem{
		{"Cameras", "Canon EOS R5", "CAM-R5", "45.00", 2},
		{"Cameras", "Sony A7 IV", "CAM-A7IV", "40.00", 1},
		{"Lenses", "RF 24-70mm f/2.8", "LNS-2470", "25.00", 3},
		{"Lenses", "FE 85mm f/1.4 GM", "LNS-85GM", "20.00", 1},
		{"Lighting", "Godox AD600 Pro", "LGT-AD600", "18.50", 4},
	}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	db, err := database.Connect(database.Options{DSN: cfg.Database.URL})
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	defer database.Close(db)

	log.Println("Running migrations...")
	if err := database.Migrate(db, cfg.Database.URL, cfg.Database.Migrations); err != nil {
		log.Fatal("migrate failed:", err)
	}

	ctx := context.Background()
	store := repository.NewStore(db)

	// ================== USERS ==================
	for _, u := range []struct {
		name, email, password string
		role                  domain.UserRole
	}{
		{"Administrator", "admin@rentalhub.local", "admin12345", domain.RoleAdmin},
		{"Front Desk", "staff@rentalhub.local", "staff12345", domain.RoleStaff},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		user := &domain.User{Name: u.name, Email: u.email, PasswordHash: string(hash), Role: u.role, Active: true}
		if err := store.Users().Upsert(ctx, user); err != nil {
			log.Fatalf("user %s: %v", u.email, err)
		}
		log.Printf("User ready: %s / %s (%s)", u.email, u.password, u.role)
	}

	// ================== CATEGORIES ==================
	categoryIDs := map[string]int64{}
	for _, c := range categories {
		existing, err := store.Categories().GetByName(ctx, c.Name)
		switch {
		case err == nil:
			categoryIDs[c.Name] = existing.ID
			continue
		case !repository.IsNotFound(err):
			log.Fatalf("category %s: %v", c.Name, err)
		}
		cat := c
		if err := store.Categories().Create(ctx, &cat); err != nil {
			log.Fatalf("category %s: %v", c.Name, err)
		}
		categoryIDs[c.Name] = cat.ID
	}
	log.Printf("Categories ready: %d", len(categoryIDs))

	// ================== ITEMS ==================
	for _, it := range items {
		sku := it.SKU
		item := domain.Item{
			CategoryID: categoryIDs[it.Category],
			Name:       it.Name,
			SKU:        &sku,
			Status:     domain.ItemAvailable,
			DailyRate:  decimal.RequireFromString(it.Rate),
			Quantity:   it.Quantity,
		}
		err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sku"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "category_id", "daily_rate"}),
		}).Create(&item).Error
		if err != nil {
			log.Fatalf("item %s: %v", it.SKU, err)
		}
	}
	log.Printf("Items ready: %d", len(items))

	// ================== CUSTOMERS ==================
	_, err = store.Customers().GetByEmail(ctx, "jane.doe@example.com")
	if repository.IsNotFound(err) {
		err = store.Customers().Create(ctx, &domain.Customer{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane.doe@example.com",
			Phone:     "+1 555 0100",
			Address:   "1 Market St",
		})
	}
	if err != nil {
		log.Fatal("customer:", err)
	}

	log.Println("Seed complete")
}
