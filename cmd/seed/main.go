// Command seed loads the demo dataset: three users (one per role), the base
// categories and locations, and a dozen assets referencing them. Users are
// skipped when they already exist; categories, locations and assets are
// reloaded from scratch.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/infrastructure/config"
	"github.com/matalogics/inventory-api/internal/infrastructure/db/mongo"
	"github.com/matalogics/inventory-api/pkg/logger"
)

const bcryptCost = 12

type seedUser struct {
	name     string
	email    string
	password string
	role     domain.Role
}

type seedAsset struct {
	name         string
	serialNumber string
	categoryName string
	locationName string
	purchaseDate string
	status       domain.AssetStatus
	quantity     int
	notes        string
}

var users = []seedUser{
	{"Sarah Johnson", "sarah.johnson@company.com", "admin123", domain.RoleAdmin},
	{"Michael Chen", "michael.chen@company.com", "manager123", domain.RoleManager},
	{"Emily Davis", "emily.davis@company.com", "viewer123", domain.RoleViewer},
}

var categories = []domain.Category{
	{Name: "IT Equipment", Description: "Computers, laptops, servers, networking equipment", Icon: "Monitor"},
	{Name: "Office Furniture", Description: "Desks, chairs, cabinets, tables", Icon: "Armchair"},
	{Name: "Tools", Description: "Power tools, hand tools, maintenance equipment", Icon: "Wrench"},
}

var locations = []domain.Location{
	{Name: "Office A", Address: "123 Main Street, Floor 1", Type: domain.LocationOffice},
	{Name: "Office B", Address: "123 Main Street, Floor 2", Type: domain.LocationOffice},
	{Name: "Warehouse 1", Address: "456 Industrial Blvd", Type: domain.LocationWarehouse},
	{Name: "Warehouse 2", Address: "789 Storage Ave", Type: domain.LocationWarehouse},
	{Name: "Remote Employee", Address: "Various Locations", Type: domain.LocationStore},
}

var assets = []seedAsset{
	{"Dell XPS 15 Laptop", "DXP-2024-001", "IT Equipment", "Office A", "2024-01-15", domain.AssetInUse, 15, "Developer workstations"},
	{"HP LaserJet Pro Printer", "HLP-2023-045", "IT Equipment", "Office A", "2023-06-20", domain.AssetAvailable, 3, ""},
	{"Herman Miller Aeron Chair", "HMA-2024-102", "Office Furniture", "Office A", "2024-02-10", domain.AssetInUse, 25, ""},
	{"Standing Desk - Electric", "SDE-2023-078", "Office Furniture", "Warehouse 1", "2023-08-05", domain.AssetInStock, 12, ""},
	{"Dewalt Power Drill Set", "DPD-2022-033", "Tools", "Warehouse 2", "2022-11-30", domain.AssetInRepair, 2, ""},
	{"MacBook Pro 16\"", "MBP-2024-089", "IT Equipment", "Remote Employee", "2024-03-01", domain.AssetInUse, 8, "Remote developer machines"},
	{"Cisco Network Switch 48-Port", "CNS-2023-012", "IT Equipment", "Warehouse 1", "2023-04-15", domain.AssetInUse, 4, ""},
	{"Conference Table - Large", "CTL-2024-005", "Office Furniture", "Office B", "2024-01-20", domain.AssetInUse, 2, ""},
	{"Tool Cabinet - Rolling", "TCR-2023-067", "Tools", "Warehouse 2", "2023-09-10", domain.AssetAvailable, 3, ""},
	{"Dell Monitor 27\"", "DM27-2024-156", "IT Equipment", "Warehouse 1", "2024-02-28", domain.AssetInStock, 4, "Low stock - reorder needed"},
	{"Multimeter Digital Pro", "MDP-2022-089", "Tools", "Warehouse 2", "2022-07-15", domain.AssetAvailable, 2, ""},
	{"Ergonomic Keyboard Set", "EKS-2024-201", "IT Equipment", "Warehouse 1", "2024-03-10", domain.AssetInStock, 3, ""},
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	userRepo := mongo.NewUserRepository(db)
	categoryRepo := mongo.NewCategoryRepository(db)
	locationRepo := mongo.NewLocationRepository(db)
	assetRepo := mongo.NewAssetRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	// Users: skip existing so re-running never clobbers changed passwords.
	for _, u := range users {
		if _, err := userRepo.FindByEmail(ctx, u.email); err == nil {
			log.Info().Str("email", u.email).Msg("user exists, skipping")
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			log.Fatal().Err(err).Str("email", u.email).Msg("user lookup failed")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcryptCost)
		if err != nil {
			log.Fatal().Err(err).Msg("password hash failed")
		}

		if _, err := userRepo.Create(ctx, &domain.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			Status:       domain.StatusActive,
		}); err != nil {
			log.Fatal().Err(err).Str("email", u.email).Msg("user creation failed")
		}
		log.Info().Str("email", u.email).Str("role", string(u.role)).Msg("user created")
	}

	categoryIDs := make(map[string]string, len(categories))
	for _, c := range categories {
		created, err := categoryRepo.Create(ctx, &c)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				existing := mustFindCategory(ctx, categoryRepo, c.Name, log)
				categoryIDs[c.Name] = existing
				continue
			}
			log.Fatal().Err(err).Str("category", c.Name).Msg("category creation failed")
		}
		categoryIDs[c.Name] = created.ID
	}

	locationIDs := make(map[string]string, len(locations))
	for _, l := range locations {
		created, err := locationRepo.Create(ctx, &l)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				existing := mustFindLocation(ctx, locationRepo, l.Name, log)
				locationIDs[l.Name] = existing
				continue
			}
			log.Fatal().Err(err).Str("location", l.Name).Msg("location creation failed")
		}
		locationIDs[l.Name] = created.ID
	}

	for _, a := range assets {
		purchased, err := time.Parse("2006-01-02", a.purchaseDate)
		if err != nil {
			log.Fatal().Err(err).Str("asset", a.name).Msg("bad purchase date")
		}

		_, err = assetRepo.Create(ctx, &domain.Asset{
			Name:         a.name,
			SerialNumber: a.serialNumber,
			CategoryID:   categoryIDs[a.categoryName],
			LocationID:   locationIDs[a.locationName],
			PurchaseDate: purchased,
			Status:       a.status,
			Quantity:     a.quantity,
			Notes:        a.notes,
		})
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				log.Info().Str("serial", a.serialNumber).Msg("asset exists, skipping")
				continue
			}
			log.Fatal().Err(err).Str("asset", a.name).Msg("asset creation failed")
		}
		log.Info().Str("asset", a.name).Msg("asset created")
	}

	log.Info().Msg("seeding completed")
}

func mustFindCategory(ctx context.Context, repo *mongo.CategoryRepository, name string, log zerolog.Logger) string {
	existing, err := repo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("category list failed")
	}
	for _, c := range existing {
		if c.Name == name {
			return c.ID
		}
	}
	log.Fatal().Str("category", name).Msg("category conflict but no match by name")
	return ""
}

func mustFindLocation(ctx context.Context, repo *mongo.LocationRepository, name string, log zerolog.Logger) string {
	existing, err := repo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("location list failed")
	}
	for _, l := range existing {
		if l.Name == name {
			return l.ID
		}
	}
	log.Fatal().Str("location", name).Msg("location conflict but no match by name")
	return ""
}
