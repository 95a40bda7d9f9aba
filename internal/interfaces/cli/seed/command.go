package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"fieldserve/internal/domain/device"
	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/domain/restaurant"
	"fieldserve/internal/domain/user"
	"fieldserve/internal/infrastructure/auth"
	"fieldserve/internal/infrastructure/config"
	"fieldserve/internal/infrastructure/database"
	"fieldserve/internal/infrastructure/repository"
	"fieldserve/internal/shared/authorization"
	"fieldserve/internal/shared/logger"
)

var (
	env     string
	fixture string
)

// Fixture is the YAML document the seed command loads. Restaurants are
// inserted first so users and devices can reference them by list index.
type Fixture struct {
	Restaurants []struct {
		Name    string `yaml:"name"`
		Address string `yaml:"address"`
		Phone   string `yaml:"phone"`
	} `yaml:"restaurants"`
	Users []struct {
		Email           string `yaml:"email"`
		Password        string `yaml:"password"`
		Name            string `yaml:"name"`
		Phone           string `yaml:"phone"`
		Role            string `yaml:"role"`
		RestaurantIndex *int   `yaml:"restaurant_index"`
	} `yaml:"users"`
	Devices []struct {
		Name            string `yaml:"name"`
		Category        string `yaml:"category"`
		SerialNumber    string `yaml:"serial_number"`
		Model           string `yaml:"model"`
		RestaurantIndex int    `yaml:"restaurant_index"`
	} `yaml:"devices"`
	Inventory []struct {
		Name     string  `yaml:"name"`
		SKU      string  `yaml:"sku"`
		Category string  `yaml:"category"`
		Stock    int     `yaml:"stock"`
		MinStock int     `yaml:"min_stock"`
		MaxStock int     `yaml:"max_stock"`
		Location string  `yaml:"location"`
		Supplier string  `yaml:"supplier"`
		UnitCost float64 `yaml:"unit_cost"`
	} `yaml:"inventory"`
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixture data",
		Long:  `Load restaurants, users, devices and inventory from a YAML fixture into the database.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&fixture, "fixture", "f", "configs/seed.yaml", "Path to the fixture file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, env); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	raw, err := os.ReadFile(fixture)
	if err != nil {
		return fmt.Errorf("failed to read fixture: %w", err)
	}

	var fx Fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return fmt.Errorf("failed to parse fixture: %w", err)
	}

	log := logger.NewLogger().Named("seed")
	ctx := context.Background()
	db := database.Get()

	restaurantRepo := repository.NewRestaurantRepository(db)
	userRepo := repository.NewUserRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	itemRepo := repository.NewInventoryItemRepository(db)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	restaurantIDs := make([]uint, 0, len(fx.Restaurants))
	for _, r := range fx.Restaurants {
		entity, err := restaurant.NewRestaurant(r.Name, r.Address, r.Phone)
		if err != nil {
			return fmt.Errorf("invalid restaurant %q: %w", r.Name, err)
		}
		if err := restaurantRepo.Save(ctx, entity); err != nil {
			return fmt.Errorf("failed to save restaurant %q: %w", r.Name, err)
		}
		restaurantIDs = append(restaurantIDs, entity.ID())
		log.Infow("seeded restaurant", "name", r.Name, "id", entity.ID())
	}

	for _, u := range fx.Users {
		hash, err := hasher.Hash(u.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %q: %w", u.Email, err)
		}
		var restaurantID *uint
		if u.RestaurantIndex != nil {
			if *u.RestaurantIndex >= len(restaurantIDs) {
				return fmt.Errorf("user %q references unknown restaurant index %d", u.Email, *u.RestaurantIndex)
			}
			restaurantID = &restaurantIDs[*u.RestaurantIndex]
		}
		entity, err := user.NewUser(u.Email, hash, u.Name, u.Phone, authorization.UserRole(u.Role), restaurantID)
		if err != nil {
			return fmt.Errorf("invalid user %q: %w", u.Email, err)
		}
		if err := userRepo.Save(ctx, entity); err != nil {
			return fmt.Errorf("failed to save user %q: %w", u.Email, err)
		}
		log.Infow("seeded user", "email", u.Email, "role", u.Role)
	}

	for _, d := range fx.Devices {
		if d.RestaurantIndex >= len(restaurantIDs) {
			return fmt.Errorf("device %q references unknown restaurant index %d", d.SerialNumber, d.RestaurantIndex)
		}
		entity, err := device.NewDevice(d.Name, d.Category, d.SerialNumber, d.Model, restaurantIDs[d.RestaurantIndex])
		if err != nil {
			return fmt.Errorf("invalid device %q: %w", d.SerialNumber, err)
		}
		if err := deviceRepo.Save(ctx, entity); err != nil {
			return fmt.Errorf("failed to save device %q: %w", d.SerialNumber, err)
		}
		log.Infow("seeded device", "serial", d.SerialNumber)
	}

	for _, i := range fx.Inventory {
		entity, err := inventory.NewItem(i.Name, i.SKU, i.Category, i.Stock, i.MinStock, i.MaxStock, i.Location, i.Supplier, i.UnitCost)
		if err != nil {
			return fmt.Errorf("invalid inventory item %q: %w", i.SKU, err)
		}
		if err := itemRepo.Save(ctx, entity); err != nil {
			return fmt.Errorf("failed to save inventory item %q: %w", i.SKU, err)
		}
		log.Infow("seeded inventory item", "sku", i.SKU, "stock", i.Stock)
	}

	log.Infow("seed complete",
		"restaurants", len(fx.Restaurants),
		"users", len(fx.Users),
		"devices", len(fx.Devices),
		"inventory", len(fx.Inventory),
	)
	return nil
}
