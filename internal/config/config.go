package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config is built once by Load and handed to every component. Nothing mutates
// it after construction; there is no other process-wide state.
type Config struct {
	Database Database `json:"database" mapstructure:"database"`
	Scale    Scale    `json:"scale" mapstructure:"scale"`
}

type Database struct {
	URLEnv string `json:"url_env" mapstructure:"url_env"`
	Schema string `json:"schema" mapstructure:"schema"`
}

// Scale holds the per-entity scale factors. Entities without their own knob
// (assignments, addresses, payments, the log tables) derive their volume from
// a parent's factor.
type Scale struct {
	Departments      int `json:"departments" mapstructure:"departments"`
	Employees        int `json:"employees" mapstructure:"employees"`
	Projects         int `json:"projects" mapstructure:"projects"`
	Customers        int `json:"customers" mapstructure:"customers"`
	Products         int `json:"products" mapstructure:"products"`
	Orders           int `json:"orders" mapstructure:"orders"`
	MaxItemsPerOrder int `json:"max_items_per_order" mapstructure:"max_items_per_order"`
}

// DefaultScale returns the factors used when the config file sets none.
func DefaultScale() Scale {
	return Scale{
		Departments:      6,
		Employees:        50,
		Projects:         12,
		Customers:        40,
		Products:         25,
		Orders:           120,
		MaxItemsPerOrder: 5,
	}
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Database.Schema == "" {
		cfg.Database.Schema = "public"
	}
	def := DefaultScale()
	if !viper.IsSet("scale.departments") {
		cfg.Scale.Departments = def.Departments
	}
	if !viper.IsSet("scale.employees") {
		cfg.Scale.Employees = def.Employees
	}
	if !viper.IsSet("scale.projects") {
		cfg.Scale.Projects = def.Projects
	}
	if !viper.IsSet("scale.customers") {
		cfg.Scale.Customers = def.Customers
	}
	if !viper.IsSet("scale.products") {
		cfg.Scale.Products = def.Products
	}
	if !viper.IsSet("scale.orders") {
		cfg.Scale.Orders = def.Orders
	}
	if !viper.IsSet("scale.max_items_per_order") {
		cfg.Scale.MaxItemsPerOrder = def.MaxItemsPerOrder
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	s := c.Scale
	named := []struct {
		name string
		n    int
	}{
		{"departments", s.Departments},
		{"employees", s.Employees},
		{"projects", s.Projects},
		{"customers", s.Customers},
		{"products", s.Products},
		{"orders", s.Orders},
	}
	for _, f := range named {
		if f.n < 0 {
			return fmt.Errorf("scale factor %s cannot be negative: %d", f.name, f.n)
		}
	}
	if s.MaxItemsPerOrder < 1 {
		return fmt.Errorf("max_items_per_order must be at least 1, got %d", s.MaxItemsPerOrder)
	}
	return nil
}
