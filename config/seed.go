package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// SeedCoffee is one starter-catalog entry from coffees.yaml.
type SeedCoffee struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	PictureURL  string  `yaml:"picture_url"`
	Price       float64 `yaml:"price"`
}

type seedFile struct {
	Coffees []SeedCoffee `yaml:"coffees"`
}

// LoadSeed reads the starter catalog used to populate an empty database.
func LoadSeed(path string) ([]SeedCoffee, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seed seedFile
	if err := yaml.Unmarshal(file, &seed); err != nil {
		return nil, err
	}

	return seed.Coffees, nil
}
