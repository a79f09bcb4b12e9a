package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"foodgram-backend/internal/config"
	"foodgram-backend/internal/database"
	"foodgram-backend/internal/database/models"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type IngredientData struct {
	Name            string `yaml:"name"`
	MeasurementUnit string `yaml:"measurement_unit"`
}

type TagData struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Slug  string `yaml:"slug"`
}

// File structures
type IngredientsFile struct {
	Ingredients []IngredientData `yaml:"ingredients"`
}

type TagsFile struct {
	Tags []TagData `yaml:"tags"`
}

func main() {
	log.Println("🚀 Loading reference data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Reference data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var ingredientsFile IngredientsFile
	if err := readYAMLFiles(dataDir, "ingredients", func(data []byte) error {
		var file IngredientsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		ingredientsFile.Ingredients = append(ingredientsFile.Ingredients, file.Ingredients...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load ingredients: %w", err)
	}

	var tagsFile TagsFile
	if err := readYAMLFiles(dataDir, "tags", func(data []byte) error {
		var file TagsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		tagsFile.Tags = append(tagsFile.Tags, file.Tags...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}

	validate := validator.New()

	ingredientCreated := 0
	for _, data := range ingredientsFile.Ingredients {
		created, err := createIngredient(db, validate, data)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create ingredient %s: %v", data.Name, err)
			continue
		}
		if created {
			ingredientCreated++
		}
	}
	log.Printf("📋 Ingredients: %d created, %d total", ingredientCreated, len(ingredientsFile.Ingredients))

	tagCreated := 0
	for _, data := range tagsFile.Tags {
		created, err := createTag(db, validate, data)
		if err != nil {
			return fmt.Errorf("failed to create tag %s: %w", data.Slug, err)
		}
		if created {
			tagCreated++
		}
	}
	log.Printf("📋 Tags: %d created, %d total", tagCreated, len(tagsFile.Tags))

	return nil
}

// readYAMLFiles calls load for every .yaml file under dataDir whose path contains kind
func readYAMLFiles(dataDir, kind string, load func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := load(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

// createIngredient inserts the ingredient unless one with the same name and unit exists
func createIngredient(db *gorm.DB, validate *validator.Validate, data IngredientData) (bool, error) {
	ingredient := models.Ingredient{
		Name:            strings.TrimSpace(data.Name),
		MeasurementUnit: strings.TrimSpace(data.MeasurementUnit),
	}
	if err := validate.Struct(&ingredient); err != nil {
		return false, err
	}

	var existing models.Ingredient
	err := db.Where("name = ? AND measurement_unit = ?", ingredient.Name, ingredient.MeasurementUnit).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query ingredient: %w", err)
	}

	if err := db.Create(&ingredient).Error; err != nil {
		return false, fmt.Errorf("failed to create ingredient: %w", err)
	}
	return true, nil
}

// createTag inserts the tag unless one with the same slug exists
func createTag(db *gorm.DB, validate *validator.Validate, data TagData) (bool, error) {
	tag := models.Tag{
		Name:  strings.TrimSpace(data.Name),
		Color: strings.ToUpper(strings.TrimSpace(data.Color)),
		Slug:  strings.TrimSpace(data.Slug),
	}
	if err := validate.Struct(&tag); err != nil {
		return false, err
	}

	var existing models.Tag
	err := db.Where("slug = ?", tag.Slug).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query tag: %w", err)
	}

	if err := db.Create(&tag).Error; err != nil {
		return false, fmt.Errorf("failed to create tag: %w", err)
	}
	return true, nil
}
