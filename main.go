package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/bot"
	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/config"
	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/routes"
	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/store"
)

func main() {
	log.Println("✅ Starting Coffee Shop Bot...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB and schema
	db := initDatabase()
	st := store.New(db)
	if err := st.Init(); err != nil {
		log.Fatalf("❌ Schema migration failed: %v", err)
	}

	// Seed the catalog on first run
	seedCatalog(st)

	// Telegram bot
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("❌ TELEGRAM_BOT_TOKEN is not set")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Telegram: %v", err)
	}

	// Admin API
	go runAdminAPI(st)

	// Long-poll for updates until the process is stopped
	bot.New(api, st).Run()
}

// initDatabase sets up the GORM DB connection: Postgres when DATABASE_URL is
// set, otherwise a local SQLite file.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "coffee_shop.db"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to open %s: %v", path, err)
	}
	return db
}

// seedCatalog fills an empty catalog from coffees.yaml.
func seedCatalog(st *store.Store) {
	coffees, err := st.ListCoffees()
	if err != nil {
		log.Fatalf("❌ Failed to read catalog: %v", err)
	}
	if len(coffees) > 0 {
		return
	}

	seedPath := os.Getenv("SEED_PATH")
	if seedPath == "" {
		seedPath = "coffees.yaml"
	}
	seed, err := config.LoadSeed(seedPath)
	if err != nil {
		log.Printf("⚠️ No seed catalog loaded: %v", err)
		return
	}

	for _, coffee := range seed {
		if _, err := st.AddCoffee(coffee.Name, coffee.Description, coffee.PictureURL, coffee.Price); err != nil {
			log.Printf("❌ Failed to seed %q: %v", coffee.Name, err)
		}
	}
	log.Printf("✅ Added %d sample coffees to the database", len(seed))
}

// runAdminAPI serves the catalog/cart management endpoints.
func runAdminAPI(st *store.Store) {
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, st)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Admin API running on port %s...", port)
	if err := r.Run(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("❌ Failed to start admin API: %v", err)
	}
}
