package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/polarxpression/batterybuddy-golang/internal/activity"
	"github.com/polarxpression/batterybuddy-golang/internal/ai"
	"github.com/polarxpression/batterybuddy-golang/internal/database"
	"github.com/polarxpression/batterybuddy-golang/internal/handlers"
	"github.com/polarxpression/batterybuddy-golang/internal/routes"
	"github.com/polarxpression/batterybuddy-golang/internal/store"
	"github.com/polarxpression/batterybuddy-golang/internal/watch"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Main Database Connection (Read/Write) ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to primary database: %v", err)
	}
	defer db.Close()

	// 2. --- AI Service (optional) ---
	// Without a Gemini key the chat endpoint simply reports 503. The
	// assistant queries through a read-only pool when one is configured.
	var aiService *ai.AIService
	if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
		dbReadOnly := db
		if roDSN := os.Getenv("DB_DSN_READONLY"); roDSN != "" {
			dbReadOnly, err = database.OpenDBWithDSN(roDSN)
			if err != nil {
				log.Fatalf("Failed to connect to AI read-only database: %v", err)
			}
			defer dbReadOnly.Close()
		} else {
			log.Println("WARNING: DB_DSN_READONLY not set; AI assistant will use the primary pool.")
		}

		aiService, err = ai.NewAIService(geminiKey, dbReadOnly)
		if err != nil {
			log.Fatalf("Failed to initialize AI Service: %v", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set; AI assistant disabled.")
	}

	// --- Application Setup ---
	app := &handlers.Handlers{
		Store:     store.NewMySQLStore(db),
		Activity:  activity.NewLog(),
		Hub:       watch.NewHub(),
		AIService: aiService,
	}

	// --- 3. Background Worker (Low-Stock Sweep) ---
	// Runs hourly in its own goroutine and records a summary of anything
	// at or below its threshold.
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		log.Println("Background Worker Started: Monitoring for low-stock batteries...")

		for range ticker.C {
			items, err := app.Store.ListItems(context.Background())
			if err != nil {
				log.Printf("Low-stock sweep failed: %v", err)
				continue
			}
			low := 0
			for _, item := range items {
				if item.IsLowStock() {
					low++
				}
			}
			if low > 0 {
				log.Printf("Low-stock sweep: %d of %d items at or below threshold", low, len(items))
				app.Activity.Append("sweep", fmt.Sprintf("%d item(s) low on stock", low))
			}
		}
	}()

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting BatteryBuddy API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
