package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skribbl/config"
	"skribbl/models"
	"skribbl/routes"
	"skribbl/services/skribbl"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	log.Println("Setting up skribbl bot...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	player := models.Player{Name: cfg.Name, Avatar: cfg.Avatar}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	session, err := skribbl.Join(ctx, player, skribbl.Options{
		AccessKey: cfg.AccessKey,
		JoinCode:  cfg.JoinCode,
		Language:  cfg.Language,
	})
	cancel()
	if err != nil {
		log.Fatalf("Error joining lobby: %v", err)
	}
	defer session.Close()

	r := gin.Default()
	routes.SetupRoutes(r, session)
	go func() {
		if err := r.Run(":" + cfg.StatusPort); err != nil {
			log.Fatalf("Error starting status API: %v", err)
		}
	}()
	log.Printf("Status API started on port %s", cfg.StatusPort)

	signalC := make(chan os.Signal, 1)
	signal.Notify(signalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range signalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				log.Println("Shutting down...")
				session.Close()
			}
		}
	}()

	log.Println("Game in progress...")
	session.Wait()
}
