package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Ouss77/nabou-booking/internal/config"
	dbpkg "github.com/Ouss77/nabou-booking/internal/db"
	"github.com/Ouss77/nabou-booking/internal/routes"
	"github.com/Ouss77/nabou-booking/internal/storage"
)

func main() {

	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, log)

	images, err := storage.NewImageStore(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init image storage")
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, images, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
