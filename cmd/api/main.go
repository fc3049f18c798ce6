package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UnTrende/luxx-sub002/internal/cache"
	"github.com/UnTrende/luxx-sub002/internal/config"
	"github.com/UnTrende/luxx-sub002/internal/db"
	"github.com/UnTrende/luxx-sub002/internal/routes"
)

func main() {
	cfg := config.Load()

	database := db.NewDB(cfg)
	rdb := cache.NewRedis(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, rdb, cfg)

	log.Println("API de agendamento ouvindo em", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
