package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/BIG-PRIMEZ/mortgage-prequalification/calculation"
	"github.com/BIG-PRIMEZ/mortgage-prequalification/config"
	"github.com/BIG-PRIMEZ/mortgage-prequalification/database"
	"github.com/BIG-PRIMEZ/mortgage-prequalification/routes"
)

func main() {
    cfg := config.Load()
    database.Connect(cfg.DatabaseURL)
    database.EnsureSchema()
    if cfg.TablesXLSX != "" {
        if err := calculation.LoadWorkbook(cfg.TablesXLSX); err != nil {
            log.Fatalf("load rate tables from %s: %v", cfg.TablesXLSX, err)
        }
        log.Printf("tax and expenditure tables loaded from %s", cfg.TablesXLSX)
    }
    r := gin.Default()
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})
	routes.Register(r, cfg)
	log.Printf("server on :%s", cfg.Port)
	r.Run(":" + cfg.Port)
}
