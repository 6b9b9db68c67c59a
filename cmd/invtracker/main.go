package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"invtracker/internal/config"
	"invtracker/internal/http/handlers"
	applog "invtracker/internal/log"
	"invtracker/internal/repos"
)

func main() {
	if err := run(config.Load()); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource it opens so deferred closes happen before main exits.
func run(cfg config.Config) error {
	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			prev := log.Writer()
			log.SetOutput(io.MultiWriter(os.Stdout, f))
			defer log.SetOutput(prev)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("open db %s: %w", cfg.DBDSN, err)
	}
	defer db.Close()

	app := newApp(cfg, db)

	applog.Event("server.start", map[string]any{"port": cfg.Port, "db": cfg.DBDSN})
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("listen :%s: %w", cfg.Port, err)
	}
	return nil
}

func newApp(cfg config.Config, db *sqlx.DB) *fiber.App {
	engine := html.New(cfg.TemplatesDir, ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Server().MaxRequestBodySize = 64 << 10 // read-only API

	// ---------- Middlewares ----------
	app.Use(recover.New())
	// RFC 4122 v4 ids instead of fiber's default counter-based utils.UUID
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{Output: log.Writer()}))
	app.Use(helmet.New())

	// ---------- Routes ----------
	handlers.Routes(app, handlers.NewDeps(db), cfg.APIRateMax)
	return app
}
