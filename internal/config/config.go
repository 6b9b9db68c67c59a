package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port         string
	DBDSN        string
	TemplatesDir string
	LogFile      string
	APIRateMax   int
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "invtracker.db"
	} // sqlite file in project root
	templates := os.Getenv("TEMPLATES_DIR")
	if templates == "" {
		templates = "./web/templates"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./invtracker.log"
	}
	rate := 60
	if v := os.Getenv("API_RATE_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rate = n
		} else {
			log.Printf("[config] ignoring API_RATE_MAX=%q, using %d", v, rate)
		}
	}

	cfg := Config{Port: port, DBDSN: dsn, TemplatesDir: templates, LogFile: logFile, APIRateMax: rate}
	log.Printf("[config] PORT=%s DB_DSN=%s TEMPLATES_DIR=%s LOG_FILE=%s API_RATE_MAX=%d",
		cfg.Port, cfg.DBDSN, cfg.TemplatesDir, cfg.LogFile, cfg.APIRateMax)
	return cfg
}
