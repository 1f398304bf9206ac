// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"fmt"
	"os"
	"slices"

	"celgen-server/commons"
	"celgen-server/db"
	"celgen-server/handlers"
	"celgen-server/migrations"
	"celgen-server/routes"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	commons.LoadEnvFile()

	e := echo.New()
	e.HideBanner = true

	e.Logger.SetLevel(commons.Logger.Level())
	e.Logger.SetHeader("${time_rfc3339} ${level} ${short_file}:${line} -")

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logMsg := func(format string, args ...any) {
				switch {
				case v.Status >= 500:
					e.Logger.Errorf(format, args...)
				case v.Status >= 400:
					e.Logger.Warnf(format, args...)
				default:
					e.Logger.Infof(format, args...)
				}
			}
			logMsg("%s %s - %d - %.2fms - %s",
				v.Method,
				v.URI,
				v.Status,
				float64(v.Latency.Microseconds())/1000.0,
				v.RemoteIP,
			)
			return nil
		},
	}))
	debugMode := slices.Contains(os.Args[1:], "--debug")
	if debugMode {
		e.Logger.Warn("Debug mode is enabled.")
		e.Debug = true
		e.Logger.SetLevel(log.DEBUG)
	}

	e.Use(middleware.Recover())

	db.InitDB()
	if slices.Contains(os.Args[1:], "--migrate-db") {
		commons.Logger.Debug("--migrate-db flag detected, running migrations")
		db.MigrateDB()
		if err := migrations.Run(db.Conn); err != nil {
			commons.Logger.Error("Data migrations failed:", err)
			os.Exit(1)
		}
	}

	if slices.Contains(os.Args[1:], "--create-api-key") {
		bootstrapAPIKey()
	}

	routes.RegisterRoutes(e)

	port := commons.GetEnv("PORT")
	if port == "" {
		port = ":8080"
	}
	if port[0] != ':' {
		port = ":" + port
	}
	e.Logger.Fatal(e.Start(port))
}

// bootstrapAPIKey creates a first key so the API-key guarded endpoints
// are reachable on a fresh deployment. The full key is printed once.
func bootstrapAPIKey() {
	apiKey, fullKey, err := handlers.NewAPIKey("bootstrap", nil)
	if err != nil {
		commons.Logger.Error("Failed to create bootstrap API key:", err)
		os.Exit(1)
	}
	if err := db.Conn.Create(apiKey).Error; err != nil {
		commons.Logger.Error("Failed to persist bootstrap API key:", err)
		os.Exit(1)
	}
	fmt.Printf("Bootstrap API key (store it securely, it will not be shown again):\n%s\n", fullKey)
}
