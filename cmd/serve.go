/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/okmtz/tsk-cli/internal/server"
	"github.com/okmtz/tsk-cli/internal/store"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveAddr string

// serveCmd represents the serve command. The API is meant for other tools on
// the same machine (editor plugins, status bars), so it binds loopback and
// carries no auth.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local task API over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		addr := config.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}
		if addr == "" {
			addr = "127.0.0.1:7621"
		}

		e := echo.New()
		e.HideBanner = true
		e.Use(middleware.Recover())
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{"*"},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))

		server.Register(e, *config)

		log.Infof("Serving task API on %s", addr)
		e.Logger.Fatal(e.Start(addr))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config server.addr)")
}
