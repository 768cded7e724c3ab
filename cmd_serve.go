package main

import (
	"fmt"

	"github.com/beka-birhanu/vinom-explorer/config"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the exploration HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	gin.SetMode(config.Envs.GinMode)

	if err := initServices(cmd.Context()); err != nil {
		appLogger.Error(err.Error())
		return err
	}
	defer closeServices()

	if err := initTrialController(); err != nil {
		appLogger.Error(err.Error())
		return err
	}
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		return err
	}
	return nil
}
