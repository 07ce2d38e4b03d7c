package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/dicri-api/pkg/config"
	"github.com/jhoicas/dicri-api/pkg/logger"
)

// Version se fija con -ldflags "-X main.Version=..."; si queda vacía se usa APP_VERSION.
var Version = ""

var logLevel string

var rootCmd = &cobra.Command{
	Use:           "dicri-api",
	Short:         "API DICRI - Sistema de Gestión de Evidencias",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute ejecuta el comando raíz.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "nivel de log (sobreescribe LOG_LEVEL)")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// bootstrap carga la configuración y construye el logger común a todos los subcomandos.
func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if Version != "" {
		cfg.App.Version = Version
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	return cfg, log, nil
}
