package main

import (
	"fmt"
	"net/http"
	"os"

	"inkwell/app/config"
	"inkwell/app/repositories"
	"inkwell/app/routes"
	"inkwell/pkg/logger"

	"github.com/spf13/cobra"
)

const cliVersion = "1.0.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "inkwell",
		Short:   "A small server-rendered blog",
		Version: cliVersion,
	}

	rootCmd.AddCommand(serveCmd(), initCmd(), cleanCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the blog server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			db, err := repositories.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			if err := repositories.Migrate(db); err != nil {
				return fmt.Errorf("migrate schema: %w", err)
			}

			router := routes.SetupRoutes(db, cfg.SessionSecret, "")
			logger.Info("starting blog server", "addr", cfg.Addr, "db", cfg.DBPath)
			return http.ListenAndServe(cfg.Addr, router)
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database schema without serving",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			db, err := repositories.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			if err := repositories.Migrate(db); err != nil {
				return fmt.Errorf("migrate schema: %w", err)
			}
			fmt.Printf("Database initialized at %s\n", cfg.DBPath)
			return nil
		},
	}
}

func cleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("Database is already clean (does not exist)")
				return nil
			}

			fmt.Print("Are you sure you want to clean the database? This cannot be undone. [y/N] ")
			var response string
			fmt.Scanln(&response)
			if response != "y" && response != "Y" {
				fmt.Println("Operation cancelled")
				return nil
			}

			if err := os.Remove(cfg.DBPath); err != nil {
				return fmt.Errorf("clean database: %w", err)
			}
			fmt.Println("Database cleaned successfully")
			return nil
		},
	}
}
