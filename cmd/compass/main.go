package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pesikj/political-pulse-mapper/internal/config"
	"github.com/pesikj/political-pulse-mapper/internal/server"
	"github.com/pesikj/political-pulse-mapper/internal/store"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	cfg        *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "compass",
	Short:   "Political compass data service",
	Long:    "Compass serves political parties and their AI-generated policy analyses, classified onto a two-dimensional freedom compass.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		} else {
			log.SetFlags(log.LstdFlags)
		}

		// A local .env can carry COMPASS_DATABASE_URL and friends.
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(); err != nil {
				return fmt.Errorf("loading .env: %w", err)
			}
		}

		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("compass", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/compass/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Join(config.ConfigDir(), "config.yaml")
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}

		if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to point at a remote store, an upstream API, or an embedded artifact.")
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read API and pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cfg.StoreConfig())
		if err != nil {
			return err
		}
		defer st.Close()

		return server.Serve(st, cfg.Server.Port)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backing store status",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := cfg.StoreConfig()
		fmt.Printf("Store kind: %s\n", sc.Kind)
		if sc.Kind == store.KindHTTPFallback {
			fmt.Printf("Upstream: %s\n", sc.UpstreamURL)
		}
		if sc.Kind != store.KindRemote {
			fmt.Printf("Artifact: %s\n", sc.Path)
		}

		st, err := store.Open(sc)
		if err != nil {
			return err
		}
		defer st.Close()

		sqlStore, ok := st.(*store.SQLClient)
		if !ok {
			return nil
		}
		stats, err := sqlStore.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}
		fmt.Printf("\nCountries: %d\n", stats.Countries)
		fmt.Printf("Parties: %d\n", stats.Parties)
		fmt.Printf("Policy analyses: %d\n", stats.Policies)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <dataset.json>",
	Short: "Import a dataset into the embedded artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading dataset: %w", err)
		}
		var ds store.Dataset
		if err := json.Unmarshal(data, &ds); err != nil {
			return fmt.Errorf("parsing dataset: %w", err)
		}

		path := cfg.StorePath()
		st := store.CreateSQLite(path)
		defer st.Close()

		if err := st.Import(context.Background(), &ds); err != nil {
			return err
		}

		fmt.Printf("Imported %d parties and %d policy analyses into %s\n",
			len(ds.Parties), len(ds.Policies), path)
		return nil
	},
}
