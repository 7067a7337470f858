package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"

	"github.com/Zachkp/adi-site/internal/config"
	"github.com/Zachkp/adi-site/internal/content"
	"github.com/Zachkp/adi-site/internal/radial"
	"github.com/Zachkp/adi-site/internal/session"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "adi-site",
		Short:        "Adaptative Digital Innovation portfolio site",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	root.AddCommand(serveCmd(), seedCmd(), layoutCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func seedCmd() *cobra.Command {
	var dbPath, catalogPath string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the content catalog into the sqlite database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dbPath == "" {
				dbPath = cfg.DatabasePath
			}
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			db, err := content.OpenSQLite(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Seed(cmd.Context(), cat); err != nil {
				return err
			}
			log.Printf("Seeded %s: %d projects, %d team members, %d company sections",
				dbPath, len(cat.Projects), len(cat.Team), len(cat.CompanySections))
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "database path (default $ADI_DATABASE_PATH)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog to load instead of the built-in one")
	return cmd
}

func layoutCmd() *cobra.Command {
	var width int
	var active string
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the navigation menu layout for a viewport width",
		RunE: func(cmd *cobra.Command, args []string) error {
			printLayout(cmd.OutOrStdout(), radial.NewEngine().Compose(width, active, false))
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", session.DefaultWidth, "viewport width in pixels")
	cmd.Flags().StringVar(&active, "active", radial.HomeID, "active menu entry")
	return cmd
}

func printLayout(w io.Writer, m radial.Menu) {
	fmt.Fprintf(w, "mode: %s\n", m.Mode)
	if m.Hub == radial.HubReturn {
		fmt.Fprintln(w, "center: return")
	} else {
		fmt.Fprintln(w, "center: hub")
	}
	if m.Mode == radial.Mobile {
		for _, e := range m.Entries {
			fmt.Fprintf(w, "  %-9s %s\n", e.ID, e.Label)
		}
		return
	}
	for _, p := range m.Placements {
		fmt.Fprintf(w, "  %-9s %6.1f°  x=%7.2f y=%7.2f\n", p.ID, p.Angle, p.X, p.Y)
	}
}

func loadCatalog(path string) (content.Catalog, error) {
	if path == "" {
		return content.DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return content.Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}
	return content.ParseCatalog(data)
}

// openProvider builds the content source named by the config. The returned
// func releases it.
func openProvider(cfg config.Config) (content.Provider, func(), error) {
	switch cfg.ContentSource {
	case config.SourceSQLite:
		db, err := content.OpenSQLite(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Serving content from %s", cfg.DatabasePath)
		return content.Guard(db, cfg.FetchTimeout), func() { db.Close() }, nil
	default:
		cat, err := content.DefaultCatalog()
		if err != nil {
			return nil, nil, err
		}
		return content.Guard(content.NewMock(cat), cfg.FetchTimeout), func() {}, nil
	}
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	provider, release, err := openProvider(cfg)
	if err != nil {
		return err
	}
	defer release()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions := session.NewStore(cfg.SessionTTL, cfg.Transition)
	go sessions.Run(ctx)

	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     newRouter(cfg, provider, sessions),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
	return nil
}
