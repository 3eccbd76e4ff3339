package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"gurbani-server/internal/config"
	"gurbani-server/internal/services"
)

// Request body size limits
const (
	maxBodySize = 16 * 1024 // 16KB for POST requests
)

// limitBody wraps an HTTP handler to limit request body size
func limitBody(next http.HandlerFunc, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		next(w, r)
	}
}

// securityHeaders wraps an HTTP handler to add security headers
func securityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// - img-src data:: share QR codes are inline PNGs
		// - media-src *: shabad and hukamnama recordings are served by third parties
		csp := "default-src 'self'; " +
			"img-src 'self' data:; " +
			"media-src *; " +
			"connect-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"script-src 'self'"
		w.Header().Set("Content-Security-Policy", csp)
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next(w, r)
	}
}

// routes registers every handler on a new mux
func (a *app) routes() *http.ServeMux {
	mux := http.NewServeMux()

	fs := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static/", fs))

	mux.HandleFunc("/", securityHeaders(a.htmlHomeHandler))
	mux.HandleFunc("/search", securityHeaders(a.htmlSearchHandler))
	mux.HandleFunc("/search/results", securityHeaders(a.htmlSearchResultsHandler))
	mux.HandleFunc("/shabad", securityHeaders(a.htmlShabadHandler))
	mux.HandleFunc("/shabad/audio", securityHeaders(a.htmlShabadAudioHandler))
	mux.HandleFunc("/shabad/player", securityHeaders(limitBody(a.htmlShabadPlayerHandler, maxBodySize)))
	mux.HandleFunc("/sync", securityHeaders(a.htmlSyncHandler))
	mux.HandleFunc("/ang", securityHeaders(a.htmlAngHandler))
	mux.HandleFunc("/hukamnama", securityHeaders(a.htmlHukamnamaHandler))
	mux.HandleFunc("/hukamnama/calendar", securityHeaders(a.htmlHukamnamaCalendarHandler))
	mux.HandleFunc("/hukamnama/player", securityHeaders(limitBody(a.htmlHukamnamaPlayerHandler, maxBodySize)))
	mux.HandleFunc("/settings", securityHeaders(limitBody(a.htmlSettingsHandler, maxBodySize)))
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/metrics", a.metricsHandler)

	return mux
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:          "gurbani-server",
	Short:        "Hypermedia Gurbani reader backed by BaniDB",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		InitLogger(logLevel)
		config.InitI18n()
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check that the content API and the audio service respond",
	RunE:  runProbe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "server config file (TOML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default LOG_LEVEL or info)")
	rootCmd.AddCommand(serveCmd, probeCmd)
}

func loadConfig() (*config.ServerConfig, error) {
	if configPath != "" {
		return config.LoadServerConfig(configPath)
	}
	return config.LoadServerConfig()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	backend, backendType := newCacheBackend(cfg, DefaultCacheConfig())
	defer backend.Close()

	a, err := newApp(cfg, backend, backendType)
	if err != nil {
		return err
	}
	slog.Info("templates compiled successfully")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           RequestLoggingMiddleware(a.routes()),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "port", cfg.Port, "api", cfg.APIURL, "cache", backendType)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := services.NewBaniDBClient(cfg.APIURL, cfg.AudioAPIURL)

	ctx, cancel := context.WithTimeout(cmd.Context(), services.BaniDBHTTPTimeout)
	defer cancel()

	// Both checks always run to completion so each line reports its own result.
	var contentErr error
	var audioOK bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, contentErr = client.Hukamnama(gctx, time.Time{})
		return nil
	})
	g.Go(func() error {
		audioOK = client.CheckAPIHealth(gctx)
		return nil
	})
	g.Wait()

	failed := false
	if contentErr != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "content api  FAIL  %v\n", contentErr)
		failed = true
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "content api  ok    %s\n", client.APIBase())
	}

	if audioOK {
		fmt.Fprintf(cmd.OutOrStdout(), "audio api    ok    %s\n", cfg.AudioAPIURL)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "audio api    FAIL  %s\n", cfg.AudioAPIURL)
		failed = true
	}

	if failed {
		return errors.New("probe failed")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
