package main

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/exec"
	"runtime"

	"propdesk/config"
	"propdesk/database"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
)

//go:embed static
var staticFiles embed.FS

func main() {
	_ = godotenv.Load()

	if _, err := config.LoadConfig(); err != nil {
		log.Printf("WARN: Failed to load config file: %v. Using defaults.", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newMux builds the full application: static assets, the index page and
// every API route.
func newMux(dbConn *sqlx.DB, dbPath string) (*http.ServeMux, error) {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static files: %w", err)
	}
	appTemplate, err := template.ParseFS(staticFS, "index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index.html: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		version, _, err := database.MigrationVersion(dbPath)
		if err != nil {
			log.Printf("WARN: failed to read schema version: %v", err)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = appTemplate.ExecuteTemplate(w, "index.html", struct {
			Screens       []screenLink
			SchemaVersion uint
		}{
			Screens:       screenLinks,
			SchemaVersion: version,
		})
		if err != nil {
			log.Printf("ERROR: failed to execute index template: %v", err)
		}
	})

	SetupRoutes(mux, dbConn, dbPath)
	return mux, nil
}

func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = exec.Command("xdg-open", url).Start()
	}
	if err != nil {
		log.Printf("WARN: failed to open browser: %v", err)
	}
}
