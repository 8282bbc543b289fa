package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"propdesk/config"
	"propdesk/httpjson"
	"propdesk/latefee"
	"propdesk/parsers"

	"github.com/shopspring/decimal"
)

// GetConfigHandler returns the current settings.
func GetConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpjson.WriteJSON(w, http.StatusOK, config.GetConfig())
	}
}

// SaveConfigHandler validates and saves the settings form.
func SaveConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var newCfg config.Config
		if err := httpjson.DecodeBody(r, &newCfg); err != nil {
			httpjson.WriteError(w, "Invalid request.", http.StatusBadRequest)
			return
		}

		if err := validateConfig(newCfg); err != nil {
			httpjson.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := config.SaveConfig(newCfg); err != nil {
			log.Printf("ERROR: failed to save config: %v", err)
			httpjson.WriteError(w, "Failed to save settings.", http.StatusInternalServerError)
			return
		}
		httpjson.WriteMessage(w, "Settings saved.")
	}
}

// validateConfig checks the fields the form can get wrong. Empty values are
// left for SaveConfig to default.
func validateConfig(c config.Config) error {
	if err := validateFolderPath(c.StatementFolderPath); err != nil {
		return err
	}
	if _, err := parsers.Decode(strings.NewReader(""), c.StatementEncoding); err != nil {
		return err
	}
	if c.PreviewHorizonDays < 0 || c.PreviewHorizonDays > latefee.MaxHorizonDays {
		return fmt.Errorf("preview horizon must be between 0 and %d days", latefee.MaxHorizonDays)
	}
	if c.DefaultSampleCharge != "" {
		d, err := decimal.NewFromString(c.DefaultSampleCharge)
		if err != nil || d.IsNegative() {
			return errors.New("default sample charge must be a non-negative amount")
		}
	}
	return nil
}

func validateFolderPath(path string) error {
	if path == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New("folder not found: " + path)
		}
		log.Printf("ERROR: failed to check folder path: %v", err)
		return errors.New("failed to check the folder path")
	}
	if !info.IsDir() {
		return errors.New("path is not a folder: " + path)
	}
	return nil
}
