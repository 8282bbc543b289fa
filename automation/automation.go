// Package automation drives the bank portal in a browser to fetch the latest
// statement export.
package automation

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
)

// ErrNoStatement means the portal reported nothing new to export.
var ErrNoStatement = errors.New("no new statement data")

const (
	downloadTimeout = 60 * time.Second
	pollInterval    = 500 * time.Millisecond
)

// Portal describes the bank login page and where its export control lives.
type Portal struct {
	URL      string
	UserID   string
	Password string
	Headless bool

	UserSelector     string
	PasswordSelector string
	// ExportText is matched against link and button text, as a regexp.
	ExportText string
	// NoDataText is the message the portal shows when there is nothing to export.
	NoDataText string
}

func (p Portal) withDefaults() Portal {
	if p.UserSelector == "" {
		p.UserSelector = "input[name='username'], input[name='userid'], input[type='email']"
	}
	if p.PasswordSelector == "" {
		p.PasswordSelector = "input[type='password']"
	}
	if p.ExportText == "" {
		p.ExportText = "(?i)(export|download).*csv|csv"
	}
	if p.NoDataText == "" {
		p.NoDataText = "no transactions"
	}
	return p
}

// DownloadStatement logs in to the portal, triggers the CSV export and saves
// it under saveDir. It returns the saved file path, or ErrNoStatement.
func DownloadStatement(p Portal, saveDir string) (path string, err error) {
	p = p.withDefaults()
	if p.URL == "" || p.UserID == "" || p.Password == "" {
		return "", errors.New("bank portal URL, user ID and password are required")
	}
	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create download folder: %w", err)
	}

	u, err := launcher.New().
		Headless(p.Headless).
		Leakless(false).
		Launch()
	if err != nil {
		return "", fmt.Errorf("failed to launch browser: %w", err)
	}
	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return "", fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer browser.Close()

	// rod's Must* helpers panic; turn those into errors for the caller.
	err = rod.Try(func() {
		path = download(browser, p, saveDir)
	})
	if errors.Is(err, ErrNoStatement) {
		return "", ErrNoStatement
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

func download(browser *rod.Browser, p Portal, saveDir string) string {
	log.Printf("INFO: opening bank portal %s", p.URL)
	page := browser.MustPage(p.URL).Timeout(downloadTimeout)
	page.MustWaitStable()

	page.MustElement(p.UserSelector).MustInput(p.UserID)
	page.MustElement(p.PasswordSelector).MustInput(p.Password)
	if btn, err := page.ElementR("button, input[type='submit'], a", "(?i)log ?in|sign ?in"); err == nil {
		btn.MustClick()
	} else {
		page.KeyActions().Press(input.Enter).MustDo()
	}
	page.MustWaitStable()

	wait := browser.MustWaitDownload()
	go page.MustHandleDialog()

	export, err := page.ElementR("a, button, input[type='button']", p.ExportText)
	if err != nil {
		panic(fmt.Errorf("export control not found (login may have failed): %w", err))
	}
	export.MustClick()

	done := make(chan struct{})
	defer close(done)

	result := make(chan []byte, 1)
	go func() {
		defer func() { _ = recover() }()
		result <- wait()
	}()
	noData := pollUntil(done, pollInterval, int(downloadTimeout/pollInterval), func() bool {
		body, err := page.Element("body")
		if err != nil {
			return false
		}
		text, _ := body.Text()
		return strings.Contains(strings.ToLower(text), strings.ToLower(p.NoDataText))
	})

	var data []byte
	select {
	case data = <-result:
	case <-noData:
		panic(ErrNoStatement)
	case <-time.After(downloadTimeout):
		panic(errors.New("timed out waiting for the statement download"))
	}
	if len(data) == 0 {
		panic(errors.New("downloaded statement is empty"))
	}

	dest := filepath.Join(saveDir, fmt.Sprintf("statement_%s.csv", time.Now().Format("20060102150405")))
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		panic(fmt.Errorf("failed to save statement: %w", err))
	}
	log.Printf("INFO: statement saved to %s", dest)
	return dest
}

// pollUntil calls check every interval, at most attempts times, and closes the
// returned channel once check reports true. Polling stops when done closes.
func pollUntil(done <-chan struct{}, interval time.Duration, attempts int, check func() bool) <-chan struct{} {
	found := make(chan struct{})
	go func() {
		for i := 0; i < attempts; i++ {
			select {
			case <-done:
				return
			case <-time.After(interval):
			}
			if check() {
				close(found)
				return
			}
		}
	}()
	return found
}
