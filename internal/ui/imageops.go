package ui

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// ImageOps handles actions on an image outside the terminal
type ImageOps struct {
	goos   string
	start  func(name string, args ...string) error
	copyFn func(text string) error
}

// NewImageOps creates a new ImageOps instance
func NewImageOps() *ImageOps {
	return &ImageOps{
		goos: runtime.GOOS,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
		copyFn: clipboard.WriteAll,
	}
}

// browserCommand returns the opener for url.
// PIXGALLERY_BROWSER overrides the platform default.
func (o *ImageOps) browserCommand(url string) (string, []string) {
	if bin := os.Getenv("PIXGALLERY_BROWSER"); bin != "" {
		return bin, []string{url}
	}
	switch o.goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// OpenInBrowser opens url without waiting for the browser to exit
func (o *ImageOps) OpenInBrowser(url string) error {
	if url == "" {
		return fmt.Errorf("no URL to open")
	}
	name, args := o.browserCommand(url)
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// CopyURL writes url to the system clipboard
func (o *ImageOps) CopyURL(url string) error {
	if url == "" {
		return fmt.Errorf("no URL to copy")
	}
	if err := o.copyFn(url); err != nil {
		return fmt.Errorf("failed to copy URL: %w", err)
	}
	return nil
}
