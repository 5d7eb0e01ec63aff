package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// ErrNoCustomerName is returned when saving without a customer name; the
// per-customer folder cannot be derived from an empty name.
var ErrNoCustomerName = errors.New("customer name is required")

// folderSafeRunes is the allow-list for customer folder names: ASCII
// letters, digits, underscore and the Turkish alphabet's extra letters.
const folderSafeRunes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_çğıöşüÇĞİÖŞÜ"

// SanitizeFolderName maps a customer name onto a safe folder name: spaces
// become underscores and anything outside the allow-list is replaced by an
// underscore.
func SanitizeFolderName(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(folderSafeRunes, r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// SaveQuote writes a rendered document under saveDir in a per-customer
// subfolder, named Teklif_YYYYMMDD_HHMMSS.xlsx, and returns the full path.
// The customer name must be non-empty.
func SaveQuote(saveDir, customerName string, document []byte, now time.Time) (string, error) {
	if strings.TrimSpace(customerName) == "" {
		return "", ErrNoCustomerName
	}

	customerDir := filepath.Join(saveDir, SanitizeFolderName(strings.TrimSpace(customerName)))
	if err := os.MkdirAll(customerDir, 0o755); err != nil {
		return "", fmt.Errorf("create customer folder: %w", err)
	}

	filename := fmt.Sprintf("Teklif_%s.xlsx", now.Format("20060102_150405"))
	path := filepath.Join(customerDir, filename)
	if err := WriteDocument(path, document); err != nil {
		return "", err
	}
	return path, nil
}

// WriteDocument writes the document to path. When the direct write fails
// (unwritable or contended target) it falls back to a temporary file and
// copies that over the intended path.
func WriteDocument(path string, document []byte) error {
	if err := os.WriteFile(path, document, 0o644); err == nil {
		return nil
	}

	tmp, err := os.CreateTemp("", "teklif-*.xlsx")
	if err != nil {
		return fmt.Errorf("write fallback: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(document); err != nil {
		tmp.Close()
		return fmt.Errorf("write fallback: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write fallback: %w", err)
	}

	src, err := os.Open(tmpName)
	if err != nil {
		return fmt.Errorf("write fallback: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("copy over %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy over %s: %w", path, err)
	}
	return nil
}

// OpenInViewer asks the OS to open the document in its default viewer.
// Best effort: a missing opener or launch failure is logged and swallowed.
func OpenInViewer(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("save: could not open viewer for %s: %v", path, err)
	}
}
