package main

import (
	"embed"
	"fmt"
	"os"

	"kasir-terminal/models"
	"kasir-terminal/services"
)

// Embed the default menu into the binary so the cashier starts regardless
// of the current working directory.
//
//go:embed menu/menu.json
var menuFS embed.FS

// loadMenu reads the menu document: an operator-supplied file when path is
// set, the embedded default otherwise.
func loadMenu(path string) ([]models.MenuItem, error) {
	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read menu file %s: %w", path, err)
		}
	} else {
		data, err = menuFS.ReadFile("menu/menu.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded menu: %w", err)
		}
	}
	return services.ParseMenu(data)
}
