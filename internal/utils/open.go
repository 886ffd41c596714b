package utils

import (
	"fmt"

	"github.com/skratchdot/open-golang/open"
)

// OpenWithDefaultApp launches the platform's default viewer for path without
// waiting for it to exit.
func OpenWithDefaultApp(path string) error {
	if err := open.Start(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}
