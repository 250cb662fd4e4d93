package cli

import (
	"path/filepath"
)

func dirName(appTag string) string {
	return appTag
}

func configFallback(home string) string {
	return filepath.Join(home, "Library", "Application Support")
}

func logBase(home string) string {
	return filepath.Join(home, "Library", "Application Support", "Logs")
}
