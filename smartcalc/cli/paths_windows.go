package cli

import (
	"os"
	"path/filepath"
)

func dirName(appTag string) string {
	return appTag
}

func configFallback(home string) string {
	return home
}

func logBase(home string) string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = home
	}
	return filepath.Join(c, "Logs")
}
