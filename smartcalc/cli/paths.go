package cli

import (
	"os"
	"path/filepath"
)

// AppPaths is an interface to determine application specific paths for configuration
// and logging/tracing.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return appPaths{tag: appTag}, err
	}
	return appPaths{tag: appTag, home: home}, nil
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = configFallback(a.home)
	}
	return filepath.Join(c, dirName(a.tag))
}

func (a appPaths) LogDir() string {
	return filepath.Join(logBase(a.home), dirName(a.tag))
}
