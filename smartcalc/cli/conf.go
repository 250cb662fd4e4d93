package cli

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/smartcalc"
)

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate smartcalc configuration with an application-key of 'SMARTCALC' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, "SMARTCALC", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		smartcalc.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		smartcalc.Exit(1)
	}
	smartcalc.Configuration = k // push the configuration to app-global scope
}

// mergeFlags loads the command line flags into the configuration. A log file
// given without a scheme is turned into a file URL.
func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		konf.Set("tracing.destination", logDestination(logname, locateLogDir()))
	}
	return nil
}

// logDestination makes a URL from a log file name. Relative file names are
// located in logdir.
func logDestination(logname, logdir string) string {
	if strings.Contains(logname, ":/") {
		return logname
	}
	if !filepath.IsAbs(logname) && logdir != "" {
		logname = filepath.Join(logdir, logname)
	}
	return "file://" + logname
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Infof(rootCmd.Long)
	return nil
}

func locateLogDir() string {
	paths, err := DefaultAppPaths("SMARTCALC")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
		return ""
	}
	return paths.LogDir()
}
