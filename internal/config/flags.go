package config

import "github.com/spf13/pflag"

var flags = pflag.NewFlagSet("config", pflag.ContinueOnError)

var (
	flagConfig  = flags.String("config", "", "Path to config file")
	flagDebug   = flags.Bool("debug", false, "Enable debug logging")
	flagRep     = flags.String("rep", "", "Strip representation: term or length")
	flagWorkers = flags.Int("workers", 0, "Vertex transform workers")
	flagLogFile = flags.String("log-file", "", "Write logs to this file as well")
)

// Flags returns the config flag set so a command can mount it.
func Flags() *pflag.FlagSet {
	return flags
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagRep != "" {
		cfg.Strip.Representation = *flagRep
	}
	if *flagWorkers > 0 {
		cfg.Transform.Workers = *flagWorkers
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
