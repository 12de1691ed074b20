// Package config provides configuration management for curioso.
package config

import (
	"os"
	"time"

	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/curioso-agent/curioso/probestate"
)

const (
	// defaultProbeTimeout bounds the subprocess-backed detection steps
	// (linker version checks). The rest of the probe is pure reads.
	defaultProbeTimeout = 5 * time.Second
)

var scope = gap.NewScope(gap.User, "curioso") //nolint:gochecknoglobals // Configuration scope

// InitConfig initializes the configuration from the config file, environment
// and flags. The tool is read-only: a missing config file is fine and none is
// ever written.
func InitConfig(cfgFile string) {
	cwd, err := os.Getwd()
	cobra.CheckErr(err)
	viper.AddConfigPath(cwd)

	configDirs, err := scope.ConfigDirs()
	cobra.CheckErr(err)

	for _, dir := range configDirs {
		viper.AddConfigPath(dir)
	}

	home, err := os.UserConfigDir()
	cobra.CheckErr(err)
	viper.AddConfigPath(home)

	viper.SetConfigType("yaml")
	viper.SetConfigName("curioso")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		probestate.Logger.Debug("Using config file", "config_file", viper.ConfigFileUsed())
	}
}

// SetDefaultConfigValues sets default configuration values.
func SetDefaultConfigValues() {
	viper.SetDefault("probe_timeout", defaultProbeTimeout)
	viper.SetDefault("compact_output", false)
	viper.SetDefault("extra_debugging", false)
}

// SetupSharedState copies resolved configuration values into the shared
// probe state.
func SetupSharedState() {
	probestate.State.Debug = viper.GetBool("debug")                    // Set the debug flag in the shared state
	probestate.State.ExtraDebugging = viper.GetBool("extra_debugging") // Set the extra debugging flag in the shared state
	probestate.State.CompactOutput = viper.GetBool("compact_output")   // Set the compact output flag in the shared state
	probestate.State.ProbeTimeout = viper.GetDuration("probe_timeout") // Set the probe timeout in the shared state

	if probestate.State.ProbeTimeout <= 0 {
		probestate.State.ProbeTimeout = defaultProbeTimeout
	}
}
