// Package config seeds the process-wide variables at startup from a config
// file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chillcicada/easytier-astral/internal/globals"
	"github.com/spf13/viper"
)

const envPrefix = "ASTRAL"

// Settings is the startup view of the global variables. An empty MachineUID
// means absent.
type Settings struct {
	Verbosity                                   string `mapstructure:"verbosity"`
	ManualConnectorReconnectIntervalMS          uint64 `mapstructure:"manual_connector_reconnect_interval_ms"`
	OSPFUpdateMyGlobalForeignNetworkIntervalSec uint64 `mapstructure:"ospf_update_my_global_foreign_network_interval_sec"`
	MachineUID                                  string `mapstructure:"machine_uid"`
}

// DefaultFile is $HOME/.config/astral/config.
func DefaultFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "astral", "config")
}

// Load reads settings from file (yaml) and ASTRAL_ prefixed environment
// variables over the current values of the globals. A missing file is not
// an error; an empty file name skips the file.
func Load(file string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("verbosity", "INFO")
	v.SetDefault("manual_connector_reconnect_interval_ms", globals.ManualConnectorReconnectIntervalMS.Get())
	v.SetDefault("ospf_update_my_global_foreign_network_interval_sec", globals.OSPFUpdateMyGlobalForeignNetworkIntervalSec.Get())
	v.SetDefault("machine_uid", globals.MachineUID.Get().OrElse(""))
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return settings, nil
}

// Apply writes the settings into the globals, one variable at a time.
func (s *Settings) Apply() error {
	if err := globals.ManualConnectorReconnectIntervalMS.Store(s.ManualConnectorReconnectIntervalMS); err != nil {
		return err
	}
	if err := globals.OSPFUpdateMyGlobalForeignNetworkIntervalSec.Store(s.OSPFUpdateMyGlobalForeignNetworkIntervalSec); err != nil {
		return err
	}
	uid := globals.None[string]()
	if s.MachineUID != "" {
		uid = globals.Some(s.MachineUID)
	}
	if err := globals.MachineUID.Store(uid); err != nil {
		return err
	}
	slog.Debug("applied settings", "settings", s)
	return nil
}
