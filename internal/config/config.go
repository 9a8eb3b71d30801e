// Package config defines the CLI structure and configuration for shuttlectl.
package config

import (
	"github.com/Alia5/shuttlectl/internal/cmd"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"SHUTTLECTL_LOG_LEVEL"`
	File    string `help:"Log file path (default: none; logs only to console)" env:"SHUTTLECTL_LOG_FILE"`
	RawFile string `help:"Raw report log file path (default: none)" env:"SHUTTLECTL_LOG_RAW_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Run     cmd.Run           `cmd:"" default:"withargs" help:"Track an attached shuttle device and deliver mapped actions"`
	Devices cmd.Devices       `cmd:"" help:"List attached HID devices"`
	Decode  cmd.Decode        `cmd:"" help:"Decode recorded reports into events without hardware"`
	Config  cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
