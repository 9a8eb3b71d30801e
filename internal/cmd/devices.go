package cmd

import (
	"fmt"
	"log/slog"

	"github.com/Alia5/shuttlectl/device/shuttle"
	"github.com/Alia5/shuttlectl/internal/hiddev"
)

// Devices lists attached HID devices and marks the supported ones.
type Devices struct {
	All bool `help:"List every HID device, not only supported models"`
}

// Run is called by Kong when the devices command is executed.
func (d *Devices) Run(logger *slog.Logger) error {
	infos := hiddev.List()
	matched := 0
	for _, info := range infos {
		model, ok := shuttle.MatchModel(info.VendorID, info.ProductID)
		if ok {
			matched++
			fmt.Printf("%04x:%04x  %-14s %s (%s)\n",
				info.VendorID, info.ProductID, model.Name, info.Product, info.Path)
			continue
		}
		if d.All {
			fmt.Printf("%04x:%04x  %-14s %s (%s)\n",
				info.VendorID, info.ProductID, "-", info.Product, info.Path)
		}
	}
	if matched == 0 {
		logger.Warn("no supported shuttle device attached")
	}
	return nil
}
