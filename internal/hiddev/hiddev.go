// Package hiddev wraps HID device discovery and report reading for the
// tracked shuttle devices.
package hiddev

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bearsh/hid"
)

// ErrDeviceNotFound is returned by Find when no attached device matches.
// The run command treats it as fatal at startup.
var ErrDeviceNotFound = errors.New("device not found")

// Find returns the first attached HID device with the given USB identifiers.
func Find(vendor, product uint16) (hid.DeviceInfo, error) {
	infos := hid.Enumerate(vendor, product)
	if len(infos) == 0 {
		return hid.DeviceInfo{}, fmt.Errorf("%04x:%04x: %w", vendor, product, ErrDeviceNotFound)
	}
	return infos[0], nil
}

// List enumerates every attached HID device.
func List() []hid.DeviceInfo {
	return hid.Enumerate(0, 0)
}

// ReadLoop reads reports from dev until ctx is canceled or the device goes
// away. Records whose length differs from size are silently discarded, the
// rest are handed to fn in arrival order on the calling goroutine.
//
// The device is closed when ctx is canceled; that unblocks the pending
// read, so cancellation does not wait for the next report.
func ReadLoop(ctx context.Context, dev *hid.Device, size int, logger *slog.Logger, fn func(data []byte)) error {
	dev.SetNonblocking(false)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = dev.Close()
		case <-done:
		}
	}()

	buf := make([]byte, 64)
	for {
		n, err := dev.Read(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read report: %w", err)
		}
		if n != size {
			logger.Debug("discarding record of unexpected length", "len", n, "want", size)
			continue
		}
		fn(buf[:n])
	}
}
