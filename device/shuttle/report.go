// Package shuttle decodes reports from Contour jog/shuttle devices
// (ShuttleXpress, ShuttlePro v2) into edge-triggered events.
package shuttle

import (
	"encoding/binary"
	"io"
)

// Report is one snapshot of the device state as delivered by the hardware.
//
// Wire format (6 bytes):
//
//	Byte 0: ID (report variant, 0 on real hardware)
//	Byte 1: Jog (int8, spring-centered absolute deflection, -7..7 in practice)
//	Byte 2: Wheel (uint8 position counter of the shuttle ring, wraps mod 256)
//	Byte 3: Fill (unused padding)
//	Bytes 4-5: Keys (uint16 little-endian button bitmask, bit k = button k held)
type Report struct {
	ID    uint8
	Jog   int8
	Wheel uint8
	Fill  uint8
	Keys  uint16
}

// MarshalBinary encodes the Report to 6 bytes.
func (r *Report) MarshalBinary() ([]byte, error) {
	b := make([]byte, ReportSize)
	b[0] = r.ID
	b[1] = byte(r.Jog)
	b[2] = r.Wheel
	b[3] = r.Fill
	binary.LittleEndian.PutUint16(b[4:6], r.Keys)
	return b, nil
}

// UnmarshalBinary decodes 6 bytes into the Report. Decoding is purely
// structural; any bit pattern of the right length is a valid Report.
func (r *Report) UnmarshalBinary(data []byte) error {
	if len(data) < ReportSize {
		return io.ErrUnexpectedEOF
	}
	r.ID = data[0]
	r.Jog = int8(data[1])
	r.Wheel = data[2]
	r.Fill = data[3]
	r.Keys = binary.LittleEndian.Uint16(data[4:6])
	return nil
}
