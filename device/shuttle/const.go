package shuttle

// Contour Design USB identifiers.
const (
	VendorID uint16 = 0x0b33

	ProductShuttleXpress uint16 = 0x0020
	ProductShuttlePro    uint16 = 0x0030
)

// ReportSize is the fixed length of one device report in bytes.
const ReportSize = 6

// SentinelID is the report ID a fresh Tracker starts with. No real report
// carries it; the hardware reports ID 0.
const SentinelID uint8 = 0xFF

// ButtonCount is the number of button bits the tracker inspects. Bit 15 of
// the key mask is never driven by the hardware and is ignored entirely.
const ButtonCount = 15
