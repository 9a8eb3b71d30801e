package shuttle_test

import (
	"testing"

	"github.com/Alia5/shuttlectl/device/shuttle"
	"github.com/stretchr/testify/assert"
)

func TestReportRoundTrip(t *testing.T) {
	r := shuttle.Report{ID: 0, Jog: -3, Wheel: 0xFE, Fill: 0xAA, Keys: 0x4081}
	b, err := r.MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, b, shuttle.ReportSize)
	assert.Equal(t, []byte{0x00, 0xFD, 0xFE, 0xAA, 0x81, 0x40}, b)

	var got shuttle.Report
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, r, got)
}

func TestReportUnmarshalShort(t *testing.T) {
	var r shuttle.Report
	assert.Error(t, r.UnmarshalBinary([]byte{0x00, 0x01, 0x02}))
}

func TestTrackerEdges(t *testing.T) {
	type testCase struct {
		name     string
		previous shuttle.Report
		new      shuttle.Report
		expected []shuttle.Event
	}

	cases := []testCase{
		{
			name:     "steady state produces nothing",
			previous: shuttle.Report{Jog: 2, Wheel: 10, Keys: 0x0009},
			new:      shuttle.Report{Jog: 2, Wheel: 10, Keys: 0x0009},
			expected: nil,
		},
		{
			name:     "jog edge carries the absolute value",
			previous: shuttle.Report{Jog: 1},
			new:      shuttle.Report{Jog: -5},
			expected: []shuttle.Event{{Kind: shuttle.EventJog, Jog: -5}},
		},
		{
			name:     "wheel step right",
			previous: shuttle.Report{Wheel: 10},
			new:      shuttle.Report{Wheel: 11},
			expected: []shuttle.Event{{Kind: shuttle.EventWheelRight}},
		},
		{
			name:     "wheel step left",
			previous: shuttle.Report{Wheel: 11},
			new:      shuttle.Report{Wheel: 10},
			expected: []shuttle.Event{{Kind: shuttle.EventWheelLeft}},
		},
		{
			name:     "wheel wraps 255 to 0 as a single right step",
			previous: shuttle.Report{Wheel: 255},
			new:      shuttle.Report{Wheel: 0},
			expected: []shuttle.Event{{Kind: shuttle.EventWheelRight}},
		},
		{
			name:     "wheel wraps 0 to 255 as a single left step",
			previous: shuttle.Report{Wheel: 0},
			new:      shuttle.Report{Wheel: 255},
			expected: []shuttle.Event{{Kind: shuttle.EventWheelLeft}},
		},
		{
			name:     "large wheel jump still yields exactly one event",
			previous: shuttle.Report{Wheel: 0},
			new:      shuttle.Report{Wheel: 100},
			expected: []shuttle.Event{{Kind: shuttle.EventWheelRight}},
		},
		{
			name:     "button press",
			previous: shuttle.Report{Keys: 0x0000},
			new:      shuttle.Report{Keys: 0x0008},
			expected: []shuttle.Event{{Kind: shuttle.EventButtonDown, Button: 3}},
		},
		{
			name:     "button release",
			previous: shuttle.Report{Keys: 0x0008},
			new:      shuttle.Report{Keys: 0x0000},
			expected: []shuttle.Event{{Kind: shuttle.EventButtonUp, Button: 3}},
		},
		{
			name:     "multiple button edges in increasing bit order",
			previous: shuttle.Report{Keys: 0x0401}, // 0 and 10 held
			new:      shuttle.Report{Keys: 0x0084}, // 2 and 7 held
			expected: []shuttle.Event{
				{Kind: shuttle.EventButtonUp, Button: 0},
				{Kind: shuttle.EventButtonDown, Button: 2},
				{Kind: shuttle.EventButtonDown, Button: 7},
				{Kind: shuttle.EventButtonUp, Button: 10},
			},
		},
		{
			name:     "bit 15 is never inspected",
			previous: shuttle.Report{Keys: 0x0000},
			new:      shuttle.Report{Keys: 0x8000},
			expected: nil,
		},
		{
			name:     "jog before button release",
			previous: shuttle.Report{Jog: 0, Keys: 0x0040},
			new:      shuttle.Report{Jog: 2, Keys: 0x0000},
			expected: []shuttle.Event{
				{Kind: shuttle.EventJog, Jog: 2},
				{Kind: shuttle.EventButtonUp, Button: 6},
			},
		},
		{
			name:     "jog then wheel then buttons",
			previous: shuttle.Report{Jog: 0, Wheel: 4, Keys: 0x0000},
			new:      shuttle.Report{Jog: 1, Wheel: 5, Keys: 0x0001},
			expected: []shuttle.Event{
				{Kind: shuttle.EventJog, Jog: 1},
				{Kind: shuttle.EventWheelRight},
				{Kind: shuttle.EventButtonDown, Button: 0},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := shuttle.NewTracker()
			// Seed the baseline; the first update against the sentinel is
			// not under test here.
			tr.Update(tc.previous)
			assert.Equal(t, tc.expected, tr.Update(tc.new))
			assert.Equal(t, tc.new, tr.Last())
		})
	}
}

func TestTrackerIdempotentAfterConvergence(t *testing.T) {
	r := shuttle.Report{Jog: 3, Wheel: 200, Keys: 0x1234}

	tr := shuttle.NewTracker()
	tr.Update(r)
	assert.Empty(t, tr.Update(r))
}

func TestTrackerSentinelSuppressesFirstWheelEvent(t *testing.T) {
	tr := shuttle.NewTracker()

	// Any wheel position in the very first report must not produce a wheel
	// event; the sentinel's wheel is force-aligned before comparison.
	evts := tr.Update(shuttle.Report{Wheel: 123})
	for _, e := range evts {
		assert.NotEqual(t, shuttle.EventWheelLeft, e.Kind)
		assert.NotEqual(t, shuttle.EventWheelRight, e.Kind)
	}

	// The suppression is one-shot: the next wheel change is reported.
	evts = tr.Update(shuttle.Report{Wheel: 124})
	assert.Equal(t, []shuttle.Event{{Kind: shuttle.EventWheelRight}}, evts)
}

func TestTrackerFirstReportEdges(t *testing.T) {
	// Jog and keys are compared against the sentinel's zero values even on
	// the first report; only the wheel is re-based.
	tr := shuttle.NewTracker()
	evts := tr.Update(shuttle.Report{Jog: -2, Wheel: 50, Keys: 0x0002})
	assert.Equal(t, []shuttle.Event{
		{Kind: shuttle.EventJog, Jog: -2},
		{Kind: shuttle.EventButtonDown, Button: 1},
	}, evts)
}

func TestTrackerStoresFillByte(t *testing.T) {
	tr := shuttle.NewTracker()
	tr.Update(shuttle.Report{Fill: 0x5A})
	assert.Equal(t, uint8(0x5A), tr.Last().Fill)
}

func TestModelRegistry(t *testing.T) {
	m, ok := shuttle.LookupModel("ShuttlePro")
	assert.True(t, ok)
	assert.Equal(t, shuttle.VendorID, m.VendorID)
	assert.Equal(t, shuttle.ProductShuttlePro, m.ProductID)
	assert.Equal(t, shuttle.ReportSize, m.ReportSize)

	_, ok = shuttle.LookupModel("spacemouse")
	assert.False(t, ok)

	m, ok = shuttle.MatchModel(shuttle.VendorID, shuttle.ProductShuttleXpress)
	assert.True(t, ok)
	assert.Equal(t, "shuttlexpress", m.Name)

	names := []string{}
	for _, m := range shuttle.Models() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"shuttlepro", "shuttlexpress"}, names)
}
