package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Alia5/shuttlectl/device/shuttle"
	"github.com/Alia5/shuttlectl/internal/actions"
	"github.com/Alia5/shuttlectl/internal/log"
)

// Decode replays recorded reports through the decoder without hardware.
// Input is either a raw byte stream of fixed-size records or, with --hex,
// whitespace-separated hex bytes with one record per line (the format the
// raw report log produces).
type Decode struct {
	Input string `arg:"" optional:"" default:"-" help:"Report file to decode ('-' for stdin)"`
	Hex   bool   `help:"Parse input as hex lines instead of raw bytes"`
	Map   bool   `help:"Also print the actions the events map to"`

	Bind actions.Bindings `embed:"" prefix:"bind."`
}

// Run is called by Kong when the decode command is executed.
func (d *Decode) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	in := os.Stdin
	if d.Input != "-" {
		f, err := os.Open(d.Input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	tracker := shuttle.NewTracker()
	mapper := actions.NewMapper(d.Bind)

	emit := func(data []byte) {
		rawLogger.Log(data)
		var rep shuttle.Report
		if err := rep.UnmarshalBinary(data); err != nil {
			return
		}
		for _, ev := range tracker.Update(rep) {
			fmt.Println(ev.String())
			if d.Map {
				for _, a := range mapper.Map(ev) {
					fmt.Printf("  -> %s\n", a.String())
				}
			}
		}
	}

	if d.Hex {
		return decodeHex(in, logger, emit)
	}
	return decodeRaw(in, emit)
}

func decodeRaw(in io.Reader, emit func([]byte)) error {
	buf := make([]byte, shuttle.ReportSize)
	for {
		_, err := io.ReadFull(in, buf)
		if err == io.EOF {
			return nil
		}
		if err == io.ErrUnexpectedEOF {
			// Trailing partial record, discard.
			return nil
		}
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}
		emit(buf)
	}
}

func decodeHex(in io.Reader, logger *slog.Logger, emit func([]byte)) error {
	sc := bufio.NewScanner(in)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		data := make([]byte, 0, len(fields))
		ok := true
		for _, f := range fields {
			v, err := strconv.ParseUint(f, 16, 8)
			if err != nil {
				ok = false
				break
			}
			data = append(data, byte(v))
		}
		if !ok || len(data) != shuttle.ReportSize {
			logger.Warn("skipping malformed record", "line", line)
			continue
		}
		emit(data)
	}
	return sc.Err()
}
