package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-faster/jx"

	"nesbus/emu"
	"nesbus/hw/hwio"
)

func runDump(d Dump) error {
	data, err := os.ReadFile(d.ImagePath)
	if err != nil {
		return err
	}

	sys, err := emu.New(nil)
	if err != nil {
		return err
	}
	if err := sys.LoadImage(data, uint16(d.Base)); err != nil {
		return err
	}

	start, end := uint16(d.Start), uint16(d.End)
	if start > end {
		return fmt.Errorf("start address $%04X past end address $%04X", start, end)
	}

	if d.JSON {
		return dumpJSON(os.Stdout, sys, start, end)
	}
	return dumpText(os.Stdout, sys, start, end)
}

// dumpText hexdumps the [start, end] window, 16 bytes per line. Bytes are
// fetched with Peek8 so mirroring applies but no device hook runs.
func dumpText(w io.Writer, sys *emu.System, start, end uint16) error {
	for line := int(start) &^ 15; line <= int(end); line += 16 {
		if _, err := fmt.Fprintf(w, "$%04X:", line); err != nil {
			return err
		}
		for a := line; a < line+16; a++ {
			if a < int(start) || a > int(end) {
				fmt.Fprint(w, "   ")
				continue
			}
			fmt.Fprintf(w, " %02X", sys.Bus.Peek8(uint16(a)))
		}
		fmt.Fprintln(w)
	}
	return nil
}

func dumpJSON(w io.Writer, sys *emu.System, start, end uint16) error {
	buf := make([]byte, 0, int(end)-int(start)+1)
	for a := int(start); a <= int(end); a++ {
		buf = append(buf, sys.Bus.Peek8(uint16(a)))
	}

	e := jx.NewStreamingEncoder(w, 1024)
	e.Obj(func(e *jx.Encoder) {
		e.Field("start", func(e *jx.Encoder) { e.Str(fmt.Sprintf("$%04X", start)) })
		e.Field("end", func(e *jx.Encoder) { e.Str(fmt.Sprintf("$%04X", end)) })
		e.Field("mappings", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, r := range sys.Bus.Mappings() {
					e.Str(r.String())
				}
			})
		})
		e.Field("data", func(e *jx.Encoder) { e.Base64(buf) })
	})
	return e.Close()
}

func runMirror(m Mirror) error {
	for _, s := range m.Addrs {
		v, err := strconv.ParseUint(s, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid address %q", s)
		}
		fmt.Printf("$%04X -> $%04X\n", v, hwio.MirrorAddr(uint16(v)))
	}
	return nil
}
