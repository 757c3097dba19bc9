package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"nesbus/emu/log"
)

type mode byte

const (
	dumpMode    mode = iota // Dump a window of the address space
	mirrorMode              // Resolve mirrored addresses
	versionMode             // Show nesbus version
)

type (
	CLI struct {
		Dump    Dump    `cmd:"" help:"Load a raw image and dump a window of the bus address space. (default command)" default:"true"`
		Mirror  Mirror  `cmd:"" help:"Resolve addresses to the physical byte they alias."`
		Version Version `cmd:"" help:"Show nesbus version."`

		Log logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`

		mode mode
	}

	Dump struct {
		ImagePath string  `arg:"" name:"/path/to/image" help:"Raw image to load into the address space." type:"existingfile"`
		Base      hexAddr `name:"base" help:"Load address of the image." default:"0"`
		Start     hexAddr `name:"start" help:"First address of the dumped window." default:"0"`
		End       hexAddr `name:"end" help:"Last address of the dumped window." default:"0xFFFF"`
		JSON      bool    `name:"json" help:"Emit the dump as JSON."`
	}

	Mirror struct {
		Addrs []string `arg:"" name:"addr" help:"Addresses to resolve (decimal or 0x-prefixed hex)."`
	}

	Version struct{}
)

var vars = kong.Vars{
	"log_help": "Enable logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("nesbus"),
		kong.Description("NES-style address bus inspector."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch {
	case strings.HasPrefix(ctx.Command(), "mirror"):
		cfg.mode = mirrorMode
	case ctx.Command() == "version":
		cfg.mode = versionMode
	default:
		cfg.mode = dumpMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}

	loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
	var strs []string
	for _, m := range log.ModuleNames() {
		strs = append(strs, "    - "+m)
	}

	fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	return nil
}

// hexAddr is a 16-bit bus address flag accepting decimal or 0x-prefixed hex.
//
// Implements kong.MapperValue interface.
type hexAddr uint16

func (a *hexAddr) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	v, err := strconv.ParseUint(tok.Value.(string), 0, 16)
	if err != nil {
		return fmt.Errorf("invalid address %v", tok.Value)
	}
	*a = hexAddr(v)
	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			lm |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		lm = logModMask(log.ModuleMaskAll)
	}

	log.EnableDebugModules(log.ModuleMask(lm))
	return nil
}
