// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/ezrec/mix/config"
	"github.com/ezrec/mix/cpu"
	"github.com/ezrec/mix/emulator"
	"github.com/ezrec/mix/word"
)

// demo loads the accumulator from address 0 through a selection of fields
// and index registers.
func demo() (prog *cpu.Program) {
	prog = &cpu.Program{}

	for _, entry := range []struct {
		modifier uint32
		index    uint32
		sign     word.Sign
	}{
		{3, 2, word.MINUS},
		{11, 2, word.MINUS},
		{11, 0, word.MINUS},
		{5, 0, word.MINUS},
		{5, 4, word.PLUS},
	} {
		prog.Add(cpu.Instruction{
			Sign:     entry.sign,
			Index:    entry.index,
			Modifier: entry.modifier,
			Command:  cpu.OP_LDA,
		})
	}

	prog.Add(cpu.MakeInstruction(cpu.OP_SPEC, 0, 0, cpu.SPEC_HLT))

	return
}

// writeState writes the machine state to a file, or stdout for "-".
func writeState(path string, m *cpu.Machine, out config.Output) (err error) {
	ouf := os.Stdout
	if path != "-" {
		ouf, err = os.Create(path)
		if err != nil {
			return
		}
		defer func() {
			err = errors.Join(err, ouf.Close())
		}()
	}

	switch out.Format {
	case config.FORMAT_CBOR:
		var data []byte
		data, err = m.MarshalBinary()
		if err != nil {
			return
		}
		_, err = ouf.Write(data)
	default:
		err = m.Dump(ouf, out.Nonzero)
	}

	return
}

func main() {
	var configPath string
	var output string
	var verbose bool
	var budget int
	var format string
	var nonzero bool

	flag.StringVar(&configPath, "c", "mix.toml", "Configuration file")
	flag.StringVar(&output, "o", "-", "State output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&budget, "b", config.DEFAULT_BUDGET, "Instruction budget, 0 for unlimited")
	flag.StringVar(&format, "f", config.FORMAT_TEXT, "State output format (text, cbor)")
	flag.BoolVar(&nonzero, "n", true, "Only print non-zero memory")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	// Flags given on the command line override the configuration.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "v":
			cfg.Machine.Verbose = verbose
		case "b":
			cfg.Machine.Budget = budget
		case "f":
			cfg.Output.Format = format
		case "n":
			cfg.Output.Nonzero = nonzero
		}
	})

	err = cfg.Validate()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	emu := emulator.NewEmulator()
	emu.Program = demo()

	closer, err := cfg.Apply(emu)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	err = emu.Reset()
	if err == nil {
		err = emu.Run()
	}

	// Units are closed and drum images saved even if the run failed.
	if cerr := closer(); cerr != nil {
		log.Printf("%v: %v", os.Args[0], cerr)
	}

	werr := writeState(output, emu.Machine, cfg.Output)
	if werr != nil {
		log.Fatalf("%v: %v", output, werr)
	}

	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
