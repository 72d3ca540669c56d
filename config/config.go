// Package config handles mix.toml machine configuration: the instruction
// budget, the state output format, and the tape and drum units.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/mix/cpu"
	"github.com/ezrec/mix/emulator"
	"github.com/ezrec/mix/io"
)

const (
	FORMAT_TEXT = "text" // State printed as text.
	FORMAT_CBOR = "cbor" // State written as a CBOR snapshot.

	DEFAULT_BUDGET = 100000 // Default instructions per run.
)

// Config represents a mix.toml configuration.
type Config struct {
	Machine Machine `toml:"machine"`
	Output  Output  `toml:"output"`
	Tapes   []Tape  `toml:"tape"`
	Drums   []Drum  `toml:"drum"`

	// Dir is the directory relative paths are resolved against (set at
	// load time).
	Dir string `toml:"-"`
}

// Machine configures the emulated machine.
type Machine struct {
	Budget  int  `toml:"budget"`
	Verbose bool `toml:"verbose"`
}

// Output configures how the final machine state is written.
type Output struct {
	Format  string `toml:"format"`
	Nonzero bool   `toml:"nonzero"`
}

// Tape attaches files to a tape unit.
type Tape struct {
	Unit   int    `toml:"unit"`
	Input  string `toml:"input"`
	Output string `toml:"output"`
}

// Drum attaches a drum unit, optionally backed by an image file.
type Drum struct {
	Unit   int    `toml:"unit"`
	Blocks int    `toml:"blocks"`
	Image  string `toml:"image"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Machine: Machine{Budget: DEFAULT_BUDGET},
		Output:  Output{Format: FORMAT_TEXT, Nonzero: true},
		Dir:     ".",
	}
}

// Parse decodes a TOML configuration over the defaults.
func Parse(data string) (*Config, error) {
	cfg := Default()

	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for n, key := range undecoded {
			keys[n] = key.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load parses a configuration file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.Dir = filepath.Dir(path)

	return cfg, nil
}

// Validate checks the configuration for consistency.
func (cfg *Config) Validate() (err error) {
	if cfg.Output.Format != FORMAT_TEXT && cfg.Output.Format != FORMAT_CBOR {
		return fmt.Errorf("%w: %q", ErrFormat, cfg.Output.Format)
	}

	if cfg.Machine.Budget < 0 {
		return fmt.Errorf("%w: %d", ErrBudget, cfg.Machine.Budget)
	}

	used := map[int]bool{}
	claim := func(unit int) error {
		if unit < 0 || unit >= cpu.UNIT_COUNT {
			return fmt.Errorf("%w: %d", ErrUnit, unit)
		}
		if used[unit] {
			return fmt.Errorf("%w: %d", ErrUnitDuplicate, unit)
		}
		used[unit] = true
		return nil
	}

	for _, tape := range cfg.Tapes {
		err = claim(tape.Unit)
		if err != nil {
			return
		}
		if tape.Input == "" && tape.Output == "" {
			return fmt.Errorf("%w: unit %d", ErrTapeEmpty, tape.Unit)
		}
	}

	for _, drum := range cfg.Drums {
		err = claim(drum.Unit)
		if err != nil {
			return
		}
		if drum.Blocks < 0 {
			return fmt.Errorf("%w: unit %d", ErrDrumBlocks, drum.Unit)
		}
	}

	return
}

// path resolves a file name relative to the configuration directory.
func (cfg *Config) path(name string) string {
	if filepath.IsAbs(name) || cfg.Dir == "" {
		return name
	}
	return filepath.Join(cfg.Dir, name)
}

// Apply configures an emulator: budget, verbosity, and the tape and drum
// units. The returned close function writes drum images back and closes
// the tape files; it must be called even if the run fails.
func (cfg *Config) Apply(emu *emulator.Emulator) (closer func() error, err error) {
	var files []*os.File
	var saves []func() error

	closer = func() (err error) {
		for _, save := range saves {
			err = errors.Join(err, save())
		}
		for _, file := range files {
			err = errors.Join(err, file.Close())
		}
		return
	}

	defer func() {
		if err != nil {
			_ = closer()
			closer = nil
		}
	}()

	emu.Verbose = cfg.Machine.Verbose
	emu.Budget = cfg.Machine.Budget

	for _, tape := range cfg.Tapes {
		dev := &io.Tape{}
		if tape.Input != "" {
			var file *os.File
			file, err = os.Open(cfg.path(tape.Input))
			if err != nil {
				return
			}
			files = append(files, file)
			dev.Input = file
		}
		if tape.Output != "" {
			var file *os.File
			file, err = os.Create(cfg.path(tape.Output))
			if err != nil {
				return
			}
			files = append(files, file)
			dev.Output = file
		}
		emu.Tapes[tape.Unit] = dev
	}

	for _, drum := range cfg.Drums {
		dev := &io.Drum{Blocks: drum.Blocks}
		if drum.Image != "" {
			image := cfg.path(drum.Image)
			err = loadImage(dev, image)
			if err != nil {
				return
			}
			saves = append(saves, func() error { return saveImage(dev, image) })
		}
		emu.Drums[drum.Unit] = dev
	}

	return
}

// loadImage reads a drum image, if it exists.
func loadImage(drum *io.Drum, path string) (err error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		err = nil
		return
	}
	if err != nil {
		return
	}
	defer file.Close()

	err = drum.Unmarshal(file)
	if err != nil {
		err = fmt.Errorf("%s: %w", path, err)
	}
	return
}

// saveImage writes a drum image.
func saveImage(drum *io.Drum, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return
	}

	err = drum.Marshal(file)
	err = errors.Join(err, file.Close())
	return
}
