// Package vectors loads single-step instruction test cases: one file per
// opcode, each holding an array of {initial state, final state, bus
// access trace} cases. A file is read either as plain JSON or out of a
// .7z/.zip archive, the way a ROM loader handles a raw dump vs. an
// archived one; only the first entry of an archive is read.
package vectors

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// State is one side of a test case - either the register/memory state
// before the opcode runs, or the state it must match afterward.
type State struct {
	A, B, C, D, E, F, H, L uint8
	PC, SP                 uint16
	RAM                    [][2]int `json:"ram"`
}

// CycleMode describes what kind of bus access, if any, happened during a
// recorded m-cycle.
type CycleMode string

const (
	CycleRead     CycleMode = "r-m"
	CycleWrite    CycleMode = "-wm"
	CycleInternal CycleMode = "---"
)

// Cycle is one recorded machine cycle: an address/value pair (meaningful
// only for r-m/-wm) and the access mode.
type Cycle struct {
	Addr int
	Data int
	Mode CycleMode
}

// UnmarshalJSON accepts the corpus's [addr, value, mode] triple form.
func (c *Cycle) UnmarshalJSON(data []byte) error {
	var raw [3]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[0], &c.Addr); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &c.Data); err != nil {
		return err
	}
	return json.Unmarshal(raw[2], &c.Mode)
}

// Case is a single named test: the state before and after running one
// opcode, plus the bus trace that running it is expected to produce.
type Case struct {
	Name    string  `json:"name"`
	Initial State   `json:"initial"`
	Final   State   `json:"final"`
	Cycles  []Cycle `json:"cycles"`
}

// LoadFile reads one opcode's test cases from filename, which may be a
// bare .json file or a single-file .7z/.zip archive containing one.
func LoadFile(filename string) ([]Case, error) {
	data, err := readArchiveAware(filename)
	if err != nil {
		return nil, fmt.Errorf("vectors: %s: %w", filename, err)
	}
	var cases []Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("vectors: %s: %w", filename, err)
	}
	return cases, nil
}

// LoadDir reads every test file in dir, keyed by the opcode name derived
// from its filename (without extension), skipping anything that isn't a
// recognized vector file.
func LoadDir(dir string) (map[string][]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	result := make(map[string][]Case)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		switch ext {
		case ".json", ".7z", ".zip":
		default:
			continue
		}
		key := entry.Name()[:len(entry.Name())-len(ext)]
		cases, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		result[key] = cases
	}
	return result, nil
}

// readArchiveAware returns the decompressed contents of filename,
// following the same extension-sniffing shape a ROM loader uses to tell
// a bare image apart from an archived one.
func readArchiveAware(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(filename) {
	case ".7z":
		r, err := sevenzip.NewReader(f, info.Size())
		if err != nil {
			return nil, err
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("empty archive")
		}
		rc, err := r.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	case ".zip":
		zr, err := zip.NewReader(f, info.Size())
		if err != nil {
			return nil, err
		}
		if len(zr.File) == 0 {
			return nil, fmt.Errorf("empty archive")
		}
		rc, err := zr.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	default:
		return io.ReadAll(f)
	}
}
