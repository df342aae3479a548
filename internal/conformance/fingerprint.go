package conformance

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash"
)

// Fingerprint returns a single hash summarizing the report's pass/fail
// shape - same opcode set, same pass counts, same failure reasons in the
// same order produces the same fingerprint, so two runs of the same core
// against the same vectors can be compared without diffing the whole
// report by eye.
func (r *Report) Fingerprint() uint64 {
	opcodes := make([]string, len(r.Opcodes))
	byOpcode := make(map[string]OpcodeResult, len(r.Opcodes))
	for i, o := range r.Opcodes {
		opcodes[i] = o.Opcode
		byOpcode[o.Opcode] = o
	}
	sort.Strings(opcodes)

	var buf bytes.Buffer
	for _, name := range opcodes {
		o := byOpcode[name]
		buf.WriteString(name)
		binary.Write(&buf, binary.LittleEndian, uint32(o.Total))
		binary.Write(&buf, binary.LittleEndian, uint32(o.Passed))
		for _, f := range o.Failures {
			buf.WriteString(f.Case)
			buf.WriteString(f.Reason)
		}
	}
	return xxhash.Sum64(buf.Bytes())
}
