package conformance

import (
	"encoding/json"

	"github.com/google/brotli/go/cbrotli"
)

// CompressTrace serializes a report's failures to JSON and brotli-
// compresses the result, the way a long conformance run's output gets
// archived without keeping every byte of every mismatch around
// uncompressed.
func CompressTrace(r *Report) ([]byte, error) {
	var failures []Failure
	for _, o := range r.Opcodes {
		failures = append(failures, o.Failures...)
	}
	raw, err := json.Marshal(failures)
	if err != nil {
		return nil, err
	}
	return cbrotli.Encode(raw, cbrotli.WriterOptions{Quality: 9})
}

// DecompressTrace reverses CompressTrace.
func DecompressTrace(compressed []byte) ([]Failure, error) {
	raw, err := cbrotli.Decode(compressed)
	if err != nil {
		return nil, err
	}
	var failures []Failure
	if err := json.Unmarshal(raw, &failures); err != nil {
		return nil, err
	}
	return failures, nil
}
