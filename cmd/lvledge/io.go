// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvledge/signal"
	"gopkg.in/yaml.v3"
)

// errNoSamples indicates an input without a single numeric row.
var errNoSamples = errors.New("no samples in input")

// openInput returns stdin for "" or "-", the named file otherwise.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	return f, nil
}

// readSignal parses CSV samples. Rows are "h,v" or a single "v" column (then
// h = 0, 1, 2, ...). A non-numeric first row is taken as a header. Blank
// lines are skipped by the CSV reader.
func readSignal(r io.Reader) (*signal.Signal, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var h, v []float64
	columns := 0
	for n := 1; ; n++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		nums, err := parseRecord(rec)
		if err != nil {
			if n == 1 {
				continue
			}
			return nil, fmt.Errorf("record %d: %w", n, err)
		}
		if columns == 0 {
			columns = len(nums)
		}
		if len(nums) != columns || columns > 2 {
			return nil, fmt.Errorf("record %d: expected %d column(s) (h,v or v), got %d", n, min(columns, 2), len(nums))
		}
		if columns == 2 {
			h = append(h, nums[0])
		}
		v = append(v, nums[len(nums)-1])
	}
	if len(v) == 0 {
		return nil, errNoSamples
	}
	if columns == 1 {
		return signal.NewUniform(v, 0, 1)
	}

	return signal.New(h, v)
}

func parseRecord(rec []string) ([]float64, error) {
	out := make([]float64, len(rec))
	for i, field := range rec {
		x, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		out[i] = x
	}

	return out, nil
}

// writeArrays writes parallel h/v arrays as CSV with an "h,v" header.
func writeArrays(w io.Writer, h, v []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"h", "v"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range h {
		rec := []string{formatFloat(h[i]), formatFloat(v[i])}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// writeSignal writes every sample of sig as "h,v" CSV.
func writeSignal(w io.Writer, sig *signal.Signal) error {
	return writeArrays(w, sig.HValues(), sig.VValues())
}

// writeYAML encodes v as a YAML document with two-space indentation.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return enc.Close()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
