// SPDX-License-Identifier: MIT
// Package: bipval/report
//
// table.go - space-delimited validated edge list.
//
// Layout:
//   source target weight [p-value_over test_over] [p-value_under test_under]
//
// A tail's columns appear only when that tail was requested; "both" emits
// all four. Flags are "success"/"fail". p-values use the shortest decimal
// that round-trips, so 1 prints as "1" and tiny tails keep full precision.

package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/bipval/pipeline"
)

// Column names and flag values.
const (
	ColSource     = "source"
	ColTarget     = "target"
	ColWeight     = "weight"
	ColPValueOver = "p-value_over"
	ColTestOver   = "test_over"
	ColPValueUnd  = "p-value_under"
	ColTestUnder  = "test_under"

	FlagSuccess = "success"
	FlagFail    = "fail"

	outputSuffix = ".txt"
	sep          = ' '
	filePerm     = 0o644
)

// ErrNilResult indicates an emitter was called without a pipeline result.
var ErrNilResult = errors.New("report: result is nil")

// OutputPath derives the output file from the input path: the extension is
// stripped, then "_<ext>.txt" is appended. A leading underscore on ext is
// ignored, so "_validated" and "validated" give the same name.
func OutputPath(input, ext string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	ext = strings.TrimPrefix(ext, "_")

	return base + "_" + ext + outputSuffix
}

// Header returns the column names emitted for res.
func Header(res *pipeline.Result) []string {
	cols := []string{ColSource, ColTarget, ColWeight}
	if res.Over != nil {
		cols = append(cols, ColPValueOver, ColTestOver)
	}
	if res.Under != nil {
		cols = append(cols, ColPValueUnd, ColTestUnder)
	}

	return cols
}

// WriteTable writes the header and one line per projected edge to w.
func WriteTable(w io.Writer, res *pipeline.Result) error {
	if res == nil {
		return ErrNilResult
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(Header(res), string(sep)) + "\n"); err != nil {
		return fmt.Errorf("WriteTable: header: %w", err)
	}

	buf := make([]byte, 0, 96)
	for _, r := range res.Rows() {
		buf = strconv.AppendInt(buf[:0], r.Source, 10)
		buf = append(buf, sep)
		buf = strconv.AppendInt(buf, r.Target, 10)
		buf = append(buf, sep)
		buf = strconv.AppendInt(buf, int64(r.Weight), 10)
		if res.Over != nil {
			buf = appendTest(buf, r.POver, r.TestOver)
		}
		if res.Under != nil {
			buf = appendTest(buf, r.PUnder, r.TestUnder)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("WriteTable: edge (%d,%d): %w", r.Source, r.Target, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteTable: %w", err)
	}

	return nil
}

func appendTest(buf []byte, p float64, pass bool) []byte {
	buf = append(buf, sep)
	buf = strconv.AppendFloat(buf, p, 'g', -1, 64)
	buf = append(buf, sep)
	if pass {
		return append(buf, FlagSuccess...)
	}

	return append(buf, FlagFail...)
}

// WriteFile writes the table to path. The data goes to a temporary file in
// the same directory which is renamed over path only after a successful
// flush and close, so a failed run leaves no partial output.
func WriteFile(path string, res *pipeline.Result) (err error) {
	if res == nil {
		return ErrNilResult
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = WriteTable(tmp, res); err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = tmp.Chmod(filePerm); err != nil {
		return fmt.Errorf("WriteFile: chmod: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("WriteFile: close: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("WriteFile: rename: %w", err)
	}

	return nil
}
