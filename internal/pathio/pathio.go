// Package pathio reads and writes paths and signature matrices as CSV.
//
// Files are time-major: one record per time sample, one field per channel
// (or per signature coefficient). In memory everything is channel-major, so
// both directions transpose. NaN is written and read as "NaN".
package pathio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/pathsig/matrix"
)

// ErrNoData indicates a CSV input without numeric records.
var ErrNoData = errors.New("pathio: no samples")

// ReadPath parses time-major CSV into a d×T path. A first record that does
// not parse as numbers is treated as a header and returned separately.
// opts set the numeric policy of the result (finite-only by default).
func ReadPath(r io.Reader, opts ...matrix.Option) (*matrix.Dense, []string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = false

	var (
		header []string
		rows   [][]float64
		line   int
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("pathio: %w", err)
		}
		line++
		vals, perr := parseRecord(rec)
		if perr != nil {
			if line == 1 {
				header = rec
				continue
			}
			return nil, nil, fmt.Errorf("pathio: line %d: %w", line, perr)
		}
		rows = append(rows, vals)
	}
	if len(rows) == 0 {
		return nil, nil, ErrNoData
	}

	samples, err := matrix.NewDenseFromRows(rows, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("pathio: %w", err)
	}
	path, err := matrix.Transpose(samples)
	if err != nil {
		return nil, nil, fmt.Errorf("pathio: %w", err)
	}

	return path, header, nil
}

// ReadPathFile is ReadPath over a named file.
func ReadPathFile(name string, opts ...matrix.Option) (*matrix.Dense, []string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return ReadPath(f, opts...)
}

// WriteMatrix writes m time-major: record t holds column t of m. header,
// when non-empty, must have m.Rows() fields.
func WriteMatrix(w io.Writer, m matrix.Reader, header []string) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("pathio: %w", err)
	}
	if len(header) > 0 && len(header) != m.Rows() {
		return fmt.Errorf("pathio: header has %d fields for %d rows: %w",
			len(header), m.Rows(), matrix.ErrDimensionMismatch)
	}

	cw := csv.NewWriter(w)
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	rec := make([]string, m.Rows())
	for t := 0; t < m.Cols(); t++ {
		for i := range rec {
			v, err := m.At(i, t)
			if err != nil {
				return fmt.Errorf("pathio: %w", err)
			}
			rec[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteMatrixFile is WriteMatrix into a newly created file.
func WriteMatrixFile(name string, m matrix.Reader, header []string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = WriteMatrix(f, m, header); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// ChannelHeader returns "x0".."x{d-1}".
func ChannelHeader(d int) []string {
	h := make([]string, d)
	for i := range h {
		h[i] = "x" + strconv.Itoa(i)
	}

	return h
}

// SignatureHeader names the coefficients of a level-L signature over d
// channels by their word: "S(1)", "S(1,2)", ... with 1-based letters.
func SignatureHeader(d, level int) []string {
	var out []string
	words := [][]int{nil}
	for k := 1; k <= level; k++ {
		next := make([][]int, 0, len(words)*d)
		for _, w := range words {
			for a := 1; a <= d; a++ {
				word := append(append(make([]int, 0, k), w...), a)
				next = append(next, word)
				out = append(out, wordName(word))
			}
		}
		words = next
	}

	return out
}

func wordName(word []int) string {
	b := []byte("S(")
	for i, a := range word {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(a), 10)
	}

	return string(append(b, ')'))
}

func parseRecord(rec []string) ([]float64, error) {
	out := make([]float64, len(rec))
	for i, s := range rec {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
