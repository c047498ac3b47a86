package transport

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ReadText decodes the whitespace-separated instance format:
//
//	S D
//
//	supply_0 … supply_{S−1}
//	demand_0 … demand_{D−1}
//
//	S rows of D unit costs
//
//	S rows of D fixed costs
//
// Blank lines are ignored, so the separators above are optional. Every
// structural or numeric error wraps ErrMalformedInput and names the line.
func ReadText(r io.Reader) (*Problem, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}
	// One line holds a whole supply, demand or cost row, which outgrows the
	// default 64 KiB token limit on wide instances.
	lr.sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)

	header, err := lr.ints("header", 2)
	if err != nil {
		return nil, err
	}
	var (
		s = header[0]
		d = header[1]
	)
	if s <= 0 || d <= 0 {
		return nil, malformed(nil, "line %d: header needs positive sizes, got %d %d", lr.line, s, d)
	}

	supply, err := lr.ints("supply", s)
	if err != nil {
		return nil, err
	}
	demand, err := lr.ints("demand", d)
	if err != nil {
		return nil, err
	}
	unit, err := lr.matrix("unit cost", s, d)
	if err != nil {
		return nil, err
	}
	fixed, err := lr.matrix("fixed cost", s, d)
	if err != nil {
		return nil, err
	}
	if extra, ok := lr.next(); ok {
		return nil, malformed(nil, "line %d: unexpected trailing data %q", lr.line, extra)
	}
	if err = lr.sc.Err(); err != nil {
		return nil, malformed(err, "read")
	}

	return NewProblem(supply, demand, unit, fixed)
}

// WriteText encodes p in the format ReadText accepts.
func WriteText(w io.Writer, p *Problem) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d\n\n", p.Sources(), p.Destinations())
	writeInts(bw, p.supply)
	writeInts(bw, p.demand)
	bw.WriteString("\n")
	writeRows(bw, p.unitCost.ToRows())
	bw.WriteString("\n")
	writeRows(bw, p.fixedCost.ToRows())

	return bw.Flush()
}

func writeInts(w *bufio.Writer, xs []int) {
	for k, x := range xs {
		if k > 0 {
			w.WriteByte(' ')
		}
		w.WriteString(strconv.Itoa(x))
	}
	w.WriteByte('\n')
}

func writeRows(w *bufio.Writer, rows [][]float64) {
	for _, row := range rows {
		for k, v := range row {
			if k > 0 {
				w.WriteByte(' ')
			}
			w.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		w.WriteByte('\n')
	}
}

// lineReader yields non-blank lines and tracks the 1-based line number.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() (string, bool) {
	for lr.sc.Scan() {
		lr.line++
		if t := strings.TrimSpace(lr.sc.Text()); t != "" {
			return t, true
		}
	}

	return "", false
}

func (lr *lineReader) fields(what string, n int) ([]string, error) {
	text, ok := lr.next()
	if !ok {
		if err := lr.sc.Err(); err != nil {
			return nil, malformed(err, "read %s", what)
		}
		return nil, malformed(nil, "unexpected end of input, want %s", what)
	}
	f := strings.Fields(text)
	if len(f) != n {
		return nil, malformed(nil, "line %d: %s needs %d values, got %d", lr.line, what, n, len(f))
	}

	return f, nil
}

func (lr *lineReader) ints(what string, n int) ([]int, error) {
	f, err := lr.fields(what, n)
	if err != nil {
		return nil, err
	}
	out := make([]int, n)
	for k := range f {
		if out[k], err = strconv.Atoi(f[k]); err != nil {
			return nil, malformed(err, "line %d: %s value %d", lr.line, what, k)
		}
	}

	return out, nil
}

func (lr *lineReader) matrix(what string, rows, cols int) ([][]float64, error) {
	out := make([][]float64, rows)

	var (
		i, j int
		f    []string
		err  error
	)
	for i = 0; i < rows; i++ {
		if f, err = lr.fields(fmt.Sprintf("%s row %d", what, i), cols); err != nil {
			return nil, err
		}
		out[i] = make([]float64, cols)
		for j = range f {
			if out[i][j], err = strconv.ParseFloat(f[j], 64); err != nil {
				return nil, malformed(err, "line %d: %s (%d,%d)", lr.line, what, i, j)
			}
		}
	}

	return out, nil
}
