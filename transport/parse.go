package transport

import (
	"strconv"
	"strings"
)

// ParseVector parses a comma-separated list of integers such as "20,30".
// Surrounding blanks around tokens are ignored; an empty string, an empty
// token or a non-integer token wraps ErrMalformedInput.
func ParseVector(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, malformed(nil, "empty vector")
	}

	var (
		parts = strings.Split(s, ",")
		out   = make([]int, len(parts))
		k     int
		err   error
	)
	for k = range parts {
		out[k], err = strconv.Atoi(strings.TrimSpace(parts[k]))
		if err != nil {
			return nil, malformed(err, "vector token %d %q", k, parts[k])
		}
	}

	return out, nil
}

// ParseMatrix parses rows·cols comma-separated numbers in row-major order,
// e.g. "2,3,4,1" for a 2×2 matrix. Missing, surplus or non-numeric tokens
// wrap ErrMalformedInput.
func ParseMatrix(s string, rows, cols int) ([][]float64, error) {
	if rows <= 0 || cols <= 0 {
		return nil, malformed(nil, "matrix shape %dx%d", rows, cols)
	}
	parts := strings.Split(s, ",")
	if strings.TrimSpace(s) == "" || len(parts) != rows*cols {
		return nil, malformed(nil, "matrix %dx%d needs %d values, got %d", rows, cols, rows*cols, countTokens(s, parts))
	}

	var (
		out  = make([][]float64, rows)
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j = 0; j < cols; j++ {
			v, err = strconv.ParseFloat(strings.TrimSpace(parts[i*cols+j]), 64)
			if err != nil {
				return nil, malformed(err, "matrix token (%d,%d) %q", i, j, parts[i*cols+j])
			}
			out[i][j] = v
		}
	}

	return out, nil
}

func countTokens(s string, parts []string) int {
	if strings.TrimSpace(s) == "" {
		return 0
	}

	return len(parts)
}
