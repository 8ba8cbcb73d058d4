package pointstore

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pingcap/errors"
)

// Read parses one point per line, components separated by commas (surrounding
// spaces allowed). Blank lines are skipped. The result is passed through Load,
// so dimension rules apply.
func Read(r io.Reader) (*Store, error) {
	var (
		coords [][]float64
		lineNo int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		vec := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, errors.Annotatef(ErrMalformedLine, "line %d: %q", lineNo, line)
			}
			vec[i] = v
		}
		coords = append(coords, vec)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Trace(err)
	}

	return Load(coords)
}
