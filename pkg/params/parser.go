// Package params extracts parameter metadata from the .params files that
// SigmaStudio writes next to the compiled DSP program. Each parameter
// carries the cell it belongs to, its name and its register address.
package params

import (
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// Parameter is one entry from a .params export.
type Parameter struct {
	Cell    string
	Name    string
	Address int
}

var (
	blockSep  = regexp.MustCompile(`\n\s*\n\s*\n`)
	cellRe    = regexp.MustCompile(`^Cell Name\s*=\s*(.+)`)
	nameRe    = regexp.MustCompile(`^Parameter Name\s*=\s*(.+)`)
	addressRe = regexp.MustCompile(`^Parameter Address\s*=\s*(\d+)`)
)

// ParseFile reads and parses the given .params file.
func ParseFile(path string) ([]Parameter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	result, err := Parse(f)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to parse %s", path)
	}

	return result, nil
}

// Parse extracts all complete parameter blocks from the given reader.
// Blocks are separated by blank lines; a block only counts if it carries
// a cell name, a parameter name and a numeric parameter address.
func Parse(r io.Reader) ([]Parameter, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, eris.Wrap(err, "read failed")
	}

	result := make([]Parameter, 0)
	for _, block := range blockSep.Split(string(data), -1) {
		param, ok := parseBlock(block)
		if ok {
			result = append(result, param)
		}
	}

	return result, nil
}

func parseBlock(block string) (Parameter, bool) {
	var param Parameter
	var hasCell, hasName, hasAddress bool

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)

		if m := cellRe.FindStringSubmatch(line); m != nil {
			param.Cell = strings.TrimSpace(m[1])
			hasCell = true
		} else if m := nameRe.FindStringSubmatch(line); m != nil {
			param.Name = strings.TrimSpace(m[1])
			hasName = true
		} else if m := addressRe.FindStringSubmatch(line); m != nil {
			addr, err := strconv.Atoi(m[1])
			if err == nil {
				param.Address = addr
				hasAddress = true
			}
		}
	}

	return param, hasCell && hasName && hasAddress
}
