package readfiles

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/easymesh/mesh"
)

// File suffixes of the three companion files, in read order
const (
	NodeSuffix    = ".n"
	SideSuffix    = ".s"
	ElementSuffix = ".e"
)

// Preallocation is capped so a corrupt header cannot force a huge allocation
// before the line count is checked
const maxReserve = 1 << 20

type Options struct {
	Convention mesh.SideConvention
	Verbose    bool
}

// Files returns the node, side and element file names for prefix
func Files(prefix string) (nodes, sides, elements string) {
	return prefix + NodeSuffix, prefix + SideSuffix, prefix + ElementSuffix
}

// ReadEasyMesh loads <prefix>.n, <prefix>.s and <prefix>.e into a validated
// Mesh. Any failure discards the partially built mesh and is reported as a
// *mesh.LoadError naming the file and line.
//
//	.n   N0, then N0 lines of: x y boundaryMark
//	.s   N1, then N1 lines of: v0 v1 boundaryMark
//	.e   N2, then N2 lines of: v0 v1 v2 b0 b1 b2
func ReadEasyMesh(prefix string, opts Options) (*mesh.Mesh, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, &mesh.LoadError{Err: fmt.Errorf("%w: empty mesh file prefix", mesh.ErrFormat)}
	}
	var (
		b                        = mesh.NewBuilder(opts.Convention)
		nFile, sFile, eFile      = Files(prefix)
		elementLines             []int
		nNodes, nSides, nElement int
		err                      error
	)
	if opts.Verbose {
		log.Printf("Reading EasyMesh files with prefix %s, side convention %v", prefix, opts.Convention)
	}
	nNodes, err = readRecords(nFile, 3,
		func(n int) { b.Reserve(mesh.Vertex, min(n, maxReserve)) },
		func(fields []string, _ int) (err error) {
			var (
				x, y float64
				mark int
			)
			if x, err = parseFloat(fields[0], "x"); err != nil {
				return
			}
			if y, err = parseFloat(fields[1], "y"); err != nil {
				return
			}
			if mark, err = parseInt(fields[2], "boundary mark"); err != nil {
				return
			}
			return b.AddNode(x, y, mark)
		})
	if err != nil {
		return nil, err
	}
	nSides, err = readRecords(sFile, 3,
		func(n int) { b.Reserve(mesh.Edge, min(n, maxReserve)) },
		func(fields []string, _ int) (err error) {
			var v [3]int
			if err = parseInts(fields, []string{"vertex 0", "vertex 1", "boundary mark"}, v[:]); err != nil {
				return
			}
			return b.AddSide(v[0], v[1], v[2])
		})
	if err != nil {
		return nil, err
	}
	nElement, err = readRecords(eFile, 6,
		func(n int) {
			b.Reserve(mesh.Triangle, min(n, maxReserve))
			elementLines = make([]int, 0, min(n, maxReserve))
		},
		func(fields []string, line int) (err error) {
			var (
				v, s [3]int
				vals [6]int
			)
			if err = parseInts(fields, elementFieldNames, vals[:]); err != nil {
				return
			}
			copy(v[:], vals[:3])
			copy(s[:], vals[3:])
			if err = b.AddElement(v, s); err != nil {
				return
			}
			elementLines = append(elementLines, line)
			return
		})
	if err != nil {
		return nil, err
	}
	m, err := b.Build()
	if err != nil {
		var ee *mesh.ElementError
		if errors.As(err, &ee) && ee.Index < len(elementLines) {
			return nil, &mesh.LoadError{File: eFile, Line: elementLines[ee.Index], Err: err}
		}
		return nil, &mesh.LoadError{File: eFile, Err: err}
	}
	if opts.Verbose {
		log.Printf("Read %d nodes, %d sides, %d elements", nNodes, nSides, nElement)
	}
	return m, nil
}

var elementFieldNames = []string{"vertex 0", "vertex 1", "vertex 2", "side 0", "side 1", "side 2"}

// readRecords reads a header count followed by exactly that many records of
// nFields tokens. Blank lines are skipped. The line passed to add is 1-based.
func readRecords(filename string, nFields int, header func(n int),
	add func(fields []string, line int) error) (count int, err error) {
	var (
		file       *os.File
		line, read int
		headerLine int
	)
	if file, err = os.Open(filename); err != nil {
		return 0, &mesh.LoadError{File: filename, Err: fmt.Errorf("%w: %v", mesh.ErrIO, err)}
	}
	defer file.Close()

	fail := func(line int, err error) (int, error) {
		return 0, &mesh.LoadError{File: filename, Line: line, Err: err}
	}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if headerLine == 0 {
			headerLine = line
			if len(fields) != 1 {
				return fail(line, fmt.Errorf("%w: header must be a single record count, got %d fields",
					mesh.ErrFormat, len(fields)))
			}
			if count, err = parseInt(fields[0], "record count"); err != nil {
				return fail(line, err)
			}
			if count < 0 {
				return fail(line, fmt.Errorf("%w: negative record count %d", mesh.ErrFormat, count))
			}
			header(count)
			continue
		}
		if read == count {
			return fail(line, fmt.Errorf("%w: header declares %d records, found more",
				mesh.ErrFormat, count))
		}
		if len(fields) != nFields {
			return fail(line, fmt.Errorf("%w: expected %d fields, got %d",
				mesh.ErrFormat, nFields, len(fields)))
		}
		if err = add(fields, line); err != nil {
			return fail(line, err)
		}
		read++
	}
	if err = scanner.Err(); err != nil {
		return fail(line, fmt.Errorf("%w: %v", mesh.ErrIO, err))
	}
	if headerLine == 0 {
		return fail(0, fmt.Errorf("%w: missing record count header", mesh.ErrFormat))
	}
	if read != count {
		return fail(headerLine, fmt.Errorf("%w: header declares %d records, found %d",
			mesh.ErrFormat, count, read))
	}
	return count, nil
}

func parseInt(token, what string) (int, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", mesh.ErrFormat, what, token)
	}
	return v, nil
}

func parseInts(fields, what []string, v []int) (err error) {
	for i := range v {
		if v[i], err = parseInt(fields[i], what[i]); err != nil {
			return
		}
	}
	return
}

func parseFloat(token, what string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", mesh.ErrFormat, what, token)
	}
	return v, nil
}
