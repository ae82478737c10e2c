package convexhull

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/osuushi/convexhull/advanced"
	"github.com/pkg/errors"
)

// The hull algorithm never touches files or parsing; it consumes validated
// points and produces an index sequence. These two interfaces are the whole
// contract with the outside world.

// A PointSource yields validated points whose positions in the returned
// slice are their stable original indices. Implementations must reject
// non-finite coordinates, exact duplicates, and inputs of fewer than three
// points, so the algorithm never sees them.
type PointSource interface {
	ReadPoints() ([]Point, error)
}

// A ResultSink accepts hull vertex indices in CCW cycle order and delivers
// them to whatever consumes the result (a file, a plotter, a test).
type ResultSink interface {
	WriteIndices(indices []int) error
}

// CSVPointSource reads points from "x,y" records, one point per record.
type CSVPointSource struct {
	R io.Reader
}

func (s *CSVPointSource) ReadPoints() ([]Point, error) {
	reader := csv.NewReader(s.R)
	reader.FieldsPerRecord = 2

	var points []Point
	seen := make(map[Point]int)
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, advanced.NewInvalidInputError("line %d: expected format 'x,y': %v", line, err)
		}
		x, err := parseCoordinate(record[0])
		if err != nil {
			return nil, advanced.NewInvalidInputError("line %d: invalid x value %q", line, record[0])
		}
		y, err := parseCoordinate(record[1])
		if err != nil {
			return nil, advanced.NewInvalidInputError("line %d: invalid y value %q", line, record[1])
		}

		point := Point{X: x, Y: y, Index: len(points)}
		key := Point{X: x, Y: y}
		if firstLine, ok := seen[key]; ok {
			return nil, advanced.NewInvalidInputError("line %d: duplicate of point (%v, %v) on line %d",
				line, x, y, firstLine)
		}
		seen[key] = line
		points = append(points, point)
	}

	if len(points) < 3 {
		return nil, advanced.NewInvalidInputError("need at least 3 points for a convex hull, got %d", len(points))
	}
	return points, nil
}

// parseCoordinate parses a single coordinate, rejecting the non-finite
// values ParseFloat would happily accept.
func parseCoordinate(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("non-finite coordinate %v", v)
	}
	return v, nil
}

// LineResultSink writes one index per line, the format downstream plotting
// tools consume.
type LineResultSink struct {
	W io.Writer
}

func (s *LineResultSink) WriteIndices(indices []int) error {
	for _, index := range indices {
		if _, err := fmt.Fprintf(s.W, "%d\n", index); err != nil {
			return errors.Wrap(err, "writing hull indices")
		}
	}
	return nil
}
