// Package pointcloud loads and prepares scattered elevation samples.
//
// The on-disk format is plain text: the first whitespace-delimited token
// is an advisory point count, followed by x y z float triples until the
// end of the stream.
package pointcloud

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Point is a raw elevation sample. Y is the height axis.
type Point struct {
	X, Y, Z float32
}

// Cloud holds a loaded point set together with the file's advisory count.
type Cloud struct {
	// DeclaredCount is the header token of the file. It is informational
	// only; parsing never uses it to bound the number of samples read.
	DeclaredCount int

	// Points in file order.
	Points []Point
}

// Load reads a point cloud from a text file.
// A missing or unreadable file is reported to the caller; the pipeline
// treats that as a recoverable abort, not a panic.
func Load(path string) (*Cloud, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening point cloud %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a point cloud from a stream.
// Points are consumed until the stream is exhausted or a token fails to
// parse as a float; a trailing partial triple is discarded.
func Parse(r io.Reader) (*Cloud, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	cloud := &Cloud{}

	if !sc.Scan() {
		return cloud, sc.Err()
	}
	if n, err := strconv.Atoi(sc.Text()); err == nil {
		cloud.DeclaredCount = n
	} else {
		// A malformed header poisons the stream: nothing after it is read.
		return cloud, nil
	}

	for {
		var triple [3]float32
		complete := true
		for i := range triple {
			if !sc.Scan() {
				complete = false
				break
			}
			v, err := strconv.ParseFloat(sc.Text(), 32)
			if err != nil {
				complete = false
				break
			}
			triple[i] = float32(v)
		}
		if !complete {
			break
		}
		cloud.Points = append(cloud.Points, Point{X: triple[0], Y: triple[1], Z: triple[2]})
	}

	return cloud, sc.Err()
}

// WriteFile writes points to path in the loader's text format.
func WriteFile(path string, points []Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating point cloud %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", len(points))
	for _, p := range points {
		fmt.Fprintf(w, "%g %g %g\n", p.X, p.Y, p.Z)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing point cloud %s: %w", path, err)
	}
	return nil
}
