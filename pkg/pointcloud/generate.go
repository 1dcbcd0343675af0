package pointcloud

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// GenerateOptions controls synthetic terrain generation.
type GenerateOptions struct {
	Count     int     // number of samples
	Seed      int64   // rng and noise seed
	Extent    float32 // samples are scattered over [0, Extent) on X and Z
	Amplitude float32 // height range of the noise
	Frequency float64 // noise frequency; higher is rougher terrain
}

// DefaultGenerateOptions returns settings that produce a terrain dense
// enough to survive the default edge-length filter after normalization.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Count:     5000,
		Seed:      1,
		Extent:    100,
		Amplitude: 12,
		Frequency: 0.04,
	}
}

// Generate produces scattered Perlin-noise elevation samples in the
// loader's point order convention (unsorted). The same options always
// yield the same cloud.
func Generate(opts GenerateOptions) []Point {
	if opts.Count <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	noise := perlin.NewPerlin(2, 2, 3, opts.Seed)

	points := make([]Point, opts.Count)
	for i := range points {
		x := rng.Float32() * opts.Extent
		z := rng.Float32() * opts.Extent
		y := float32(noise.Noise2D(float64(x)*opts.Frequency, float64(z)*opts.Frequency)) * opts.Amplitude
		points[i] = Point{X: x, Y: y, Z: z}
	}

	return points
}
