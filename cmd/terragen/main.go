// terragen is a CLI utility that synthesizes elevation datasets for the
// terravis viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/terravis/pkg/pointcloud"
)

func main() {
	defaults := pointcloud.DefaultGenerateOptions()

	out := flag.String("o", "elevation.txt", "Output file path")
	count := flag.Int("n", defaults.Count, "Number of sample points")
	seed := flag.Int64("seed", defaults.Seed, "Noise seed")
	extent := flag.Float64("extent", float64(defaults.Extent), "Side length of the sampled square, in dataset units")
	amplitude := flag.Float64("amplitude", float64(defaults.Amplitude), "Height amplitude, in dataset units")
	frequency := flag.Float64("frequency", defaults.Frequency, "Noise frequency per dataset unit")
	flag.Parse()

	if *count < 3 {
		fmt.Fprintln(os.Stderr, "Error: need at least 3 points to form a surface")
		os.Exit(1)
	}

	points := pointcloud.Generate(buildOptions(*count, *seed, *extent, *amplitude, *frequency))
	if err := pointcloud.WriteFile(*out, points); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d points to %s (seed %d)\n", len(points), *out, *seed)
}

// buildOptions assembles generator options from parsed flag values.
// Extent and amplitude narrow to float32 to match the point format;
// frequency stays float64 for the noise function.
func buildOptions(count int, seed int64, extent, amplitude, frequency float64) pointcloud.GenerateOptions {
	return pointcloud.GenerateOptions{
		Count:     count,
		Seed:      seed,
		Extent:    float32(extent),
		Amplitude: float32(amplitude),
		Frequency: frequency,
	}
}
