package lighting

import (
	"math"
	"testing"
)

func TestSunDirectionOverhead(t *testing.T) {
	d := SunDirection(0, 90)
	if math.Abs(float64(d[1]-1)) > 1e-6 {
		t.Errorf("SunDirection(0, 90) = %v, want straight up", d)
	}
}

func TestSunDirectionHorizon(t *testing.T) {
	d := SunDirection(0, 0)
	want := [3]float32{0, 0, 1}
	for i := range d {
		if math.Abs(float64(d[i]-want[i])) > 1e-6 {
			t.Errorf("SunDirection(0, 0) = %v, want %v", d, want)
		}
	}
}

func TestSunDirectionUnitLength(t *testing.T) {
	for _, angles := range [][2]float32{{0, 45}, {90, 30}, {215, 75}} {
		d := SunDirection(angles[0], angles[1])
		l := math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
		if math.Abs(l-1) > 1e-6 {
			t.Errorf("SunDirection(%v) length = %v, want 1", angles, l)
		}
	}
}

func TestSunPositionScales(t *testing.T) {
	p := SunPosition(0, 90, 10)
	if math.Abs(float64(p[1]-10)) > 1e-5 {
		t.Errorf("SunPosition(0, 90, 10) = %v, want Y=10", p)
	}
}
