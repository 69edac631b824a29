package engine

// fakeRand replays scripted values so rolls resolve the way a test needs.
// Exhausted float scripts return 0.99 (fails every percent roll, variance
// near the top of the band); exhausted int scripts return 0.
type fakeRand struct {
	floats []float64
	fi     int
	ints   []int
	ii     int
}

func (f *fakeRand) Float64() float64 {
	if f.fi < len(f.floats) {
		v := f.floats[f.fi]
		f.fi++
		return v
	}
	return 0.99
}

func (f *fakeRand) Intn(n int) int {
	if f.ii < len(f.ints) {
		v := f.ints[f.ii] % n
		f.ii++
		return v
	}
	return 0
}

// noLuck yields no dodge, no crit and variance 1.0 for a single attack.
func noLuck() *fakeRand {
	return &fakeRand{floats: []float64{0.99, 0.99, 0.5}}
}
