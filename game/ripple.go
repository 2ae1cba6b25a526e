package game

// RippleCapacity is the fixed impulse slot count. The rendering shader
// consumes a fixed-size array, so this bound is a performance contract.
const RippleCapacity = 12

// rippleLifetime is how long an impulse stays visible, in simulated seconds
const rippleLifetime = 2.0

// Default impulse shape parameters for an ordinary landing splash
const (
	DefaultRippleAmplitude = 6.0
	DefaultRippleFrequency = 9.0
)

// Impulse is one transient radial wave fed to the rendering collaborator
type Impulse struct {
	// World position of the impact
	X, Y float64

	// Start is the field clock value when the impulse was added
	Start float64

	// Amplitude is zeroed once the impulse expires
	Amplitude float64

	// Frequency shapes the wave
	Frequency float64
}

// RippleField owns a fixed-capacity buffer of ripple impulses. AddImpulse
// always succeeds: when full, the oldest impulse is overwritten. Expired
// impulses are neutralized in place rather than removed, which makes them
// the natural next eviction candidates.
type RippleField struct {
	impulses [RippleCapacity]Impulse
	used     int
	clock    float64
}

// NewRippleField creates an empty field
func NewRippleField() *RippleField {
	return &RippleField{}
}

// AddImpulse records an impact at the given position. When the buffer is
// full the impulse with the smallest start time is evicted.
func (f *RippleField) AddImpulse(x, y, amplitude, frequency float64) {
	imp := Impulse{
		X:         x,
		Y:         y,
		Start:     f.clock,
		Amplitude: amplitude,
		Frequency: frequency,
	}

	if f.used < RippleCapacity {
		f.impulses[f.used] = imp
		f.used++
		return
	}

	oldest := 0
	for i := 1; i < RippleCapacity; i++ {
		if f.impulses[i].Start < f.impulses[oldest].Start {
			oldest = i
		}
	}
	f.impulses[oldest] = imp
}

// Advance moves the field clock forward and zeroes the amplitude of any
// impulse older than the ripple lifetime
func (f *RippleField) Advance(dt float64) {
	f.clock += dt
	for i := 0; i < f.used; i++ {
		if f.clock-f.impulses[i].Start > rippleLifetime {
			f.impulses[i].Amplitude = 0
		}
	}
}

// Snapshot returns a copy of the impulse buffer for the renderer to sample
func (f *RippleField) Snapshot() [RippleCapacity]Impulse {
	return f.impulses
}

// Clock returns the field's monotonic simulated time
func (f *RippleField) Clock() float64 {
	return f.clock
}
