package field

// Params are the tunable constants of the inverse-distance falloff
//
//	strength = 1 / (distance·K1 + K2)
//
// clamped to MaxStrength. Below MinDistance the field is the zero vector,
// which keeps the magnitude finite and the cursor neighborhood flicker-free.
type Params struct {
	K1          float64
	K2          float64
	MaxStrength float64
	MinDistance float64
}

// DefaultParams returns the stock falloff tuning.
func DefaultParams() Params {
	return Params{
		K1:          0.01,
		K2:          0.1,
		MaxStrength: 2.0,
		MinDistance: 5.0,
	}
}

// Vector is one evaluated field sample. Dir is a unit vector pointing from
// the sample toward the pointer, or exactly zero when the sample is inside
// the MinDistance floor. Vectors are recomputed every frame and never stored.
type Vector struct {
	Dir      Vec2
	Mag      float64
	Distance float64
}

// Eval computes the field at a sample point for the given pointer position.
// Attraction only: the direction runs from the sample toward the pointer and
// magnitude falls off with distance, clamped to p.MaxStrength.
func Eval(sample, pointer Vec2, p Params) Vector {
	d := sample.Dist(pointer)
	if d < p.MinDistance {
		return Vector{Distance: d}
	}
	dir := pointer.Sub(sample).Unit()
	if dir == (Vec2{}) {
		// Pointer exactly on the sample with no dead zone configured: no
		// direction exists, so the sample stays quiet like the dead zone.
		return Vector{Distance: d}
	}
	den := d*p.K1 + p.K2
	mag := p.MaxStrength
	if den > 0 {
		if s := 1 / den; s < mag {
			mag = s
		}
	}
	return Vector{
		Dir:      dir,
		Mag:      mag,
		Distance: d,
	}
}
