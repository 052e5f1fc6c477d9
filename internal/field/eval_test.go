package field_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fieldviz/internal/field"
)

var _ = Describe("Eval", func() {
	var p field.Params

	BeforeEach(func() {
		p = field.DefaultParams()
	})

	It("returns a unit direction whenever magnitude is positive", func() {
		pointer := field.Vec2{X: 250, Y: 140}
		samples := []field.Vec2{
			{X: 0, Y: 0}, {X: 100, Y: 300}, {X: 251, Y: 140.5},
			{X: -40, Y: 900}, {X: 1024, Y: 768},
		}
		for _, s := range samples {
			v := field.Eval(s, pointer, p)
			if v.Mag == 0 {
				Expect(v.Dir).To(Equal(field.Vec2{}))
				continue
			}
			norm := v.Dir.X*v.Dir.X + v.Dir.Y*v.Dir.Y
			Expect(norm).To(BeNumerically("~", 1.0, 1e-9))
		}
	})

	It("points from the sample toward the pointer", func() {
		v := field.Eval(field.Vec2{X: 100, Y: 130}, field.Vec2{X: 100, Y: 100}, p)
		Expect(v.Dir.X).To(BeNumerically("~", 0, 1e-12))
		Expect(v.Dir.Y).To(BeNumerically("~", -1, 1e-12))
	})

	It("clamps the documented scenario to MaxStrength", func() {
		// distance 30 → 1/(30·0.01+0.1) = 2.5, clamped to 2.0
		v := field.Eval(field.Vec2{X: 100, Y: 130}, field.Vec2{X: 100, Y: 100}, p)
		Expect(v.Distance).To(BeNumerically("~", 30, 1e-12))
		Expect(v.Mag).To(Equal(2.0))
	})

	It("is monotonically non-increasing in distance", func() {
		pointer := field.Vec2{}
		prev := math.Inf(1)
		for d := p.MinDistance + 1; d < 2000; d += 7 {
			v := field.Eval(field.Vec2{X: d}, pointer, p)
			Expect(v.Mag).To(BeNumerically("<=", prev))
			prev = v.Mag
		}
	})

	It("never exceeds MaxStrength however close the pointer gets", func() {
		pointer := field.Vec2{X: 50, Y: 50}
		for d := 0.0; d < 100; d += 0.25 {
			v := field.Eval(field.Vec2{X: 50 + d, Y: 50}, pointer, p)
			Expect(v.Mag).To(BeNumerically("<=", p.MaxStrength))
		}
	})

	It("returns the zero vector inside the minimum-distance floor", func() {
		v := field.Eval(field.Vec2{X: 100, Y: 102}, field.Vec2{X: 100, Y: 100}, p)
		Expect(v.Mag).To(BeZero())
		Expect(v.Dir).To(Equal(field.Vec2{}))
		Expect(v.Distance).To(BeNumerically("~", 2, 1e-12))
	})

	It("evaluates to near zero everywhere for the absent-pointer sentinel", func() {
		for _, s := range []field.Vec2{{X: 0, Y: 0}, {X: 1920, Y: 1080}, {X: 400, Y: 300}} {
			v := field.Eval(s, field.Absent, p)
			Expect(v.Mag).To(BeNumerically("<", 0.001))
		}
	})

	It("is deterministic for identical inputs", func() {
		s, ptr := field.Vec2{X: 33, Y: 77}, field.Vec2{X: 240, Y: 19}
		Expect(field.Eval(s, ptr, p)).To(Equal(field.Eval(s, ptr, p)))
	})

	It("stays quiet when the pointer sits exactly on a sample with no dead zone", func() {
		// MinDistance 0 is a legal override; coincident points then reach
		// the falloff with d=0 and no direction exists.
		pt := field.Vec2{X: 100, Y: 100}
		v := field.Eval(pt, pt, field.Params{K1: 0.01, K2: 0.1, MaxStrength: 2, MinDistance: 0})
		Expect(v.Mag).To(BeZero())
		Expect(v.Dir).To(Equal(field.Vec2{}))
		Expect(v.Distance).To(BeZero())
	})

	It("treats a non-positive denominator as full strength", func() {
		v := field.Eval(field.Vec2{X: 100, Y: 0}, field.Vec2{}, field.Params{K1: 0, K2: 0, MaxStrength: 2, MinDistance: 5})
		Expect(v.Mag).To(Equal(2.0))
	})
})
