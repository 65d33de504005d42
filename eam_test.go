/*
 * eam_test.go, part of goeam.
 *
 *
 * Copyright 2023 C. J. Williams
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package eam

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

//Reference values were obtained by running the fitting scripts the
//coefficient sets come from, with CODATA 2018 constants.
type refval struct {
	what string
	f    func(*Potential) (float64, error)
	a, b float64 //baseA, baseB
}

func pairf(i, j Species, r float64) func(*Potential) (float64, error) {
	return func(P *Potential) (float64, error) { return P.Pair(i, j, r) }
}

func densf(i, j Species, r float64) func(*Potential) (float64, error) {
	return func(P *Potential) (float64, error) { return P.Density(i, j, r) }
}

func embf(s Species, rho float64) func(*Potential) (float64, error) {
	return func(P *Potential) (float64, error) { return P.Embed(s, rho) }
}

var refvals = []refval{
	{"phi Fe-Fe 0.5", pairf(Fe, Fe, 0.5), 634.966650647934, 634.9716242241025},
	{"phi Fe-Fe 2.5", pairf(Fe, Fe, 2.5), 0.8863264881169729, 0.8699662847267977},
	{"phi Fe-H 2.0", pairf(Fe, H, 2.0), -0.8701935324645416, -0.869946395263969},
	{"phi H-H 0.5", pairf(H, H, 0.5), -2.317067895037344, -2.443198416505181},
	{"phi H-H 1.0", pairf(H, H, 1.0), -0.021632025783637807, -0.02195393798244733},
	{"rho Fe-Fe 2.0", densf(Fe, Fe, 2.0), 5.747705606265714, 5.747705606265714},
	{"rho Fe-H 2.0", densf(Fe, H, 2.0), 5.984922351562663, 5.987657260071225},
	{"rho H-Fe 2.0", densf(H, Fe, 2.0), 0.796061341461965, 0.7960037291604429},
	{"rho H-H 1.0", densf(H, H, 1.0), 19.046034656706265, 20.121803539352136},
	{"F Fe 0.21", embf(Fe, 0.21), -0.4582729631202423, -0.4582872548717505},
	{"F H 0.21", embf(H, 0.21), -0.012105878275889279, -0.012101407040853506},
}

func TestReferenceValues(Te *testing.T) {
	for _, v := range refvals {
		for _, c := range []struct {
			P    *Potential
			want float64
		}{{BaseA(), v.a}, {BaseB(), v.b}} {
			got, err := v.f(c.P)
			if err != nil {
				Te.Errorf("%s %s: %s", c.P.Name(), v.what, err)
				continue
			}
			if !scalar.EqualWithinAbsOrRel(got, c.want, 1e-12, 1e-10) {
				Te.Errorf("%s %s: got %.16e, want %.16e", c.P.Name(), v.what, got, c.want)
			}
		}
	}
}

func TestHeaviside(Te *testing.T) {
	if Heaviside(0) != 0 {
		Te.Error("H(0) should be 0")
	}
	for _, eps := range []float64{1e-300, 1e-12, 0.5, 1e10} {
		if Heaviside(eps) != 1 {
			Te.Errorf("H(%g) should be 1", eps)
		}
		if Heaviside(-eps) != 0 {
			Te.Errorf("H(-%g) should be 0", eps)
		}
	}
}

func TestScreen(Te *testing.T) {
	//At 0 every exponential is 1, so the value is just the sum of the coefficients.
	sum := 0.1818 + 0.5099 + 0.2802 + 0.02817
	if !scalar.EqualWithinAbs(Screen(0), sum, 1e-15) {
		Te.Errorf("Screen(0)=%.16g, want %.16g", Screen(0), sum)
	}
	if !scalar.EqualWithinAbs(Screen(0), 1, 1e-4) {
		Te.Errorf("Screen(0)=%.16g too far from 1", Screen(0))
	}
	prev := Screen(0)
	for x := 0.1; x < 50; x += 0.1 {
		s := Screen(x)
		if s <= 0 || s >= prev {
			Te.Fatalf("Screen not positive and decreasing at %g: %g (previous %g)", x, s, prev)
		}
		prev = s
	}
}

func TestFCut(Te *testing.T) {
	for _, P := range []*Potential{BaseA(), BaseB()} {
		rc := P.hhCut
		for _, r := range []float64{rc, rc + 1e-12, rc + 0.1, 10, 1e6} {
			if FCut(r, rc) != 0 {
				Te.Errorf("%s: FCut(%g) should be exactly 0", P.Name(), r)
			}
		}
		for r := 0.0; r < rc-5e-3; r += 0.01 {
			if !(FCut(r, rc) > 0) {
				Te.Errorf("%s: FCut(%g) should be positive", P.Name(), r)
			}
		}
	}
}

func TestSwitch(Te *testing.T) {
	if !scalar.EqualWithinAbs(Switch(0.9), 0.5, 1e-15) {
		Te.Errorf("Switch(0.9)=%g", Switch(0.9))
	}
	if Switch(0) < 0.999999 || Switch(2) > 1e-6 {
		Te.Errorf("Switch limits wrong: %g %g", Switch(0), Switch(2))
	}
}

func TestRhoHHAtZero(Te *testing.T) {
	for _, P := range []*Potential{BaseA(), BaseB()} {
		v, err := P.Density(H, H, 0)
		if err != nil {
			Te.Fatal(err)
		}
		if v != 0 {
			Te.Errorf("%s: rho_HH(0)=%g", P.Name(), v)
		}
	}
}

func TestContinuity(Te *testing.T) {
	type boundary struct {
		pair Pair
		r    float64
		tol  float64
	}
	//The screened Coulomb joins the bridge function within 1e-4 (relative),
	//the bridge joins the knot sums to ~1e-10.
	cases := map[string][]boundary{
		"baseA": {
			{Pair{Fe, Fe}, 0.9, 1e-4},
			{Pair{Fe, Fe}, 1.95, 1e-8},
			{Pair{Fe, H}, 0.6, 1e-4},
			{Pair{Fe, H}, 1.2, 1e-8},
		},
		"baseB": {
			{Pair{Fe, Fe}, 1.0, 1e-4},
			{Pair{Fe, Fe}, 2.05, 1e-8},
			{Pair{Fe, H}, 0.6, 1e-4},
			{Pair{Fe, H}, 1.2, 1e-8},
		},
	}
	const eps = 1e-12
	for name, bs := range cases {
		P, err := Variant(name)
		if err != nil {
			Te.Fatal(err)
		}
		for _, b := range bs {
			left, err := P.Pair(b.pair.I, b.pair.J, b.r-eps)
			if err != nil {
				Te.Fatal(err)
			}
			right, err := P.Pair(b.pair.I, b.pair.J, b.r+eps)
			if err != nil {
				Te.Fatal(err)
			}
			if !scalar.EqualWithinRel(left, right, b.tol) {
				Te.Errorf("%s %s discontinuous at %g: %.10g vs %.10g", name, b.pair, b.r, left, right)
			}
		}
	}
}

func TestPairSymmetry(Te *testing.T) {
	for _, P := range []*Potential{BaseA(), BaseB()} {
		for r := 0.0; r < 7; r += 0.00053 {
			a, err := P.Pair(Fe, H, r)
			if err != nil {
				Te.Fatal(err)
			}
			b, err := P.Pair(H, Fe, r)
			if err != nil {
				Te.Fatal(err)
			}
			if a != b && !(math.IsNaN(a) && math.IsNaN(b)) {
				Te.Fatalf("%s: phi(Fe,H,%g)=%g but phi(H,Fe,%g)=%g", P.Name(), r, a, r, b)
			}
		}
	}
}

func TestTailsVanish(Te *testing.T) {
	for _, P := range []*Potential{BaseA(), BaseB()} {
		rmax := P.feFeTail.MaxRadius()
		for _, r := range []float64{rmax, rmax + 1e-9, rmax + 1, 2 * rmax} {
			if v := P.feFeTail.Eval(r); v != 0 {
				Te.Errorf("%s: Fe-Fe tail at %g = %g", P.Name(), r, v)
			}
			if v, _ := P.Pair(Fe, Fe, r); v != 0 {
				Te.Errorf("%s: phi Fe-Fe at %g = %g", P.Name(), r, v)
			}
		}
		//knot sums and the H-H density must stay exactly 0 where the cubes overflow
		for _, r := range []float64{1e50, 1e110, 1e200, math.MaxFloat64} {
			for _, i := range AllSpecies() {
				for _, j := range AllSpecies() {
					phi, rho, err := P.Evaluate(i, j, r)
					if err != nil || phi != 0 || rho != 0 {
						Te.Errorf("%s: %s-%s at %g: %g %g %v", P.Name(), i, j, r, phi, rho, err)
					}
				}
			}
		}
		rc := P.Cutoff()
		for _, i := range AllSpecies() {
			for _, j := range AllSpecies() {
				phi, rho, err := P.Evaluate(i, j, rc+0.01)
				if err != nil {
					Te.Fatal(err)
				}
				if phi != 0 || rho != 0 {
					Te.Errorf("%s: %s-%s not zero beyond the cutoff: %g %g", P.Name(), i, j, phi, rho)
				}
			}
		}
	}
}

func TestCutoff(Te *testing.T) {
	if c := BaseB().Cutoff(); c != 5.3 {
		Te.Errorf("baseB cutoff %g", c)
	}
	if c := BaseA().Cutoff(); c != 6.0 {
		Te.Errorf("baseA cutoff %g", c)
	}
}

func TestHHBoundary(Te *testing.T) {
	//baseA keeps the r == r_cut point in the active branch, baseB doesn't.
	//The switch function is already 0 there, so only the branch choice differs.
	if !BaseA().hhActive(2.3) {
		Te.Error("baseA: r = 2.3 should be in the active branch")
	}
	if BaseB().hhActive(2.4) {
		Te.Error("baseB: r = 2.4 should not be in the active branch")
	}
	for _, P := range []*Potential{BaseA(), BaseB()} {
		if v, _ := P.Pair(H, H, P.hhCut+1e-9); v != 0 {
			Te.Errorf("%s: phi_HH beyond the cutoff = %g", P.Name(), v)
		}
	}
}

func TestErrors(Te *testing.T) {
	P := BaseB()
	if _, err := P.Embed(Fe, -1e-12); !errors.Is(err, ErrDomain) {
		Te.Errorf("negative density: got %v", err)
	}
	if _, err := P.Embed(H, math.NaN()); !errors.Is(err, ErrDomain) {
		Te.Errorf("NaN density: got %v", err)
	}
	if _, err := P.Embed(Species(7), 1); !errors.Is(err, ErrUnknownSpecies) {
		Te.Errorf("bad species: got %v", err)
	}
	if _, err := P.Pair(Fe, Species(2), 1); !errors.Is(err, ErrUnknownPair) {
		Te.Errorf("bad pair: got %v", err)
	}
	if _, err := P.Density(Species(3), H, 1); !errors.Is(err, ErrUnknownPair) {
		Te.Errorf("bad pair: got %v", err)
	}
	if _, err := P.Pair(Fe, Fe, -0.1); !errors.Is(err, ErrDomain) {
		Te.Errorf("negative radius: got %v", err)
	}
	for _, r := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if _, err := P.Pair(Fe, Fe, r); !errors.Is(err, ErrDomain) {
			Te.Errorf("radius %g: got %v", r, err)
		}
		if _, err := P.Density(Fe, H, r); !errors.Is(err, ErrDomain) {
			Te.Errorf("radius %g: got %v", r, err)
		}
	}
	_, _, err := P.Evaluate(H, H, -1)
	if !errors.Is(err, ErrDomain) {
		Te.Fatalf("Evaluate: got %v", err)
	}
	e, ok := err.(Error)
	if !ok {
		Te.Fatalf("%T does not implement Error", err)
	}
	if d := e.Decorate(""); len(d) != 2 || d[1] != "Evaluate" {
		Te.Errorf("decoration: %v", d)
	}
	if !e.Critical() {
		Te.Error("errors should be critical")
	}
	if _, err := Variant("baseC"); !errors.Is(err, ErrUnknownVariant) {
		Te.Errorf("variant: got %v", err)
	}
}

func TestSpecies(Te *testing.T) {
	for _, s := range AllSpecies() {
		p, err := ParseSpecies(s.String())
		if err != nil || p != s {
			Te.Errorf("ParseSpecies(%s) = %v, %v", s, p, err)
		}
	}
	if _, err := ParseSpecies("He"); !errors.Is(err, ErrUnknownSpecies) {
		Te.Errorf("ParseSpecies(He): %v", err)
	}
	u := UniquePairs()
	want := []Pair{{Fe, Fe}, {Fe, H}, {H, H}}
	if len(u) != len(want) {
		Te.Fatalf("UniquePairs: %v", u)
	}
	for i := range u {
		if u[i] != want[i] {
			Te.Errorf("UniquePairs[%d]=%s, want %s", i, u[i], want[i])
		}
	}
	if (Pair{H, Fe}).Canonical() != (Pair{Fe, H}) {
		Te.Error("Canonical")
	}
}

func TestSpeciesAreCopies(Te *testing.T) {
	s := BaseB().Species()
	s[0] = H
	a := AllSpecies()
	a[1] = Fe
	if got := AllSpecies(); len(got) != 2 || got[0] != Fe || got[1] != H {
		Te.Errorf("species order changed through a returned slice: %v", got)
	}
	if u := UniquePairs(); u[0] != (Pair{Fe, Fe}) || u[2] != (Pair{H, H}) {
		Te.Errorf("UniquePairs after modifying a returned slice: %v", u)
	}
}

func TestTail(Te *testing.T) {
	P := BaseA()
	t := P.Tail(Pair{H, Fe})
	if len(t) != len(P.feHTail) || t.MaxRadius() != P.feHTail.MaxRadius() {
		Te.Errorf("Fe-H tail: %v", t)
	}
	for i := 1; i < len(t); i++ {
		if t[i].Radius < t[i-1].Radius {
			Te.Errorf("tail not sorted: %v", t)
		}
	}
	t[0].Coef = 1e9
	if P.Tail(Pair{Fe, H})[0].Coef == 1e9 {
		Te.Error("Tail returns the table of the potential, not a copy")
	}
	if len(P.Tail(Pair{H, H})) != 0 {
		Te.Error("H-H has no knot tail")
	}
	if s := P.Tail(Pair{Fe, Fe}).String(); s[0] != '[' || len(s) < 10 {
		Te.Errorf("String: %q", s)
	}
}

func TestKnotTable(Te *testing.T) {
	K := KnotTable{{2, 3}, {1, 1}, {-1, 2}}
	if v := K.Eval(0); v != 2*27+1-8 {
		Te.Errorf("Eval(0)=%g", v)
	}
	if v := K.Eval(1.5); !scalar.EqualWithinAbs(v, 2*math.Pow(1.5, 3)-math.Pow(0.5, 3), 1e-14) {
		Te.Errorf("Eval(1.5)=%g", v)
	}
	s := K.Sorted()
	if s[0].Radius != 1 || s[2].Radius != 3 || K[0].Radius != 3 {
		Te.Errorf("Sorted: %v (unsorted %v)", s, K)
	}
	if K.MaxRadius() != 3 {
		Te.Errorf("MaxRadius %g", K.MaxRadius())
	}
	p := Poly{From: 1, Coef: []float64{1, 2}}
	if v := p.Eval(2); v != 2+8 {
		Te.Errorf("Poly %g", v)
	}
}

func TestVariantNames(Te *testing.T) {
	n := VariantNames()
	if len(n) != 2 || n[0] != "baseA" || n[1] != "baseB" {
		Te.Errorf("VariantNames: %v", n)
	}
	P, err := Variant(DefaultVariant)
	if err != nil || P != BaseB() {
		Te.Errorf("default variant %v %v", P, err)
	}
}
