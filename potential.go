/*
 * potential.go, part of goeam.
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
	"math"

	"gonum.org/v1/gonum/floats"
)

//Potential is one complete, immutable parameterization of the Fe-H EAM functions.
//Use BaseA, BaseB or Variant to get one. The zero value is not usable.
type Potential struct {
	name string

	//Fe-Fe pair: Coulomb for r < feFeInner, r·exp(poly) up to feFeOuter (inclusive),
	//knot sum beyond.
	feFeCoulomb float64
	feFeInner   float64
	feFeOuter   float64
	feFeExp     Poly
	feFeTail    KnotTable

	//Fe-H pair: Coulomb for r < feHInner, r·poly up to feHOuter (inclusive), knot sum beyond.
	feHInner float64
	feHOuter float64
	feHPoly  Poly
	feHTail  KnotTable

	//H-H pair. hhInclusive selects r <= hhCut instead of r < hhCut for the
	//non-zero branch. hhBlend adds (1-s)(C1·fcut + C2·ρ).
	hhCut       float64
	hhInclusive bool
	hhBlend     bool
	hhC1, hhC2  float64

	//F_Fe = -sqrt(ρ) - feC2·ρ² - feC4·ρ⁴
	feC2, feC4 float64
	hEmbed     Poly

	rhoFeFe KnotTable
	rhoFeH  KnotTable
	rhoHFe  KnotTable

	rsFeFe float64
	rsFeH  float64
}

//Name returns the name of the coefficient set.
func (P *Potential) Name() string {
	return P.name
}

//Species returns the species covered by the potential, in table order.
func (P *Potential) Species() []Species {
	return AllSpecies()
}

//Cutoff is the largest knot radius over the metallic tables. Every φ and ρ
//term of a metallic pair is exactly zero beyond it.
func (P *Potential) Cutoff() float64 {
	r := []float64{
		P.feFeTail.MaxRadius(),
		P.feHTail.MaxRadius(),
		P.rhoFeFe.MaxRadius(),
		P.rhoFeH.MaxRadius(),
		P.rhoHFe.MaxRadius(),
		P.hhCut,
	}
	return floats.Max(r)
}

//Tail returns a copy of the long-range knot table of the pair potential for p,
//sorted by radius. H-H has no knot tail, so its table is empty.
func (P *Potential) Tail(p Pair) KnotTable {
	switch p.Canonical() {
	case Pair{Fe, Fe}:
		return P.feFeTail.Sorted()
	case Pair{Fe, H}:
		return P.feHTail.Sorted()
	}
	return nil
}

func checkRadius(r float64, caller string) error {
	if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return newError(ErrDomain, caller, "radius %g", r)
	}
	return nil
}

//Pair returns r·φ(r) in eV·Å for the species i and j. The result is
//symmetric in i and j.
func (P *Potential) Pair(i, j Species, r float64) (float64, error) {
	p := Pair{i, j}
	if !p.valid() {
		return 0, newError(ErrUnknownPair, "Pair", "%d-%d", i, j)
	}
	if err := checkRadius(r, "Pair"); err != nil {
		return 0, err
	}
	switch p.Canonical() {
	case Pair{Fe, Fe}:
		return P.phiFeFe(r), nil
	case Pair{Fe, H}:
		return P.phiFeH(r), nil
	case Pair{H, H}:
		return P.phiHH(r), nil
	}
	//every valid canonical pair is handled above
	return 0, newError(ErrUnknownPair, "Pair", "%s", p)
}

//Density returns the electron density that an atom of species j contributes
//at an atom of species i, at a distance r. Density(Fe,H,r) and Density(H,Fe,r)
//are different functions.
func (P *Potential) Density(i, j Species, r float64) (float64, error) {
	p := Pair{i, j}
	if !p.valid() {
		return 0, newError(ErrUnknownPair, "Density", "%d-%d", i, j)
	}
	if err := checkRadius(r, "Density"); err != nil {
		return 0, err
	}
	switch p {
	case Pair{Fe, Fe}:
		return P.rhoFeFe.Eval(r), nil
	case Pair{Fe, H}:
		return P.rhoFeH.Eval(r), nil
	case Pair{H, Fe}:
		return P.rhoHFe.Eval(r), nil
	default:
		return P.rhoHH(r), nil
	}
}

//Embed returns the embedding energy F(ρ) of species s, in eV.
//Negative (or NaN) densities are a domain error.
func (P *Potential) Embed(s Species, rho float64) (float64, error) {
	if !s.Valid() {
		return 0, newError(ErrUnknownSpecies, "Embed", "%d", s)
	}
	if rho < 0 || math.IsNaN(rho) {
		return 0, newError(ErrDomain, "Embed", "density %g for %s", rho, s)
	}
	if s == Fe {
		return P.embedFe(rho), nil
	}
	return P.hEmbed.Eval(rho), nil
}

//Evaluate returns both the pair term and the density of the (i,j) couple at r.
func (P *Potential) Evaluate(i, j Species, r float64) (phi, rho float64, err error) {
	phi, err = P.Pair(i, j, r)
	if err != nil {
		return 0, 0, errDecorate(err, "Evaluate")
	}
	rho, err = P.Density(i, j, r)
	if err != nil {
		return 0, 0, errDecorate(err, "Evaluate")
	}
	return phi, rho, nil
}

//The branch functions below assume r >= 0.

func (P *Potential) phiFeFe(r float64) float64 {
	switch {
	case r < P.feFeInner:
		return screenedCoulomb(r, P.rsFeFe, P.feFeCoulomb)
	case r <= P.feFeOuter:
		return r * math.Exp(P.feFeExp.Eval(r))
	default:
		return r * P.feFeTail.Eval(r)
	}
}

func (P *Potential) phiFeH(r float64) float64 {
	switch {
	case r < P.feHInner:
		return screenedCoulomb(r, P.rsFeH, Fe.Z()*H.Z()*CoulombEVA)
	case r <= P.feHOuter:
		return r * P.feHPoly.Eval(r)
	default:
		return r * P.feHTail.Eval(r)
	}
}

func (P *Potential) hhActive(r float64) bool {
	if P.hhInclusive {
		return r <= P.hhCut
	}
	return r < P.hhCut
}

//phiHH depends on the H embedding function through the density of a single
//H neighbour.
func (P *Potential) phiHH(r float64) float64 {
	if !P.hhActive(r) {
		return 0
	}
	s := Switch(r)
	rho := P.rhoHH(r)
	v := s * (MolecularEnergy(r) - 2*P.hEmbed.Eval(rho))
	if P.hhBlend {
		v += (1 - s) * (P.hhC1*FCut(r, P.hhCut) + P.hhC2*rho)
	}
	return r * v
}

func (P *Potential) rhoHH(r float64) float64 {
	if r >= P.hhCut {
		return 0
	}
	return hhDensityPref * math.Pow(r, 2) * math.Exp(-2*r/BohrRadius) * FCut(r, P.hhCut)
}

func (P *Potential) embedFe(rho float64) float64 {
	v := -math.Sqrt(rho) - P.feC2*math.Pow(rho, 2)
	if P.feC4 != 0 {
		v -= P.feC4 * math.Pow(rho, 4)
	}
	return v
}
