/*
 * variants.go, part of goeam.
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

import "golang.org/x/exp/slices"

//The coefficient sets. They are built once and never modified; the tables
//are only reachable through the unexported fields of the *Potential values.
var (
	baseA = newBaseA()
	baseB = newBaseB()
)

//variants is the registry used by Variant.
var variants = map[string]*Potential{
	"baseA": baseA,
	"baseB": baseB,
}

//DefaultVariant is the name of the coefficient set used when none is asked for.
const DefaultVariant = "baseB"

//BaseA returns the first fitted coefficient set.
func BaseA() *Potential { return baseA }

//BaseB returns the refined coefficient set. It is the default one.
func BaseB() *Potential { return baseB }

//Variant returns the coefficient set with the given name.
func Variant(name string) (*Potential, error) {
	p, ok := variants[name]
	if !ok {
		return nil, newError(ErrUnknownVariant, "Variant", "%q (known: %v)", name, VariantNames())
	}
	return p, nil
}

//VariantNames returns the names of all the coefficient sets, sorted.
func VariantNames() []string {
	ret := make([]string, 0, len(variants))
	for k := range variants {
		ret = append(ret, k)
	}
	slices.Sort(ret)
	return ret
}

func newBaseA() *Potential {
	P := &Potential{
		name: "baseA",

		feFeCoulomb: Fe.Z() * Fe.Z() * CoulombEVA,
		feFeInner:   0.9,
		feFeOuter:   1.95,
		feFeExp:     Poly{Coef: []float64{14.996917289290, -20.533174190155, 14.002591780752, -3.6473736591143}},
		feFeTail: KnotTable{
			{195.92322853994, 2.1},
			{17.516698453315, 2.2},
			{1.4926525164290, 2.3},
			{6.4129476125197, 2.4},
			{-6.8157461860553, 2.5},
			{9.6582581963600, 2.6},
			{-5.3419002764419, 2.7},
			{1.7996558048346, 2.8},
			{-1.4788966636288, 3.0},
			{1.8530435283665, 3.3},
			{-0.64164344859316, 3.7},
			{0.24463630025168, 4.2},
			{-0.057721650527383, 4.7},
			{0.023358616514826, 5.3},
			{-0.0097064921265079, 6.0},
		},

		feHInner: 0.6,
		feHOuter: 1.2,
		feHPoly: Poly{Coef: []float64{
			1242.1709168218642,
			-6013.566711223783,
			12339.540893927151,
			-12959.66163724488,
			6817.850021676971,
			-1422.1723964897117,
		}},
		feHTail: KnotTable{
			{14.0786236789212005, 1.6},
			{-4.4526835887173704, 1.7},
			{5.5025121262565992, 1.8},
			{-1.0687489808214079, 2.0},
			{-0.3461498208163201, 2.5},
			{-0.0064991947759021, 3.2},
			{-0.0357435602984102, 4.2},
		},

		hhCut:       2.3,
		hhInclusive: true,
		hhBlend:     true,

		feC2: 0.00034906178363530,
		hEmbed: Poly{From: 1, Coef: []float64{
			-0.0581256120818134,
			0.0022854552833736,
			-0.0000314202805805,
			0.0000013764132084,
			-0.0000000253707731,
			0.0000000001483685,
		}},

		rhoFeFe: KnotTable{
			{11.686859407970, 2.4},
			{-0.014710740098830, 3.2},
			{0.47193527075943, 4.2},
		},
		rhoFeH: KnotTable{
			{10.0073629216300581, 1.6},
			{32.4861983261490295, 1.8},
			{-0.9494226032063788, 2.0},
			{11.6659812262450338, 2.4},
			{-0.0147080251458273, 3.2},
			{0.4943383753319843, 4.2},
		},
		rhoHFe: KnotTable{
			{11.1667357634216433, 1.5},
			{-3.0351307365078730, 2.0},
			{3.6096144794370653, 2.5},
			{0.0212509034775648, 3.0},
			{0.0303914939946250, 4.2},
		},
	}
	P.setScreening()
	return P
}

func newBaseB() *Potential {
	P := &Potential{
		name: "baseB",

		//Fitted value, close to but not equal to Z_Fe²·e/(4πε₀).
		feFeCoulomb: 9734.2365892908,
		feFeInner:   1.0,
		feFeOuter:   2.05,
		feFeExp:     Poly{Coef: []float64{7.4122709384068, -0.64180690713367, -2.6043547961722, 0.6262539393123}},
		feFeTail: KnotTable{
			{-27.444805994228, 2.2},
			{15.738054058489, 2.3},
			{2.2077118733936, 2.4},
			{-2.4989799053251, 2.5},
			{4.2099676494795, 2.6},
			{-0.77361294129713, 2.7},
			{0.80656414937789, 2.8},
			{-2.3194358924605, 3.0},
			{2.6577406128280, 3.3},
			{-1.0260416933564, 3.7},
			{0.35018615891957, 4.2},
			{-0.058531821042271, 4.7},
			{-0.0030458824556234, 5.3},
		},

		feHInner: 0.6,
		feHOuter: 1.2,
		feHPoly: Poly{Coef: []float64{
			1242.154614241987,
			-6013.4610429013765,
			12339.275191444543,
			-12959.339514470237,
			6817.662603221567,
			-1422.130403271231,
		}},
		feHTail: KnotTable{
			{14.0786236766230779, 1.6},
			{-4.4526835638887965, 1.7},
			{5.5025349784052979, 1.8},
			{-1.0687331741292405, 2.0},
			{-0.3461226670484926, 2.5},
			{-0.0064991313802717, 3.2},
			{-0.0357322844877736, 4.2},
		},

		hhCut: 2.4,

		feC2: 6.7314115586063e-4,
		feC4: -7.6514905604792e-8,
		hEmbed: Poly{From: 1, Coef: []float64{
			-0.0581047132616673,
			0.0022873205657864,
			-0.0000313966169286,
			0.0000013788174098,
			-0.0000000253074673,
			0.0000000001487789,
		}},

		rhoFeFe: KnotTable{
			{11.686859407970, 2.4},
			{-0.01471074009883, 3.2},
			{0.47193527075943, 4.2},
		},
		rhoFeH: KnotTable{
			{10.0073629218346891, 1.6},
			{32.4862873850836635, 1.8},
			{-0.9494211670931015, 2.0},
			{11.6683860903729624, 2.4},
			{-0.0147079871493827, 3.2},
			{0.4945807618408609, 4.2},
		},
		rhoHFe: KnotTable{
			{11.1667357634216433, 1.5},
			{-3.0351469477486712, 2.0},
			{3.6092404272928578, 2.5},
			{0.0212508491354509, 3.0},
			{0.0303904795842773, 4.2},
		},
	}
	P.setScreening()
	return P
}

func (P *Potential) setScreening() {
	P.rsFeFe = FirsovLength(Fe.Z(), Fe.Z())
	P.rsFeH = FirsovLength(H.Z(), Fe.Z())
}
