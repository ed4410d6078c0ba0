/*
Copyright © 2018 the CornerGrid authors.
This file is part of CornerGrid.

CornerGrid is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

CornerGrid is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with CornerGrid.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package deck holds simulator input keywords in memory, the way grid
// data is handed around between reservoir simulation tools: named
// keywords carrying flat integer or floating point data, together with
// the unit system the values are expressed in.
package deck

import (
	"fmt"

	"github.com/ctessum/unit"
)

// Keyword is a single input keyword and its data. A keyword carries
// either integer or floating point values, depending on what the
// keyword means.
type Keyword struct {
	Name   string
	Floats []float64
	Ints   []int
}

// Int returns integer item i of the keyword.
func (kw *Keyword) Int(i int) int { return kw.Ints[i] }

// keywordDims gives the physical dimensions of the floating point
// keywords the grid pipeline consumes. Keywords not listed here are
// dimensionless.
var keywordDims = map[string]unit.Dimensions{
	"ZCORN":   unit.Meter,
	"COORD":   unit.Meter,
	"MAPAXES": unit.Meter,
}

// Deck is an ordered, in-memory collection of input keywords. A
// keyword may occur more than once; lookups return the last
// occurrence, matching how simulators resolve repeated keywords.
type Deck struct {
	units    UnitSystem
	keywords []*Keyword
	index    map[string]int
}

// New returns an empty deck whose values are expressed in the given
// unit system.
func New(units UnitSystem) *Deck {
	return &Deck{units: units, index: make(map[string]int)}
}

// Add appends kw to the deck. A later occurrence of the same keyword
// shadows earlier ones.
func (d *Deck) Add(kw *Keyword) {
	d.index[kw.Name] = len(d.keywords)
	d.keywords = append(d.keywords, kw)
}

// Has reports whether the deck contains the named keyword.
func (d *Deck) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Keyword returns the last occurrence of the named keyword.
func (d *Deck) Keyword(name string) (*Keyword, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, fmt.Errorf("deck: no keyword %s", name)
	}
	return d.keywords[i], nil
}

// Len returns the number of keywords in the deck, counting repeats.
func (d *Deck) Len() int { return len(d.keywords) }

// Units returns the deck unit system.
func (d *Deck) Units() UnitSystem { return d.units }

// SIDoubleData returns a freshly allocated copy of the floating point
// data of the named keyword, converted to SI according to the deck
// unit system and the keyword's physical dimensions.
func (d *Deck) SIDoubleData(name string) ([]float64, error) {
	kw, err := d.Keyword(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(kw.Floats))
	dims := keywordDims[kw.Name]
	for i, v := range kw.Floats {
		out[i] = d.units.Convert(v, dims).Value()
	}
	return out, nil
}

// IntData returns a freshly allocated copy of the integer data of the
// named keyword.
func (d *Deck) IntData(name string) ([]int, error) {
	kw, err := d.Keyword(name)
	if err != nil {
		return nil, err
	}
	return append([]int(nil), kw.Ints...), nil
}
