/*
Copyright © 2019 the CornerGrid authors.
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

package mesh

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"
)

// DataVersion is the version of the mesh file format written and
// required by this version of the software.
const DataVersion = "1.1.0"

// Write writes the mesh to w. The file stores the node coordinates,
// cell corner topology, logical cell map, and retained corner depths;
// the derived cells and faces are rebuilt on read.
func (m *Mesh) Write(w *os.File) error {
	// A zero-length dimension would become the NetCDF record dimension.
	if m.NumCells() == 0 {
		return fmt.Errorf("mesh: cannot write an empty mesh")
	}
	dims := []string{"node", "cell", "corner"}
	lens := []int{m.NumNodes(), m.NumCells(), 8}
	if m.zcorn != nil {
		dims = append(dims, "zcorn")
		lens = append(lens, len(m.zcorn))
	}
	h := cdf.NewHeader(dims, lens)
	h.AddAttribute("", "comment", "CornerGrid simulation mesh file")
	h.AddAttribute("", "data_version", DataVersion)
	h.AddAttribute("", "nx", []int32{int32(m.nx)})
	h.AddAttribute("", "ny", []int32{int32(m.ny)})
	h.AddAttribute("", "nz", []int32{int32(m.nz)})

	// Variable order is fixed so files write the same way every time.
	h.AddVariable("cellNodes", []string{"cell", "corner"}, []int32{0})
	h.AddVariable("globalCell", []string{"cell"}, []int32{0})
	h.AddVariable("nodeX", []string{"node"}, []float64{0})
	h.AddVariable("nodeY", []string{"node"}, []float64{0})
	h.AddVariable("nodeZ", []string{"node"}, []float64{0})
	if m.zcorn != nil {
		h.AddVariable("zcorn", []string{"zcorn"}, []float64{0})
	}
	h.Define()

	f, err := cdf.Create(w, h)
	if err != nil {
		return fmt.Errorf("mesh: writing mesh file header: %v", err)
	}
	if err := writeVar(f, "cellNodes", int32s(m.cellNodes)); err != nil {
		return err
	}
	if err := writeVar(f, "globalCell", int32s(m.globalCell)); err != nil {
		return err
	}
	if err := writeVar(f, "nodeX", m.nodeX); err != nil {
		return err
	}
	if err := writeVar(f, "nodeY", m.nodeY); err != nil {
		return err
	}
	if err := writeVar(f, "nodeZ", m.nodeZ); err != nil {
		return err
	}
	if m.zcorn != nil {
		if err := writeVar(f, "zcorn", m.zcorn); err != nil {
			return err
		}
	}
	if err := cdf.UpdateNumRecs(w); err != nil {
		return fmt.Errorf("mesh: writing mesh file: %v", err)
	}
	return nil
}

// WriteFile writes the mesh to the named file, creating or truncating
// it.
func (m *Mesh) WriteFile(filename string) error {
	w, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("mesh: creating mesh file: %v", err)
	}
	defer w.Close()
	return m.Write(w)
}

// Read reads a mesh written by Write.
func Read(rw cdf.ReaderWriterAt) (*Mesh, error) {
	f, err := cdf.Open(rw)
	if err != nil {
		return nil, fmt.Errorf("mesh: %v", err)
	}
	version, ok := f.Header.GetAttribute("", "data_version").(string)
	if !ok {
		return nil, fmt.Errorf("mesh: not a mesh file: missing data_version")
	}
	if version != DataVersion {
		return nil, fmt.Errorf("mesh: data version %s is incompatible with the required version %s",
			version, DataVersion)
	}
	m := &Mesh{
		nx: int(f.Header.GetAttribute("", "nx").([]int32)[0]),
		ny: int(f.Header.GetAttribute("", "ny").([]int32)[0]),
		nz: int(f.Header.GetAttribute("", "nz").([]int32)[0]),
	}
	cellNodes, err := readIntVar(f, "cellNodes")
	if err != nil {
		return nil, err
	}
	m.cellNodes = cellNodes
	if m.globalCell, err = readIntVar(f, "globalCell"); err != nil {
		return nil, err
	}
	if m.nodeX, err = readFloatVar(f, "nodeX"); err != nil {
		return nil, err
	}
	if m.nodeY, err = readFloatVar(f, "nodeY"); err != nil {
		return nil, err
	}
	if m.nodeZ, err = readFloatVar(f, "nodeZ"); err != nil {
		return nil, err
	}
	for _, v := range f.Header.Variables() {
		if v == "zcorn" {
			if m.zcorn, err = readFloatVar(f, "zcorn"); err != nil {
				return nil, err
			}
		}
	}
	if err := m.finish(); err != nil {
		return nil, err
	}
	return m, nil
}

// ReadFile reads a mesh from the named file.
func ReadFile(filename string) (*Mesh, error) {
	r, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("mesh: opening mesh file: %v", err)
	}
	defer r.Close()
	m, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("mesh: reading mesh file %s: %v", filename, err)
	}
	return m, nil
}

func writeVar(f *cdf.File, name string, data interface{}) error {
	end := f.Header.Lengths(name)
	start := make([]int, len(end))
	w := f.Writer(name, start, end)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("mesh: writing variable %s to mesh file: %v", name, err)
	}
	return nil
}

func readFloatVar(f *cdf.File, name string) ([]float64, error) {
	r := f.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("mesh: reading variable %s from mesh file: %v", name, err)
	}
	return buf.([]float64), nil
}

func readIntVar(f *cdf.File, name string) ([]int, error) {
	r := f.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("mesh: reading variable %s from mesh file: %v", name, err)
	}
	b := buf.([]int32)
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out, nil
}

func int32s(a []int) []int32 {
	out := make([]int32, len(a))
	for i, v := range a {
		out[i] = int32(v)
	}
	return out
}
