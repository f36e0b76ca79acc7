//Package chemgraph exposes the atom/bond topology of a molecule as a
//gonum graph, and builds the connectivity queries used by the sampling
//engine on top of the gonum algorithms.
package chemgraph

import (
	"sort"

	chem "github.com/qcgrid/torsion"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

//Atom is a graph node wrapping a molecule atom. Its node ID is the
//0-based atom index.
type Atom struct {
	*chem.Atom
}

func (A *Atom) ID() int64 {
	return int64(A.Index)
}

//Bond is a graph edge wrapping a molecule bond.
type Bond struct {
	*chem.Bond
	at1, at2 *Atom
}

func (B *Bond) From() graph.Node {
	return B.at1
}

func (B *Bond) To() graph.Node {
	return B.at2
}

//Bonds are undirected, so the reversed edge is a new view with the ends
//switched.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, at1: B.at2, at2: B.at1}
}

//Atoms implements graph.Nodes over a slice of atoms.
type Atoms struct {
	ats  []*Atom
	curr int
}

func (A *Atoms) Len() int {
	return len(A.ats) - A.curr
}

func (A *Atoms) Next() bool {
	if A.curr >= len(A.ats) {
		return false
	}
	A.curr++
	return true
}

func (A *Atoms) Node() graph.Node {
	return A.ats[A.curr-1]
}

func (A *Atoms) Reset() {
	A.curr = 0
}

//Topology is a read-only undirected graph view of a molecule,
//implementing graph.Graph. Bonds can be temporarily excluded, which is
//how the ring and bond-side queries are answered.
type Topology struct {
	mol   *chem.Molecule
	ats   []*Atom
	bonds []*Bond
	skip  map[int]bool //bond indexes excluded from the graph
}

//New builds the graph view of mol. The molecule topology is shared, not
//copied: the view is only valid while the atom and bond lists of mol
//stay unchanged.
func New(mol *chem.Molecule) *Topology {
	mol.FillIndexes()
	T := &Topology{mol: mol, skip: make(map[int]bool)}
	for i := 0; i < mol.Len(); i++ {
		T.ats = append(T.ats, &Atom{Atom: mol.Atom(i)})
	}
	for _, b := range mol.Bonds() {
		T.bonds = append(T.bonds, &Bond{Bond: b, at1: T.ats[b.At1.Index], at2: T.ats[b.At2.Index]})
	}
	return T
}

func (T *Topology) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(T.ats)) {
		return nil
	}
	return T.ats[id]
}

func (T *Topology) Nodes() graph.Nodes {
	return &Atoms{ats: T.ats}
}

func (T *Topology) From(id int64) graph.Nodes {
	var ret []*Atom
	for _, b := range T.bonds {
		if T.skip[b.Index] {
			continue
		}
		if b.at1.ID() == id {
			ret = append(ret, b.at2)
		} else if b.at2.ID() == id {
			ret = append(ret, b.at1)
		}
	}
	return &Atoms{ats: ret}
}

func (T *Topology) HasEdgeBetween(xid, yid int64) bool {
	return T.Edge(xid, yid) != nil
}

func (T *Topology) Edge(uid, vid int64) graph.Edge {
	for _, b := range T.bonds {
		if T.skip[b.Index] {
			continue
		}
		if (b.at1.ID() == uid && b.at2.ID() == vid) || (b.at1.ID() == vid && b.at2.ID() == uid) {
			return b
		}
	}
	return nil
}

func (T *Topology) exclude(b *chem.Bond) {
	T.skip[b.Index] = true
}

func (T *Topology) restore(b *chem.Bond) {
	delete(T.skip, b.Index)
}

//InRing reports whether b closes a ring: with b excluded from the
//graph, its two atoms are still connected.
func (T *Topology) InRing(b *chem.Bond) bool {
	T.exclude(b)
	defer T.restore(b)
	return topo.PathExistsIn(T, T.ats[b.At1.Index], T.ats[b.At2.Index])
}

//SideOf returns the sorted indexes of the atoms reachable from start
//without crossing b. start must be one end of b. For a non-ring bond
//this is "the start side" of the molecule; for a ring bond it is the
//whole connected component.
func (T *Topology) SideOf(b *chem.Bond, start *chem.Atom) []int {
	T.exclude(b)
	defer T.restore(b)
	var side []int
	bfs := traverse.BreadthFirst{Visit: func(n graph.Node) { side = append(side, int(n.ID())) }}
	bfs.Walk(T, T.ats[start.Index], nil)
	sort.Ints(side)
	return side
}

//ComponentOf returns the set of atom indexes of the connected component
//holding the atom with index i.
func (T *Topology) ComponentOf(i int) map[int]bool {
	set := make(map[int]bool)
	bfs := traverse.BreadthFirst{Visit: func(n graph.Node) { set[int(n.ID())] = true }}
	bfs.Walk(T, T.ats[i], nil)
	return set
}
