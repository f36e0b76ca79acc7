package chemgraph

import (
	"testing"

	chem "github.com/qcgrid/torsion"
)

//A cyclopropane ring with a methyl carbon on atom 0, plus one
//disconnected atom.
func testMol(t *testing.T) *chem.Molecule {
	ats := make([]*chem.Atom, 5)
	for i := range ats {
		ats[i] = &chem.Atom{Symbol: "C"}
	}
	mol, err := chem.NewMolecule(ats, "ring")
	if err != nil {
		t.Fatal(err)
	}
	mol.NewBond(0, 1, 1)
	mol.NewBond(1, 2, 1)
	mol.NewBond(2, 0, 1)
	mol.NewBond(0, 3, 1)
	return mol
}

func TestInRing(t *testing.T) {
	mol := testMol(t)
	T := New(mol)
	if !T.InRing(mol.BondBetween(0, 1)) {
		t.Error("ring bond 0-1 not detected as in a ring")
	}
	if T.InRing(mol.BondBetween(0, 3)) {
		t.Error("exocyclic bond 0-3 detected as in a ring")
	}
	//the exclusion must be restored after the query
	if T.Edge(0, 1) == nil {
		t.Error("bond 0-1 missing from the graph after InRing")
	}
}

func TestSideOf(t *testing.T) {
	mol := testMol(t)
	T := New(mol)
	b := mol.BondBetween(0, 3)
	side := T.SideOf(b, mol.Atom(3))
	if len(side) != 1 || side[0] != 3 {
		t.Errorf("side of atom 3: got %v, want [3]", side)
	}
	side = T.SideOf(b, mol.Atom(0))
	want := []int{0, 1, 2}
	if len(side) != len(want) {
		t.Fatalf("side of atom 0: got %v, want %v", side, want)
	}
	for i, v := range want {
		if side[i] != v {
			t.Errorf("side of atom 0: got %v, want %v", side, want)
		}
	}
}

func TestComponentOf(t *testing.T) {
	mol := testMol(t)
	T := New(mol)
	comp := T.ComponentOf(1)
	if len(comp) != 4 || comp[4] {
		t.Errorf("component of atom 1: got %v", comp)
	}
	comp = T.ComponentOf(4)
	if len(comp) != 1 || !comp[4] {
		t.Errorf("component of atom 4: got %v", comp)
	}
}
