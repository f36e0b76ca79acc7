package torsion

import "testing"

//propanamide: CH3-CH2-C(=O)-NH2, hydrogens last.
func testPropanamide(t *testing.T) *Molecule {
	t.Helper()
	ats := []*Atom{
		{Symbol: "C"}, //0 methyl
		{Symbol: "C"}, //1 methylene
		{Symbol: "C"}, //2 carbonyl
		{Symbol: "O"}, //3
		{Symbol: "N"}, //4
		{Symbol: "H"}, {Symbol: "H"}, //5, 6 on N
		{Symbol: "H"}, {Symbol: "H"}, {Symbol: "H"}, //7-9 on C0
		{Symbol: "H"}, {Symbol: "H"}, //10, 11 on C1
	}
	mol, err := NewMolecule(ats, "propanamide")
	if err != nil {
		t.Fatal(err)
	}
	mol.NewBond(0, 1, 1)
	mol.NewBond(1, 2, 1)
	mol.NewBond(2, 3, 2)
	mol.NewBond(2, 4, 1)
	mol.NewBond(4, 5, 1)
	mol.NewBond(4, 6, 1)
	mol.NewBond(0, 7, 1)
	mol.NewBond(0, 8, 1)
	mol.NewBond(0, 9, 1)
	mol.NewBond(1, 10, 1)
	mol.NewBond(1, 11, 1)
	return mol
}

func TestIsRotor(t *testing.T) {
	mol := testPropanamide(t)
	cases := []struct {
		i, j int
		want bool
	}{
		{1, 2, true},  //CH2-C(=O): two heavy neighbors each side
		{0, 1, false}, //terminal methyl
		{2, 4, false}, //amide: N only has hydrogens besides C
		{2, 3, false}, //double bond
		{4, 5, false}, //N-H
	}
	for _, c := range cases {
		b := mol.BondBetween(c.i, c.j)
		if b == nil {
			t.Fatalf("no bond between %d and %d", c.i, c.j)
		}
		if got := mol.IsRotor(b); got != c.want {
			t.Errorf("IsRotor(%d-%d): got %v, want %v", c.i, c.j, got, c.want)
		}
	}
}

func TestIsFlexibleBond(t *testing.T) {
	mol := testPropanamide(t)
	cases := []struct {
		i, j int
		want bool
	}{
		{2, 4, true},  //amide: carbonyl end is conjugated
		{1, 2, true},  //also next to the carbonyl
		{0, 1, false}, //no conjugated end
		{2, 3, false}, //the double bond itself
		{4, 5, false}, //involves a hydrogen
	}
	for _, c := range cases {
		b := mol.BondBetween(c.i, c.j)
		if b == nil {
			t.Fatalf("no bond between %d and %d", c.i, c.j)
		}
		if got := mol.IsFlexibleBond(b); got != c.want {
			t.Errorf("IsFlexibleBond(%d-%d): got %v, want %v", c.i, c.j, got, c.want)
		}
	}
}

func TestIsRotorRing(t *testing.T) {
	ats := []*Atom{{Symbol: "C"}, {Symbol: "C"}, {Symbol: "C"}, {Symbol: "C"}}
	mol, err := NewMolecule(ats, "ring")
	if err != nil {
		t.Fatal(err)
	}
	mol.NewBond(0, 1, 1)
	mol.NewBond(1, 2, 1)
	mol.NewBond(2, 3, 1)
	mol.NewBond(3, 0, 1)
	if mol.IsRotor(mol.BondBetween(1, 2)) {
		t.Error("ring bond reported as a rotor")
	}
}

func TestRotorPolicies(t *testing.T) {
	mol := testPropanamide(t)
	//the amide dihedral: O=C-N-H
	dih, err := NewDihedral(3, 2, 4, 5, mol.Len())
	if err != nil {
		t.Fatal(err)
	}
	amide := mol.BondBetween(2, 4)
	ethyl := mol.BondBetween(0, 1)
	backbone := mol.BondBetween(1, 2)

	general := RotorPredicate(mol, PolicyGeneral, dih)
	if !general(amide) || !general(backbone) {
		t.Error("general policy must accept the amide and backbone bonds")
	}
	if general(ethyl) {
		t.Error("general policy accepted the terminal methyl bond")
	}

	custom := RotorPredicate(mol, PolicyCustomOnly, dih)
	if !custom(amide) {
		t.Error("custom-only policy must accept the amide bond")
	}
	if custom(ethyl) {
		t.Error("custom-only policy accepted a non-conjugated bond")
	}

	near := RotorPredicate(mol, PolicyDistanceRestricted, dih)
	if !near(backbone) {
		t.Error("distance-restricted policy must accept a bond adjacent to the central bond")
	}
	if near(ethyl) {
		t.Error("distance-restricted policy accepted a bond outside the neighborhood")
	}
}

func TestHasAtomIndex(t *testing.T) {
	mol := testPropanamide(t)
	p := HasAtomIndex(2, 4)
	if !p(mol.Atom(2)) || !p(mol.Atom(4)) || p(mol.Atom(0)) {
		t.Error("HasAtomIndex predicate misbehaves")
	}
}
