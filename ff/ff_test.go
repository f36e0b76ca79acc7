package ff

import (
	"math"
	"testing"

	chem "github.com/qcgrid/torsion"
	v3 "github.com/qcgrid/torsion/v3"
)

//heavy-atom butane with the central dihedral at phi radians.
func butane(t *testing.T, phi float64) *chem.Molecule {
	t.Helper()
	ats := []*chem.Atom{{Symbol: "C"}, {Symbol: "C"}, {Symbol: "C"}, {Symbol: "C"}}
	mol, err := chem.NewMolecule(ats, "but")
	if err != nil {
		t.Fatal(err)
	}
	mol.NewBond(0, 1, 1)
	mol.NewBond(1, 2, 1)
	mol.NewBond(2, 3, 1)
	const l = 1.5
	coords, err := v3.NewMatrix([]float64{
		l, 0, 0,
		0, 0, 0,
		0, 0, l,
		l * math.Cos(phi), l * math.Sin(phi), l,
	})
	if err != nil {
		t.Fatal(err)
	}
	mol.AddConf(chem.NewConformer(coords))
	mol.SetSDData(chem.TagTorsionAtoms, "1 2 3 4")
	mol.SetSDData(chem.TagParentMol, "9 10 11 12")
	return mol
}

//hydrogen peroxide, hydrogens first: exercises the heavy-first
//renumbering with a non-trivial index map.
func peroxide(t *testing.T) *chem.Molecule {
	t.Helper()
	ats := []*chem.Atom{{Symbol: "H"}, {Symbol: "O"}, {Symbol: "O"}, {Symbol: "H"}}
	mol, err := chem.NewMolecule(ats, "hooh")
	if err != nil {
		t.Fatal(err)
	}
	mol.NewBond(0, 1, 1)
	mol.NewBond(1, 2, 1)
	mol.NewBond(2, 3, 1)
	coords, err := v3.NewMatrix([]float64{
		1, 0, 0,
		0, 0, 0,
		0, 0, 1.5,
		0, 1, 1.5,
	})
	if err != nil {
		t.Fatal(err)
	}
	mol.AddConf(chem.NewConformer(coords))
	mol.SetSDData(chem.TagTorsionAtoms, "1 2 3 4")
	return mol
}

func TestLoadTorsionRule(t *testing.T) {
	D := New()
	cases := []struct {
		rule string
		want bool
	}{
		{"[C:1][C:2]([C:3])[C:4] 0 120 240", true},
		{"[O:1][C:2] 90", true},
		{"patternonly", false},
		{"pattern sixty", false},
		{"pattern 60 400", false},
		{"pattern -10", false},
		{"", false},
	}
	for _, c := range cases {
		if got := D.LoadTorsionRule(c.rule); got != c.want {
			t.Errorf("LoadTorsionRule(%q): got %v, want %v", c.rule, got, c.want)
		}
	}
}

func TestSampleButane(t *testing.T) {
	mol := butane(t, 1.0)
	D := New()
	opts := &chem.SamplerOptions{
		SampleHydrogens: true,
		MaxConfs:        10,
		EnergyWindow:    1000,
	}
	out, remap, err := D.Sample(mol, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	//all heavy atoms: the renumbering is the identity
	for i, v := range remap {
		if v != i {
			t.Errorf("remap[%d] = %d, want identity", i, v)
		}
	}
	//one rotor, three staggered drive angles
	if out.NConfs() != 3 {
		t.Fatalf("got %d conformers, want 3", out.NConfs())
	}
	dih, err := chem.NewDihedral(0, 1, 2, 3, out.Len())
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[int]bool)
	var last float64
	for i, conf := range out.Confs() {
		if !conf.HasFloatData(chem.TagEnergy) {
			t.Fatalf("conformer %d carries no energy", i)
		}
		e := conf.FloatData(chem.TagEnergy)
		if i > 0 && e < last {
			t.Error("conformers are not sorted by energy")
		}
		last = e
		deg := int(math.Round(chem.Rad2Deg(dih.Measure(conf))))
		if deg < 0 {
			deg += 360
		}
		seen[deg] = true
	}
	for _, want := range []int{60, 180, 300} {
		if !seen[want] {
			t.Errorf("no conformer at %d degrees; got %v", want, seen)
		}
	}
	//anti is the least crowded rotamer, so it must come first
	first := int(math.Round(chem.Rad2Deg(math.Abs(dih.Measure(out.Conf(0))))))
	if first != 180 {
		t.Errorf("lowest-energy conformer at %d degrees, want 180", first)
	}
	if mol.NConfs() != 1 {
		t.Error("Sample modified its input")
	}
}

func TestSampleMaxConfs(t *testing.T) {
	mol := butane(t, 1.0)
	opts := &chem.SamplerOptions{SampleHydrogens: true, MaxConfs: 2, EnergyWindow: 1000}
	out, _, err := New().Sample(mol, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.NConfs() != 2 {
		t.Errorf("got %d conformers, want 2", out.NConfs())
	}
}

func TestSampleRenumbering(t *testing.T) {
	mol := peroxide(t)
	opts := &chem.SamplerOptions{SampleHydrogens: true, MaxConfs: 5}
	out, remap, err := New().Sample(mol, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	//no drivable bond in HOOH under the default predicates, so the seed
	//passes through
	if out.NConfs() != 1 {
		t.Fatalf("got %d conformers, want 1", out.NConfs())
	}
	want := []int{2, 0, 1, 3}
	for i, w := range want {
		if remap[i] != w {
			t.Fatalf("remap = %v, want %v", remap, want)
		}
	}
	if out.Atom(0).Symbol != "O" || out.Atom(1).Symbol != "O" || out.Atom(2).Symbol != "H" {
		t.Error("atoms are not renumbered heavy-first")
	}
	//coordinates must follow their atoms
	c := out.Conf(0).Coords()
	if c.At(0, 0) != 0 || c.At(2, 0) != 1 {
		t.Error("conformer rows do not follow the renumbering")
	}
	//the bond list must be rewired to the new indexes
	if out.BondBetween(0, 1) == nil || out.BondBetween(0, 2) == nil || out.BondBetween(1, 3) == nil {
		t.Error("bonds are not rewired to the new indexes")
	}
}

func TestGenerateEnsembleWithDriver(t *testing.T) {
	mol := butane(t, 1.0)
	o := chem.DefaultGenOptions()
	o.NumConfs = 10
	//the steric score spreads rotamers far apart, so the default window
	//would keep only the lowest one
	o.EnergyWindow = 1000
	ens, err := chem.GenerateEnsemble(mol, []string{"[C:1][C:2] 60 180 300"}, New(), o)
	if err != nil {
		t.Fatal(err)
	}
	if ens.NConfs() != 3 {
		t.Fatalf("got %d conformers, want 3", ens.NConfs())
	}
	if got := ens.SDData(chem.TagTorsionAtoms); got != "1 2 3 4" {
		t.Errorf("%s: got %q", chem.TagTorsionAtoms, got)
	}
	if got := ens.Conf(0).SDData(chem.TagConformerLabel); got != "but_9_10_11_12_00" {
		t.Errorf("label: got %q", got)
	}
}

func TestScanTorsionWithDriver(t *testing.T) {
	const numPoints = 12
	mol := butane(t, 1.0)
	dih, err := chem.DihedralFromSDData(mol)
	if err != nil {
		t.Fatal(err)
	}
	out, err := chem.ScanTorsion(mol, dih, numPoints, New())
	if err != nil {
		t.Fatal(err)
	}
	if out.NConfs() != numPoints {
		t.Fatalf("got %d conformers, want %d", out.NConfs(), numPoints)
	}
	grid := chem.AngleGrid(numPoints)
	for i, conf := range out.Confs() {
		got := dih.Measure(conf)
		diff := math.Abs(got - grid[i])
		for diff > math.Pi {
			diff = math.Abs(diff - 2*math.Pi)
		}
		if diff > 1e-9 {
			t.Errorf("conformer %d measures %f, want %f", i, got, grid[i])
		}
		if !conf.HasFloatData(chem.TagEnergy) {
			t.Errorf("conformer %d carries no energy", i)
		}
	}
}

func TestScanTorsionBadSetup(t *testing.T) {
	mol := butane(t, 1.0)
	dih, err := chem.DihedralFromSDData(mol)
	if err != nil {
		t.Fatal(err)
	}
	D := New()
	if _, err := D.ScanTorsion(mol, dih, &chem.ScanOptions{DeltaDeg: 30, ForceField: "UFF"}); err == nil {
		t.Error("expected an error for an unsupported force field")
	}
	if _, err := D.ScanTorsion(mol, dih, &chem.ScanOptions{DeltaDeg: 0}); err == nil {
		t.Error("expected an error for a zero step")
	}
	if _, err := D.ScanTorsion(mol, dih, nil); err == nil {
		t.Error("expected an error for nil options")
	}
}

func TestEnergyRanksCrowding(t *testing.T) {
	mol := butane(t, math.Pi)
	excl := stericExclusions(mol)
	anti := mol.Conf(0)
	gauche := anti.Copy()
	dih, err := chem.NewDihedral(0, 1, 2, 3, mol.Len())
	if err != nil {
		t.Fatal(err)
	}
	if err := dih.Set(mol, gauche, chem.Deg2Rad(60)); err != nil {
		t.Fatal(err)
	}
	if Energy(mol, gauche, excl) <= Energy(mol, anti, excl) {
		t.Error("gauche butane must score above anti")
	}
}
