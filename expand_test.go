package torsion

import (
	"fmt"
	"math"
	"testing"
)

func expandFixture(t *testing.T) (*Molecule, *Dihedral) {
	t.Helper()
	mol := testButane(t, 1.0)
	second := mol.Conf(0).Copy()
	dih, err := DihedralFromSDData(mol)
	if err != nil {
		t.Fatal(err)
	}
	if err := dih.Set(mol, second, 2.0); err != nil {
		t.Fatal(err)
	}
	mol.AddConf(second)
	mol.Conf(0).SetSDData(TagConformerLabel, "but_00")
	mol.Conf(1).SetSDData(TagConformerLabel, "but_01")
	return mol, dih
}

func TestExpandTorsions(t *testing.T) {
	const numPoints = 4
	mol, dih := expandFixture(t)
	out, err := ExpandTorsions(mol, dih, numPoints, false)
	if err != nil {
		t.Fatal(err)
	}
	if out.NConfs() != 2*numPoints {
		t.Fatalf("got %d conformers, want %d", out.NConfs(), 2*numPoints)
	}
	grid := AngleGrid(numPoints)
	for i, conf := range out.Confs() {
		parent := i / numPoints
		point := i % numPoints
		deg := point * 90
		want := fmt.Sprintf("but_%02d_%02d", parent, point)
		if got := conf.SDData(TagConformerLabel); got != want {
			t.Errorf("conformer %d label %q, want %q", i, got, want)
		}
		if wtitle := fmt.Sprintf("%s: Angle %d", want, deg); conf.Title() != wtitle {
			t.Errorf("conformer %d title %q, want %q", i, conf.Title(), wtitle)
		}
		if got := conf.FloatData(TagTorsionAngle); got != float64(deg) {
			t.Errorf("conformer %d numeric angle %f, want %d", i, got, deg)
		}
		got := fullTurnAngle(dih.Measure(conf))
		diff := math.Abs(got - grid[point])
		if diff > math.Pi {
			diff = 2*math.Pi - diff
		}
		if diff > 1e-9 {
			t.Errorf("conformer %d measures %f, want %f", i, got, grid[point])
		}
	}
	//the input keeps its 2 conformers
	if mol.NConfs() != 2 {
		t.Error("ExpandTorsions modified its input")
	}
}

func TestExpandTorsionsIncludeInput(t *testing.T) {
	const numPoints = 3
	mol, dih := expandFixture(t)
	out, err := ExpandTorsions(mol, dih, numPoints, true)
	if err != nil {
		t.Fatal(err)
	}
	if out.NConfs() != 2+2*numPoints {
		t.Fatalf("got %d conformers, want %d", out.NConfs(), 2+2*numPoints)
	}
	//the originals come first, untouched
	if got := fullTurnAngle(dih.Measure(out.Conf(0))); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("first retained conformer measures %f, want 1.0", got)
	}
	if got := fullTurnAngle(dih.Measure(out.Conf(1))); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("second retained conformer measures %f, want 2.0", got)
	}
}

func TestSplitConformers(t *testing.T) {
	mol, dih := expandFixture(t)
	out, err := ExpandTorsions(mol, dih, 4, false)
	if err != nil {
		t.Fatal(err)
	}
	split := SplitConformers(out)
	var count int
	for one := split.Next(); one != nil; one = split.Next() {
		if one.NConfs() != 1 {
			t.Fatalf("split molecule has %d conformers", one.NConfs())
		}
		if one.Title() != out.Conf(count).Title() {
			t.Errorf("split %d title %q, want %q", count, one.Title(), out.Conf(count).Title())
		}
		if one.SDData(TagTorsionAtoms) != "1 2 3 4" {
			t.Errorf("split %d lost the molecule-level tags", count)
		}
		count++
	}
	if count != out.NConfs() {
		t.Errorf("split yielded %d molecules, want %d", count, out.NConfs())
	}
	//a new splitter starts over
	if SplitConformers(out).Next() == nil {
		t.Error("a fresh splitter returned nil immediately")
	}
}
