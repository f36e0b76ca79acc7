package torsion

import (
	"fmt"
	"math"
	"regexp"
	"testing"

	v3 "github.com/qcgrid/torsion/v3"
)

//fakeSampler renumbers atoms in reverse order and emits nconfs copies
//of the input conformer, which is enough to exercise the index-map
//recovery of the generation step.
type fakeSampler struct {
	rules  []string
	reject bool
	nconfs int
}

func (f *fakeSampler) LoadTorsionRule(r string) bool {
	if f.reject {
		return false
	}
	f.rules = append(f.rules, r)
	return true
}

func (f *fakeSampler) Sample(mol *Molecule, opts *SamplerOptions, region AtomPredicate) (*Molecule, []int, error) {
	n := mol.Len()
	remap := make([]int, n)
	ats := make([]*Atom, n)
	for i := 0; i < n; i++ {
		remap[i] = n - 1 - i
		a := mol.Atom(i).Copy()
		a.ID = 0
		ats[remap[i]] = a
	}
	out, err := NewMolecule(ats, mol.Title())
	if err != nil {
		return nil, nil, err
	}
	for _, b := range mol.Bonds() {
		out.NewBond(remap[b.At1.Index], remap[b.At2.Index], b.Order)
	}
	out.CopySDData(mol)
	src := mol.Conf(0).Coords()
	for k := 0; k < f.nconfs; k++ {
		coords := v3.Zeros(n)
		for i := 0; i < n; i++ {
			coords.SetMatrix(remap[i], 0, src.VecView(i))
		}
		out.AddConf(NewConformer(coords))
	}
	return out, remap, nil
}

func TestGenerateEnsemble(t *testing.T) {
	mol := testButane(t, math.Pi)
	sampler := &fakeSampler{nconfs: 3}
	o := DefaultGenOptions()
	o.NumConfs = 5
	ens, err := GenerateEnsemble(mol, []string{"[C:1][C:2] 60 180"}, sampler, o)
	if err != nil {
		t.Fatal(err)
	}
	if ens.NConfs() != 3 {
		t.Fatalf("got %d conformers, want 3", ens.NConfs())
	}
	//the sampler reversed the atom order, so the dihedral tag must follow
	if got := ens.SDData(TagTorsionAtoms); got != "4 3 2 1" {
		t.Errorf("%s: got %q, want \"4 3 2 1\"", TagTorsionAtoms, got)
	}
	if got := ens.SDData(TagParentMol); got != "5 6 7 8" {
		t.Errorf("%s: got %q, want \"5 6 7 8\"", TagParentMol, got)
	}
	if got := ens.SDData(TagAtomProp); got != "cs1:0:1;1%4:1%3:1%2:1%1" {
		t.Errorf("%s: got %q", TagAtomProp, got)
	}
	//the recovered dihedral must still be measurable on the new indexing
	dih, err := DihedralFromSDData(ens)
	if err != nil {
		t.Fatal(err)
	}
	if got := dih.Measure(ens.Conf(0)); math.Abs(math.Abs(got)-math.Pi) > 1e-9 {
		t.Errorf("recovered dihedral measures %f, want +-pi", got)
	}
	labelled := regexp.MustCompile(`^but_5_6_7_8_\d{2}$`)
	for i, conf := range ens.Confs() {
		label := conf.SDData(TagConformerLabel)
		if !labelled.MatchString(label) {
			t.Errorf("conformer %d label %q", i, label)
		}
		if want := fmt.Sprintf("but_5_6_7_8_%02d", i); label != want {
			t.Errorf("conformer %d label %q, want %q", i, label, want)
		}
		if conf.Title() != label {
			t.Errorf("conformer %d title %q does not match its label", i, conf.Title())
		}
	}
	if len(sampler.rules) != 1 {
		t.Errorf("loaded %d rules, want 1", len(sampler.rules))
	}
	//the input must be untouched
	if mol.NConfs() != 1 || mol.Conf(0).HasSDData(TagConformerLabel) {
		t.Error("GenerateEnsemble modified its input")
	}
	if mol.SDData(TagTorsionAtoms) != "1 2 3 4" {
		t.Error("GenerateEnsemble rewrote the tags of its input")
	}
}

func TestGenerateEnsembleSingleConf(t *testing.T) {
	mol := testButane(t, math.Pi)
	o := DefaultGenOptions()
	o.NumConfs = 1
	//with a single conformer requested the sampler is never called
	ens, err := GenerateEnsemble(mol, nil, &fakeSampler{reject: true}, o)
	if err != nil {
		t.Fatal(err)
	}
	if ens.NConfs() != 1 {
		t.Fatalf("got %d conformers, want 1", ens.NConfs())
	}
	if got := ens.SDData(TagTorsionAtoms); got != "1 2 3 4" {
		t.Errorf("passthrough changed the dihedral tag to %q", got)
	}
	if got := ens.Conf(0).SDData(TagConformerLabel); got != "but_5_6_7_8_00" {
		t.Errorf("label: got %q", got)
	}
}

func TestGenerateEnsembleRuleLoad(t *testing.T) {
	mol := testButane(t, math.Pi)
	_, err := GenerateEnsemble(mol, []string{"whatever"}, &fakeSampler{reject: true, nconfs: 2}, nil)
	if err == nil {
		t.Fatal("expected a rule load error")
	}
	rerr, ok := err.(*RuleLoadError)
	if !ok {
		t.Fatalf("wrong error type: %T", err)
	}
	if rerr.Rule != "whatever" {
		t.Errorf("error reports rule %q", rerr.Rule)
	}
}

func TestGenerateEnsembleEmpty(t *testing.T) {
	mol := testButane(t, math.Pi)
	_, err := GenerateEnsemble(mol, nil, &fakeSampler{nconfs: 0}, nil)
	if err == nil {
		t.Fatal("expected a generation error")
	}
	if _, ok := err.(*GenerationError); !ok {
		t.Errorf("wrong error type: %T", err)
	}
}

func TestGenerateEnsembleNoTag(t *testing.T) {
	mol := testButane(t, math.Pi)
	mol.ClearSDData()
	_, err := GenerateEnsemble(mol, nil, &fakeSampler{nconfs: 2}, nil)
	if err == nil {
		t.Fatal("expected a missing tag error")
	}
	if _, ok := err.(*MissingTagError); !ok {
		t.Errorf("wrong error type: %T", err)
	}
}
