package alphabet

import "testing"

func TestMembership(t *testing.T) {
	cases := []struct {
		alpha *Alphabet
		ok    string
		bad   string
	}{
		{DNA, "ACGTNacgtnRYswkmBDHV", "UX*1 @"},
		{RNA, "ACGUNacgun", "TtX."},
		{Protein, "ACDEFWYxz*-", "@1 "},
	}
	for _, c := range cases {
		for i := 0; i < len(c.ok); i++ {
			if !c.alpha.Valid(c.ok[i]) {
				t.Errorf("%s: %q should be valid", c.alpha.Name(), c.ok[i])
			}
		}
		for i := 0; i < len(c.bad); i++ {
			if c.alpha.Valid(c.bad[i]) {
				t.Errorf("%s: %q should be invalid", c.alpha.Name(), c.bad[i])
			}
		}
	}
}

func TestParse(t *testing.T) {
	for name, want := range map[string]*Alphabet{"dna": DNA, "RNA": RNA, "Protein": Protein} {
		got, err := Parse(name)
		if err != nil || got != want {
			t.Fatalf("Parse(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := Parse("codon"); err == nil {
		t.Fatal("expected error for unknown alphabet")
	}
}
