package deck

import "testing"

func TestLookupSet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "animals", input: "animals", want: "animals"},
		{name: "case insensitive", input: "GLYPHS", want: "glyphs"},
		{name: "unknown", input: "fruit", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookupSet(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LookupSet(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got.Name != tt.want {
				t.Errorf("LookupSet(%q) = %q, want %q", tt.input, got.Name, tt.want)
			}
		})
	}
}

func TestSetsHaveDistinctSymbols(t *testing.T) {
	for _, set := range sets {
		seen := map[string]bool{}
		for _, s := range set.Symbols {
			if seen[s] {
				t.Errorf("set %s repeats symbol %s", set.Name, s)
			}
			seen[s] = true
		}
		if set.Size() < 12 {
			t.Errorf("set %s has %d symbols, hardest difficulty needs 12", set.Name, set.Size())
		}
	}
}

func TestNextSetWraps(t *testing.T) {
	if got := NextSet("animals").Name; got != "glyphs" {
		t.Errorf("NextSet(animals) = %s, want glyphs", got)
	}
	if got := NextSet("glyphs").Name; got != "animals" {
		t.Errorf("NextSet(glyphs) = %s, want animals", got)
	}
	if got := NextSet("unknown").Name; got != "animals" {
		t.Errorf("NextSet(unknown) = %s, want animals", got)
	}
}

func TestDifficulties(t *testing.T) {
	d, err := ParseDifficulty("Medium")
	if err != nil {
		t.Fatalf("ParseDifficulty: %v", err)
	}
	if d.Pairs != 8 {
		t.Errorf("medium pairs = %d, want 8", d.Pairs)
	}
	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Error("expected error for unknown difficulty")
	}

	if got := NextDifficulty(6).Pairs; got != 8 {
		t.Errorf("NextDifficulty(6) = %d, want 8", got)
	}
	if got := NextDifficulty(12).Pairs; got != 6 {
		t.Errorf("NextDifficulty(12) = %d, want 6", got)
	}
	if got := NextDifficulty(5).Pairs; got != 6 {
		t.Errorf("NextDifficulty(5) = %d, want 6", got)
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		pairs int
		want  int
	}{
		{pairs: 1, want: 2},
		{pairs: 6, want: 4},
		{pairs: 8, want: 4},
		{pairs: 12, want: 6},
		{pairs: 7, want: 7},
	}
	for _, tt := range tests {
		if got := Columns(tt.pairs); got != tt.want {
			t.Errorf("Columns(%d) = %d, want %d", tt.pairs, got, tt.want)
		}
	}
}
