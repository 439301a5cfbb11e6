package gem

import (
	"encoding/json"
	"testing"
)

func TestColorOrdinals(t *testing.T) {
	t.Parallel()
	for i, c := range All {
		if int(c) != i {
			t.Errorf("expected %s at ordinal %d, got %d", c, i, c)
		}
	}
	if Gold.IsGem() {
		t.Error("gold must not be a collectible color")
	}
	for _, c := range Gems {
		if !c.IsGem() {
			t.Errorf("expected %s to be a gem color", c)
		}
	}
	if Color(6).Valid() {
		t.Error("ordinal 6 must not be valid")
	}
}

func TestParseColor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{input: "black", want: Black},
		{input: "WHITE", want: White},
		{input: " red ", want: Red},
		{input: "b", want: Blue},
		{input: "G", want: Green},
		{input: "*", want: Gold},
		{input: "gold", want: Gold},
		{input: "purple", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetArithmetic(t *testing.T) {
	t.Parallel()
	var s Set
	s.Add(Black, 2)
	s.Add(Green, 1)
	s.Add(Gold, 5) // ignored

	if s.Get(Black) != 2 || s.Get(Green) != 1 {
		t.Errorf("unexpected counts: %v", s)
	}
	if s.Get(Gold) != 0 {
		t.Errorf("gold must read as zero, got %d", s.Get(Gold))
	}
	if s.Total() != 3 {
		t.Errorf("expected total 3, got %d", s.Total())
	}
	if s.String() != "2K 1G" {
		t.Errorf("unexpected string %q", s.String())
	}

	req := Set{Black: 2}
	if !s.Covers(req) {
		t.Error("expected set to cover requirement")
	}
	req[Red] = 1
	if s.Covers(req) {
		t.Error("expected set not to cover red requirement")
	}
	if got := s.Plus(req); got != (Set{Black: 4, Red: 1, Green: 1}) {
		t.Errorf("unexpected sum %v", got)
	}
	if !(Set{}).IsZero() || (Set{}).String() != "-" {
		t.Error("empty set should be zero and render as -")
	}
}

func TestSetJSON(t *testing.T) {
	t.Parallel()
	var s Set
	if err := json.Unmarshal([]byte(`{"white":1,"Red":2}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s != (Set{White: 1, Red: 2}) {
		t.Errorf("unexpected set %v", s)
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"red":2,"white":1}` {
		t.Errorf("unexpected encoding %s", data)
	}

	for _, bad := range []string{`{"gold":1}`, `{"pink":1}`, `{"black":-1}`, `[1,2]`} {
		if err := json.Unmarshal([]byte(bad), &s); err == nil {
			t.Errorf("expected error decoding %s", bad)
		}
	}
}
