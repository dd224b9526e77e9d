package scratch

import "testing"

func TestChainAndView(t *testing.T) {
	s := New(8)
	m := s.Mark()
	s.S("fps ").F64(59.944, 1).C(' ').I(-3)
	if got := s.View(m); got != "fps 59.9 -3" {
		t.Fatalf("View = %q", got)
	}
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("Len after Reset = %d", s.Len())
	}
	if s.View(s.Mark()) != "" {
		t.Fatal("empty view should be empty string")
	}
}

func TestLabelKeepsKey(t *testing.T) {
	s := New(64)
	tests := []struct {
		n    int
		want string
	}{
		{1, "Clicks: 1##counter"},
		{2, "Clicks: 2##counter"},
		{30, "Clicks: 30##counter"},
	}
	for _, tt := range tests {
		got := s.Label("counter", func(b *Buffer) { b.S("Clicks: ").I(tt.n) })
		if got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSprintf(t *testing.T) {
	s := New(0)
	tests := []struct {
		format string
		args   []any
		want   string
	}{
		{"cmds %d/%d", []any{12, 1024}, "cmds 12/1024"},
		{"%s!", []any{"hi"}, "hi!"},
		{"%.2f ms", []any{16.6666}, "16.67 ms"},
		{"100%%", nil, "100%"},
		{"id %x", []any{uint32(255)}, "id ff"},
		{"%q", []any{1}, "%q"},
		{"missing %d", nil, "missing "},
	}
	for _, tt := range tests {
		if got := s.Sprintf(tt.format, tt.args...); got != tt.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestViewSurvivesGrowth(t *testing.T) {
	s := New(4)
	a := s.Sprintf("%s", "abcd")
	b := s.Sprintf("%s", "efghijkl")
	if a != "abcd" || b != "efghijkl" {
		t.Fatalf("views = %q %q", a, b)
	}
}
