package eval

import "testing"

var testWeights = Weights{ExactMatch: 1.0, PartialMatch: 0.5}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		student []string
		model   []string
		want    float64
	}{
		{
			name:    "identical sets score 100",
			student: []string{"tcp", "reliable", "transport"},
			model:   []string{"tcp", "reliable", "transport"},
			want:    100.0,
		},
		{
			name:    "empty model scores 0",
			student: []string{"anything"},
			model:   nil,
			want:    0.0,
		},
		{
			name:    "empty student scores 0",
			student: nil,
			model:   []string{"tcp", "udp"},
			want:    0.0,
		},
		{
			name:    "half exact coverage",
			student: []string{"tcp", "udp"},
			model:   []string{"tcp", "udp", "reliable", "connectionless"},
			want:    50.0,
		},
		{
			name:    "partial match earns half weight",
			student: []string{"connection"},
			model:   []string{"connectionless"},
			want:    50.0,
		},
		{
			name:    "exact preferred over partial",
			student: []string{"connectionless", "connection"},
			model:   []string{"connectionless"},
			want:    100.0,
		},
		{
			name:    "short tokens never partial match",
			student: []string{"ca"},
			model:   []string{"cache"},
			want:    0.0,
		},
		{
			name:    "duplicate model keywords count once",
			student: []string{"tcp"},
			model:   []string{"tcp", "tcp", "udp"},
			want:    50.0,
		},
		{
			name:    "extra student keywords cost nothing",
			student: []string{"tcp", "banana", "kimchi"},
			model:   []string{"tcp"},
			want:    100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.student, tt.model, testWeights)
			if got != tt.want {
				t.Errorf("Score(%v, %v) = %v, want %v", tt.student, tt.model, got, tt.want)
			}
		})
	}
}

func TestScoreMonotonic(t *testing.T) {
	model := []string{"virtualization", "hypervisor", "isolation", "overhead"}

	less := Score([]string{"hypervisor"}, model, testWeights)
	more := Score([]string{"hypervisor", "isolation"}, model, testWeights)
	if more <= less {
		t.Errorf("covering more keywords must not lower the score: %v <= %v", more, less)
	}
}

func TestScoreClamped(t *testing.T) {
	// Weights that could push past 100 must still clamp.
	w := Weights{ExactMatch: 2.0, PartialMatch: 1.0}
	got := Score([]string{"tcp", "udp"}, []string{"tcp", "udp"}, w)
	if got != 100.0 {
		t.Errorf("Score = %v, want clamped 100.0", got)
	}
}

func TestPartialMatch(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"connectionless", "connection", true},
		{"connection", "connectionless", true},
		{"cache", "cache", true},
		{"tcp", "udp", false},
		{"ab", "about", false},
		{"scan", "can", true}, // known imprecision
		{"가상화", "가상", false},
		{"가상화기술", "가상화", true},
	}

	for _, tt := range tests {
		if got := partialMatch(tt.a, tt.b); got != tt.want {
			t.Errorf("partialMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
