package errors

import (
	"testing"
)

func TestSentinelChecks(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found direct", ErrNotFound, IsNotFound, true},
		{"not found wrapped", Wrap(ErrNotFound, "looking up dataiskole"), IsNotFound, true},
		{"duplicate node wrapped", Wrapf(ErrDuplicateNode, "id %q", "hero_7"), IsDuplicateNode, true},
		{"unknown node wrapped", Wrap(ErrUnknownNode, "adding friendship"), IsUnknownNode, true},
		{"self loop direct", ErrSelfLoop, IsSelfLoop, true},
		{"duplicate edge wrapped", Wrap(ErrDuplicateEdge, "batman-robin"), IsDuplicateEdge, true},
		{"unrelated error", New("disk full"), IsNotFound, false},
		{"nil error", nil, IsNotFound, false},
		{"cross sentinel", ErrDuplicateNode, IsUnknownNode, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("check(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(Wrap(ErrSelfLoop, "inner"), "outer")
	if !Is(err, ErrSelfLoop) {
		t.Errorf("double-wrapped error lost its sentinel: %v", err)
	}
	if IsDuplicateEdge(err) {
		t.Errorf("wrapped self-loop error matched the wrong sentinel")
	}
}
