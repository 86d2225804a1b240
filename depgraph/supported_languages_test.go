package depgraph

import "testing"

func TestIsSourceFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{path: "algorithm/dsu.hpp", want: true},
		{path: "main.cpp", want: true},
		{path: "LEGACY.H", want: true},
		{path: "impl.inl", want: true},
		{path: "README.md", want: false},
		{path: "Makefile", want: false},
		{path: "expanded.cpp.swp", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			if got := IsSourceFile(tc.path); got != tc.want {
				t.Fatalf("IsSourceFile(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}
