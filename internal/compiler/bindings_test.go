package compiler

import (
	"errors"
	"testing"
)

func TestResolveBindings_Defaults(t *testing.T) {
	b, err := ResolveBindings(UnsetPort, UnsetPort)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.HTTPPort != 1080 || b.SocksPort != 1090 {
		t.Fatalf("ports=%d/%d, want 1080/1090", b.HTTPPort, b.SocksPort)
	}
}

func TestResolveBindings_Overrides(t *testing.T) {
	b, err := ResolveBindings(2080, 2090)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.HTTPPort != 2080 || b.SocksPort != 2090 {
		t.Fatalf("ports=%d/%d, want 2080/2090", b.HTTPPort, b.SocksPort)
	}
}

func TestResolveBindings_PartialOverride(t *testing.T) {
	b, err := ResolveBindings(8080, UnsetPort)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.HTTPPort != 8080 || b.SocksPort != 1090 {
		t.Fatalf("ports=%d/%d, want 8080/1090", b.HTTPPort, b.SocksPort)
	}
}

func TestResolveBindings_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		http  int
		socks int
	}{
		{"http zero", 0, 1090},
		{"http negative", -2, 1090},
		{"http too large", 65536, 1090},
		{"socks zero", 1080, 0},
		{"socks negative", 1080, -5},
		{"socks too large", 1080, 70000},
		{"equal ports", 1090, 1090},
		{"equal via default", 1090, UnsetPort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveBindings(tc.http, tc.socks)
			var pe *InvalidPortError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *InvalidPortError, got %T: %v", err, err)
			}
		})
	}
}
