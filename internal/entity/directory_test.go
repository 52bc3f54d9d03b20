package entity

import (
	"reflect"
	"testing"
)

func TestDirectory_Address(t *testing.T) {
	dir := NewDirectory(map[string]string{"Nick": "+15550001", "Tess": "+15550002"}, nil)

	if addr, ok := dir.Address("Nick"); !ok || addr != "+15550001" {
		t.Errorf("Address(Nick) = %q, %v, want %q, true", addr, ok, "+15550001")
	}
	if _, ok := dir.Address("Bob"); ok {
		t.Error("Address(Bob) found, want missing")
	}
}

func TestDirectory_Addresses_StableOrder(t *testing.T) {
	dir := NewDirectory(map[string]string{
		"Tess": "+15550002",
		"Nick": "+15550001",
	}, nil)

	want := []string{"+15550001", "+15550002"}
	for i := 0; i < 5; i++ {
		if got := dir.Addresses(); !reflect.DeepEqual(got, want) {
			t.Fatalf("Addresses() = %v, want %v", got, want)
		}
	}
}

func TestDirectory_NameByAddress(t *testing.T) {
	dir := NewDirectory(map[string]string{"Nick": "+15550001"}, nil)

	if name, ok := dir.NameByAddress("+15550001"); !ok || name != "Nick" {
		t.Errorf("NameByAddress() = %q, %v, want %q, true", name, ok, "Nick")
	}
	if _, ok := dir.NameByAddress("+19990000"); ok {
		t.Error("NameByAddress() resolved unknown address, want miss")
	}
}

func TestDirectory_ResolveColor(t *testing.T) {
	dir := NewDirectory(
		map[string]string{"Nick": "+15550001"},
		map[string]string{"red": "Tess"},
	)
	roster := &Snapshot{Players: []Player{{Color: "red", Name: "Nick"}}}

	tests := []struct {
		name     string
		color    string
		snapshot *Snapshot
		want     string
	}{
		{"roster wins over static table", "red", roster, "Nick"},
		{"static table fallback", "red", &Snapshot{}, "Tess"},
		{"static table fallback on nil snapshot", "red", nil, "Tess"},
		{"unknown color", "purple", roster, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dir.ResolveColor(tt.color, tt.snapshot); got != tt.want {
				t.Errorf("ResolveColor(%q) = %q, want %q", tt.color, got, tt.want)
			}
		})
	}
}
