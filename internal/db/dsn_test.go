package db

import "testing"

func TestNormalizeDSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"postgres url untouched", "postgres://u:p@localhost/inv", "postgres://u:p@localhost/inv"},
		{"sqlite url untouched", "sqlite://inventory.db", "sqlite://inventory.db"},
		{"bare path untouched", "inventory.db", "inventory.db"},
		{"quotes and spaces trimmed", `  "sqlite://inventory.db"  `, "sqlite://inventory.db"},
		{"kv gets sslmode default", "host=localhost user=inv dbname=inv", "host=localhost user=inv dbname=inv sslmode=disable"},
		{"kv keeps explicit sslmode", "host=localhost sslmode=require", "host=localhost sslmode=require"},
		{"kv whitespace collapsed", "host=localhost   user=inv  sslmode=disable", "host=localhost user=inv sslmode=disable"},
		{"empty stays empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeDSN(tc.in); got != tc.want {
				t.Fatalf("NormalizeDSN(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsSQLite(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"sqlite://inventory.db", true},
		{"file:test?mode=memory", true},
		{"inventory.db", true},
		{"postgres://u:p@localhost/inv", false},
		{"postgresql://u:p@localhost/inv", false},
		{"host=localhost user=inv", false},
	}
	for _, tc := range tests {
		if got := IsSQLite(tc.in); got != tc.want {
			t.Errorf("IsSQLite(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
