package utils

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID("build")
	if !strings.HasPrefix(id, "build_") {
		t.Errorf("GenerateID() = %s, want build_ prefix", id)
	}

	// IDs must be unique under rapid repeated calls.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		next := GenerateBuildID()
		if seen[next] {
			t.Fatalf("duplicate id %s", next)
		}
		seen[next] = true
	}
}

func TestGeneratePrefixes(t *testing.T) {
	tests := []struct {
		id     string
		prefix string
	}{
		{GenerateProfileID(), "user_"},
		{GenerateBuildID(), "build_"},
		{GenerateTierListID(), "tierlist_"},
		{GenerateMessageID(), "msg_"},
		{GenerateNotificationID(), "notif_"},
	}
	for _, tt := range tests {
		if !strings.HasPrefix(tt.id, tt.prefix) {
			t.Errorf("id %s missing prefix %s", tt.id, tt.prefix)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{"line\nbreak", "line\nbreak"},
		{"null\x00byte", "nullbyte"},
		{"bell\x07char", "bellchar"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeString(tt.in); got != tt.want {
			t.Errorf("SanitizeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("TruncateString(short, 10) = %q", got)
	}
	if got := TruncateString("a longer string", 8); got != "a lon..." {
		t.Errorf("TruncateString() = %q, want a lon...", got)
	}
	if got := TruncateString("abcdef", 2); got != "ab" {
		t.Errorf("TruncateString() = %q, want ab", got)
	}
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		s, substr string
		want      bool
	}{
		{"Gloo Frontline", "gloo", true},
		{"gloo", "GLOO", true},
		{"Ling", "gloo", false},
		{"anything", "", true},
	}
	for _, tt := range tests {
		if got := ContainsFold(tt.s, tt.substr); got != tt.want {
			t.Errorf("ContainsFold(%q, %q) = %v, want %v", tt.s, tt.substr, got, tt.want)
		}
	}
}

func TestNormalizeUsername(t *testing.T) {
	if got := NormalizeUsername("  MetaSlayer99  "); got != "MetaSlayer99" {
		t.Errorf("NormalizeUsername() = %q", got)
	}
}
