package utils

import (
	"testing"
	"time"
)

func TestFormatNomorSurat(t *testing.T) {
	at := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)

	got := FormatNomorSurat(3, "Kepegawaian", at)
	want := "003/KEPEGAWAIAN/VIII/2026"
	if got != want {
		t.Fatalf("FormatNomorSurat = %q, want %q", got, want)
	}
}

func TestCategoryCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Surat Keputusan", "SURAT-KEPUTUSAN"},
		{"  cuti  tahunan ", "CUTI-TAHUNAN"},
		{"", "UMUM"},
	}

	for _, tc := range cases {
		if got := CategoryCode(tc.in); got != tc.want {
			t.Errorf("CategoryCode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNomorPatternNormalizesSpelling(t *testing.T) {
	// Spellings that normalize to one code share one sequence; their count
	// patterns must be identical so numbers never collide.
	a := NomorPattern("Surat Keputusan", 2026)
	b := NomorPattern("surat  keputusan", 2026)
	if a != b {
		t.Fatalf("patterns differ: %q vs %q", a, b)
	}
	if a != "%/SURAT-KEPUTUSAN/%/2026" {
		t.Fatalf("pattern = %q", a)
	}

	// The pattern must match what FormatNomorSurat actually produces.
	at := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	nomor := FormatNomorSurat(1, "surat  keputusan", at)
	if nomor != "001/SURAT-KEPUTUSAN/VIII/2026" {
		t.Fatalf("nomor = %q", nomor)
	}

	if NomorPattern("Surat Keputusan", 2025) == a {
		t.Fatal("sequences must reset per year")
	}
}

func TestRomanMonthBounds(t *testing.T) {
	if got := RomanMonth(time.January); got != "I" {
		t.Errorf("January = %q, want I", got)
	}
	if got := RomanMonth(time.December); got != "XII" {
		t.Errorf("December = %q, want XII", got)
	}
}

func TestGenerateTempPasswordLength(t *testing.T) {
	pw, err := GenerateTempPassword(12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pw) != 12 {
		t.Fatalf("len = %d, want 12", len(pw))
	}

	short, err := GenerateTempPassword(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(short) < 8 {
		t.Fatalf("short request must be padded to minimum, got len %d", len(short))
	}
}
