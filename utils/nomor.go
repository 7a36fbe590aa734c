package utils

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

var romanMonths = [...]string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}

// RomanMonth returns the Indonesian letter-number month numeral (I-XII).
func RomanMonth(m time.Month) string {
	return romanMonths[int(m)-1]
}

// CategoryCode normalizes a free-form category into the short code used in
// letter numbers, e.g. "Surat Keputusan" -> "SURAT-KEPUTUSAN".
func CategoryCode(kategori string) string {
	code := strings.ToUpper(strings.TrimSpace(kategori))
	code = strings.Join(strings.Fields(code), "-")
	if code == "" {
		code = "UMUM"
	}
	if len(code) > 20 {
		code = code[:20]
	}
	return code
}

// FormatNomorSurat builds the display form of a letter number:
// 003/KEPEGAWAIAN/VIII/2026.
func FormatNomorSurat(seq int, kategori string, at time.Time) string {
	return fmt.Sprintf("%03d/%s/%s/%d", seq, CategoryCode(kategori), RomanMonth(at.Month()), at.Year())
}

// NomorPattern matches every number issued under one normalized category
// code and year. Counting by this pattern keeps the sequence aligned with
// the code that ends up in the number itself: category spellings that
// normalize to the same code ("Surat Keputusan", "surat  keputusan") share
// one sequence instead of colliding on the unique index.
func NomorPattern(kategori string, year int) string {
	return fmt.Sprintf("%%/%s/%%/%d", CategoryCode(kategori), year)
}

// GenerateNomorSurat produces the next sequential letter number for a
// category. Sequences are independent per category code and reset yearly.
// The SELECT runs FOR UPDATE so concurrent composers cannot take the same
// number; callers must pass the enclosing transaction.
func GenerateNomorSurat(tx *gorm.DB, kategori string, at time.Time) (string, error) {
	var lastSeq int

	err := tx.Raw(`
		SELECT COUNT(*)
		FROM surat
		WHERE nomor_surat LIKE ?
		FOR UPDATE
	`, NomorPattern(kategori, at.Year())).Scan(&lastSeq).Error

	if err != nil {
		return "", err
	}

	return FormatNomorSurat(lastSeq+1, kategori, at), nil
}
