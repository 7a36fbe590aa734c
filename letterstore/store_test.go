package letterstore

import (
	"testing"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
)

func sampleCollections() Collections {
	return Collections{
		Inbox: []models.Letter{
			{NomorSurat: "001/KEPEGAWAIAN/VIII/2026", Perihal: "Permohonan Cuti Tahunan", Penerima: "Budi Santoso", Kategori: "Cuti"},
			{NomorSurat: "002/KEUANGAN/VIII/2026", Perihal: "Laporan Anggaran", Penerima: "Siti Aminah", Kategori: "Keuangan"},
		},
		Outbox: []models.Letter{
			{NomorSurat: "003/UMUM/VIII/2026", Perihal: "Undangan Rapat", Penerima: "Budi Santoso", Kategori: "Umum"},
		},
		Archive: []models.Letter{
			{NomorSurat: "004/CUTI/VII/2026", Perihal: "Cuti Melahirkan", Penerima: "Dewi Lestari", Kategori: "Cuti"},
		},
	}
}

func TestFilterIdentity(t *testing.T) {
	c := sampleCollections()

	got := c.Filter("", CategoryAll)
	if len(got.Inbox) != 2 || len(got.Outbox) != 1 || len(got.Archive) != 1 {
		t.Fatalf("identity filter must return collections unchanged, got %d/%d/%d",
			len(got.Inbox), len(got.Outbox), len(got.Archive))
	}

	got = c.Filter("   ", "")
	if len(got.Inbox) != 2 {
		t.Fatalf("blank search and empty category must be identity, got %d inbox", len(got.Inbox))
	}
}

func TestFilterSearchFields(t *testing.T) {
	c := sampleCollections()

	cases := []struct {
		name   string
		search string
		want   int // matching inbox letters
	}{
		{"subject substring case-insensitive", "cuti tahunan", 1},
		{"letter number substring", "002/KEU", 1},
		{"recipient name", "budi", 1},
		{"no match", "tidak ada", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Filter(tc.search, CategoryAll)
			if len(got.Inbox) != tc.want {
				t.Fatalf("search %q: got %d inbox letters, want %d", tc.search, len(got.Inbox), tc.want)
			}
		})
	}
}

func TestFilterCategoryExact(t *testing.T) {
	c := sampleCollections()

	got := c.Filter("", "Cuti")
	if len(got.Inbox) != 1 || len(got.Archive) != 1 || len(got.Outbox) != 0 {
		t.Fatalf("category filter wrong: %d/%d/%d", len(got.Inbox), len(got.Outbox), len(got.Archive))
	}

	// Category must be an exact match, not a substring.
	got = c.Filter("", "Cut")
	if len(got.Inbox) != 0 {
		t.Fatalf("partial category must not match, got %d", len(got.Inbox))
	}
}

func TestFilterSearchAndCategoryCombined(t *testing.T) {
	c := sampleCollections()

	got := c.Filter("budi", "Cuti")
	if len(got.Inbox) != 1 {
		t.Fatalf("combined filter: got %d inbox, want 1", len(got.Inbox))
	}
	if len(got.Outbox) != 0 {
		t.Fatalf("outbox letter has category Umum, must be excluded, got %d", len(got.Outbox))
	}
}

func TestCountByPriorityTotalsIgnoreFilter(t *testing.T) {
	pending := []models.Letter{
		{Prioritas: models.PriorityHigh},
		{Prioritas: models.PriorityHigh},
		{Prioritas: models.PriorityMedium},
		{Prioritas: models.PriorityLow},
	}

	counts := CountByPriority(pending)
	if counts[models.PriorityHigh] != 2 || counts[models.PriorityMedium] != 1 || counts[models.PriorityLow] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}

	// Applying a filter must not change what the caller counts over.
	var f PriorityFilter
	f.Toggle(models.PriorityHigh)
	visible := f.Apply(pending)
	if len(visible) != 2 {
		t.Fatalf("filtered view: got %d, want 2", len(visible))
	}
	counts = CountByPriority(pending)
	if counts[models.PriorityLow] != 1 {
		t.Fatalf("counts shrank after filtering: %v", counts)
	}
}

func TestPendingViewCountsStayTotal(t *testing.T) {
	pending := []models.Letter{
		{Perihal: "Permohonan Cuti", Kategori: "Cuti", Prioritas: models.PriorityHigh},
		{Perihal: "Laporan Anggaran", Kategori: "Keuangan", Prioritas: models.PriorityHigh},
		{Perihal: "Undangan Rapat", Kategori: "Umum", Prioritas: models.PriorityMedium},
	}

	// Search narrows the visible rows but the badge counts keep reflecting
	// the whole queue.
	visible, counts := PendingView(pending, "anggaran", CategoryAll, nil)
	if len(visible) != 1 {
		t.Fatalf("visible = %d, want 1", len(visible))
	}
	if counts[models.PriorityHigh] != 2 || counts[models.PriorityMedium] != 1 {
		t.Fatalf("counts shrank under search: %v", counts)
	}

	var f PriorityFilter
	f.Toggle(models.PriorityHigh)
	visible, counts = PendingView(pending, "", "Cuti", &f)
	if len(visible) != 1 {
		t.Fatalf("visible = %d, want 1", len(visible))
	}
	if counts[models.PriorityMedium] != 1 {
		t.Fatalf("counts shrank under category+priority: %v", counts)
	}

	// No narrowing at all: everything visible, counts identical.
	visible, counts = PendingView(pending, "", CategoryAll, nil)
	if len(visible) != 3 || counts[models.PriorityHigh] != 2 {
		t.Fatalf("identity view: visible=%d counts=%v", len(visible), counts)
	}
}

func TestPriorityFilterToggle(t *testing.T) {
	var f PriorityFilter

	f.Toggle(models.PriorityHigh)
	if f.Active() != models.PriorityHigh {
		t.Fatalf("active = %q, want high", f.Active())
	}

	// Clicking another priority switches exclusively.
	f.Toggle(models.PriorityLow)
	if f.Active() != models.PriorityLow {
		t.Fatalf("active = %q, want low", f.Active())
	}

	// Clicking the active priority clears the filter.
	f.Toggle(models.PriorityLow)
	if f.Active() != "" {
		t.Fatalf("active = %q, want cleared", f.Active())
	}

	pending := []models.Letter{{Prioritas: models.PriorityHigh}}
	if got := f.Apply(pending); len(got) != 1 {
		t.Fatalf("cleared filter must show all, got %d", len(got))
	}
}
