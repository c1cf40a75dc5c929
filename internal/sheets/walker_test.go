package sheets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// writeSheetFile creates an empty placeholder at the curated-sheet path
// for SYMBOL under batch. Walk only stats the file, so content is irrelevant.
func writeSheetFile(t *testing.T, root, batch, symbol string) string {
	t.Helper()
	dir := filepath.Join(root, batch, symbol)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, symbol+"_curated.xlsx")
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWalk(t *testing.T) {
	root := t.TempDir()

	mapt := writeSheetFile(t, root, "enrichment-2019-01", "MAPT")
	gsk3b := writeSheetFile(t, root, "enrichment-2019-02", "GSK3B")

	// Distractors: non-batch dir, plain file, subdir without a curated sheet,
	// and a curated sheet named after the wrong symbol.
	writeSheetFile(t, root, "archive", "APP")
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "enrichment-2019-01", "EMPTY"), 0o755); err != nil {
		t.Fatal(err)
	}
	wrong := filepath.Join(root, "enrichment-2019-02", "PSEN1")
	if err := os.MkdirAll(wrong, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(wrong, "OTHER_curated.xlsx"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Walk(root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	want := []Entry{
		{Symbol: "MAPT", Path: mapt},
		{Symbol: "GSK3B", Path: gsk3b},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk mismatch (-want +got):\n%s", diff)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	if _, err := Walk(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Walk should fail for a missing rounds directory")
	}
}

func TestWalk_EmptyRoot(t *testing.T) {
	got, err := Walk(t.TempDir())
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Walk = %v, want no entries", got)
	}
}
