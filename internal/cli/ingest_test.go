package cli

import "testing"

func TestDedupPaths(t *testing.T) {
	paths := dedupPaths([]string{
		"reports/shift-01.docx",
		"reports/shift-02.docx",
		"reports/shift-01.docx",
		"reports/shift-03.docx",
		"reports/shift-02.docx",
	})

	want := []string{"reports/shift-01.docx", "reports/shift-02.docx", "reports/shift-03.docx"}
	if len(paths) != len(want) {
		t.Fatalf("expected %d paths, got %d: %v", len(want), len(paths), paths)
	}
	for i, w := range want {
		if paths[i] != w {
			t.Errorf("path %d = %q, want %q", i, paths[i], w)
		}
	}
}

func TestDedupPaths_Empty(t *testing.T) {
	if got := dedupPaths(nil); len(got) != 0 {
		t.Errorf("expected no paths, got %v", got)
	}
}
