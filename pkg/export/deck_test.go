package export

import (
	"strings"
	"testing"

	"bayplan/pkg/model"
)

func TestBuildPages(t *testing.T) {
	a := model.New("Garage")
	b := model.New("Cellar")

	pages, skipped := BuildPages([]*model.BayGroup{a, b}, DeckOptions{})
	if len(skipped) != 0 {
		t.Fatalf("skipped = %v, want none", skipped)
	}
	// Summary page plus one drawing page per group.
	if len(pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(pages))
	}

	summary := string(pages[0])
	if !strings.Contains(summary, "Bay Group Summary") {
		t.Error("first page should be the summary")
	}
	for _, name := range []string{"Garage", "Cellar"} {
		if !strings.Contains(summary, name) {
			t.Errorf("summary missing group %s", name)
		}
	}
	if !strings.Contains(summary, "Total") {
		t.Error("summary missing the totals row")
	}

	for i, page := range pages {
		if !strings.HasPrefix(string(page), "<svg") {
			t.Errorf("page %d is not an SVG document", i)
		}
	}
	for _, page := range pages[1:] {
		if !strings.Contains(string(page), `class="part`) {
			t.Error("drawing page carries no part geometry")
		}
	}
}

func TestBuildPagesSkipsInvalidGroups(t *testing.T) {
	good := model.New("Good")
	bad := model.New("Bad")
	bad.NumCols = 0

	pages, skipped := BuildPages([]*model.BayGroup{good, bad}, DeckOptions{})
	if len(skipped) != 1 {
		t.Fatalf("skipped = %d, want 1", len(skipped))
	}
	if !strings.Contains(skipped[0].Error(), "Bad") {
		t.Errorf("skip error should name the group: %v", skipped[0])
	}
	if len(pages) != 2 {
		t.Errorf("pages = %d, want summary plus the one valid group", len(pages))
	}
	if strings.Contains(string(pages[0]), "Bad") {
		t.Error("invalid group leaked into the summary")
	}
}

func TestSummaryPageEscapesNames(t *testing.T) {
	g := model.New("Shelf <A> & sons")
	page := string(summaryPage([]*model.BayGroup{g}))

	if strings.Contains(page, "<A>") {
		t.Error("group name must be XML-escaped")
	}
	if !strings.Contains(page, "Shelf &lt;A&gt; &amp; sons") {
		t.Error("escaped name missing from the summary")
	}
}
