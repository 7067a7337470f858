package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Zachkp/adi-site/internal/content"
	"github.com/Zachkp/adi-site/internal/radial"
	"github.com/Zachkp/adi-site/internal/selection"
)

func testCatalog(t *testing.T) content.Catalog {
	t.Helper()
	cat, err := content.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	return cat
}

func TestNewMenuView(t *testing.T) {
	engine := radial.NewEngine()

	t.Run("desktop", func(t *testing.T) {
		mv := newMenuView(engine.Compose(1200, "team", false), true)
		if mv.Mobile || !mv.Return || !mv.OOB {
			t.Fatalf("unexpected flags %+v", mv)
		}
		if len(mv.Items) != len(radial.Entries) {
			t.Fatalf("expected %d items, got %d", len(radial.Entries), len(mv.Items))
		}
		for _, it := range mv.Items {
			if it.Style == "" {
				t.Errorf("%s: missing position", it.ID)
			}
			if it.Active != (it.ID == "team") {
				t.Errorf("%s: active = %v", it.ID, it.Active)
			}
		}
	})

	t.Run("mobile", func(t *testing.T) {
		mv := newMenuView(engine.Compose(320, radial.HomeID, true), false)
		if !mv.Mobile || !mv.Open || mv.Return {
			t.Fatalf("unexpected flags %+v", mv)
		}
		for _, it := range mv.Items {
			if it.Style != "" {
				t.Errorf("%s: mobile items have no position", it.ID)
			}
		}
	})
}

func TestNewProjectsView(t *testing.T) {
	projects := testCatalog(t).Projects

	t.Run("default selection", func(t *testing.T) {
		pv := newProjectsView(projects, selection.State{TopLevelID: "1", ChildID: 1, Filter: selection.AllTags})

		if pv.Tags[0].Label != AllTagsLabel || !pv.Tags[0].Active {
			t.Errorf("first tag should be the active catch-all, got %+v", pv.Tags[0])
		}
		if len(pv.Projects) != 2 {
			t.Fatalf("expected 2 projects, got %d", len(pv.Projects))
		}
		if len(pv.Projects[0].Stages) != 5 || len(pv.Projects[1].Stages) != 0 {
			t.Errorf("only the selected project lists its stages")
		}
		if got := pv.Projects[0].Stages[4].Badge; got != "1.5" {
			t.Errorf("expected badge 1.5, got %q", got)
		}
		if pv.Current == nil || pv.Current.Stage == nil {
			t.Fatal("expected a current stage")
		}
		e := pv.Current.Stage.Embeds[0]
		if !e.Frame || !strings.HasSuffix(e.Src, "/preview") {
			t.Errorf("expected a pdf preview frame, got %+v", e)
		}
	})

	t.Run("filtered out selection stays in detail", func(t *testing.T) {
		pv := newProjectsView(projects, selection.State{TopLevelID: "1", ChildID: 2, Filter: "Roblox"})
		if len(pv.Projects) != 1 || pv.Projects[0].ID != "2" {
			t.Fatalf("unexpected list %+v", pv.Projects)
		}
		if pv.Current == nil || pv.Current.Title != "Videojuego VR - Warren House" {
			t.Fatalf("unexpected detail %+v", pv.Current)
		}
		if pv.Current.Stage.Title != "Boceto" {
			t.Errorf("expected stage Boceto, got %q", pv.Current.Stage.Title)
		}
	})

	t.Run("unknown ids", func(t *testing.T) {
		pv := newProjectsView(projects, selection.State{TopLevelID: "9", ChildID: 1, Filter: selection.AllTags})
		if pv.Current != nil {
			t.Errorf("expected no detail, got %+v", pv.Current)
		}

		pv = newProjectsView(projects, selection.State{TopLevelID: "1", ChildID: 42, Filter: selection.AllTags})
		if pv.Current == nil || pv.Current.Stage != nil {
			t.Errorf("expected project detail without stage, got %+v", pv.Current)
		}
	})

	t.Run("empty", func(t *testing.T) {
		pv := newProjectsView(nil, selection.State{TopLevelID: "1", ChildID: 1, Filter: selection.AllTags})
		if len(pv.Projects) != 0 || pv.Current != nil || len(pv.Tags) != 1 {
			t.Errorf("unexpected view %+v", pv)
		}
	})
}

func TestNewAboutView(t *testing.T) {
	sections := testCatalog(t).CompanySections

	av := newAboutView(sections, selection.State{TopLevelID: "2", ChildID: 3})
	if av.Section == nil || av.Section.Title != "Meta" {
		t.Fatalf("unexpected section %+v", av.Section)
	}
	if av.Item == nil || av.Item.Title != "Equipo de Clase Mundial" {
		t.Fatalf("unexpected item %+v", av.Item)
	}
	if len(av.Sections[1].Items) != 3 || len(av.Sections[0].Items) != 0 {
		t.Errorf("only the selected section lists its items")
	}
	if got := av.Sections[1].Items[2].Badge; got != "2.3" {
		t.Errorf("expected badge 2.3, got %q", got)
	}

	av = newAboutView(sections, selection.State{TopLevelID: "3", ChildID: 9})
	if av.Section == nil || av.Item != nil {
		t.Errorf("expected section without item")
	}
}

func TestPrintLayout(t *testing.T) {
	engine := radial.NewEngine()

	var buf bytes.Buffer
	printLayout(&buf, engine.Compose(1024, radial.HomeID, false))
	out := buf.String()
	for _, want := range []string{"mode: desktop", "center: hub", "home", "about", "180.0°"} {
		if !strings.Contains(out, want) {
			t.Errorf("desktop layout missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	printLayout(&buf, engine.Compose(400, "projects", false))
	out = buf.String()
	for _, want := range []string{"mode: mobile", "center: return", "Proyectos"} {
		if !strings.Contains(out, want) {
			t.Errorf("mobile layout missing %q:\n%s", want, out)
		}
	}
}

func TestLoadCatalog(t *testing.T) {
	cat, err := loadCatalog("")
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if len(cat.Team) != 4 {
		t.Errorf("expected 4 team members, got %d", len(cat.Team))
	}

	if _, err := loadCatalog("does-not-exist.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
