package main

import (
	"fmt"
	"html/template"
	"log"
	"strconv"

	"github.com/Zachkp/adi-site/internal/content"
	"github.com/Zachkp/adi-site/internal/media"
	"github.com/Zachkp/adi-site/internal/radial"
	"github.com/Zachkp/adi-site/internal/selection"
	"github.com/Zachkp/adi-site/internal/view"
)

// View models handed to the templates. Templates only read these.

type menuItem struct {
	ID     string
	Label  string
	Icon   string
	Active bool
	Style  template.CSS
}

type menuView struct {
	Mobile bool
	Open   bool
	Return bool
	OOB    bool
	Items  []menuItem
}

func newMenuView(m radial.Menu, oob bool) menuView {
	mv := menuView{
		Mobile: m.Mode == radial.Mobile,
		Open:   m.Open,
		Return: m.Hub == radial.HubReturn,
		OOB:    oob,
	}
	if mv.Mobile {
		for _, e := range m.Entries {
			mv.Items = append(mv.Items, menuItem{ID: e.ID, Label: e.Label, Icon: e.Icon, Active: e.ID == m.Active})
		}
		return mv
	}
	for _, p := range m.Placements {
		mv.Items = append(mv.Items, menuItem{
			ID:     p.ID,
			Label:  p.Label,
			Icon:   p.Icon,
			Active: p.ID == m.Active,
			Style:  template.CSS(fmt.Sprintf("left: %.2fpx; top: calc(50%% + %.2fpx);", p.X, p.Y)),
		})
	}
	return mv
}

type sectionView struct {
	ID         string
	Transition uint64
	Home       homeView
}

type homeView struct {
	Logo     string
	Title    []string
	Accent   string
	Subtitle []string
}

func newHomeView() homeView {
	return homeView{
		Logo:     HomeLogo,
		Title:    HomeTitle,
		Accent:   HomeAccent,
		Subtitle: HomeSubtitle,
	}
}

func newSectionView(c *view.Composer) sectionView {
	sv := sectionView{ID: string(c.Active()), Home: newHomeView()}
	if t, ok := c.Transition(); ok {
		sv.Transition = t.Seq
	}
	return sv
}

type tagView struct {
	Value  string
	Label  string
	Active bool
}

type stageItem struct {
	ID     int
	Badge  string
	Title  string
	Active bool
}

type projectItem struct {
	ID       string
	Title    string
	Selected bool
	Stages   []stageItem
}

type stageDetail struct {
	Title   string
	Summary string
	Embeds  []media.Embed
	Links   []content.Link
}

type projectDetail struct {
	Title       string
	Description string
	Tags        []string
	Demo        string
	Repo        string
	Stage       *stageDetail
}

type projectsView struct {
	Intro    string
	Tags     []tagView
	Projects []projectItem
	Current  *projectDetail
}

func newProjectsView(projects []content.Project, st selection.State) projectsView {
	pv := projectsView{Intro: ProjectsIntro}
	for _, tag := range selection.Tags(projects) {
		label := tag
		if tag == selection.AllTags {
			label = AllTagsLabel
		}
		pv.Tags = append(pv.Tags, tagView{Value: tag, Label: label, Active: tag == st.Filter})
	}

	for _, p := range selection.Filter(projects, st.Filter) {
		item := projectItem{ID: p.ID, Title: p.Title, Selected: p.ID == st.TopLevelID}
		if item.Selected {
			for i, s := range p.Stages {
				item.Stages = append(item.Stages, stageItem{
					ID:     s.ID,
					Badge:  p.ID + "." + strconv.Itoa(i+1),
					Title:  s.Title,
					Active: s.ID == st.ChildID,
				})
			}
		}
		pv.Projects = append(pv.Projects, item)
	}

	// The selected project may be filtered out of the list and still shown here.
	p, ok := selection.Find(projects, st.TopLevelID)
	if !ok {
		return pv
	}
	pv.Current = &projectDetail{
		Title:       p.Title,
		Description: p.Description,
		Tags:        p.Tags,
		Demo:        p.Links.Demo,
		Repo:        p.Links.Repo,
	}
	if stage, ok := p.Stage(st.ChildID); ok {
		pv.Current.Stage = newStageDetail(stage)
	}
	return pv
}

func newStageDetail(s content.ProcessStep) *stageDetail {
	d := &stageDetail{Title: s.Title, Summary: s.Summary, Links: s.Links}
	for i, m := range s.Media {
		e, err := media.Resolve(m, fmt.Sprintf("%s - recurso %d", s.Title, i+1))
		if err != nil {
			log.Printf("Media %d of stage %q: %v", i+1, s.Title, err)
		}
		d.Embeds = append(d.Embeds, e)
	}
	return d
}

type companyItemView struct {
	ID     int
	Badge  string
	Title  string
	Active bool
}

type companySectionItem struct {
	ID       string
	Title    string
	Selected bool
	Items    []companyItemView
}

type aboutView struct {
	Intro    string
	Sections []companySectionItem
	Item     *content.CompanyItem
	Section  *content.CompanySection
}

func newAboutView(sections []content.CompanySection, st selection.State) aboutView {
	av := aboutView{Intro: AboutIntro}
	for _, s := range sections {
		item := companySectionItem{ID: s.ID, Title: s.Title, Selected: s.ID == st.TopLevelID}
		if item.Selected {
			for i, it := range s.Items {
				item.Items = append(item.Items, companyItemView{
					ID:     it.ID,
					Badge:  s.ID + "." + strconv.Itoa(i+1),
					Title:  it.Title,
					Active: it.ID == st.ChildID,
				})
			}
		}
		av.Sections = append(av.Sections, item)
	}

	if s, ok := selection.Find(sections, st.TopLevelID); ok {
		av.Section = &s
		if it, ok := s.Item(st.ChildID); ok {
			av.Item = &it
		}
	}
	return av
}

type teamView struct {
	Intro   string
	Members []content.TeamMember
}

type unavailableView struct {
	Section string
	Message string
}
