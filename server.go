package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/adi-site/internal/config"
	"github.com/Zachkp/adi-site/internal/content"
	"github.com/Zachkp/adi-site/internal/radial"
	"github.com/Zachkp/adi-site/internal/session"
	"github.com/Zachkp/adi-site/internal/view"
)

type site struct {
	provider content.Provider
	engine   *radial.Engine
}

func newRouter(cfg config.Config, provider content.Provider, sessions *session.Store) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(cfg.Templates)

	r.Static("/images", cfg.ImagesDir)
	r.Static("/static", cfg.StaticDir)

	s := &site{provider: provider, engine: radial.NewEngine()}

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	setupAPIRoutes(r, provider)

	pages := r.Group("/")
	pages.Use(sessionMiddleware(sessions))
	s.setupSiteRoutes(pages)

	return r
}

func (s *site) setupSiteRoutes(r *gin.RouterGroup) {
	// Full page with the menu and the mounted section
	r.GET("/", func(c *gin.Context) {
		st := currentSession(c)
		c.HTML(http.StatusOK, "index.html", gin.H{
			"menu":    s.menu(st, false),
			"section": newSectionView(st.Composer),
		})
	})

	// Menu entry or the return control. Returns the new section shell and the
	// menu as an out-of-band swap.
	r.POST("/navigate/:section", func(c *gin.Context) {
		sec, err := view.ParseSection(c.Param("section"))
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}

		st := currentSession(c)
		if change, ok := st.Composer.Navigate(sec); ok {
			log.Printf("Session %s: %s -> %s", st.ID[:8], change.From, change.To)
		}
		st.Menu.Close()

		c.HTML(http.StatusOK, "navigate.html", gin.H{
			"menu":    s.menu(st, true),
			"section": newSectionView(st.Composer),
		})
	})

	// Section body, requested by the shell once mounted
	r.GET("/section/:section/content", func(c *gin.Context) {
		sec, err := view.ParseSection(c.Param("section"))
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		st := currentSession(c)
		if st.Composer.Active() != sec {
			// Section already unmounted
			c.Status(http.StatusNoContent)
			return
		}

		switch sec {
		case view.Projects:
			s.renderProjects(c, st)
		case view.Team:
			s.renderTeam(c, st)
		case view.About:
			s.renderAbout(c, st)
		case view.Home:
			c.HTML(http.StatusOK, "home.html", newHomeView())
		}
	})

	projects := r.Group("/projects")
	projects.Use(requireSection(view.Projects))
	projects.POST("/select/:id", func(c *gin.Context) {
		st := currentSession(c)
		st.Projects().Selection.SelectTopLevel(c.Param("id"))
		s.renderProjects(c, st)
	})
	projects.POST("/stage/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		st := currentSession(c)
		st.Projects().Selection.SelectChild(id)
		s.renderProjects(c, st)
	})
	projects.POST("/filter", func(c *gin.Context) {
		st := currentSession(c)
		st.Projects().Selection.SetFilter(c.PostForm("tag"))
		s.renderProjects(c, st)
	})

	about := r.Group("/about")
	about.Use(requireSection(view.About))
	about.POST("/select/:id", func(c *gin.Context) {
		st := currentSession(c)
		st.About().Selection.SelectTopLevel(c.Param("id"))
		s.renderAbout(c, st)
	})
	about.POST("/item/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		st := currentSession(c)
		st.About().Selection.SelectChild(id)
		s.renderAbout(c, st)
	})

	// Viewport resize reported by the browser
	r.POST("/viewport", func(c *gin.Context) {
		width, err := strconv.Atoi(c.PostForm("width"))
		if err != nil || width <= 0 {
			c.Status(http.StatusBadRequest)
			return
		}
		st := currentSession(c)
		before := st.Menu.Mode()
		st.Viewport.Resize(width)
		if st.Menu.Mode() == before {
			c.Status(http.StatusNoContent)
			return
		}
		c.HTML(http.StatusOK, "menu.html", s.menu(st, false))
	})

	// Mobile menu toggle
	r.POST("/menu/toggle", func(c *gin.Context) {
		st := currentSession(c)
		st.Menu.Toggle()
		c.HTML(http.StatusOK, "menu.html", s.menu(st, false))
	})
}

// requireSection drops drill-down requests for a section that is no longer
// mounted.
func requireSection(sec view.Section) gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentSession(c).Composer.Active() != sec {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *site) menu(st *session.State, oob bool) menuView {
	m := s.engine.Compose(st.Viewport.Width(), string(st.Composer.Active()), st.Menu.Open())
	return newMenuView(m, oob)
}

// load runs fetch through the loader, bound to the section's mount and the
// request, unless the loader already holds data.
func load[T any](c *gin.Context, st *session.State, l *view.Loader[T], fetch func(ctx context.Context) (T, error)) (T, error) {
	if v, ok := l.Get(); ok {
		return v, nil
	}
	ctx, done := view.Scope(st.Composer.MountContext(), c.Request.Context())
	defer done()
	return l.Load(ctx, fetch)
}

// handleLoadError renders the outcome of a failed load and reports whether
// there was one.
func handleLoadError(c *gin.Context, sec view.Section, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, view.ErrDiscarded) {
		c.Status(http.StatusNoContent)
		return true
	}
	log.Printf("Error loading %s: %v", sec, err)
	c.HTML(http.StatusOK, "unavailable.html", unavailableView{
		Section: string(sec),
		Message: UnavailableMessage,
	})
	return true
}

func (s *site) renderProjects(c *gin.Context, st *session.State) {
	pv := st.Projects()
	projects, err := load(c, st, &pv.Data, s.provider.Projects)
	if handleLoadError(c, view.Projects, err) {
		return
	}
	c.HTML(http.StatusOK, "projects.html", newProjectsView(projects, pv.Selection.State()))
}

func (s *site) renderAbout(c *gin.Context, st *session.State) {
	av := st.About()
	sections, err := load(c, st, &av.Data, s.provider.CompanySections)
	if handleLoadError(c, view.About, err) {
		return
	}
	c.HTML(http.StatusOK, "about.html", newAboutView(sections, av.Selection.State()))
}

func (s *site) renderTeam(c *gin.Context, st *session.State) {
	tv := st.Team()
	members, err := load(c, st, &tv.Data, s.provider.Team)
	if handleLoadError(c, view.Team, err) {
		return
	}
	c.HTML(http.StatusOK, "team.html", teamView{Intro: TeamIntro, Members: members})
}

// setupAPIRoutes exposes the content provider as JSON.
func setupAPIRoutes(r *gin.Engine, provider content.Provider) {
	api := r.Group("/api")

	api.GET("/projects", func(c *gin.Context) {
		v, err := provider.Projects(c.Request.Context())
		respondJSON(c, v, err)
	})
	api.GET("/team", func(c *gin.Context) {
		v, err := provider.Team(c.Request.Context())
		respondJSON(c, v, err)
	})
	api.GET("/company", func(c *gin.Context) {
		v, err := provider.CompanySections(c.Request.Context())
		respondJSON(c, v, err)
	})
	api.GET("/process", func(c *gin.Context) {
		v, err := provider.Process(c.Request.Context())
		respondJSON(c, v, err)
	})
	api.GET("/repositories", func(c *gin.Context) {
		v, err := provider.Repositories(c.Request.Context())
		respondJSON(c, v, err)
	})
}

func respondJSON(c *gin.Context, v any, err error) {
	if err != nil {
		log.Printf("API %s: %v", c.Request.URL.Path, err)
		status := http.StatusInternalServerError
		if errors.Is(err, content.ErrUnavailable) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, v)
}
