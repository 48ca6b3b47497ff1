package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/portfolio"
)

// index renders the page shell. The gallery starts in its loading state and
// pulls the projects fragment once the browser has it.
func (s *Server) index(c *gin.Context) {
	doc := portfolio.SectionsDocument()
	view := portfolio.NewView(s.opts.Source, portfolio.WithDocument(doc))

	if id := c.Query("section"); id != "" {
		if section, err := portfolio.ParseSection(id); err == nil {
			view.SelectSection(section)
		}
	}

	c.HTML(http.StatusOK, portfolio.TemplatePage, s.page(view.State(), doc.ScrollTarget()))
}

// projectsFragment mounts a view for this request, waits for its single fetch
// and renders the gallery. The view is torn down when the request ends.
func (s *Server) projectsFragment(c *gin.Context) {
	ctx := c.Request.Context()

	view := portfolio.NewView(s.opts.Source,
		portfolio.WithLogger(s.logger.With("request_id", c.GetString(requestIDKey))),
	)
	view.Mount(ctx)
	defer view.Unmount()

	err := view.Wait(ctx)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		s.logger.Debug("client left before projects loaded", "view_id", view.ID(), "error", err)
		c.Abort()
		return
	}

	c.HTML(http.StatusOK, portfolio.TemplateProjects, s.page(view.State(), ""))
}

// navFragment re-renders the nav bar with the selected section highlighted
// and tells the browser to scroll to it.
func (s *Server) navFragment(c *gin.Context) {
	section, err := portfolio.ParseSection(c.Param("section"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	doc := portfolio.SectionsDocument()
	view := portfolio.NewView(s.opts.Source, portfolio.WithDocument(doc))
	view.SelectSection(section)

	c.HTML(http.StatusOK, portfolio.TemplateNav, s.page(view.State(), doc.ScrollTarget()))
}
