package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"genzjobs/internal/domain"
	"genzjobs/internal/redis"
	"genzjobs/internal/storage"
	"genzjobs/internal/worker"
)

// ScrapeRunner is the slice of the scrape worker the API drives.
type ScrapeRunner interface {
	RunAll(ctx context.Context) error
	RunOne(ctx context.Context, source domain.Source) error
	Status() worker.Status
	Sources() []domain.Source
}

type Server struct {
	echo   *echo.Echo
	repo   storage.JobRepository
	redis  *redis.Client
	runner ScrapeRunner
	apiKey string
	sse    *SSEBroker
}

type SSEBroker struct {
	clients map[chan string]bool
	mu      sync.RWMutex
}

func NewSSEBroker() *SSEBroker {
	return &SSEBroker{clients: make(map[chan string]bool)}
}

func (b *SSEBroker) Subscribe() chan string {
	ch := make(chan string, 10)
	b.mu.Lock()
	b.clients[ch] = true
	b.mu.Unlock()
	return ch
}

func (b *SSEBroker) Unsubscribe(ch chan string) {
	b.mu.Lock()
	delete(b.clients, ch)
	close(ch)
	b.mu.Unlock()
}

func (b *SSEBroker) Broadcast(msg string) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.clients {
		select {
		case ch <- msg:
		default:
		}
	}
}

func NewServer(repo storage.JobRepository, rdb *redis.Client, runner ScrapeRunner, apiKey string) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:   e,
		repo:   repo,
		redis:  rdb,
		runner: runner,
		apiKey: apiKey,
		sse:    NewSSEBroker(),
	}

	if apiKey != "" {
		e.Use(s.requireAPIKey)
	}

	s.routes()

	return s
}

func (s *Server) routes() {
	s.echo.GET("/health", s.health)
	s.echo.GET("/api/status", s.status)
	s.echo.GET("/api/jobs", s.getJobs)
	s.echo.GET("/api/jobs/:id", s.getJob)
	s.echo.GET("/api/stats", s.stats)
	s.echo.GET("/api/results", s.results)
	s.echo.GET("/api/events", s.events)

	// Source management
	s.echo.GET("/api/sources", s.getSources)
	s.echo.POST("/api/sources/:name", s.enableSource)
	s.echo.DELETE("/api/sources/:name", s.disableSource)

	// Manual triggers
	s.echo.POST("/api/scrape", s.scrapeAll)
	s.echo.POST("/api/scrape/:source", s.scrapeOne)
	s.echo.POST("/api/cleanup", s.cleanup)
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

func (s *Server) Broadcast(data []byte) {
	s.sse.Broadcast(string(data))
}

func (s *Server) requireAPIKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Path() == "/health" {
			return next(c)
		}
		if c.Request().Header.Get("X-API-Key") != s.apiKey {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid api key"})
		}
		return next(c)
	}
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(c echo.Context) error {
	st := s.runner.Status()
	total, err := s.repo.Count(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"running":    st.Running,
		"last_run":   st.LastRun,
		"next_run":   st.NextRun,
		"total_jobs": total,
		"sources":    s.runner.Sources(),
	})
}

func (s *Server) getJobs(c echo.Context) error {
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)

	var (
		jobs []domain.Job
		err  error
	)
	if audience := c.QueryParam("audience"); audience != "" {
		jobs, err = s.repo.FindByAudience(c.Request().Context(), audience, limit, offset)
	} else {
		jobs, err = s.repo.FindAll(c.Request().Context(), limit, offset)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, jobs)
}

func (s *Server) getJob(c echo.Context) error {
	job, err := s.repo.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if job == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, job)
}

func (s *Server) stats(c echo.Context) error {
	stats, err := s.repo.Stats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, stats)
}

func (s *Server) results(c echo.Context) error {
	return c.JSON(http.StatusOK, s.runner.Status().LastResults)
}

func (s *Server) getSources(c echo.Context) error {
	disabled, err := s.redis.DisabledSources(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	off := make(map[string]bool, len(disabled))
	for _, d := range disabled {
		off[d] = true
	}

	type sourceView struct {
		Name    string `json:"name"`
		Enabled bool   `json:"enabled"`
	}

	sources := s.runner.Sources()
	views := make([]sourceView, len(sources))
	for i, src := range sources {
		views[i] = sourceView{Name: string(src), Enabled: !off[string(src)]}
	}
	return c.JSON(http.StatusOK, views)
}

func (s *Server) enableSource(c echo.Context) error {
	name := c.Param("name")
	if !s.knownSource(name) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown source"})
	}
	if err := s.redis.EnableSource(c.Request().Context(), name); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"source": name, "status": "enabled"})
}

func (s *Server) disableSource(c echo.Context) error {
	name := c.Param("name")
	if !s.knownSource(name) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown source"})
	}
	if err := s.redis.DisableSource(c.Request().Context(), name); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"source": name, "status": "disabled"})
}

func (s *Server) scrapeAll(c echo.Context) error {
	if s.runner.Status().Running {
		return c.JSON(http.StatusConflict, map[string]string{"error": "scrape already running"})
	}
	go func() {
		if err := s.runner.RunAll(context.Background()); err != nil && !errors.Is(err, worker.ErrAlreadyRunning) {
			c.Logger().Errorf("scrape: %v", err)
		}
	}()
	return c.JSON(http.StatusAccepted, map[string]string{"status": "started"})
}

func (s *Server) scrapeOne(c echo.Context) error {
	source := domain.Source(c.Param("source"))
	if !s.knownSource(string(source)) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown source"})
	}
	if s.runner.Status().Running {
		return c.JSON(http.StatusConflict, map[string]string{"error": "scrape already running"})
	}
	go func() {
		if err := s.runner.RunOne(context.Background(), source); err != nil && !errors.Is(err, worker.ErrAlreadyRunning) {
			c.Logger().Errorf("scrape %s: %v", source, err)
		}
	}()
	return c.JSON(http.StatusAccepted, map[string]string{"status": "started", "source": string(source)})
}

func (s *Server) cleanup(c echo.Context) error {
	days := intQuery(c, "days", 30)
	if days < 1 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "days must be positive"})
	}

	deleted, err := s.repo.DeleteOlderThan(c.Request().Context(), days)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int{"deleted": deleted})
}

func (s *Server) events(c echo.Context) error {
	c.Response().Header().Set("Content-Type", "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().Header().Set("X-Accel-Buffering", "no")

	ch := s.sse.Subscribe()
	defer s.sse.Unsubscribe(ch)

	fmt.Fprintf(c.Response(), ": ping\n\n")
	c.Response().Flush()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case msg := <-ch:
			fmt.Fprintf(c.Response(), "event: job\n")
			for _, line := range strings.Split(msg, "\n") {
				fmt.Fprintf(c.Response(), "data: %s\n", line)
			}
			fmt.Fprintf(c.Response(), "\n")
			c.Response().Flush()
		}
	}
}

func (s *Server) knownSource(name string) bool {
	for _, src := range s.runner.Sources() {
		if string(src) == name {
			return true
		}
	}
	return false
}

func intQuery(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
