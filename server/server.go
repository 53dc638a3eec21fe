// Package server serves rendered widget trees over HTTP for previewing.
package server

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/gogpu/indiepixel"
	"github.com/gogpu/indiepixel/canvas"
	"github.com/gogpu/indiepixel/encode"
	"github.com/gogpu/indiepixel/fonts"
	"github.com/gogpu/indiepixel/tree"
)

//go:embed templates
var assets embed.FS

var pages = template.Must(template.ParseFS(assets, "templates/*.html"))

// Scale is how many screen pixels the widget page shows per display pixel.
const Scale = 8

// Config holds the server settings.
type Config struct {
	// Addr is the listen address, such as ":5000".
	Addr string
	// Duration is the frame duration of trees without a Root.
	Duration time.Duration
	// Fonts is the font registry trees are built with.
	Fonts *fonts.Registry
	// Clock and Location feed text templates.
	Clock    func() time.Time
	Location *time.Location
}

// Server renders the widgets of a catalog on request.
type Server struct {
	catalog *Catalog
	config  Config
	router  *mux.Router
	logger  *log.Entry
}

// New returns a server for catalog.
func New(catalog *Catalog, config Config) *Server {
	if config.Addr == "" {
		config.Addr = ":5000"
	}
	if config.Duration <= 0 {
		config.Duration = 500 * time.Millisecond
	}

	s := &Server{
		catalog: catalog,
		config:  config,
		router:  mux.NewRouter(),
		logger:  log.WithField("component", "http"),
	}

	static, _ := fs.Sub(assets, "templates")
	s.router.Use(s.logRequest)
	s.router.HandleFunc("/", s.index).Methods(http.MethodGet)
	s.router.HandleFunc("/widget/{name}", s.widget).Methods(http.MethodGet)
	s.router.HandleFunc("/image/{name}.{ext:webp|gif|png}", s.image).Methods(http.MethodGet)
	s.router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Infof("Web service addr: %s", s.config.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debugf("Method=%s, RemoteAddr=%s URL=%s Elapsed=%s", r.Method, r.RemoteAddr, r.RequestURI, time.Since(start))
	})
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.WithError(err).Errorf("Template %s failed", name)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) index(w http.ResponseWriter, _ *http.Request) {
	s.render(w, "index.html", struct{ Names []string }{s.catalog.Names()})
}

func (s *Server) widget(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	data := struct {
		Name          string
		Error         string
		Width, Height int
	}{Name: name}

	widget, err := s.build(name)
	switch {
	case errors.Is(err, ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		data.Error = err.Error()
	default:
		width, height := canvasSize(widget)
		data.Width, data.Height = width*Scale, height*Scale
	}
	s.render(w, "widget.html", data)
}

func (s *Server) image(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	widget, err := s.build(name)
	if errors.Is(err, ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.WithError(err).Warnf("Building %s failed", name)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	frames, err := renderFrames(widget)
	if err != nil {
		s.logger.WithError(err).Errorf("Rendering %s failed", name)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	switch vars["ext"] {
	case "png":
		w.Header().Set("Content-Type", "image/png")
		err = encode.PNG(&buf, frames[0])
	case "gif":
		w.Header().Set("Content-Type", "image/gif")
		err = encode.GIF(&buf, frames, s.frameDuration(widget))
	default:
		w.Header().Set("Content-Type", "image/webp")
		err = encode.WebP(&buf, frames, s.frameDuration(widget))
	}
	if err != nil {
		s.logger.WithError(err).Errorf("Encoding %s failed", name)
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}

	if root, ok := widget.(*indiepixel.Root); ok {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(root.MaxAge().Seconds())))
	}
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) build(name string) (indiepixel.Widget, error) {
	return s.catalog.Build(name,
		tree.WithFonts(s.config.Fonts),
		tree.WithClock(s.config.Clock),
		tree.WithLocation(s.config.Location),
	)
}

// frameDuration returns the delay of a Root, or the configured duration.
func (s *Server) frameDuration(w indiepixel.Widget) time.Duration {
	if root, ok := w.(*indiepixel.Root); ok && root.Delay() > 0 {
		return root.Delay()
	}
	return s.config.Duration
}

func canvasSize(w indiepixel.Widget) (int, int) {
	if root, ok := w.(*indiepixel.Root); ok {
		b := root.Canvas()
		return b.Width(), b.Height()
	}
	return indiepixel.DefaultCanvasWidth, indiepixel.DefaultCanvasHeight
}

// renderFrames renders w, turning a panic inside the tree into an error so
// one broken definition cannot take the server down.
func renderFrames(w indiepixel.Widget) (frames []*canvas.Surface, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("server: render panicked: %v", r)
		}
	}()
	frames = indiepixel.Render(w)
	if len(frames) == 0 {
		return nil, encode.ErrNoFrames
	}
	return frames, nil
}
