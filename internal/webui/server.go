// Package webui exposes the catalog explorer over HTTP: an HTML page with
// an upload form and results table, plus a JSON API for search, facets,
// validation, and autosuggestion.
//
// Routes:
//
//	GET  /              → page with upload form and current dataset
//	POST /upload        → multipart CSV upload; loads a new dataset
//	GET  /api/products  → search/filter/sort/paginate the current dataset
//	GET  /api/facets    → filter panel model for the current dataset
//	POST /api/validate  → strict validation of a raw CSV body
//	GET  /api/suggest   → autocomplete suggestions
//	GET  /api/hints     → performance hints for the current dataset
//	GET  /metrics       → Prometheus scrape endpoint (when configured)
package webui

import (
	_ "embed"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Dolat-Hamza/healf/internal/errs"
	"github.com/Dolat-Hamza/healf/internal/loader"
	"github.com/Dolat-Hamza/healf/internal/query"
	"github.com/Dolat-Hamza/healf/internal/validate"
)

// Config controls server startup and per-request defaults.
type Config struct {
	Addr string

	// PageSize is the default API page size. Zero means 50.
	PageSize int

	// Fuzzy enables approximate search unless a request overrides it.
	Fuzzy bool

	// FuzzyThreshold overrides the fuzzy cutoff when > 0.
	FuzzyThreshold float64

	// MaxUploadBytes caps upload size. Zero means 50MB.
	MaxUploadBytes int64

	// Validation configures the strict pass behind /api/validate.
	Validation validate.Options

	// MetricsHandler, when non-nil, is mounted at /metrics.
	MetricsHandler http.Handler

	Logger *slog.Logger
}

// Server wraps http.Server for convenience.
type Server struct {
	cfg     Config
	mux     *http.ServeMux
	tmpl    *template.Template
	loader  *loader.Loader
	store   *loader.Store
	session loader.Session
	logger  *slog.Logger

	// lastSearch feeds the performance hints endpoint.
	lastSearch atomic.Int64
}

// NewServer constructs a Server with routes and the embedded template.
func NewServer(cfg Config, ld *loader.Loader, store *loader.Store) *Server {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 50
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 50 * 1024 * 1024
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg,
		mux:    http.NewServeMux(),
		tmpl:   template.Must(template.New("index").Parse(indexHTML)),
		loader: ld,
		store:  store,
		logger: cfg.Logger,
	}
	s.routes()
	return s
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.cfg.Addr, s.mux)
}

// Handler exposes the mux for tests and embedding.
func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/upload", s.handleUpload)
	s.mux.HandleFunc("/api/products", s.handleProducts)
	s.mux.HandleFunc("/api/facets", s.handleFacets)
	s.mux.HandleFunc("/api/validate", s.handleValidate)
	s.mux.HandleFunc("/api/suggest", s.handleSuggest)
	s.mux.HandleFunc("/api/hints", s.handleHints)
	if s.cfg.MetricsHandler != nil {
		s.mux.Handle("/metrics", s.cfg.MetricsHandler)
	}
}

// indexData is the template model for the main page.
type indexData struct {
	Dataset  *loader.Dataset
	Products int
	Sample   []sampleRow
	SortMenu []query.SortOption
	Error    string
	Warnings []string
}

type sampleRow struct {
	Title    string
	Vendor   string
	Type     string
	Status   string
	MinPrice float64
	MaxPrice float64
}

// handleIndex renders the upload form and, when a dataset is loaded, its
// summary with a short product sample.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.renderIndex(w, "", nil)
}

func (s *Server) renderIndex(w http.ResponseWriter, errMsg string, warnings []string) {
	data := indexData{
		SortMenu: query.SortOptions(),
		Error:    errMsg,
		Warnings: warnings,
	}
	if ds := s.store.Current(); ds != nil {
		data.Dataset = ds
		data.Products = len(ds.Products)
		for _, p := range ds.Products {
			if len(data.Sample) >= 10 {
				break
			}
			data.Sample = append(data.Sample, sampleRow{
				Title:    p.Title,
				Vendor:   p.Vendor,
				Type:     p.ProductType,
				Status:   p.Status,
				MinPrice: p.PriceRange.Min,
				MaxPrice: p.PriceRange.Max,
			})
		}
	}
	if err := s.tmpl.Execute(w, data); err != nil {
		s.logger.Error("template render failed", "error", err)
	}
}

// handleUpload accepts a multipart CSV file, pre-checks it, and swaps in the
// resulting dataset. Later uploads win over slower earlier ones.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1)

	f, header, err := r.FormFile("file")
	if err != nil {
		s.renderUploadError(w, errs.CSV("no file provided", errs.CodeNoFile))
		return
	}
	defer f.Close()

	pre, err := validate.Upload(header.Filename, header.Header.Get("Content-Type"), header.Size, validate.Options{
		MaxFileSize: s.cfg.MaxUploadBytes,
	})
	if err != nil {
		s.renderUploadError(w, err)
		return
	}

	content, err := io.ReadAll(f)
	if err != nil {
		s.renderUploadError(w, errs.CSV("failed to read uploaded file", errs.CodeInvalidFormat))
		return
	}

	token := s.session.Begin()
	ds, err := s.loader.LoadContent(content, header.Filename, "upload")
	if err != nil {
		s.renderUploadError(w, err)
		return
	}
	if !s.session.Adopt(token, s.store, ds) {
		s.logger.Info("discarded stale upload", "name", header.Filename)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if len(pre.Warnings) > 0 {
		s.renderIndex(w, "", pre.Warnings)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) renderUploadError(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	msg := errs.Message(err)
	if hints := errs.Suggestions(err); len(hints) > 0 {
		msg += " (" + strings.Join(hints, "; ") + ")"
	}
	s.renderIndex(w, msg, nil)
}

// recordSearch tracks the latest search latency for the hints endpoint.
func (s *Server) recordSearch(d time.Duration) {
	s.lastSearch.Store(int64(d))
}

// indexHTML is an embedded, minimal page with vanilla styling.
//
//go:embed index.tmpl.html
var indexHTML string
