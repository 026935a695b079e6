package webui

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/Dolat-Hamza/healf/internal/errs"
	"github.com/Dolat-Hamza/healf/internal/loader"
	"github.com/Dolat-Hamza/healf/internal/metrics"
	"github.com/Dolat-Hamza/healf/internal/product"
	"github.com/Dolat-Hamza/healf/internal/query"
	"github.com/Dolat-Hamza/healf/internal/validate"
)

// apiError is the JSON error envelope.
type apiError struct {
	Error struct {
		Code        string   `json:"code,omitempty"`
		Message     string   `json:"message"`
		Suggestions []string `json:"suggestions,omitempty"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	var body apiError
	var cerr *errs.CSVError
	if errors.As(err, &cerr) {
		body.Error.Code = cerr.Code
	}
	body.Error.Message = errs.Message(err)
	body.Error.Suggestions = errs.Suggestions(err)
	writeJSON(w, status, body)
}

// currentDataset fetches the active dataset, or the one named by the
// dataset query parameter, writing a 404 when nothing matches.
func (s *Server) currentDataset(w http.ResponseWriter, r *http.Request) (*loader.Dataset, bool) {
	if id := r.URL.Query().Get("dataset"); id != "" {
		if ds, ok := s.store.Get(id); ok {
			return ds, true
		}
		writeError(w, http.StatusNotFound, errs.CSV("unknown dataset "+id, errs.CodeNoFile))
		return nil, false
	}
	if ds := s.store.Current(); ds != nil {
		return ds, true
	}
	writeError(w, http.StatusNotFound, errs.CSV("no dataset loaded", errs.CodeNoFile))
	return nil, false
}

// etagFor derives a strong ETag from the dataset fingerprint and the request
// query, so any change to either the content or the question invalidates it.
func etagFor(ds *loader.Dataset, rawQuery string) string {
	sum := xxh3.HashString(ds.Fingerprint + "?" + rawQuery)
	return `"` + strconv.FormatUint(sum, 16) + `"`
}

// notModified handles conditional requests; it reports true when a 304 was
// written.
func notModified(w http.ResponseWriter, r *http.Request, etag string) bool {
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

// handleProducts is the main query endpoint: text search plus facet filters,
// optional sorting, and pagination, over the current dataset.
//
// Query parameters: q, vendor, productType, status, minPrice, maxPrice,
// giftCard, outOfStock, sort (a SortKey like "price-asc"), page, pageSize,
// fuzzy.
func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ds, ok := s.currentDataset(w, r)
	if !ok {
		return
	}
	etag := etagFor(ds, r.URL.RawQuery)
	if notModified(w, r, etag) {
		return
	}

	q := r.URL.Query()
	filters := product.SearchFilters{
		Query:       q.Get("q"),
		Vendor:      q.Get("vendor"),
		ProductType: q.Get("productType"),
		Status:      q.Get("status"),
	}
	if v, ok := queryFloat(q.Get("minPrice")); ok {
		filters.MinPrice = &v
	}
	if v, ok := queryFloat(q.Get("maxPrice")); ok {
		filters.MaxPrice = &v
	}
	if v, ok := queryBool(q.Get("giftCard")); ok {
		filters.IsGiftCard = &v
	}
	if v, ok := queryBool(q.Get("outOfStock")); ok {
		filters.HasOutOfStockVariants = &v
	}

	var sortOpt *query.SortOption
	if key := q.Get("sort"); key != "" {
		if opt, ok := query.SortOptionByKey(key); ok {
			sortOpt = &opt
		}
	}

	fuzzy := s.cfg.Fuzzy
	if v, ok := queryBool(q.Get("fuzzy")); ok {
		fuzzy = v
	}

	page := queryInt(q.Get("page"), 1)
	pageSize := queryInt(q.Get("pageSize"), s.cfg.PageSize)

	start := time.Now()
	matched := query.SearchSorted(ds.Products, filters, sortOpt, query.SearchOptions{
		UseFuzzy:       fuzzy,
		FuzzyThreshold: s.cfg.FuzzyThreshold,
	})
	result := query.Paginate(matched, page, pageSize)
	elapsed := time.Since(start)
	metrics.RecordQuery("search", elapsed)
	s.recordSearch(elapsed)

	writeJSON(w, http.StatusOK, result)
}

// handleFacets serves the filter panel model.
func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.currentDataset(w, r)
	if !ok {
		return
	}
	etag := etagFor(ds, "")
	if notModified(w, r, etag) {
		return
	}

	start := time.Now()
	facets := query.BuildFacets(ds.Products)
	metrics.RecordQuery("facets", time.Since(start))

	writeJSON(w, http.StatusOK, facets)
}

// handleValidate runs the strict validation pass over a raw CSV request
// body. Batch-fatal problems come back as a 400 with the error envelope;
// per-row findings ride inside the 200 result.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1)
	content, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, errs.CSV("failed to read request body", errs.CodeInvalidFormat))
		return
	}

	opt := s.cfg.Validation
	if opt.MaxFileSize == 0 && opt.MaxRows == 0 && len(opt.RequiredFields) == 0 {
		opt = validate.DefaultOptions()
	}
	opt.Logger = s.logger

	start := time.Now()
	res, err := validate.Content(string(content), opt)
	metrics.RecordQuery("validate", time.Since(start))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	metrics.RecordRows("valid", int64(res.Summary.ValidRows))
	metrics.RecordRows("invalid", int64(res.Summary.InvalidRows))

	writeJSON(w, http.StatusOK, res)
}

// handleSuggest serves autocomplete entries, optionally narrowed by q.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.currentDataset(w, r)
	if !ok {
		return
	}
	etag := etagFor(ds, r.URL.Query().Get("q"))
	if notModified(w, r, etag) {
		return
	}

	start := time.Now()
	suggestions := query.SuggestFor(ds.Products, r.URL.Query().Get("q"))
	metrics.RecordQuery("suggest", time.Since(start))
	if suggestions == nil {
		suggestions = []query.Suggestion{}
	}

	writeJSON(w, http.StatusOK, suggestions)
}

// handleHints reports performance hints for the current dataset, folding in
// the latest observed search latency.
func (s *Server) handleHints(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.currentDataset(w, r)
	if !ok {
		return
	}

	hints := query.AnalyzePerformance(query.PerformanceStats{
		CSVSize:      ds.Size,
		ProductCount: len(ds.Products),
		SearchTime:   time.Duration(s.lastSearch.Load()),
	})
	if hints == nil {
		hints = []query.PerformanceHint{}
	}
	writeJSON(w, http.StatusOK, hints)
}

func queryInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func queryFloat(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func queryBool(raw string) (bool, bool) {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}
