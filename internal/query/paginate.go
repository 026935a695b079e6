package query

import "github.com/Dolat-Hamza/healf/internal/product"

// Paginate slices one page out of products into the standard result
// envelope. Pages are 1-based; a page past the end yields an empty product
// list with the true total, and page/pageSize echo back unclamped so clients
// can tell what they asked for.
func Paginate(products []product.Product, page, pageSize int) product.SearchResult {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(products) {
		start = len(products)
	}
	if end > len(products) {
		end = len(products)
	}

	pageItems := make([]product.Product, end-start)
	copy(pageItems, products[start:end])

	return product.SearchResult{
		Products: pageItems,
		Total:    len(products),
		Page:     page,
		PageSize: pageSize,
	}
}

// ChunkerOptions tunes a Chunker. Zero values take the defaults: chunks of
// 500 rows and a hard display ceiling of 1000.
type ChunkerOptions struct {
	ChunkSize int
	MaxRows   int
}

// Chunker serves a large dataset to a view incrementally: an initial window
// of ChunkSize rows that grows by one chunk per LoadNextChunk call, capped
// at MaxRows regardless of how much data exists.
type Chunker struct {
	data      []product.Product
	chunkSize int
	maxRows   int
	current   int
}

// NewChunker wraps data without copying it; the caller must not mutate the
// slice while the Chunker is live.
func NewChunker(data []product.Product, opt ChunkerOptions) *Chunker {
	if opt.ChunkSize <= 0 {
		opt.ChunkSize = 500
	}
	if opt.MaxRows <= 0 {
		opt.MaxRows = 1000
	}
	return &Chunker{data: data, chunkSize: opt.ChunkSize, maxRows: opt.MaxRows}
}

// limit is the size of the capped dataset.
func (c *Chunker) limit() int {
	if len(c.data) > c.maxRows {
		return c.maxRows
	}
	return len(c.data)
}

// TotalChunks reports how many chunks the capped dataset spans.
func (c *Chunker) TotalChunks() int {
	return (c.limit() + c.chunkSize - 1) / c.chunkSize
}

// Visible returns the prefix of the dataset the view should currently
// render: everything up to and including the current chunk.
func (c *Chunker) Visible() []product.Product {
	end := (c.current + 1) * c.chunkSize
	if limit := c.limit(); end > limit {
		end = limit
	}
	return c.data[:end]
}

// LoadNextChunk advances the window one chunk; past the last chunk it is a
// no-op.
func (c *Chunker) LoadNextChunk() {
	if c.current < c.TotalChunks()-1 {
		c.current++
	}
}

// HasMoreChunks reports whether LoadNextChunk would reveal more rows.
func (c *Chunker) HasMoreChunks() bool {
	return c.current < c.TotalChunks()-1
}

// CurrentChunk is the 0-based index of the last revealed chunk.
func (c *Chunker) CurrentChunk() int { return c.current }

// IsLimited reports whether the MaxRows cap hides part of the dataset.
func (c *Chunker) IsLimited() bool { return len(c.data) > c.maxRows }

// TotalRows is the uncapped dataset size.
func (c *Chunker) TotalRows() int { return len(c.data) }

// VisibleRows is the current window size.
func (c *Chunker) VisibleRows() int { return len(c.Visible()) }
