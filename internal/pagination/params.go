package pagination

import (
	"fmt"
	"net/url"
	"strconv"
)

// Params represents the pagination inputs for a list request: the zero-based
// offset of the first item on the page and the page size.
type Params struct {
	Offset int
	Limit  int
}

// Validate checks the parameters against the configuration. Well-formed
// callers keep offset a multiple of limit, but that is a caller contract,
// not something validated here.
func (p Params) Validate(cfg Config) error {
	if p.Offset < 0 {
		return fmt.Errorf("offset must be non-negative")
	}
	if p.Limit < 1 || p.Limit > cfg.MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d", cfg.MaxLimit)
	}
	return nil
}

// WithDefaults applies default values from the configuration:
// negative offsets become 0, non-positive limits become the default, and
// limits above the maximum are capped.
func (p Params) WithDefaults(cfg Config) Params {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = cfg.DefaultLimit
	}
	if p.Limit > cfg.MaxLimit {
		p.Limit = cfg.MaxLimit
	}
	return p
}

// WithLimit returns Params with the new page size and the offset reset to 0.
// Changing the page size always returns to the first page so the caller can
// never be stranded past the new last page.
func (p Params) WithLimit(limit int, cfg Config) Params {
	if limit <= 0 {
		limit = cfg.DefaultLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	return Params{Offset: 0, Limit: limit}
}

// Next returns Params advanced one page, unchanged when already on the last
// page for the given total.
func (p Params) Next(total int64) Params {
	return Params{Offset: NextOffset(p.Offset, p.Limit, total), Limit: p.Limit}
}

// Previous returns Params moved back one page, unchanged at offset 0.
func (p Params) Previous() Params {
	return Params{Offset: PreviousOffset(p.Offset, p.Limit), Limit: p.Limit}
}

// Query encodes the parameters as backend query values.
func (p Params) Query() url.Values {
	values := url.Values{}
	values.Set("offset", strconv.Itoa(p.Offset))
	values.Set("limit", strconv.Itoa(p.Limit))
	return values
}
