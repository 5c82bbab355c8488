package api

import (
	"net/url"
	"strconv"
)

// Params builds the query string for list endpoints. Zero values are
// skipped so filters that are not set never reach the server.
type Params struct {
	values url.Values
}

func NewParams() *Params {
	return &Params{values: url.Values{}}
}

func (p *Params) Page(page int) *Params {
	if page > 0 {
		p.values.Set("page", strconv.Itoa(page))
	}
	return p
}

func (p *Params) PerPage(perPage int) *Params {
	if perPage > 0 {
		p.values.Set("per_page", strconv.Itoa(perPage))
	}
	return p
}

func (p *Params) Search(search string) *Params {
	return p.Str("search", search)
}

func (p *Params) Str(key, value string) *Params {
	if value != "" {
		p.values.Set(key, value)
	}
	return p
}

func (p *Params) ID(key string, id int64) *Params {
	if id > 0 {
		p.values.Set(key, strconv.FormatInt(id, 10))
	}
	return p
}

func (p *Params) Bool(key string, value bool) *Params {
	if value {
		p.values.Set(key, "1")
	}
	return p
}

func (p *Params) Values() url.Values {
	return p.values
}

// CacheKey renders the params in stable order for use in cache keys.
func (p *Params) CacheKey() string {
	return p.values.Encode()
}
