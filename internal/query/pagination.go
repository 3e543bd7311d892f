package query

import "github.com/jellydator/validation"

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Pagination selects a window of an ordered result set. A zero Limit
// means DefaultLimit.
type Pagination struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

func (p Pagination) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Offset, validation.Min(0)),
		validation.Field(&p.Limit, validation.Min(0)),
	)
}

func (p Pagination) WithDefaults() Pagination {
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	return p
}
