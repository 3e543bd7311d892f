package payload

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"txquery/internal/query"

	"github.com/jellydator/validation"
)

var (
	transactionIDRegex = regexp.MustCompile(`^[0-9a-f]{64}$`)
	rlpRegex           = regexp.MustCompile(`^([0-9a-f]{2})+$`)
)

// maxRLPHexLength fits a list of query.MaxLimit ids of 32 bytes each:
// one prefix byte per id plus a three byte list header, hex encoded.
const maxRLPHexLength = (query.MaxLimit*33 + 3) * 2

const (
	offsetParam = "offset"
	limitParam  = "limit"
	fromSuffix  = ".from"
	toSuffix    = ".to"
)

type PageRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

func (p PageRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Offset, validation.Min(0)),
		validation.Field(&p.Limit, validation.Min(0), validation.Max(query.MaxLimit)),
	)
}

func (p PageRequest) ToPagination() query.Pagination {
	return query.Pagination{Offset: p.Offset, Limit: p.Limit}
}

// ParsePage reads offset and limit from query parameters. Absent values are zero.
func ParsePage(values url.Values) (PageRequest, error) {
	var page PageRequest
	var err error

	if v := values.Get(offsetParam); v != "" {
		if page.Offset, err = strconv.Atoi(v); err != nil {
			return PageRequest{}, fmt.Errorf("parse %s: %w", offsetParam, err)
		}
	}
	if v := values.Get(limitParam); v != "" {
		if page.Limit, err = strconv.Atoi(v); err != nil {
			return PageRequest{}, fmt.Errorf("parse %s: %w", limitParam, err)
		}
	}

	return page, page.Validate()
}

// SearchRequest is the body of a search. Range criteria are objects with
// from and to keys.
type SearchRequest struct {
	Criteria query.Criteria `json:"criteria"`
	PageRequest
}

func (s SearchRequest) Validate() error {
	return s.PageRequest.Validate()
}

// CriteriaFromQuery maps query parameters to search criteria. A parameter
// named field.from or field.to becomes a range bound of field. A field given
// both as an exact value and as a range is rejected.
func CriteriaFromQuery(values url.Values) (query.Criteria, error) {
	criteria := query.Criteria{}
	exact := map[string]bool{}
	ranged := map[string]bool{}

	for key, vals := range values {
		if key == offsetParam || key == limitParam || len(vals) == 0 {
			continue
		}

		field, bound := key, ""
		switch {
		case strings.HasSuffix(key, fromSuffix):
			field, bound = strings.TrimSuffix(key, fromSuffix), "from"
		case strings.HasSuffix(key, toSuffix):
			field, bound = strings.TrimSuffix(key, toSuffix), "to"
		}

		if bound == "" {
			exact[field] = true
			criteria[field] = vals[0]
			continue
		}

		ranged[field] = true
		rng, ok := criteria[field].(map[string]any)
		if !ok {
			rng = map[string]any{}
			criteria[field] = rng
		}
		rng[bound] = vals[0]
	}

	for field := range exact {
		if ranged[field] {
			return nil, fmt.Errorf("field %q is given both as a value and as a range", field)
		}
	}

	return criteria, nil
}

type TransactionRequest struct {
	ID string
}

func (t TransactionRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.ID, validation.Required, validation.Match(transactionIDRegex)),
	)
}

type RLPRequest struct {
	RLP string
}

func (r RLPRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RLP, validation.Required, validation.Length(0, maxRLPHexLength), validation.Match(rlpRegex)),
	)
}

// ParseType reads a transaction type path parameter. Any integer is
// accepted; types that no transaction carries simply match nothing.
func ParseType(value string) (int64, error) {
	t, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse transaction type %q: %w", value, err)
	}
	return t, nil
}
