package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/spf13/cast"
)

var ErrInvalidCriteria = errors.New("invalid search criteria")

// Criteria maps an API field name to an exact value or a Range.
type Criteria map[string]any

// Range is an inclusive interval. A nil bound is open.
type Range struct {
	From *int64 `json:"from,omitempty"`
	To   *int64 `json:"to,omitempty"`
}

type Kind int

const (
	Text Kind = iota
	Integer
)

// Field binds an API field to a column.
type Field struct {
	Column string
	Kind   Kind
	Ranged bool
}

// Schema is the whitelist of searchable fields.
type Schema map[string]Field

// Build turns criteria into a conjunctive filter. Keys outside the schema
// are dropped. Predicates come out in key order so equal criteria always
// produce the same SQL.
func (s Schema) Build(criteria Criteria) (Filter, error) {
	keys := make([]string, 0, len(criteria))
	for key := range criteria {
		if _, ok := s[key]; ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var filter Filter
	for _, key := range keys {
		predicates, err := s[key].predicates(criteria[key])
		if err != nil {
			return Filter{}, fmt.Errorf("%w: field %q: %w", ErrInvalidCriteria, key, err)
		}
		filter.All = append(filter.All, predicates...)
	}

	return filter, nil
}

func (f Field) predicates(value any) ([]Predicate, error) {
	if value == nil {
		return nil, nil
	}

	rng, isRange, err := asRange(value)
	if err != nil {
		return nil, err
	}

	if !isRange {
		v, err := f.coerce(value)
		if err != nil {
			return nil, err
		}
		return []Predicate{{Column: f.Column, Operator: Eq, Value: v}}, nil
	}

	if !f.Ranged {
		return nil, errors.New("range is not supported")
	}

	var predicates []Predicate
	if rng.From != nil {
		predicates = append(predicates, Predicate{Column: f.Column, Operator: Gte, Value: *rng.From})
	}
	if rng.To != nil {
		predicates = append(predicates, Predicate{Column: f.Column, Operator: Lte, Value: *rng.To})
	}
	return predicates, nil
}

func (f Field) coerce(value any) (any, error) {
	if f.Kind == Text {
		return cast.ToStringE(value)
	}
	return toInt64(value)
}

func asRange(value any) (Range, bool, error) {
	switch v := value.(type) {
	case Range:
		return v, true, nil
	case *Range:
		if v == nil {
			return Range{}, true, nil
		}
		return *v, true, nil
	case map[string]any:
		var rng Range
		for key, bound := range v {
			if bound == nil {
				continue
			}
			n, err := toInt64(bound)
			if err != nil {
				return Range{}, true, fmt.Errorf("bound %q: %w", key, err)
			}
			switch key {
			case "from":
				rng.From = &n
			case "to":
				rng.To = &n
			default:
				return Range{}, true, fmt.Errorf("unknown range bound %q", key)
			}
		}
		return rng, true, nil
	}
	return Range{}, false, nil
}

// 2^63 as a float64. Floats at or above it do not fit an int64.
const twoPow63 = float64(1 << 63)

func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case string:
		return strconv.ParseInt(v, 10, 64)
	case json.Number:
		if n, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			return n, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("unable to use %s as an integer: %w", v, err)
		}
		return floatToInt64(f)
	case bool:
		return 0, fmt.Errorf("unable to use %v as an integer", v)
	case float64:
		return floatToInt64(v)
	case float32:
		return floatToInt64(float64(v))
	case uint:
		return uintToInt64(uint64(v))
	case uint64:
		return uintToInt64(v)
	case uintptr:
		return uintToInt64(uint64(v))
	}
	return cast.ToInt64E(value)
}

func floatToInt64(v float64) (int64, error) {
	if v != math.Trunc(v) || v < -twoPow63 || v >= twoPow63 {
		return 0, fmt.Errorf("unable to use %v as an integer", v)
	}
	return int64(v), nil
}

func uintToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%d overflows int64", v)
	}
	return int64(v), nil
}

// Ptr is a shorthand for building Range bounds.
func Ptr(v int64) *int64 {
	return &v
}

// Operator is a comparison applied by a Predicate.
type Operator string

const (
	Eq  Operator = "="
	Gte Operator = ">="
	Lte Operator = "<="
)

type Predicate struct {
	Column   string
	Operator Operator
	Value    any
}

func (p Predicate) sqlizer() sq.Sqlizer {
	switch p.Operator {
	case Gte:
		return sq.GtOrEq{p.Column: p.Value}
	case Lte:
		return sq.LtOrEq{p.Column: p.Value}
	default:
		return sq.Eq{p.Column: p.Value}
	}
}

// Filter matches rows satisfying every predicate in All and, when Any is
// not empty, at least one predicate in Any.
type Filter struct {
	All []Predicate
	Any []Predicate
}

func (f Filter) Empty() bool {
	return len(f.All) == 0 && len(f.Any) == 0
}

// And returns a copy of f that also requires predicates.
func (f Filter) And(predicates ...Predicate) Filter {
	all := make([]Predicate, 0, len(f.All)+len(predicates))
	all = append(all, f.All...)
	all = append(all, predicates...)
	return Filter{All: all, Any: f.Any}
}

// ToSql renders the filter with ? placeholders. An empty filter renders
// to an empty string.
func (f Filter) ToSql() (string, []any, error) {
	if f.Empty() {
		return "", nil, nil
	}

	conj := sq.And{}
	for _, p := range f.All {
		conj = append(conj, p.sqlizer())
	}

	if len(f.Any) > 0 {
		disj := sq.Or{}
		for _, p := range f.Any {
			disj = append(disj, p.sqlizer())
		}
		conj = append(conj, disj)
	}

	return conj.ToSql()
}
