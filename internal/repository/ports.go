package repository

import (
	"context"

	"txquery/internal/query"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	GetOne(ctx context.Context, filter query.Filter, entity any) error
	GetPage(ctx context.Context, filter query.Filter, page query.Pagination, order []string, entities any) (int64, error)
}

//counterfeiter:generate -o fake -fake-name Cache . Cache
type Cache interface {
	Get(key string) (any, error)
	Set(key string, v any) error
}
