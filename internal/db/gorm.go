package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"txquery/internal/query"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

var ErrNotFound = errors.New("record not found")

type GormDB struct {
	db *gorm.DB
}

// Open connects to a postgres or sqlite database.
func Open(driver, dsn string, logLevel logger.LogLevel) (*GormDB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSqlite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSqlite {
		// in-memory databases live as long as one connection does
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql db conn: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return New(db), nil
}

func New(db *gorm.DB) *GormDB {
	return &GormDB{
		db: db,
	}
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Seed inserts every record set in one transaction, unless the table of
// the first set already holds rows. Each record set must be a pointer to
// a slice.
func (f *GormDB) Seed(ctx context.Context, records ...any) error {
	if len(records) == 0 {
		return nil
	}

	slice, err := sliceOf(records[0])
	if err != nil {
		return err
	}
	if slice.Len() == 0 {
		return nil
	}

	var count int64
	elemType := slice.Index(0).Addr().Interface()
	if err := f.db.WithContext(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	return f.SaveToTable(ctx, records...)
}

// SaveToTable inserts every record set in one transaction.
func (f *GormDB) SaveToTable(ctx context.Context, records ...any) error {
	for _, r := range records {
		if _, err := sliceOf(r); err != nil {
			return err
		}
	}

	err := f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range records {
			if reflect.ValueOf(r).Elem().Len() == 0 {
				continue
			}
			if err := tx.Create(r).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// GetOne loads the first row matching filter into entity.
func (f *GormDB) GetOne(ctx context.Context, filter query.Filter, entity any) error {
	q, err := f.scoped(ctx, filter, entity)
	if err != nil {
		return err
	}

	err = q.Take(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record: %w", err)
	}
	return nil
}

// GetPage loads one page of the rows matching filter into entities, which
// must point to a slice, and returns the number of rows matching filter
// regardless of the page.
func (f *GormDB) GetPage(ctx context.Context, filter query.Filter, page query.Pagination, order []string, entities any) (int64, error) {
	countQuery, err := f.scoped(ctx, filter, entities)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := countQuery.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}

	if count == 0 || int64(page.Offset) >= count {
		return count, nil
	}

	pageQuery, err := f.scoped(ctx, filter, entities)
	if err != nil {
		return 0, err
	}
	for _, o := range order {
		pageQuery = pageQuery.Order(o)
	}

	err = pageQuery.
		Offset(page.Offset).
		Limit(page.Limit).
		Find(entities).Error
	if err != nil {
		return 0, fmt.Errorf("getting records: %w", err)
	}

	return count, nil
}

func (f *GormDB) scoped(ctx context.Context, filter query.Filter, model any) (*gorm.DB, error) {
	q := f.db.WithContext(ctx).Model(model)

	sql, args, err := filter.ToSql()
	if err != nil {
		return nil, fmt.Errorf("render filter: %w", err)
	}
	if sql != "" {
		q = q.Where(sql, args...)
	}

	return q, nil
}

func sliceOf(records any) (reflect.Value, error) {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return reflect.Value{}, fmt.Errorf("records type must be pointer to a slice: %T", records)
	}
	return v.Elem(), nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
