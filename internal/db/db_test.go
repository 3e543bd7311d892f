package db_test

import (
	"context"
	"database/sql"
	"fmt"

	"txquery/internal/db"
	"txquery/internal/query"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
	Score    int64
}

type Parent struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func byName(name string) query.Filter {
	return query.Filter{All: []query.Predicate{{Column: "username", Operator: query.Eq, Value: name}}}
}

var _ = Describe("GormDB with postgres dialect", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Discard})
		Expect(err).NotTo(HaveOccurred())

		testDB = db.New(gormDB)
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("GetOne", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE .*username = \$1.* LIMIT \$2`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "score"}).
						AddRow(1, "Alice", 10))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOne(ctx, byName("Alice"), &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE .*username = \$1.* LIMIT \$2`).
					WithArgs("Ghost", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "score"}))
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOne(ctx, byName("Ghost"), &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests"`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should wrap the driver error", func() {
				var result Test
				err := testDB.GetOne(ctx, byName("Alice"), &result)
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(err).To(MatchError(ContainSubstring("getting record")))
			})
		})
	})

	Describe("GetPage", func() {
		var (
			results []Test
			count   int64
			page    query.Pagination
		)

		JustBeforeEach(func() {
			count, err = testDB.GetPage(ctx, byName("Alice"), page, []string{"id ASC"}, &results)
		})

		When("rows match", func() {
			BeforeEach(func() {
				results = nil
				page = query.Pagination{Offset: 1, Limit: 2}

				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests" WHERE .*username = \$1`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE .*username = \$1.* ORDER BY id ASC LIMIT \$2 OFFSET \$3`).
					WithArgs("Alice", 2, 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "score"}).
						AddRow(2, "Alice", 20).
						AddRow(3, "Alice", 30))
			})

			It("should return the total count and the page", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(Equal(int64(3)))
				Expect(results).To(HaveLen(2))
				Expect(results[0].ID).To(Equal(uint(2)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("nothing matches", func() {
			BeforeEach(func() {
				results = nil
				page = query.Pagination{Limit: 2}

				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests"`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			})

			It("should skip the page query", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(BeZero())
				Expect(results).To(BeEmpty())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("counting fails", func() {
			BeforeEach(func() {
				page = query.Pagination{Limit: 2}

				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests"`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(err).To(MatchError(ContainSubstring("counting records")))
			})
		})
	})
})

var _ = Describe("GormDB with sqlite", func() {
	var (
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
		testDB, err = db.Open(db.DriverSqlite, dsn, logger.Silent)
		Expect(err).NotTo(HaveOccurred())
		Expect(testDB.MigrateModels(&Test{}, &Parent{})).To(Succeed())
	})

	AfterEach(func() {
		Expect(testDB.Close()).To(Succeed())
	})

	Describe("Seed", func() {
		It("should insert only into an empty table", func() {
			Expect(testDB.Seed(ctx,
				&[]Parent{{ID: 1, Name: "root"}},
				&[]Test{{ID: 1, Username: "Alice"}, {ID: 2, Username: "Bob"}},
			)).To(Succeed())

			Expect(testDB.Seed(ctx,
				&[]Parent{{ID: 2, Name: "other"}},
				&[]Test{{ID: 3, Username: "Carol"}},
			)).To(Succeed())

			var tests []Test
			count, err := testDB.GetPage(ctx, query.Filter{}, query.Pagination{Limit: 10}, nil, &tests)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(2)))
		})

		It("should reject values that are not slice pointers", func() {
			err := testDB.Seed(ctx, Test{})
			Expect(err).To(MatchError(ContainSubstring("pointer to a slice")))
		})
	})

	Describe("SaveToTable", func() {
		It("should roll back every record set on failure", func() {
			err := testDB.SaveToTable(ctx,
				&[]Parent{{ID: 1, Name: "root"}},
				&[]Test{{ID: 1, Username: "Alice"}, {ID: 1, Username: "Duplicate"}},
			)
			Expect(err).To(MatchError(ContainSubstring("insert to table")))

			var parents []Parent
			count, err := testDB.GetPage(ctx, query.Filter{}, query.Pagination{Limit: 10}, nil, &parents)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})
	})

	Describe("GetPage", func() {
		BeforeEach(func() {
			tests := make([]Test, 0, 10)
			for i := 1; i <= 10; i++ {
				tests = append(tests, Test{ID: uint(i), Username: fmt.Sprintf("user%d", i%2), Score: int64(i)})
			}
			Expect(testDB.SaveToTable(ctx, &tests)).To(Succeed())
		})

		It("should apply range predicates and order", func() {
			filter := query.Filter{All: []query.Predicate{
				{Column: "score", Operator: query.Gte, Value: int64(3)},
				{Column: "score", Operator: query.Lte, Value: int64(8)},
			}}

			var tests []Test
			count, err := testDB.GetPage(ctx, filter, query.Pagination{Limit: 4}, []string{"score DESC"}, &tests)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(6)))
			Expect(tests).To(HaveLen(4))
			Expect(tests[0].Score).To(Equal(int64(8)))
			Expect(tests[3].Score).To(Equal(int64(5)))
		})

		It("should apply a disjunction", func() {
			filter := query.Filter{Any: []query.Predicate{
				{Column: "score", Operator: query.Eq, Value: int64(1)},
				{Column: "username", Operator: query.Eq, Value: "user0"},
			}}

			var tests []Test
			count, err := testDB.GetPage(ctx, filter, query.Pagination{Limit: 100}, []string{"id ASC"}, &tests)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(6)))
			Expect(tests[0].ID).To(Equal(uint(1)))
		})

		It("should return the count when the offset is past the end", func() {
			var tests []Test
			count, err := testDB.GetPage(ctx, query.Filter{}, query.Pagination{Offset: 20, Limit: 5}, nil, &tests)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(10)))
			Expect(tests).To(BeEmpty())
		})
	})
})
