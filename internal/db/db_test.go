package db_test

import (
	"context"
	"database/sql"
	"errors"
	"ethstore/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	Name    string `gorm:"primaryKey"`
	Balance int64
}

var _ = Describe("Database", func() {
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

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.GormDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateModels", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		JustBeforeEach(func() {
			err = testDB.MigrateModels(ctx, &Test{})
		})

		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Upsert", func() {
		var (
			affected int64
			err      error
			columns  []string
		)

		BeforeEach(func() {
			columns = []string{"name"}
		})

		JustBeforeEach(func() {
			affected, err = testDB.Upsert(ctx, &Test{Name: "alice", Balance: 10}, columns...)
		})

		When("the statement succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^INSERT INTO "tests" \("name","balance"\) VALUES \(\$1,\$2\) ON CONFLICT \("name"\) DO UPDATE SET .*"balance"="excluded"\."balance".*$`).
					WithArgs("alice", 10).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should report the affected rows", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(affected).To(Equal(int64(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the statement fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^INSERT INTO "tests".*ON CONFLICT.*`).
					WillReturnError(errors.New("duplicate key"))
				mock.ExpectRollback()
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(ContainSubstring("upsert into table")))
				Expect(affected).To(BeZero())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no conflict column is given", func() {
			BeforeEach(func() {
				columns = nil
			})

			It("should not touch the database", func() {
				Expect(err).To(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAll", func() {
		When("rows exist", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT \* FROM "tests"$`).
					WillReturnRows(sqlmock.NewRows([]string{"name", "balance"}).
						AddRow("alice", 10).
						AddRow("bob", 20))
			})

			It("should load every row", func() {
				var results []Test
				err := testDB.GetAll(ctx, &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(Equal([]Test{
					{Name: "alice", Balance: 10},
					{Name: "bob", Balance: 20},
				}))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the table is empty", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT \* FROM "tests"$`).
					WillReturnRows(sqlmock.NewRows([]string{"name", "balance"}))
			})

			It("should return no rows and no error", func() {
				results := []Test{}
				err := testDB.GetAll(ctx, &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(BeEmpty())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests".*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAll(ctx, &results)
				Expect(err).To(MatchError(ContainSubstring("getting all records")))
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
