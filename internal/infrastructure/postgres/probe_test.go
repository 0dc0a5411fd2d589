package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/oksasatya/go-ddd-blog-api/internal/infrastructure/postgres"
)

func TestProbe_Check(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1`)).
		WillReturnError(errors.New("connection refused"))

	p := postgres.NewProbe(db)
	if p.Name() != "database" {
		t.Fatalf("name = %q", p.Name())
	}
	if err := p.Check(context.Background()); err != nil {
		t.Fatalf("Check err=%v", err)
	}
	if err := p.Check(context.Background()); err == nil {
		t.Fatal("want error from failing round trip")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
