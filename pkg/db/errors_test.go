package db

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestWrapErrorPassthrough(t *testing.T) {
	for _, e := range []error{
		fmt.Errorf("foo"),
		errors.New("bar"),
	} {
		if err := WrapError(e); err != e {
			t.Errorf("WrapError(%v) => %v, want %v", e, err, e)
		}
	}
	if err := WrapError(nil); err != nil {
		t.Errorf("WrapError(nil) => %v, want nil", err)
	}
}

func TestWrapErrorNoRows(t *testing.T) {
	if err := WrapError(fmt.Errorf("get team: %w", sql.ErrNoRows)); err != ErrRecordNotFound {
		t.Errorf("WrapError(sql.ErrNoRows) => %v, want %v", err, ErrRecordNotFound)
	}
}

func TestWrapErrorPostgres(t *testing.T) {
	cases := []struct {
		code pq.ErrorCode
		want error
	}{
		{"23505", ErrDuplicateKey},
		{"23503", ErrForeignKey},
	}
	for _, c := range cases {
		if err := WrapError(&pq.Error{Code: c.code}); err != c.want {
			t.Errorf("WrapError(pq %s) => %v, want %v", c.code, err, c.want)
		}
	}
}
