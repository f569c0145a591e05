package apperr

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		kind   Kind
		status int
	}{
		{Validation, 400},
		{Reference, 400},
		{Conflict, 409},
		{NotFound, 404},
		{Transient, 500},
		{Fatal, 500},
	}
	for _, c := range cases {
		if got := New(c.kind, "x").Status(); got != c.status {
			t.Errorf("kind %v: expected status %d got %d", c.kind, c.status, got)
		}
	}
}

func TestRetryable(t *testing.T) {
	if !New(Transient, "busy").Retryable() {
		t.Fatal("transient errors should be retryable")
	}
	if New(Fatal, "boom").Retryable() {
		t.Fatal("fatal errors must not be retryable")
	}
}

func TestFromDBClassification(t *testing.T) {
	cases := []struct {
		err  error
		kind Kind
	}{
		{gorm.ErrDuplicatedKey, Conflict},
		{errors.New("UNIQUE constraint failed: yarn_batches.batch_code"), Conflict},
		{gorm.ErrForeignKeyViolated, Reference},
		{errors.New("FOREIGN KEY constraint failed"), Reference},
		{gorm.ErrRecordNotFound, NotFound},
		{errors.New("database is locked"), Transient},
		{errors.New("SQLITE_BUSY: database is locked"), Transient},
		{errors.New("disk I/O error"), Fatal},
	}
	for _, c := range cases {
		got := FromDB(c.err, "testing")
		if got.Kind != c.kind {
			t.Errorf("%v: expected kind %v got %v", c.err, c.kind, got.Kind)
		}
	}
}

func TestFromDBNil(t *testing.T) {
	if FromDB(nil, "testing") != nil {
		t.Fatal("nil in should be nil out")
	}
}

func TestFromDBKeepsExistingAppError(t *testing.T) {
	original := Validationf("Weight cannot be negative")
	got := FromDB(fmt.Errorf("wrapped: %w", original), "creating yarn batch")
	if got != original {
		t.Fatal("wrapped AppError should be returned as-is")
	}
}

func TestFromDBHidesDriverText(t *testing.T) {
	got := FromDB(errors.New("UNIQUE constraint failed: users.username"), "creating user")
	if got.Message == "" || got.Message == got.Err.Error() {
		t.Fatal("client message must not be the raw driver text")
	}
}

func TestAsUnwraps(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFoundf("User with ID %d not found", 7))
	appErr, ok := As(err)
	if !ok {
		t.Fatal("expected to find AppError in chain")
	}
	if appErr.Kind != NotFound {
		t.Fatalf("expected NotFound got %v", appErr.Kind)
	}
	if _, ok := As(errors.New("plain")); ok {
		t.Fatal("plain error should not match")
	}
}
