package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"lifemate-backend/internal/domain"
)

func TestMapNotFound(t *testing.T) {
	assert.NoError(t, mapNotFound(nil))
	assert.ErrorIs(t, mapNotFound(pgx.ErrNoRows), domain.ErrNotFound)
	assert.ErrorIs(t, mapNotFound(fmt.Errorf("scan: %w", pgx.ErrNoRows)), domain.ErrNotFound)
	assert.ErrorIs(t, mapNotFound(&pgconn.PgError{Code: pgInvalidTextRepr}), domain.ErrNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapNotFound(other))
}

func TestEncodeDocs_NilSlicesBecomeEmptyArrays(t *testing.T) {
	r := &domain.Resume{Title: "x"}
	docs, err := encodeDocs(r)
	assert.NoError(t, err)
	assert.Equal(t, "[]", docs.education)
	assert.Equal(t, "[]", docs.custom)
}
