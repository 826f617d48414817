package handling

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
)

func TestHandleErrorWritesServerError(t *testing.T) {
	logger := gecho.NewDefaultLogger()
	rec := httptest.NewRecorder()

	HandleError(errors.New("pg down"), "error.catalog.fetchFailed", logger, rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "error.catalog.fetchFailed")
}
