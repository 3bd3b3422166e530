// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alebedev/passvault/internal/generator"
	"github.com/alebedev/passvault/internal/logger"
	"github.com/alebedev/passvault/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerateHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(&service.Services{}, logger.Nop())
}

func policyBody(t *testing.T, policy generator.Policy) string {
	t.Helper()
	b, err := json.Marshal(policy)
	require.NoError(t, err)
	return string(b)
}

func TestGenerate_Success(t *testing.T) {
	h := newGenerateHandler(t)

	policy := generator.Policy{
		Length:           16,
		IncludeLowercase: true,
		IncludeUppercase: true,
		IncludeNumbers:   true,
		IncludeSymbols:   true,
	}
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(policyBody(t, policy)))
	rec := httptest.NewRecorder()

	h.generate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Password, 16)
	assert.GreaterOrEqual(t, resp.Strength.Score, 0)
	assert.LessOrEqual(t, resp.Strength.Score, 4)
}

func TestGenerate_InvalidLength(t *testing.T) {
	h := newGenerateHandler(t)

	policy := generator.Policy{Length: 4, IncludeLowercase: true}
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(policyBody(t, policy)))
	rec := httptest.NewRecorder()

	h.generate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerate_EmptyCharset(t *testing.T) {
	h := newGenerateHandler(t)

	policy := generator.Policy{Length: 16}
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(policyBody(t, policy)))
	rec := httptest.NewRecorder()

	h.generate(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGenerate_InvalidJSON(t *testing.T) {
	h := newGenerateHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.generate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
