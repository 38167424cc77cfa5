package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/orayew2002/pitch-card/card"
	"github.com/orayew2002/pitch-card/domain"
	"github.com/orayew2002/pitch-card/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	now := func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }
	gen := card.NewGenerator(card.WithRand(domain.NewSeededRand(1)), card.WithNow(now))
	return New(gen, store.NewMemory(), nil)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestPresets(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/presets", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Preset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.Presets(), got)
}

func TestDraftLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/draft", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := `{"pitches":[{"name":"Fastball","abbreviation":"FB","percentage":"70"}]}`
	rec = do(t, s, http.MethodPut, "/api/draft", body)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/draft", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got draftBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []domain.Pitch{{Name: "Fastball", Abbreviation: "FB", Percentage: "70"}}, got.Pitches)

	rec = do(t, s, http.MethodDelete, "/api/draft", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, s, http.MethodGet, "/api/draft", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodPut, "/api/draft", `{"bogus":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExport(t *testing.T) {
	body := `{"pitches":[{"name":"Fastball","abbreviation":"FB","percentage":100}],"sheets":2}`
	rec := do(t, newTestServer(t), http.MethodPost, "/api/export", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, card.ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t,
		`attachment; filename="pitch-card-2026-10-17T12-00-00.000Z.xlsx"`,
		rec.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Player", "Coach"}, f.GetSheetList())

	v, err := f.GetCellValue("Coach", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Fastball", v)
}

func TestExportValidation(t *testing.T) {
	s := newTestServer(t)

	cases := map[string]string{
		"empty":     `{"pitches":[]}`,
		"over 100":  `{"pitches":[{"name":"a","abbreviation":"A","percentage":"80"},{"name":"b","abbreviation":"B","percentage":"30"}]}`,
		"long abbr": `{"pitches":[{"name":"a","abbreviation":"ABCD","percentage":"10"}]}`,
		"bad json":  `{"pitches":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/export", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}
