package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"measurement-annotation-service/internal/annotation"
	"measurement-annotation-service/internal/api/dto"
	"measurement-annotation-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const annotateBody = `{
	"units": "metric",
	"measurements": [
		{"id": "d1", "name": "Trail", "type": "distance", "value": 500,
		 "coordinates": [[0, 0], [10, 10]], "timestamp": "2026-01-01T08:00:00Z"},
		{"id": "a1", "name": "Field", "type": "area", "value": 2000000,
		 "coordinates": [[1, 1]], "timestamp": "2026-01-01T09:00:00Z"}
	]
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(annotation.NewRenderer(nil), domain.Metric))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	res, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "abc-123")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, "abc-123", res.Header.Get("X-Request-ID"))
}

func TestAnnotationsJSON(t *testing.T) {
	srv := newTestServer(t)

	res := post(t, srv.URL+"/annotations", annotateBody)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body dto.ListMarkersResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Len(t, body.Markers, 2)

	d1 := body.Markers[0]
	assert.Equal(t, "d1", d1.ID)
	assert.Equal(t, "500.0 m", d1.Text)
	assert.Equal(t, "ruler", d1.Icon)
	assert.Equal(t, [2]float64{5, 5}, d1.Position)
	assert.Equal(t, "centroid", d1.Anchor.Mode)
	assert.Equal(t, 1000, d1.Style.ZIndex)
	assert.Equal(t, 2, d1.Tooltip.PointCount)

	assert.Equal(t, "2.000 km²", body.Markers[1].Text)
	assert.Equal(t, "square", body.Markers[1].Icon)
}

func TestAnnotationsHTML(t *testing.T) {
	srv := newTestServer(t)

	res := post(t, srv.URL+"/annotations/html", annotateBody)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", res.Header.Get("Content-Type"))

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(body), "data-measurement-id="))
}

func TestAnnotationsGeoJSON(t *testing.T) {
	srv := newTestServer(t)

	res := post(t, srv.URL+"/annotations/geojson", annotateBody)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/geo+json", res.Header.Get("Content-Type"))

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, []float64{5, 5}, fc.Features[0].Geometry.Coordinates)
}

func TestAnnotationsBadRequests(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"measurements": [`},
		{"unknown field", `{"measurements": [], "extra": true}`},
		{"trailing object", `{"measurements": []}{}`},
		{"unknown units", `{"units": "cubits", "measurements": []}`},
		{"unknown type", `{"measurements": [{"id": "x", "type": "volume", "value": 1, "coordinates": [[0, 0]]}]}`},
		{"bad pair", `{"measurements": [{"id": "x", "type": "distance", "value": 1, "coordinates": [[0]]}]}`},
		{"empty coordinates", `{"measurements": [{"id": "x", "type": "distance", "value": 1, "coordinates": []}]}`},
		{"missing timestamp", `{"measurements": [{"id": "x", "type": "distance", "value": 1, "coordinates": [[0, 0]]}]}`},
		{"duplicate ids", `{"measurements": [
			{"id": "x", "type": "distance", "value": 1, "coordinates": [[0, 0]], "timestamp": "2026-01-01T08:00:00Z"},
			{"id": "x", "type": "area", "value": 1, "coordinates": [[0, 0]], "timestamp": "2026-01-01T08:00:00Z"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := post(t, srv.URL+"/annotations", tt.body)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestAnnotationsMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/annotations/html")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
	assert.Equal(t, http.MethodPost, res.Header.Get("Allow"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "method not allowed", body["error"])

	res2 := post(t, srv.URL+"/format/area?value=1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, res2.StatusCode)
	assert.Equal(t, http.MethodGet, res2.Header.Get("Allow"))
}

func TestStylesheet(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/annotations/stylesheet.css")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/css; charset=utf-8", res.Header.Get("Content-Type"))

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, annotation.Stylesheet(), string(body))
}

func TestFormatEndpoints(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path   string
		status int
		text   string
	}{
		{"/format/distance?value=1500", http.StatusOK, "1.50 km"},
		{"/format/distance?value=100&units=imperial", http.StatusOK, "109 yd"},
		{"/format/area?value=50", http.StatusOK, "50.0 m²"},
		{"/format/area?value=3000000&units=imperial", http.StatusOK, "1.158 sq mi"},
		{"/format/area?value=abc", http.StatusBadRequest, ""},
		{"/format/area", http.StatusBadRequest, ""},
		{"/format/distance?value=1&units=cubits", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			res, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer res.Body.Close()

			assert.Equal(t, tt.status, res.StatusCode)
			if tt.status != http.StatusOK {
				return
			}

			var body dto.FormatResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			assert.Equal(t, tt.text, body.Text)
		})
	}
}
