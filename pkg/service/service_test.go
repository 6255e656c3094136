package service

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/pkg/compose"
	"github.com/akeil/tripjournal/pkg/content"
)

func setup(t *testing.T) (*Service, *httptest.Server) {
	t.Helper()
	cache := journal.NewFilesystemCache(t.TempDir())
	cat, err := content.BuiltinCatalog()
	require.NoError(t, err)
	gen := content.NewGenerator(cat)
	s := New(gen, cache, compose.NewSeededContext(1), 2)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		srv.Close()
		s.Close()
	})
	return s, srv
}

const createBody = `{
	"childName": "Emma",
	"childAge": 8,
	"destination": "Tokyo",
	"startDate": "2025-03-15",
	"endDate": "2025-03-17",
	"landmarks": "Tokyo Tower, Senso-ji",
	"interests": ["food"]
}`

func create(t *testing.T, srv *httptest.Server, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	res, err := http.Post(srv.URL+"/api/journal/create", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return res, out
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	data, err := ioutil.ReadAll(res.Body)
	require.NoError(t, err)
	return res, data
}

func TestCreateAndDownload(t *testing.T) {
	s, srv := setup(t)

	res, out := create(t, srv, createBody)
	require.Equal(t, http.StatusOK, res.StatusCode)
	id, _ := out["journalId"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "processing", out["status"])

	s.Wait()

	res, data := get(t, srv.URL+"/api/journal/status/"+id)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var st statusResponse
	require.NoError(t, json.Unmarshal(data, &st))
	assert.Equal(t, Completed, st.Status, st.Error)
	assert.Equal(t, 100, st.Progress)

	res, data = get(t, srv.URL+"/api/journal/info/"+id)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var info infoResponse
	require.NoError(t, json.Unmarshal(data, &info))
	assert.Equal(t, "Emma", info.ChildName)
	assert.Equal(t, 3, info.TripDays)
	assert.True(t, info.PageCount >= content.NewPlan(mustContent(t, s, id)).Pages())
	assert.True(t, info.FileSize > 0)

	res, data = get(t, srv.URL+"/api/journal/download/"+id)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/pdf", res.Header.Get("Content-Type"))
	assert.Contains(t, res.Header.Get("Content-Disposition"), "Emma_Travel_Journal.pdf")
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func mustContent(t *testing.T, s *Service, id string) *journal.Content {
	t.Helper()
	c, err := s.Content(id)
	require.NoError(t, err)
	return c
}

func TestCreateInvalid(t *testing.T) {
	_, srv := setup(t)

	cases := []string{
		`{"destination": "Tokyo", "startDate": "2025-03-15", "endDate": "2025-03-17"}`,
		`{"childName": "Emma", "destination": "Tokyo", "startDate": "2025-03-15"}`,
		`{"childName": "Emma", "destination": "Tokyo", "startDate": "2025-03-17", "endDate": "2025-03-15"}`,
		`{"childName": "Emma", "destination": "Tokyo", "startDate": "15.3.2025", "endDate": "2025-03-17"}`,
		`not json`,
	}
	for _, body := range cases {
		res, out := create(t, srv, body)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
		assert.NotEmpty(t, out["error"], body)
	}
}

func TestUnknownJournal(t *testing.T) {
	_, srv := setup(t)
	for _, p := range []string{"status", "info", "download"} {
		res, _ := get(t, srv.URL+"/api/journal/"+p+"/0000-1111")
		assert.Equal(t, http.StatusNotFound, res.StatusCode, p)
	}
	res, _ := get(t, srv.URL+"/api/journal/whatever")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestMethodNotAllowed(t *testing.T) {
	_, srv := setup(t)
	res, _ := get(t, srv.URL+"/api/journal/create")
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestMemories(t *testing.T) {
	s, srv := setup(t)
	_, out := create(t, srv, createBody)
	id := out["journalId"].(string)
	s.Wait()

	for _, kind := range []string{"cards", "slides"} {
		res, data := get(t, srv.URL+"/api/memories/"+id+"/"+kind)
		require.Equal(t, http.StatusOK, res.StatusCode, kind)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), kind)
	}
}

func TestStatusFeed(t *testing.T) {
	s, srv := setup(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	deadline := time.Now().Add(time.Second)
	for s.Hub().Clients() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, 1, s.Hub().Clients())

	_, out := create(t, srv, createBody)
	id := out["journalId"].(string)

	conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	var last Message
	for last.Job.Status != Completed {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &last))
		assert.Equal(t, "status", last.Type)
		assert.Equal(t, id, last.Job.ID)
		require.NotEqual(t, Failed, last.Job.Status, last.Job.Error)
	}
	assert.Equal(t, 100, last.Job.Progress)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Emma_Travel_Journal.pdf", Filename("Emma", "Travel_Journal"))
	assert.Equal(t, "Anne_Marie_Travel_Journal.pdf", Filename("Anne-Marie", "Travel_Journal"))
}

func TestCreateRequestTrip(t *testing.T) {
	req := CreateRequest{
		ChildName:   " Emma ",
		Destination: "Paris",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-03",
		Landmarks:   "Eiffel Tower, , Louvre",
	}
	trip, err := req.Trip()
	require.NoError(t, err)
	assert.Equal(t, "Emma", trip.ChildName)
	assert.Equal(t, []string{"Eiffel Tower", "Louvre"}, trip.Landmarks)
	assert.Equal(t, 3, journal.TripDays(trip.StartDate, trip.EndDate))

	req.EndDate = ""
	_, err = req.Trip()
	assert.True(t, journal.IsValidationError(err))
}
