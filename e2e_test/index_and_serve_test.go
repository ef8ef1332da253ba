//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/salamidex/cmd"
	"github.com/jsphweid/salamidex/model"
	"github.com/stretchr/testify/assert"
)

var router http.Handler

func TestMain(m *testing.M) {
	indexDir, err := os.MkdirTemp("", "salamidex-e2e")
	if err != nil {
		panic(err.Error())
	}
	defer os.RemoveAll(indexDir)

	os.Setenv("BILLBOARD_PATH", "testdata")
	os.Setenv("INDEX_PATH", indexDir)

	cmd.Index(0)
	cmd.LoadServeFiles()
	router = cmd.NewRouter()

	exitVal := m.Run()

	os.Exit(exitVal)
}

func get(path string) *http.Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Result()
}

func TestListTracksE2E(t *testing.T) {
	resp := get("/tracks")
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var tracks []model.TrackResponse
	err := json.Unmarshal(respBody, &tracks)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal(len(tracks), 1)
	assert.Equal(tracks[0].TrackId, "3")
}

func TestGetChordsE2E(t *testing.T) {
	resp := get("/tracks/3/chords")
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var chords model.ChordsResponse
	err := json.Unmarshal(respBody, &chords)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal(chords.Flavor, "salami")
	assert.Equal(len(chords.Chords), 4)
	assert.Equal(chords.Chords[0].Chord, "Eb:min")
	assert.Equal(chords.Chords[3].End, 49.238027210)
	for i := 0; i < len(chords.Chords)-1; i++ {
		assert.Equal(chords.Chords[i].End, chords.Chords[i+1].Start)
	}
}

func TestGetLabChordsE2E(t *testing.T) {
	resp := get("/tracks/3/chords?flavor=full")
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var chords model.ChordsResponse
	err := json.Unmarshal(respBody, &chords)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal(chords.Flavor, "full")
	assert.Equal(len(chords.Chords), 3)
	assert.Equal(chords.Chords[0].Chord, "N")
}

func TestGetSectionsE2E(t *testing.T) {
	resp := get("/tracks/3/sections")
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var sections model.SectionsResponse
	err := json.Unmarshal(respBody, &sections)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal(sections.Sections, []model.SectionInterval{
		{Start: 0.073469387, End: 22.346394557, Letter: "A", Function: "intro"},
		{Start: 22.346394557, End: 49.238027210, Letter: "B", Function: "verse"},
	})
}

func TestUnknownTrackE2E(t *testing.T) {
	resp := get("/tracks/999/chords")
	assert.Equal(t, resp.StatusCode, 404)
}

func TestUnknownFlavorE2E(t *testing.T) {
	resp := get("/tracks/3/chords?flavor=bogus")
	assert.Equal(t, resp.StatusCode, 400)
}
