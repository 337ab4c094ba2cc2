//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jsphweid/voicings/chord"
	"github.com/jsphweid/voicings/cmd"
	"github.com/jsphweid/voicings/model"
	"github.com/jsphweid/voicings/render"
	"github.com/jsphweid/voicings/theory"
	"github.com/stretchr/testify/assert"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	server = httptest.NewServer(cmd.NewRouter(render.NewBuilder(theory.New(), render.Options{})))
	defer server.Close()
	m.Run()
}

func getNotesView(t *testing.T, notes string) model.NotesView {
	resp, err := http.Get(server.URL + "/api/notes?notes=" + url.QueryEscape(notes))
	if err != nil {
		panic(err.Error())
	}
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var view model.NotesView
	if err := json.Unmarshal(body, &view); err != nil {
		panic(err.Error())
	}
	return view
}

func TestCompleteSeventhChordE2E(t *testing.T) {
	view := getNotesView(t, "C E G B")

	assert := assert.New(t)
	assert.Equal("X:1\nK:C\n[CEGB]", view.Staff.Notation)
	assert.Equal([]int{60, 64, 67, 71}, view.Staff.Midi)
	assert.Equal([]string{"Cmaj7"}, view.Exact)
	for _, label := range view.Partial {
		assert.NotEqual("Cmaj7", chord.BaseSymbol(label))
	}
	assert.Equal("detected-chords", view.Grids[0].ID)
	assert.Equal("Cmaj7", view.Grids[0].Cards[0].Symbol)
}

func TestRootlessVoicingE2E(t *testing.T) {
	view := getNotesView(t, "E G B")

	assert := assert.New(t)
	assert.Equal("Chords: Em", view.Summary)
	assert.Equal("Cmaj7 (rootless)", view.Partial[0])
	assert.Equal("other-chords-0", view.Grids[1].Cards[0].Staff.Mount)
	assert.Equal(180, view.Grids[1].Cards[0].Staff.StaffWidth)
}
