package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bep/debounce"
	"github.com/gorilla/mux"
	"github.com/jsphweid/salamidex/constants"
	"github.com/jsphweid/salamidex/jams"
	"github.com/jsphweid/salamidex/lab"
	"github.com/jsphweid/salamidex/model"
	"github.com/jsphweid/salamidex/track"
	"github.com/jsphweid/salamidex/util"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var allTracks map[string]model.TrackData
var allTrackIds []string

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the parsed corpus over HTTP",
	Long:  `Serves the parsed corpus over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadServeFiles reads the binaries the index command wrote. Panics
// when they're missing: serving an unindexed corpus is operator error.
func LoadServeFiles() {
	allTracks = util.ReadBinaryOrPanic[map[string]model.TrackData](tracksBinaryPath())
	allTrackIds = util.ReadBinaryOrPanic[[]string](constants.GetIndexDir() + "/trackIds.dat")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func lookupTrack(w http.ResponseWriter, r *http.Request) (model.TrackData, bool) {
	id := mux.Vars(r)["id"]
	data, ok := allTracks[id]
	if !ok {
		writeError(w, 404, fmt.Sprintf("no track with id %v", id))
	}
	return data, ok
}

func HandleGetTracks(w http.ResponseWriter, r *http.Request) {
	res := make([]model.TrackResponse, 0)
	for _, id := range allTrackIds {
		if data, ok := allTracks[id]; ok {
			res = append(res, model.TrackResponse{TrackId: id, Metadata: data.Metadata})
		}
	}
	json.NewEncoder(w).Encode(res)
}

func HandleGetTrack(w http.ResponseWriter, r *http.Request) {
	data, ok := lookupTrack(w, r)
	if !ok {
		return
	}
	header := data.Header
	json.NewEncoder(w).Encode(model.TrackResponse{
		TrackId:  data.TrackId,
		Metadata: data.Metadata,
		Header:   &header,
	})
}

// HandleGetChords serves the salami-derived chord tier by default; a
// ?flavor= query switches to one of the lab reductions, which are read
// from disk on demand since they're not part of the index binaries.
func HandleGetChords(w http.ResponseWriter, r *http.Request) {
	data, ok := lookupTrack(w, r)
	if !ok {
		return
	}

	flavor := r.URL.Query().Get("flavor")
	if flavor == "" || flavor == "salami" {
		json.NewEncoder(w).Encode(model.ChordsResponse{
			TrackId: data.TrackId,
			Flavor:  "salami",
			Chords:  data.Chords,
		})
		return
	}

	valid := false
	for _, f := range constants.LabFlavors {
		if f == flavor {
			valid = true
		}
	}
	if !valid {
		writeError(w, 400, "unknown flavor: "+flavor)
		return
	}

	chords, err := lab.ReadFile(track.LabPath(constants.GetDataHome(), data.TrackId, flavor))
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	json.NewEncoder(w).Encode(model.ChordsResponse{
		TrackId: data.TrackId,
		Flavor:  flavor,
		Chords:  chords,
	})
}

func HandleGetSections(w http.ResponseWriter, r *http.Request) {
	data, ok := lookupTrack(w, r)
	if !ok {
		return
	}
	json.NewEncoder(w).Encode(model.SectionsResponse{
		TrackId:  data.TrackId,
		Sections: data.Sections,
	})
}

func HandleGetJams(w http.ResponseWriter, r *http.Request) {
	data, ok := lookupTrack(w, r)
	if !ok {
		return
	}
	t := track.New(data.TrackId, constants.GetDataHome(), data.Metadata)
	doc, err := jams.FromTrack(t)
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	json.NewEncoder(w).Encode(doc)
}

// reloads are debounced so a burst of POSTs while annotations are
// being re-synced only triggers one reindex
var reloadDebounced = debounce.New(2 * time.Second)

func HandleReload(w http.ResponseWriter, r *http.Request) {
	reloadDebounced(func() {
		Index(0)
		LoadServeFiles()
		fmt.Println("Reloaded corpus")
	})
	w.WriteHeader(202)
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/tracks", HandleGetTracks).Methods("GET")
	router.HandleFunc("/tracks/{id}", HandleGetTrack).Methods("GET")
	router.HandleFunc("/tracks/{id}/chords", HandleGetChords).Methods("GET")
	router.HandleFunc("/tracks/{id}/sections", HandleGetSections).Methods("GET")
	router.HandleFunc("/tracks/{id}/jams", HandleGetJams).Methods("GET")
	router.HandleFunc("/reload", HandleReload).Methods("POST")
	return cors.Default().Handler(router)
}

func serve() {
	LoadServeFiles()
	log.Fatal(http.ListenAndServe(":8080", NewRouter()))
}
