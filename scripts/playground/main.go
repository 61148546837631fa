package main

import (
	"net/http"

	"github.com/wayfind-go/wayfind/pkg/colorlog"
	"github.com/wayfind-go/wayfind/pkg/errutil"
	"github.com/wayfind-go/wayfind/pkg/href"
	"github.com/wayfind-go/wayfind/pkg/matcher"
	"github.com/wayfind-go/wayfind/pkg/mux"
	"github.com/wayfind-go/wayfind/pkg/routegen"
)

var log = colorlog.Log{Label: "playground"}

type searchInput struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit" validate:"gte=0,lte=100"`
}

var r = mux.NewRouter(nil)

func main() {
	must(r.HandleFunc("GET", "/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("home"))
	}))

	must(r.HandleFunc("GET", "/users/:id", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("user " + mux.Param(req, "id")))
	}))

	must(r.HandleFunc("GET", "/files/*", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("file " + mux.SplatValue(req)))
	}))

	must(r.HandleFunc("GET", "/search", func(w http.ResponseWriter, req *http.Request) {
		var in searchInput
		if err := r.Bind(req, &in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Write([]byte("searching for " + in.Query))
	}))

	userHref := errutil.Must(href.Build("/users/:id", matcher.Params{"id": "42"}))
	log.Info("try", userHref)

	must(routegen.Generate(routegen.Opts{
		OutDest: "scripts/playground",
		Routes: []routegen.Def{
			{Name: "Home", Pattern: "/"},
			{Name: "User", Pattern: "/users/:id"},
			{Name: "Files", Pattern: "/files/*"},
			{Name: "Search", Pattern: "/search", Input: searchInput{}},
		},
	}))

	log.Info("listening on :8080")
	if err := http.ListenAndServe(":8080", r); err != nil {
		panic(err)
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
