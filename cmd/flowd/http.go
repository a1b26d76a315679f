package main

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
)

// HTTPD serves the graph and evaluation requests.
//
//	GET  /graph        the compiled graph (JSON)
//	GET  /flow         the decisions behind it
//	POST /eval         {"expr":"$x + 5","data":{"x":3}}
//	GET  /ws/api       WebSocket upgrade (see ws.go)
func (s *Service) HTTPD(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.mux(ctx),
	}

	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	return srv.ListenAndServe()
}

func (s *Service) mux(ctx context.Context) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/graph", func(w http.ResponseWriter, r *http.Request) {
		respond(w, s.Graph())
	})

	mux.HandleFunc("/flow", func(w http.ResponseWriter, r *http.Request) {
		respond(w, s.Decisions())
	})

	mux.HandleFunc("/eval", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			http.Error(w, "POST only", http.StatusMethodNotAllowed)
			return
		}
		bs, err := ioutil.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var req EvalRequest
		if err = json.Unmarshal(bs, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respond(w, s.Eval(&req))
	})

	mux.HandleFunc("/ws/api", s.webSocketAPI(ctx))

	return mux
}

func respond(w http.ResponseWriter, x interface{}) {
	js, err := json.Marshal(x)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err = w.Write(js); err != nil {
		log.Printf("respond write error: %v", err)
	}
}
