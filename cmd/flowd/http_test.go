package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Comcast/littleflow/flow"

	"github.com/gorilla/websocket"
)

func demoService(t *testing.T) *Service {
	t.Helper()
	s, err := NewService("", false)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err = s.Compile(ctx); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestHTTPGraph(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := httptest.NewServer(demoService(t).mux(ctx))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/graph")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var g flow.DecisionGraph
	bs, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if err = json.Unmarshal(bs, &g); err != nil {
		t.Fatal(err)
	}
	if len(g.Nodes) != 5 {
		t.Fatalf("node count == %d", len(g.Nodes))
	}
	if g.Nodes[0].Id != "request" {
		t.Fatalf("bad first node %#v", g.Nodes[0])
	}
}

func TestHTTPEval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := httptest.NewServer(demoService(t).mux(ctx))
	defer srv.Close()

	js := `{"expr":"$x + 5","data":{"x":3}}`
	resp, err := http.Post(srv.URL+"/eval", "application/json", bytes.NewBufferString(js))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var er EvalResponse
	if err = json.NewDecoder(resp.Body).Decode(&er); err != nil {
		t.Fatal(err)
	}
	if er.Error != "" {
		t.Fatal(er.Error)
	}
	if er.Result != 8.0 {
		t.Fatalf("bad result %#v", er.Result)
	}
}

func TestWebSocketEval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := httptest.NewServer(demoService(t).mux(ctx))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/api"
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err = c.WriteMessage(websocket.TextMessage,
		[]byte(`{"op":"eval","id":"w1","expr":"10 - 4"}`)); err != nil {
		t.Fatal(err)
	}

	_, bs, err := c.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}

	var er EvalResponse
	if err = json.Unmarshal(bs, &er); err != nil {
		t.Fatal(err)
	}
	if er.Id != "w1" || er.Result != 6.0 {
		t.Fatalf("bad response %s", bs)
	}
}
