package bolt

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Comcast/littleflow/flow"

	bolt "go.etcd.io/bbolt"
)

var graphsBucket = []byte("graphs")

// Storage is a GraphStore backed by a bbolt file.
type Storage struct {
	Debug    bool
	filename string
	db       *bolt.DB
}

func NewStorage(filename string) (*Storage, error) {
	return &Storage{
		filename: filename,
	}, nil
}

func (s *Storage) Open() error {
	opts := &bolt.Options{
		Timeout: time.Second,
	}

	db, err := bolt.Open(s.filename, 0644, opts)
	if err != nil {
		return err
	}
	s.db = db

	return s.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(graphsBucket)
		return err
	})
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) logf(format string, args ...interface{}) {
	if s.Debug {
		log.Printf("bolt.Storage."+format, args...)
	}
}

func (s *Storage) WriteGraph(ctx context.Context, id string, g *flow.DecisionGraph) error {
	s.logf("WriteGraph %s (%d nodes)", id, len(g.Nodes))
	js, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(graphsBucket).Put([]byte(id), js)
	})
}

func (s *Storage) ReadGraph(ctx context.Context, id string) (*flow.DecisionGraph, error) {
	s.logf("ReadGraph %s", id)
	var g *flow.DecisionGraph
	err := s.db.View(func(tx *bolt.Tx) error {
		bs := tx.Bucket(graphsBucket).Get([]byte(id))
		if bs == nil {
			return nil
		}
		g = &flow.DecisionGraph{}
		return json.Unmarshal(bs, g)
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Storage) RemGraph(ctx context.Context, id string) error {
	s.logf("RemGraph %s", id)
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(graphsBucket).Delete([]byte(id))
	})
}

func (s *Storage) ListGraphs(ctx context.Context) ([]string, error) {
	s.logf("ListGraphs")
	ids := make([]string, 0, 32)
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(graphsBucket).Cursor()
		for id, _ := c.First(); id != nil; id, _ = c.Next() {
			ids = append(ids, string(id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
