// Package search keeps Elasticsearch indices of users and posts in sync with
// lifecycle events and answers full-text queries against them.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/event"
)

const (
	defaultSize = 10
	maxSize     = 50
)

type Index struct {
	ES         *elasticsearch.Client
	UsersIndex string
	PostsIndex string
	Timeout    time.Duration
	Logger     *logrus.Logger
}

func NewIndex(es *elasticsearch.Client, usersIndex, postsIndex string, logger *logrus.Logger) *Index {
	return &Index{ES: es, UsersIndex: usersIndex, PostsIndex: postsIndex, Timeout: 3 * time.Second, Logger: logger}
}

func (i *Index) indexFor(ev event.Event) string {
	if ev.IsUser() {
		return i.UsersIndex
	}
	return i.PostsIndex
}

func (i *Index) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if i.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, i.Timeout)
}

// Handle applies one event to the matching index: deletes remove the
// document, everything else upserts the event's document by id.
func (i *Index) Handle(ctx context.Context, ev event.Event) error {
	if i == nil || i.ES == nil {
		return nil
	}
	index := i.indexFor(ev)
	if index == "" {
		return nil
	}
	c, cancel := i.withTimeout(ctx)
	defer cancel()

	var (
		res *esapi.Response
		err error
	)
	if ev.IsDelete() {
		res, err = esapi.DeleteRequest{Index: index, DocumentID: ev.EntityID, Refresh: "false"}.Do(c, i.ES)
	} else {
		b, mErr := json.Marshal(ev.Data)
		if mErr != nil {
			return mErr
		}
		res, err = esapi.IndexRequest{Index: index, DocumentID: ev.EntityID, Body: bytes.NewReader(b), Refresh: "false"}.Do(c, i.ES)
	}
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()

	if ev.IsDelete() && res.StatusCode == http.StatusNotFound {
		return nil
	}
	if res.IsError() {
		if i.Logger != nil {
			i.Logger.WithFields(logrus.Fields{"status": res.Status(), "index": index, "entity_id": ev.EntityID}).Warn("es response error")
		}
		return fmt.Errorf("elasticsearch %s %s: %s", index, ev.EntityID, res.Status())
	}
	return nil
}

func (i *Index) SearchUsers(ctx context.Context, q string, size int) ([]map[string]any, error) {
	return i.search(ctx, i.UsersIndex, q, []string{"email^2", "name"}, size)
}

func (i *Index) SearchPosts(ctx context.Context, q string, size int) ([]map[string]any, error) {
	return i.search(ctx, i.PostsIndex, q, []string{"title^2", "content"}, size)
}

func (i *Index) search(ctx context.Context, index, q string, fields []string, size int) ([]map[string]any, error) {
	if i == nil || i.ES == nil || index == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > maxSize {
		size = defaultSize
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": fields,
			},
		},
		"size": size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := i.withTimeout(ctx)
	defer cancel()

	res, err := i.ES.Search(i.ES.Search.WithContext(c), i.ES.Search.WithIndex(index), i.ES.Search.WithBody(bytes.NewReader(b)))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode == http.StatusNotFound {
		return []map[string]any{}, nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch search %s: %s", index, res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
