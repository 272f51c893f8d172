package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/shared/config"
	"github.com/opolancoh/employee-permissions/internal/shared/constants"
	apperrors "github.com/opolancoh/employee-permissions/internal/shared/errors"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

const (
	// Maximum error body kept in the returned error
	maxErrorBodySize = 4 << 10
)

// indexMapping is the fixed schema of the permissions index.
var indexMapping = map[string]interface{}{
	"mappings": map[string]interface{}{
		"properties": map[string]interface{}{
			"employeeId":       map[string]string{"type": "keyword"},
			"permissionTypeId": map[string]string{"type": "keyword"},
			"grantedDate":      map[string]string{"type": "date"},
			"description":      map[string]string{"type": "keyword"},
		},
	},
}

// ElasticsearchIndex implements permission.SearchIndex on top of the
// Elasticsearch REST API.
type ElasticsearchIndex struct {
	client   *elasticsearch.Client
	index    string
	listSize int
	logger   logger.Interface
}

var _ permission.SearchIndex = (*ElasticsearchIndex)(nil)

// NewElasticsearchClient builds a client for the configured cluster.
func NewElasticsearchClient(cfg config.SearchConfig) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	return client, nil
}

func NewElasticsearchIndex(client *elasticsearch.Client, cfg config.SearchConfig, log logger.Interface) *ElasticsearchIndex {
	index := cfg.Index
	if index == "" {
		index = constants.DefaultSearchIndex
	}
	listSize := cfg.ListSize
	if listSize <= 0 {
		listSize = constants.DefaultSearchListSize
	}
	return &ElasticsearchIndex{
		client:   client,
		index:    index,
		listSize: listSize,
		logger:   log.Named("elasticsearch"),
	}
}

// EnsureIndex creates the index with its mapping when it does not exist yet.
func (s *ElasticsearchIndex) EnsureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return apperrors.NewIndexError("failed to check search index", err)
	}
	res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		s.logger.Debugw("search index already exists", "index", s.index)
		return nil
	case http.StatusNotFound:
	default:
		return apperrors.NewIndexError("failed to check search index", fmt.Errorf("unexpected status %s", res.Status()))
	}

	body, err := json.Marshal(indexMapping)
	if err != nil {
		return apperrors.NewIndexError("failed to encode index mapping", err)
	}
	res, err = s.client.Indices.Create(s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(body)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return apperrors.NewIndexError("failed to create search index", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg := readErrorBody(res)
		// another instance won the race
		if strings.Contains(msg, "resource_already_exists_exception") {
			return nil
		}
		return apperrors.NewIndexError("failed to create search index",
			fmt.Errorf("elasticsearch returned %s: %s", res.Status(), msg))
	}

	s.logger.Infow("search index created", "index", s.index)
	return nil
}

// IndexPermission creates or overwrites the grant's document.
func (s *ElasticsearchIndex) IndexPermission(ctx context.Context, p *permission.Permission) error {
	body, err := json.Marshal(permission.NewIndexedPermission(p))
	if err != nil {
		return apperrors.NewIndexError("failed to encode permission document", err)
	}

	docID := p.Key().DocumentID()
	res, err := s.client.Index(s.index, bytes.NewReader(body),
		s.client.Index.WithDocumentID(docID),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return apperrors.NewIndexError("failed to index permission", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return apperrors.NewIndexError("failed to index permission", responseError(res))
	}

	s.logger.Debugw("permission indexed", "index", s.index, "document_id", docID)
	return nil
}

// UpdatePermission merges the grant's fields into its existing document.
func (s *ElasticsearchIndex) UpdatePermission(ctx context.Context, p *permission.Permission) error {
	body, err := json.Marshal(map[string]interface{}{
		"doc": permission.NewIndexedPermission(p),
	})
	if err != nil {
		return apperrors.NewIndexError("failed to encode permission document", err)
	}

	docID := p.Key().DocumentID()
	res, err := s.client.Update(s.index, docID, bytes.NewReader(body),
		s.client.Update.WithContext(ctx),
	)
	if err != nil {
		return apperrors.NewIndexError("failed to update indexed permission", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return apperrors.NewIndexError("failed to update indexed permission", responseError(res))
	}

	s.logger.Debugw("indexed permission updated", "index", s.index, "document_id", docID)
	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source permission.IndexedPermission `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// ListAll returns up to listSize documents from the index.
func (s *ElasticsearchIndex) ListAll(ctx context.Context) ([]permission.IndexedPermission, error) {
	query := fmt.Sprintf(`{"query":{"match_all":{}},"size":%d}`, s.listSize)

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(strings.NewReader(query)),
	)
	if err != nil {
		return nil, apperrors.NewIndexError("failed to search permissions", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, apperrors.NewIndexError("failed to search permissions", responseError(res))
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, apperrors.NewIndexError("failed to decode search response", err)
	}

	docs := make([]permission.IndexedPermission, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		docs = append(docs, hit.Source)
	}
	return docs, nil
}

// Ping reports whether the cluster answers.
func (s *ElasticsearchIndex) Ping(ctx context.Context) error {
	res, err := s.client.Ping(s.client.Ping.WithContext(ctx))
	if err != nil {
		return apperrors.NewIndexError("search cluster unreachable", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return apperrors.NewIndexError("search cluster unreachable", fmt.Errorf("unexpected status %s", res.Status()))
	}
	return nil
}

func readErrorBody(res *esapi.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
	return string(raw)
}

func responseError(res *esapi.Response) error {
	return fmt.Errorf("elasticsearch returned %s: %s", res.Status(), readErrorBody(res))
}
