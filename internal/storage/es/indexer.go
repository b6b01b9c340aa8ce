package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/motif-bench/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

const maxListSize = 10000

// ScoreIndexer mirrors score records into an Elasticsearch index.
type ScoreIndexer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewScoreIndexer(ctx context.Context, config ClientConfig) (*ScoreIndexer, error) {
	if config.IndexName == "" {
		config.IndexName = DefaultIndexName
	}
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	indexer := &ScoreIndexer{
		client:    client,
		indexName: config.IndexName,
	}
	if err := indexer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}
	return indexer, nil
}

func (e *ScoreIndexer) SaveBulk(ctx context.Context, records []storage.ScoreRecord) error {
	if len(records) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    2,
		FlushBytes:    1e+6,
		FlushInterval: 10 * time.Second,
		Refresh:       "wait_for",
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64

	for _, r := range records {
		doc := toDocument(r)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal score document", "error", err, "id", doc.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID,
			Body:       bytes.NewReader(docBytes),
			OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add score document to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(records),
		"index", e.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d score records", n, len(records))
	}
	return nil
}

func (e *ScoreIndexer) ListByRun(ctx context.Context, runID uuid.UUID) ([]storage.ScoreRecord, error) {
	asc := sortorder.Asc
	res, err := e.client.Search().
		Index(e.indexName).
		Query(&types.Query{
			Term: map[string]types.TermQuery{
				"run_id": {Value: runID.String()},
			},
		}).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"case": {Order: &asc},
			},
		}).
		Size(maxListSize).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search scores: %w", err)
	}

	out := make([]storage.ScoreRecord, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc ScoreDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score document: %w", err)
		}
		r, err := doc.toRecord()
		if err != nil {
			return nil, fmt.Errorf("invalid score document %s: %w", doc.ID, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (e *ScoreIndexer) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	mappings := buildMapping()
	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}

func (e *ScoreIndexer) Close() error { return nil }
