package redis

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/svcreport/internal/report"
)

// Run identifies one report run in the published metadata.
type Run struct {
	ID          string
	GeneratedAt time.Time
	Version     string
}

// Publisher pushes a finished report to Redis so other tools can read it
// without access to the destination directory.
type Publisher struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewPublisher creates a publisher writing keys under prefix.
func NewPublisher(client redis.Cmdable, prefix string, ttl time.Duration) *Publisher {
	return &Publisher{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Publish replaces every table list and the metadata hash in a single
// MULTI/EXEC. Each table is filled under a staging key and renamed over the
// live key, so readers never see a half-written table.
func (p *Publisher) Publish(ctx context.Context, run Run, r *report.Report) error {
	pipe := p.client.TxPipeline()

	for _, table := range r.Tables() {
		live := TableKey(p.prefix, table.Name)
		if len(table.Rows) == 0 {
			// RENAME of a missing key fails; an empty table is an absent list.
			pipe.Del(ctx, live)
			continue
		}

		values, err := encodeRows(table.Rows)
		if err != nil {
			return fmt.Errorf("failed to encode table %s: %w", table.Name, err)
		}

		staging := StagingKey(p.prefix, table.Name, run.ID)
		pipe.Del(ctx, staging)
		pipe.RPush(ctx, staging, values...)
		pipe.Rename(ctx, staging, live)
		pipe.Expire(ctx, live, p.ttl)
	}

	meta := MetaKey(p.prefix)
	pipe.Del(ctx, meta)
	pipe.HSet(ctx, meta, metaFields(run, r))
	pipe.Expire(ctx, meta, p.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish report: %w", err)
	}
	return nil
}

// Table reads back the decoded rows of a published table.
func (p *Publisher) Table(ctx context.Context, name string) ([][]string, error) {
	values, err := p.client.LRange(ctx, TableKey(p.prefix, name), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", name, err)
	}

	rows := make([][]string, 0, len(values))
	for _, v := range values {
		row, err := decodeRow(v)
		if err != nil {
			return nil, fmt.Errorf("failed to decode table %s: %w", name, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func metaFields(run Run, r *report.Report) map[string]interface{} {
	fields := map[string]interface{}{
		"run_id":       run.ID,
		"generated_at": run.GeneratedAt.UTC().Format(time.RFC3339),
		"version":      run.Version,
		"unresolved":   strconv.Itoa(len(r.Unresolved)),
	}
	for name, n := range r.Counts() {
		fields["rows:"+name] = strconv.Itoa(n)
	}
	return fields
}

// encodeRows turns each row into one CSV line without the trailing newline.
func encodeRows(rows [][]string) ([]interface{}, error) {
	values := make([]interface{}, 0, len(rows))
	var buf bytes.Buffer
	for _, row := range rows {
		buf.Reset()
		w := csv.NewWriter(&buf)
		if err := w.Write(row); err != nil {
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		values = append(values, strings.TrimSuffix(buf.String(), "\n"))
	}
	return values, nil
}

func decodeRow(line string) ([]string, error) {
	// encoding/csv writes a lone empty field as an empty line.
	if line == "" {
		return []string{""}, nil
	}
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	return r.Read()
}
