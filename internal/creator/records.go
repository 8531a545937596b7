package creator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListOptions narrows a ListRecords call. The zero value fetches the
// first page at the server's default page size.
type ListOptions struct {
	// Criteria is a Creator search expression passed through verbatim,
	// e.g. `Status == "Open"`.
	Criteria string

	// Page is the 1-based page index. Zero and one both mean the first
	// page.
	Page int

	// PageSize caps the records returned per page. Creator serves at
	// most MaxPageSize; zero means the server default.
	PageSize int
}

// ListRecords returns one page of records from a report. An empty result
// set returns a zero-length slice, not an error: Creator reports its
// "no records found" code for both empty reports and criteria that match
// nothing, and the widget treats both as an empty list.
func (c *Client) ListRecords(ctx context.Context, report string, opts ListOptions) ([]Record, error) {
	query := url.Values{}
	if opts.Criteria != "" {
		query.Set("criteria", opts.Criteria)
	}
	if opts.PageSize > 0 {
		query.Set("limit", strconv.Itoa(opts.PageSize))
	}
	if opts.Page > 1 {
		size := opts.PageSize
		if size <= 0 {
			size = MaxPageSize
		}
		query.Set("from", strconv.Itoa((opts.Page-1)*size+1))
	}

	var out response
	if err := c.do(ctx, http.MethodGet, c.reportPath(report, ""), query, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list records from %q: %w", report, err)
	}
	if out.Code == codeNoRecords {
		return []Record{}, nil
	}
	if err := out.err(); err != nil {
		return nil, fmt.Errorf("failed to list records from %q: %w", report, err)
	}

	records, err := decodeRecords(out.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to list records from %q: %w", report, err)
	}
	return records, nil
}

// GetRecord returns a single record from a report by ID.
func (c *Client) GetRecord(ctx context.Context, report, id string) (Record, error) {
	var out response
	if err := c.do(ctx, http.MethodGet, c.reportPath(report, id), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get record %q from %q: %w", id, report, err)
	}
	if err := out.err(); err != nil {
		return nil, fmt.Errorf("failed to get record %q from %q: %w", id, report, err)
	}

	rec, err := decodeRecord(out.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to get record %q from %q: %w", id, report, err)
	}
	return rec, nil
}

// CreateRecord submits field data to a form and returns the new record's
// ID.
func (c *Client) CreateRecord(ctx context.Context, form string, data Record) (string, error) {
	body := map[string]any{"data": data}

	var out response
	if err := c.do(ctx, http.MethodPost, c.formPath(form), nil, body, &out); err != nil {
		return "", fmt.Errorf("failed to create record in %q: %w", form, err)
	}
	if err := out.err(); err != nil {
		return "", fmt.Errorf("failed to create record in %q: %w", form, err)
	}

	created, err := decodeRecord(out.Data)
	if err != nil {
		return "", fmt.Errorf("failed to create record in %q: %w", form, err)
	}
	if created.ID() == "" {
		return "", fmt.Errorf("creator: create in %q returned no record ID", form)
	}
	return created.ID(), nil
}

// UpdateRecord overwrites the given fields of a record. Fields absent
// from data keep their current values.
func (c *Client) UpdateRecord(ctx context.Context, report, id string, data Record) error {
	body := map[string]any{"data": data}

	var out response
	if err := c.do(ctx, http.MethodPatch, c.reportPath(report, id), nil, body, &out); err != nil {
		return fmt.Errorf("failed to update record %q in %q: %w", id, report, err)
	}
	if err := out.err(); err != nil {
		return fmt.Errorf("failed to update record %q in %q: %w", id, report, err)
	}
	return nil
}

// DeleteRecord removes a record by ID.
func (c *Client) DeleteRecord(ctx context.Context, report, id string) error {
	var out response
	if err := c.do(ctx, http.MethodDelete, c.reportPath(report, id), nil, nil, &out); err != nil {
		return fmt.Errorf("failed to delete record %q from %q: %w", id, report, err)
	}
	if err := out.err(); err != nil {
		return fmt.Errorf("failed to delete record %q from %q: %w", id, report, err)
	}
	return nil
}

// --- Path and decode helpers ---

func (c *Client) reportPath(report, id string) string {
	p := fmt.Sprintf("/creator/v2/data/%s/%s/report/%s",
		url.PathEscape(c.owner), url.PathEscape(c.app), url.PathEscape(report))
	if id != "" {
		p += "/" + url.PathEscape(id)
	}
	return p
}

func (c *Client) formPath(form string) string {
	return fmt.Sprintf("/creator/v2/data/%s/%s/form/%s",
		url.PathEscape(c.owner), url.PathEscape(c.app), url.PathEscape(form))
}

// decodeRecords decodes a data payload holding an array of records.
// Numbers stay json.Number so 19-digit record IDs keep their precision.
func decodeRecords(data json.RawMessage) ([]Record, error) {
	if len(data) == 0 {
		return []Record{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("creator: failed to decode records: %w", err)
	}
	return records, nil
}

// decodeRecord decodes a data payload holding a single record object.
func decodeRecord(data json.RawMessage) (Record, error) {
	if len(data) == 0 {
		return Record{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("creator: failed to decode record: %w", err)
	}
	return rec, nil
}
