// Package playground parses list parameters and applies them to resources.
//
// This file handles pageSize/pageToken pagination, the "field = value"
// filter syntax, orderBy, and update masks. Filters, ordering and masks work
// on the JSON form of a resource, so dotted paths such as
// "deal.dealType" or "buyerPrivateData.referenceId" address nested fields.
package playground

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

const (
	// DefaultPageSize is used when a list request does not set pageSize.
	DefaultPageSize = 100
	// MaxPageSize caps pageSize.
	MaxPageSize = 500
)

// ListParams represents the parsed query parameters of a list request
type ListParams struct {
	PageSize  int
	PageToken string
	Filter    string
	OrderBy   string
}

// ParseListParams parses list parameters from an HTTP request
func ParseListParams(r *http.Request) (*ListParams, error) {
	query := r.URL.Query()
	params := &ListParams{
		PageSize:  DefaultPageSize,
		PageToken: query.Get("pageToken"),
		Filter:    strings.TrimSpace(query.Get("filter")),
		OrderBy:   strings.TrimSpace(query.Get("orderBy")),
	}
	if v := query.Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, errInvalid("Invalid pageSize: %s", v)
		}
		if n > 0 {
			params.PageSize = n
		}
	}
	if params.PageSize > MaxPageSize {
		params.PageSize = MaxPageSize
	}
	return params, nil
}

// listPage filters, orders and paginates items (which must already be sorted
// by name). It returns the page and the token of the next one, if any.
func listPage[T any](items []*T, params *ListParams) ([]T, string, error) {
	if params == nil {
		params = &ListParams{PageSize: DefaultPageSize}
	}

	docs := make([]map[string]any, len(items))
	for i, item := range items {
		docs[i] = toDocument(item)
	}

	idx := make([]int, 0, len(items))
	for i := range items {
		ok, err := matchFilter(docs[i], params.Filter)
		if err != nil {
			return nil, "", err
		}
		if ok {
			idx = append(idx, i)
		}
	}

	if params.OrderBy != "" {
		field, desc, err := parseOrderBy(params.OrderBy)
		if err != nil {
			return nil, "", err
		}
		sort.SliceStable(idx, func(a, b int) bool {
			va := scalarString(lookupPath(docs[idx[a]], field))
			vb := scalarString(lookupPath(docs[idx[b]], field))
			if desc {
				return va > vb
			}
			return va < vb
		})
	}

	offset := 0
	if params.PageToken != "" {
		n, err := strconv.Atoi(params.PageToken)
		if err != nil || n < 0 || n > len(idx) {
			return nil, "", errInvalid("Invalid pageToken: %s", params.PageToken)
		}
		offset = n
	}
	end := offset + params.PageSize
	next := ""
	if end < len(idx) {
		next = strconv.Itoa(end)
	} else {
		end = len(idx)
	}

	out := make([]T, 0, end-offset)
	for _, i := range idx[offset:end] {
		out = append(out, *items[i])
	}
	return out, next, nil
}

// matchFilter evaluates a filter of the form `a = "x" AND b.c = y` against
// doc. An empty filter matches everything.
func matchFilter(doc map[string]any, filter string) (bool, error) {
	if filter == "" {
		return true, nil
	}
	for _, term := range strings.Split(filter, " AND ") {
		key, want, ok := strings.Cut(term, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return false, errInvalid("Invalid filter: %s", filter)
		}
		want = strings.TrimSpace(want)
		if unquoted, err := strconv.Unquote(want); err == nil {
			want = unquoted
		}
		got := lookupPath(doc, key)
		if got == nil || scalarString(got) != want {
			return false, nil
		}
	}
	return true, nil
}

func parseOrderBy(orderBy string) (field string, desc bool, err error) {
	parts := strings.Fields(orderBy)
	switch {
	case len(parts) == 1:
		return parts[0], false, nil
	case len(parts) == 2 && strings.EqualFold(parts[1], "desc"):
		return parts[0], true, nil
	case len(parts) == 2 && strings.EqualFold(parts[1], "asc"):
		return parts[0], false, nil
	}
	return "", false, errInvalid("Invalid orderBy: %s", orderBy)
}

// applyUpdateMask copies the fields of src named by mask onto dst. Each
// path's first segment must be one of updatable. A path absent from src
// clears the field in dst. An empty mask updates every updatable field.
func applyUpdateMask[T any](dst, src *T, mask string, updatable []string) error {
	allowed := make(map[string]bool, len(updatable))
	for _, f := range updatable {
		allowed[f] = true
	}
	if strings.TrimSpace(mask) == "" {
		mask = strings.Join(updatable, ",")
	}

	dstDoc := toDocument(dst)
	srcDoc := toDocument(src)
	for _, path := range strings.Split(mask, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		top, _, _ := strings.Cut(path, ".")
		if !allowed[top] {
			return errInvalid("Invalid update mask path: %s", path)
		}
		if v := lookupPath(srcDoc, path); v != nil {
			setPath(dstDoc, path, v)
		} else {
			deletePath(dstDoc, path)
		}
	}

	data, err := json.Marshal(dstDoc)
	if err != nil {
		return err
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return errInvalid("Invalid value in update: %v", err)
	}
	*dst = out
	return nil
}

// toDocument returns the JSON object form of v.
func toDocument(v any) map[string]any {
	doc := map[string]any{}
	data, err := json.Marshal(v)
	if err != nil {
		return doc
	}
	_ = json.Unmarshal(data, &doc)
	return doc
}

func lookupPath(doc map[string]any, path string) any {
	var cur any = doc
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[seg]
	}
	return cur
}

func setPath(doc map[string]any, path string, v any) {
	segs := strings.Split(path, ".")
	cur := doc
	for _, seg := range segs[:len(segs)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[seg] = next
		}
		cur = next
	}
	cur[segs[len(segs)-1]] = v
}

func deletePath(doc map[string]any, path string) {
	segs := strings.Split(path, ".")
	cur := doc
	for _, seg := range segs[:len(segs)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			return
		}
		cur = next
	}
	delete(cur, segs[len(segs)-1])
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		data, _ := json.Marshal(t)
		return string(data)
	}
}
