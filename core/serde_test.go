package core

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testValue struct {
	Value    string   `json:"value"`
	Type     string   `json:"type,omitempty"`
	Synonyms []string `json:"synonyms,omitempty"`
}

func TestParams_UpdateAndWithout(t *testing.T) {
	p := Params{"sort": "name", "cursor": "abc"}
	p.Update(Params{"sort": "-name", "page_limit": int64(5)}, false)
	if diff := cmp.Diff(Params{"sort": "name", "cursor": "abc", "page_limit": int64(5)}, p); diff != "" {
		t.Errorf("Update(override=false) mismatch (-want +got):\n%s", diff)
	}
	p.Update(Params{"sort": "-name"}, true)
	if p["sort"] != "-name" {
		t.Errorf("Update(override=true) sort = %v", p["sort"])
	}
	p.Without("cursor", "missing")
	if _, ok := p["cursor"]; ok {
		t.Error("Without() kept cursor")
	}
}

func TestParams_ToBody(t *testing.T) {
	p := Params{"value": "red", "synonyms": []string{"crimson"}}
	raw, err := p.ToBody()
	if err != nil {
		t.Fatalf("ToBody() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("ToBody() produced invalid JSON: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"value": "red", "synonyms": []any{"crimson"}}, decoded); diff != "" {
		t.Errorf("ToBody() mismatch (-want +got):\n%s", diff)
	}
	expectQueryValue(t, p.ToQuery(), "synonyms", "crimson")
}

func TestRecord_Fill(t *testing.T) {
	rec := Record{
		"value":         "red",
		"type":          "synonyms",
		"synonyms":      []any{"crimson", "scarlet"},
		ResourceTypeKey: "getValue",
	}
	var v testValue
	if err := rec.Fill(&v); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	want := testValue{Value: "red", Type: "synonyms", Synonyms: []string{"crimson", "scarlet"}}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("Fill() mismatch (-want +got):\n%s", diff)
	}

	if err := rec.Fill(v); err == nil {
		t.Error("Fill() accepted a non-pointer")
	}
	var s string
	if err := rec.Fill(&s); err == nil {
		t.Error("Fill() accepted a pointer to a non-struct")
	}
}

func TestRecordSet_Fill(t *testing.T) {
	rs := RecordSet{{"value": "red"}, {"value": "blue"}}

	var values []testValue
	if err := rs.Fill(&values); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if diff := cmp.Diff([]testValue{{Value: "red"}, {Value: "blue"}}, values); diff != "" {
		t.Errorf("Fill() mismatch (-want +got):\n%s", diff)
	}

	var ptrs []*testValue
	if err := rs.Fill(&ptrs); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if len(ptrs) != 2 || ptrs[1].Value != "blue" {
		t.Errorf("Fill() into []*T = %v", ptrs)
	}

	var notSlice testValue
	if err := rs.Fill(&notSlice); err == nil {
		t.Error("Fill() accepted a pointer to a struct")
	}
}

func TestRecord_RecordSetFrom(t *testing.T) {
	rec := Record{
		"values":     []any{map[string]any{"value": "red"}, "junk", map[string]any{"value": "blue"}},
		"pagination": map[string]any{"refresh_url": "/v1/x"},
	}
	rs := rec.RecordSetFrom("values")
	if diff := cmp.Diff(RecordSet{{"value": "red"}, {"value": "blue"}}, rs); diff != "" {
		t.Errorf("RecordSetFrom() mismatch (-want +got):\n%s", diff)
	}
	if got := rec.RecordSetFrom("missing"); !got.Empty() {
		t.Errorf("RecordSetFrom(missing) = %v", got)
	}
}

func TestRecord_PrettyTable(t *testing.T) {
	rec := Record{
		ResourceTypeKey: "getWorkspace",
		"name":          "pizza",
		"workspace_id":  "ws-123",
		"metadata":      map[string]any{"k": "v"},
	}
	table := rec.PrettyTable()
	for _, part := range []string{"getWorkspace:", "pizza", "ws-123", "<<remaining attrs>>"} {
		if !strings.Contains(table, part) {
			t.Errorf("PrettyTable() missing %q:\n%s", part, table)
		}
	}
	if got := (Record{}).PrettyTable(); got != "<>" {
		t.Errorf("empty PrettyTable() = %q", got)
	}
	if got := (RecordSet{}).PrettyTable(); got != "[]" {
		t.Errorf("empty RecordSet PrettyTable() = %q", got)
	}
}

func TestRecord_PrettyJson(t *testing.T) {
	rec := Record{"value": "red"}
	if got := rec.PrettyJson(); got != `{"value":"red"}` {
		t.Errorf("PrettyJson() = %q", got)
	}
	if got := rec.PrettyJson("  "); got != "{\n  \"value\": \"red\"\n}" {
		t.Errorf("PrettyJson(indent) = %q", got)
	}
	if got := (RecordSet{rec}).PrettyJson(); got != `[{"value":"red"}]` {
		t.Errorf("RecordSet PrettyJson() = %q", got)
	}
}

func TestModelToRecord(t *testing.T) {
	rec, err := ModelToRecord(testValue{Value: "red", Synonyms: []string{"crimson"}})
	if err != nil {
		t.Fatalf("ModelToRecord() error = %v", err)
	}
	if diff := cmp.Diff(Record{"value": "red", "synonyms": []any{"crimson"}}, rec); diff != "" {
		t.Errorf("ModelToRecord() mismatch (-want +got):\n%s", diff)
	}
	if _, err := ModelToRecord([]string{"x"}); err == nil {
		t.Error("ModelToRecord() accepted a non-object")
	}
}

func TestUnmarshalToRecordUnion(t *testing.T) {
	tests := []struct {
		name string
		code int
		body string
		want Renderable
	}{
		{name: "object", code: 200, body: `{"session_id": "s-1"}`, want: Record{"session_id": "s-1"}},
		{name: "array", code: 200, body: `[{"value": "red"}]`, want: RecordSet{{"value": "red"}}},
		{name: "scalar array", code: 200, body: `["a"]`, want: RecordSet{{customRawKey: "a"}}},
		{name: "empty body", code: 200, body: ``, want: Record{}},
		{name: "no content", code: http.StatusNoContent, body: `ignored`, want: Record{}},
		{name: "scalar", code: 200, body: `"ok"`, want: Record{customRawKey: "ok"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{StatusCode: tt.code, Body: io.NopCloser(strings.NewReader(tt.body))}
			got, err := unmarshalToRecordUnion(resp)
			if err != nil {
				t.Fatalf("unmarshalToRecordUnion() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unmarshalToRecordUnion() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetResourceKey(t *testing.T) {
	rec := Record{"value": "red"}
	setResourceKey(rec, "getValue")
	if rec[ResourceTypeKey] != "getValue" {
		t.Errorf("Record resource key = %v", rec[ResourceTypeKey])
	}
	empty := Record{}
	setResourceKey(empty, "deleteValue")
	if !empty.Empty() {
		t.Error("empty Record should stay empty")
	}
	rs := RecordSet{{"value": "red"}}
	setResourceKey(rs, "listValues")
	if rs[0][ResourceTypeKey] != "listValues" {
		t.Errorf("RecordSet resource key = %v", rs[0][ResourceTypeKey])
	}
}
