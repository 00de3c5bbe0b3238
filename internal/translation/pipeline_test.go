package translation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestProcess(t *testing.T) {
	result, err := Process(context.Background(), NewEngine(DefaultFields()), Input{
		Records:     []byte(`[{"name":"魚A","type":1},{"name":"魚B","type":2}]`),
		Table:       []byte("\ufeff中文,translation\n魚A,FishA\n"),
		PreviewSize: DefaultPreviewSize,
	})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if result.Report.Replaced != 1 || result.Report.TableEntries != 1 {
		t.Fatalf("unexpected report: %+v", result.Report)
	}

	var output []map[string]any
	if err := json.Unmarshal(result.Output, &output); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(output) != 2 || output[0]["name"] != "FishA" || output[1]["name"] != "魚B" {
		t.Fatalf("unexpected output: %s", result.Output)
	}
}

func TestProcessFailsAtomically(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  error
	}{
		{
			name:  "records not array",
			input: Input{Records: []byte(`{"name":"X"}`), Table: []byte("a,b\n")},
			want:  ErrRecordsNotArray,
		},
		{
			name:  "table encoding",
			input: Input{Records: []byte(`[]`), Table: []byte("a,b\n\xff,x\n")},
			want:  ErrTableEncoding,
		},
	}
	for _, tt := range tests {
		result, err := Process(context.Background(), NewEngine(DefaultFields()), tt.input)
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
		if result.Output != nil {
			t.Fatalf("%s: expected no output on failure", tt.name)
		}
	}
}
