package translation

import (
	"bytes"
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/er336250/fish-test/internal/translation"

// Input carries the raw bytes of one run.
type Input struct {
	Records     []byte
	Table       []byte
	PreviewSize int
}

// Result is the outcome of a successful run.
type Result struct {
	Report Report
	// Output is the translated record array, encoded like the input.
	Output []byte
}

// Process decodes the records, loads the table, analyzes and encodes the
// translated records. It fails as a whole: on error no output is returned.
func Process(ctx context.Context, engine Engine, in Input) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "translation.Process")
	defer span.End()

	records, err := stage(ctx, tracer, "translation.DecodeRecords", func() (Records, error) {
		return DecodeRecords(in.Records)
	})
	if err != nil {
		return Result{}, fail(span, err)
	}
	span.SetAttributes(attribute.Int("translation.records", len(records)))

	table, err := stage(ctx, tracer, "translation.LoadTable", func() (Table, error) {
		return LoadTable(in.Table)
	})
	if err != nil {
		return Result{}, fail(span, err)
	}
	span.SetAttributes(attribute.Int("translation.table_entries", table.Len()))

	_, analyzeSpan := tracer.Start(ctx, "translation.Analyze")
	analysis := engine.Analyze(records, table, in.PreviewSize)
	analyzeSpan.SetAttributes(
		attribute.Int("translation.unique_names", analysis.Report.UniqueNames),
		attribute.Int("translation.replaced", analysis.Report.Replaced),
		attribute.Int("translation.not_found", len(analysis.Report.NotFound)),
		attribute.Int("translation.duplicates", len(analysis.Report.Duplicates)),
	)
	analyzeSpan.End()

	output, err := stage(ctx, tracer, "translation.EncodeRecords", func() ([]byte, error) {
		var buf bytes.Buffer
		if err := EncodeRecords(&buf, analysis.Records); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return Result{}, fail(span, err)
	}

	return Result{Report: analysis.Report, Output: output}, nil
}

func stage[T any](ctx context.Context, tracer trace.Tracer, name string, fn func() (T, error)) (T, error) {
	_, span := tracer.Start(ctx, name)
	defer span.End()
	value, err := fn()
	if err != nil {
		fail(span, err)
	}
	return value, err
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, err.Error())
	return err
}
