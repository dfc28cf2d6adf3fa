package batch_test

import (
	"context"
	"testing"

	"kermlc/internal/batch"
)

func TestRunCompilesEachUnitIndependently(t *testing.T) {
	units := []batch.Unit{
		{Name: "ok.kerml", Content: []byte("class Car {}")},
		{Name: "bad.kerml", Content: []byte("class Car :> Missing {}")},
	}

	results, err := batch.Run(context.Background(), units, batch.Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if results[0].Err != nil {
		t.Fatalf("unexpected error on unit 0: %v", results[0].Err)
	}
	if len(results[0].Diags) != 0 {
		t.Fatalf("expected no diagnostics on unit 0, got %v", results[0].Diags)
	}

	if len(results[1].Diags) == 0 {
		t.Fatal("expected an undefined-supertype diagnostic on unit 1")
	}
}

func TestRunPreservesUnitOrder(t *testing.T) {
	units := make([]batch.Unit, 0, 8)
	for i := 0; i < 8; i++ {
		units = append(units, batch.Unit{Name: "u.kerml", Content: []byte("class Car {}")})
	}

	results, err := batch.Run(context.Background(), units, batch.Options{MaxConcurrency: 2})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(results) != len(units) {
		t.Fatalf("expected %d results, got %d", len(units), len(results))
	}
}

func TestRunReportsMissingFile(t *testing.T) {
	units := []batch.Unit{{Name: "missing", Path: "/nonexistent/does-not-exist.kerml"}}

	results, err := batch.Run(context.Background(), units, batch.Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if results[0].Err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestRunHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	units := []batch.Unit{{Name: "a.kerml", Content: []byte("class Car {}")}}
	results, err := batch.Run(ctx, units, batch.Options{})
	if err == nil {
		t.Fatal("expected an error for a pre-canceled context")
	}
	if results[0].Err == nil {
		t.Fatal("expected the unit's own result to carry the cancellation error")
	}
}

func TestSummarizeTalliesUnitsAndDiagnostics(t *testing.T) {
	units := []batch.Unit{
		{Name: "ok.kerml", Content: []byte("class Car {}")},
		{Name: "bad.kerml", Content: []byte("class Car :> Missing {}")},
		{Name: "missing", Path: "/nonexistent/does-not-exist.kerml"},
	}

	results, err := batch.Run(context.Background(), units, batch.Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	summary := batch.Summarize(results)
	if summary.Units != 3 {
		t.Fatalf("expected Units=3, got %d", summary.Units)
	}
	if summary.Failed != 1 {
		t.Fatalf("expected Failed=1, got %d", summary.Failed)
	}
	if summary.WithErrors != 1 {
		t.Fatalf("expected WithErrors=1, got %d", summary.WithErrors)
	}
}
