package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/carlease-calculator/internal/calculation"
	"github.com/rpgo/carlease-calculator/internal/domain"
	"github.com/rpgo/carlease-calculator/internal/output"
)

func defaultReport() *output.Report {
	in := domain.DefaultInput()
	slabs := domain.DefaultSlabTable()
	return output.NewReport(in, slabs, calculation.Project(in, slabs))
}

func TestNewReport(t *testing.T) {
	r := defaultReport()
	if r.Title != "Car Lease vs Buy Analysis" {
		t.Fatalf("Title = %q", r.Title)
	}
	if !r.Verdict.LeaseWins {
		t.Fatalf("expected the default scenario to favour leasing")
	}
	if len(r.Assumptions) == 0 {
		t.Fatalf("expected generated assumptions")
	}
	if got := len(r.Composition.Lease); got != 5 {
		t.Fatalf("expected 5 lease cost components, got %d", got)
	}
}

func TestReportGenerator_JSON_CSV(t *testing.T) {
	dir := t.TempDir()
	report := defaultReport()

	for format, ext := range map[string]string{"json": ".json", "csv": ".csv", "console": ".txt", "pdf": ".pdf"} {
		path, err := output.GenerateReport(report, format, dir)
		if err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		if filepath.Dir(path) != dir || !strings.HasPrefix(filepath.Base(path), "lease_vs_buy_") {
			t.Fatalf("%s: unexpected path %s", format, path)
		}
		if filepath.Ext(path) != ext {
			t.Fatalf("%s: expected extension %s, got %s", format, ext, path)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("%s: stat: %v", format, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s: empty report written", format)
		}
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := output.GenerateReport(defaultReport(), "definitely-not-a-format", t.TempDir())
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "unsupported report format") || !strings.Contains(msg, "Try one of:") {
		t.Fatalf("error message missing suggestions: %s", msg)
	}
}
