package wildcard

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/kbukum/stringr/errors"
	"github.com/kbukum/stringr/logger"
	"github.com/kbukum/stringr/observability"
)

func TestSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{"default", DefaultSpec(), false},
		{"custom", Spec{Multi: '%', Single: '_', IgnoreCase: true}, false},
		{"non-ascii symbols", Spec{Multi: '…', Single: '·'}, false},
		{"zero multi", Spec{Single: '?'}, true},
		{"zero single", Spec{Multi: '*'}, true},
		{"equal symbols", Spec{Multi: '*', Single: '*'}, true},
		{"surrogate multi", Spec{Multi: 0xD800, Single: '?'}, true},
		{"negative single", Spec{Multi: '*', Single: -1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spec.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.HasCode(err, errors.ErrCodeInvalidSpec) {
				t.Errorf("expected INVALID_SPEC, got %v", err)
			}
		})
	}
}

func TestSpec_String(t *testing.T) {
	want := `multi='*' single='?' ignore_case=false`
	if got := DefaultSpec().String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCompile(t *testing.T) {
	m, err := Compile("*.go", DefaultSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Pattern() != "*.go" || m.String() != "*.go" {
		t.Errorf("unexpected pattern %q / %q", m.Pattern(), m.String())
	}
	if m.Spec() != DefaultSpec() {
		t.Errorf("unexpected spec %s", m.Spec())
	}
	if !m.Match("main.go") || m.Match("main.rs") {
		t.Error("compiled matcher disagrees with expected results")
	}
}

func TestCompile_InvalidSpec(t *testing.T) {
	m, err := Compile("a*", Spec{Multi: '*', Single: '*'})
	if err == nil {
		t.Fatal("expected error for equal symbols")
	}
	if m != nil {
		t.Error("expected nil matcher on error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidSpec {
		t.Errorf("expected INVALID_SPEC, got %s", appErr.Code)
	}
	if appErr.Details["spec"] == nil {
		t.Error("expected spec detail")
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustCompile("a", Spec{})
}

func TestMatcher_AgreesWithMatch(t *testing.T) {
	specs := []Spec{DefaultSpec(), {Multi: '*', Single: '?', IgnoreCase: true}, {Multi: '%', Single: '_'}}
	patterns := []string{"", "*", "a*b", "?b*", "%b_", "A*"}
	inputs := []string{"", "ab", "aab", "AB", "xbz", "a*b"}

	for _, spec := range specs {
		for _, p := range patterns {
			m := MustCompile(p, spec)
			for _, in := range inputs {
				if got, want := m.Match(in), Match(in, p, spec); got != want {
					t.Errorf("Matcher(%q, %s).Match(%q) = %v, Match = %v", p, spec, in, got, want)
				}
			}
		}
	}
}

func TestCompile_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", &buf)

	MustCompile("*.log", DefaultSpec(), WithLogger(log))

	out := buf.String()
	if !strings.Contains(out, "pattern compiled") {
		t.Errorf("expected compile debug log, got %q", out)
	}
	if !strings.Contains(out, `"pattern":"*.log"`) {
		t.Errorf("expected pattern field, got %q", out)
	}
}

func TestMatcher_Filter(t *testing.T) {
	m := MustCompile("*.go", DefaultSpec())

	got := m.Filter([]string{"main.go", "README.md", "util.go", "go.mod"})
	want := []string{"main.go", "util.go"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}

	if got := m.Filter(nil); got != nil {
		t.Errorf("expected nil for no inputs, got %v", got)
	}
	if got := m.Filter([]string{"a.rs"}); got != nil {
		t.Errorf("expected nil when nothing matches, got %v", got)
	}
}

func generateInputs(n int) []string {
	inputs := make([]string, n)
	for i := range inputs {
		switch i % 3 {
		case 0:
			inputs[i] = fmt.Sprintf("src/pkg%d/file%d.go", i%17, i)
		case 1:
			inputs[i] = fmt.Sprintf("docs/page%d.md", i)
		default:
			inputs[i] = fmt.Sprintf("src/pkg%d/file%d_test.go", i%17, i)
		}
	}
	return inputs
}

func TestMatcher_FilterParallel(t *testing.T) {
	m := MustCompile("src/*_test.go", DefaultSpec())

	sizes := []int{1, 2, runtime.NumCPU() - 1, runtime.NumCPU() + 1, runtime.NumCPU() * 100}
	for _, n := range sizes {
		if n < 1 {
			continue
		}
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			inputs := generateInputs(n)
			got, err := m.FilterParallel(context.Background(), inputs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(m.Filter(inputs), got); diff != "" {
				t.Errorf("FilterParallel differs from Filter (-serial +parallel):\n%s", diff)
			}
		})
	}
}

func TestMatcher_FilterParallel_Empty(t *testing.T) {
	m := MustCompile("*", DefaultSpec())
	got, err := m.FilterParallel(context.Background(), nil)
	if err != nil || got != nil {
		t.Errorf("expected nil, nil; got %v, %v", got, err)
	}
}

func TestMatcher_FilterParallel_Cancelled(t *testing.T) {
	m := MustCompile("*", DefaultSpec())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := m.FilterParallel(ctx, generateInputs(1000))
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil result, got %d items", len(got))
	}
}

func TestMatcher_WithMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	metrics, err := observability.NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	m := MustCompile("*.go", DefaultSpec(), WithMetrics(metrics))
	m.Filter([]string{"a.go", "b.md", "c.go"})
	if _, err := m.FilterParallel(context.Background(), []string{"d.go", "e.md"}); err != nil {
		t.Fatalf("FilterParallel: %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	matched := map[bool]int64{}
	kept := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			sum, ok := md.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				switch md.Name {
				case observability.MetricMatchTotal:
					v, _ := dp.Attributes.Value(attribute.Key("matched"))
					matched[v.AsBool()] += dp.Value
				case observability.MetricFilterKept:
					v, _ := dp.Attributes.Value(attribute.Key("mode"))
					kept[v.AsString()] += dp.Value
				}
			}
		}
	}

	if matched[true] != 3 || matched[false] != 2 {
		t.Errorf("unexpected match totals: %v", matched)
	}
	if kept["serial"] != 2 || kept["parallel"] != 1 {
		t.Errorf("unexpected kept totals: %v", kept)
	}
}

func BenchmarkMatcher_Filter(b *testing.B) {
	m := MustCompile("src/*_test.go", DefaultSpec())
	inputs := generateInputs(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Filter(inputs)
	}
}

func BenchmarkMatcher_FilterParallel(b *testing.B) {
	m := MustCompile("src/*_test.go", DefaultSpec())
	inputs := generateInputs(10000)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.FilterParallel(ctx, inputs); err != nil {
			b.Fatal(err)
		}
	}
}
