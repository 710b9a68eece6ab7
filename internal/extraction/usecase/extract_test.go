package usecase

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"salesreport-srv/internal/extraction"
	"salesreport-srv/pkg/log"
)

type fakeOllama struct {
	mu      sync.Mutex
	answers []string
	errs    []error
	calls   int
}

func (f *fakeOllama) Generate(ctx context.Context, system, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.answers) {
		return f.answers[i], nil
	}
	return f.answers[len(f.answers)-1], nil
}

func newExtractUC(model *fakeOllama, retries int) extraction.UseCase {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "console"})
	return New(l, model, Config{Retries: retries, RetryWait: time.Millisecond})
}

func TestExtract(t *testing.T) {
	ctx := context.Background()
	input := extraction.ExtractInput{CSV: "product,sales\nWidget,1\n"}

	t.Run("plain JSON array", func(t *testing.T) {
		uc := newExtractUC(&fakeOllama{answers: []string{`["Widget", "Gadget"]`}}, 0)
		out, err := uc.Extract(ctx, input)
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if !reflect.DeepEqual(out.Products, []string{"Widget", "Gadget"}) {
			t.Errorf("products = %v", out.Products)
		}
	})

	t.Run("array wrapped in prose and code fence", func(t *testing.T) {
		answer := "Here are the products:\n```json\n[\"Widget\"]\n```\n"
		uc := newExtractUC(&fakeOllama{answers: []string{answer}}, 0)
		out, err := uc.Extract(ctx, input)
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if !reflect.DeepEqual(out.Products, []string{"Widget"}) {
			t.Errorf("products = %v", out.Products)
		}
	})

	t.Run("duplicates removed preserving first occurrence", func(t *testing.T) {
		uc := newExtractUC(&fakeOllama{answers: []string{`["Widget", "widget", "Gadget", "WIDGET"]`}}, 0)
		out, err := uc.Extract(ctx, input)
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if !reflect.DeepEqual(out.Products, []string{"Widget", "Gadget"}) {
			t.Errorf("products = %v", out.Products)
		}
	})

	t.Run("blank entries dropped", func(t *testing.T) {
		uc := newExtractUC(&fakeOllama{answers: []string{`["Widget", "", "  "]`}}, 0)
		out, err := uc.Extract(ctx, input)
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if !reflect.DeepEqual(out.Products, []string{"Widget"}) {
			t.Errorf("products = %v", out.Products)
		}
	})

	t.Run("unusable answers yield empty extraction", func(t *testing.T) {
		for _, answer := range []string{
			"I could not find any products.",
			`{"products": true}`,
			`[1, 2, 3]`,
			`["Widget", 42]`,
		} {
			uc := newExtractUC(&fakeOllama{answers: []string{answer}}, 0)
			out, err := uc.Extract(ctx, input)
			if err != nil {
				t.Fatalf("Extract(%q): %v", answer, err)
			}
			if len(out.Products) != 0 {
				t.Errorf("Extract(%q) = %v, want empty", answer, out.Products)
			}
		}
	})

	t.Run("retries transport failures then succeeds", func(t *testing.T) {
		model := &fakeOllama{
			errs:    []error{errors.New("connection refused"), errors.New("connection refused")},
			answers: []string{"", "", `["Widget"]`},
		}
		uc := newExtractUC(model, 2)
		out, err := uc.Extract(ctx, input)
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if !reflect.DeepEqual(out.Products, []string{"Widget"}) {
			t.Errorf("products = %v", out.Products)
		}
		if model.calls != 3 {
			t.Errorf("model called %d times, want 3", model.calls)
		}
	})

	t.Run("unreachable after retries exhausted", func(t *testing.T) {
		boom := errors.New("connection refused")
		model := &fakeOllama{errs: []error{boom, boom, boom}}
		uc := newExtractUC(model, 2)
		_, err := uc.Extract(ctx, input)
		if !errors.Is(err, extraction.ErrAgentUnreachable) {
			t.Fatalf("err = %v, want ErrAgentUnreachable", err)
		}
		if model.calls != 3 {
			t.Errorf("model called %d times, want 3", model.calls)
		}
	})
}

func TestParseProducts(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		want   []string
		ok     bool
	}{
		{"empty array", `[]`, []string{}, true},
		{"nested brackets in prose", `The answer is ["A [prototype]", "B"]`, []string{"A [prototype]", "B"}, true},
		{"no array at all", "nothing here", nil, false},
		{"unbalanced", "[ oops", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseProducts(tc.answer)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && len(got) != len(tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
