package safecalc_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/zephyrtronium/safecalc"
)

func TestLooksLikeExpression(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"5", false},
		{"-5", false},
		{"+5", false},
		{"3.14", false},
		{".5", false},
		{" 42 ", false},
		{"", false},
		{"abc", false},
		{"3,14", false},
		{"1e5", false},
		{"1+2", true},
		{"5-", true},
		{"2*3", true},
		{"7%2", true},
		{"(1)", true},
		{"2×3", true},
		{"2^3", true},
		{"2pi", true},
		{"pi", true},
		{"E", true},
		{"sqrt(4)", true},
		{"τ", true},
		{"max", true},
		{"１＋２", true},
	}
	for _, c := range cases {
		if got := safecalc.LooksLikeExpression(c.in); got != c.want {
			t.Errorf("LooksLikeExpression(%q): want %t, got %t", c.in, c.want, got)
		}
	}
}

func TestParseNumericInput(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		kind safecalc.ErrorKind
	}{
		{"42", 42, safecalc.KindNone},
		{" 3.5 ", 3.5, safecalc.KindNone},
		{"-0.25", -0.25, safecalc.KindNone},
		{"+7", 7, safecalc.KindNone},
		{"3,5", 3.5, safecalc.KindNone},
		{"2pi", 6.283185307179586, safecalc.KindNone},
		{"１２", 12, safecalc.KindNone},
		{"10/4", 2.5, safecalc.KindNone},
		{"", 0, safecalc.KindEmptyExpression},
		{"abc", 0, safecalc.KindUnknownIdentifier},
		{"1e5", 0, safecalc.KindUnknownIdentifier},
		{"inf", 0, safecalc.KindNotFiniteResult},
		{"NaN", 0, safecalc.KindUnknownIdentifier},
		{"0x10", 0, safecalc.KindUnknownIdentifier},
		{"1/0", 0, safecalc.KindNotFiniteResult},
	}
	for _, c := range cases {
		r := safecalc.ParseNumericInput(c.in)
		if r.Expression != c.in {
			t.Errorf("%q: reported expression %q", c.in, r.Expression)
		}
		if k := r.Kind(); k != c.kind {
			t.Errorf("%q: want %v, got %v (%v)", c.in, c.kind, k, r.Err)
			continue
		}
		if r.Success != (c.kind == safecalc.KindNone) {
			t.Errorf("%q: success is %t with error %v", c.in, r.Success, r.Err)
		}
		if r.Value != c.want {
			t.Errorf("%q: want %g, got %g", c.in, c.want, r.Value)
		}
	}
}

func TestResultJSON(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1+1", `{"success":true,"value":2,"expression":"1+1"}`},
		{"0*5", `{"success":true,"value":0,"expression":"0*5"}`},
		{"5/0", `{"success":false,"error":"result is not a finite number: +Inf","kind":"NotFiniteResult","expression":"5/0"}`},
		{"x", `{"success":false,"error":"1: unknown identifier \"x\"","kind":"UnknownIdentifier","expression":"x"}`},
		{"", `{"success":false,"error":"no expression","kind":"EmptyExpression","expression":""}`},
	}
	for _, c := range cases {
		b, err := json.Marshal(safecalc.Evaluate(c.src))
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if string(b) != c.want {
			t.Errorf("%q:\n\twant %s\n\tgot  %s", c.src, c.want, b)
		}
	}
}

func TestKindOf(t *testing.T) {
	if k := safecalc.KindOf(nil); k != safecalc.KindNone {
		t.Errorf("nil error has kind %v", k)
	}
	wrapped := fmt.Errorf("field: %w", &safecalc.CallError{Func: "min", Len: 1, Arity: 2})
	if k := safecalc.KindOf(wrapped); k != safecalc.KindArityMismatch {
		t.Errorf("wrapped CallError has kind %v", k)
	}
	if k := safecalc.KindOf(errors.New("other")); k != safecalc.KindSyntaxError {
		t.Errorf("foreign error has kind %v", k)
	}
	var ce *safecalc.CharacterError
	if r := safecalc.Evaluate("1#2"); !errors.As(r.Err, &ce) || ce.Char != '#' || ce.Col != 2 {
		t.Errorf("1#2 gave %#v", r.Err)
	}
}

func TestEvaluateConcurrent(t *testing.T) {
	srcs := []string{"2pi", "sqrt(16)+abs(-3)", "min(3,7)", "3,5*2", "clamp(15,0,10)"}
	want := make([]safecalc.Result, len(srcs))
	for i, src := range srcs {
		want[i] = safecalc.Evaluate(src)
	}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				for i, src := range srcs {
					if r := safecalc.Evaluate(src); r.Value != want[i].Value || r.Success != want[i].Success {
						t.Errorf("%q: want %g, got %g", src, want[i].Value, r.Value)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
