package safecalc

import (
	"math"
	"math/big"
	"reflect"
	"strings"
	"testing"

	"github.com/zephyrtronium/bigfloat"
)

// oracleprec is the precision of reference values.
const oracleprec = 256

func bf(x float64) *big.Float {
	return new(big.Float).SetPrec(oracleprec).SetFloat64(x)
}

func TestFuncArities(t *testing.T) {
	arities := map[int]string{
		1: "sin cos tan asin acos atan sinh cosh tanh asinh acosh atanh sqrt cbrt exp ln log log2 log10 abs sign fract floor ceil round trunc deg rad",
		2: "min max pow atan2 mod hypot",
		3: "clamp lerp smoothstep mix",
	}
	n := 0
	for arity, names := range arities {
		for _, name := range strings.Fields(names) {
			n++
			fn, ok := LookupFunc(name)
			if !ok {
				t.Errorf("no function %s", name)
				continue
			}
			if fn.Arity() != arity {
				t.Errorf("%s has arity %d, want %d", name, fn.Arity(), arity)
			}
		}
	}
	if got := len(Functions()); got != n {
		t.Errorf("have %d functions, want %d: %q", got, n, Functions())
	}
}

func TestConstants(t *testing.T) {
	want := []string{"e", "inf", "phi", "pi", "tau"}
	if got := Constants(); !reflect.DeepEqual(got, want) {
		t.Errorf("wrong constants: want %q, got %q", want, got)
	}
	for _, name := range want {
		if _, ok := LookupFunc(name); ok {
			t.Errorf("%s is both a constant and a function", name)
		}
	}
}

func TestConstantsExact(t *testing.T) {
	pi := bigfloat.Pi(new(big.Float).SetPrec(oracleprec))
	e := bigfloat.Exp(new(big.Float).SetPrec(oracleprec), bf(1))
	tau := new(big.Float).SetPrec(oracleprec).Mul(pi, bf(2))
	phi := new(big.Float).SetPrec(oracleprec).Sqrt(bf(5))
	phi.Add(phi, bf(1)).Quo(phi, bf(2))
	cases := []struct {
		name string
		want *big.Float
	}{
		{"pi", pi},
		{"e", e},
		{"tau", tau},
		{"phi", phi},
	}
	for _, c := range cases {
		want, _ := c.want.Float64()
		got, ok := LookupConstant(c.name)
		if !ok {
			t.Errorf("no constant %s", c.name)
			continue
		}
		if got != want {
			t.Errorf("%s is %v, correctly rounded value is %v", c.name, got, want)
		}
	}
	if v, _ := LookupConstant("inf"); !math.IsInf(v, 1) {
		t.Errorf("inf is %v", v)
	}
}

func TestFuncsAgainstOracle(t *testing.T) {
	call := func(name string, args ...float64) float64 {
		fn, ok := LookupFunc(name)
		if !ok {
			t.Fatalf("no function %s", name)
		}
		return fn.Call(args)
	}
	check := func(what string, got float64, want *big.Float) {
		t.Helper()
		w, _ := want.Float64()
		if math.Abs(got-w) > 1e-14*math.Abs(w) {
			t.Errorf("%s: got %v, want %v", what, got, w)
		}
	}
	for _, x := range []float64{-3, -0.5, 0.1, 1, 2.5, 10} {
		check("exp", call("exp", x), bigfloat.Exp(new(big.Float).SetPrec(oracleprec), bf(x)))
	}
	for _, x := range []float64{0.1, 0.5, 2, 10, 1000} {
		want := bigfloat.Log(new(big.Float).SetPrec(oracleprec), bf(x))
		check("ln", call("ln", x), want)
		check("log", call("log", x), want)
	}
	for _, c := range [][2]float64{{2, 0.5}, {3, 1.5}, {10, -2}, {0.5, 3.3}, {7, 0.25}} {
		want := bigfloat.Pow(new(big.Float).SetPrec(oracleprec), bf(c[0]), bf(c[1]))
		check("pow", call("pow", c[0], c[1]), want)
	}
}

func TestLookupCase(t *testing.T) {
	for _, name := range []string{"pi", "PI", "Pi", "pI"} {
		if _, ok := LookupConstant(name); !ok {
			t.Errorf("no constant %s", name)
		}
	}
	for _, name := range []string{"sqrt", "SQRT", "Sqrt"} {
		if _, ok := LookupFunc(name); !ok {
			t.Errorf("no function %s", name)
		}
	}
	for _, name := range []string{"", " pi", "pi ", "p", "sqrt2", "Math.sqrt"} {
		if _, ok := LookupConstant(name); ok {
			t.Errorf("found constant %q", name)
		}
		if _, ok := LookupFunc(name); ok {
			t.Errorf("found function %q", name)
		}
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{0, 0},
		{0.4, 0},
		{0.49999999999999994, 0},
		{0.5, 1},
		{2.5, 3},
		{-0.5, 0},
		{-2.5, -2},
		{-2.6, -3},
		{1e300, 1e300},
		{math.Inf(1), math.Inf(1)},
		{math.Inf(-1), math.Inf(-1)},
	}
	for _, c := range cases {
		if got := round(c.x); got != c.want {
			t.Errorf("round(%v): want %v, got %v", c.x, c.want, got)
		}
	}
	if got := round(math.NaN()); !math.IsNaN(got) {
		t.Errorf("round(NaN) is %v", got)
	}
}

func TestSign(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{3, 1},
		{-3, -1},
		{math.Inf(1), 1},
		{math.Inf(-1), -1},
		{0, 0},
	}
	for _, c := range cases {
		if got := sign(c.x); got != c.want {
			t.Errorf("sign(%v): want %v, got %v", c.x, c.want, got)
		}
	}
	if got := sign(math.Copysign(0, -1)); got != 0 || !math.Signbit(got) {
		t.Errorf("sign(-0) is %v", got)
	}
	if got := sign(math.NaN()); !math.IsNaN(got) {
		t.Errorf("sign(NaN) is %v", got)
	}
}

func TestMod(t *testing.T) {
	cases := []struct {
		x, y, want float64
	}{
		{7, 3, 1},
		{-7, 3, 2},
		{7, -3, -2},
		{-7, -3, -1},
		{6, 3, 0},
		{5.5, 2, 1.5},
	}
	for _, c := range cases {
		if got := mod(c.x, c.y); got != c.want {
			t.Errorf("mod(%v, %v): want %v, got %v", c.x, c.y, c.want, got)
		}
	}
}

func TestSmoothstep(t *testing.T) {
	cases := []struct {
		e0, e1, x, want float64
	}{
		{0, 1, -1, 0},
		{0, 1, 0, 0},
		{0, 1, 0.5, 0.5},
		{0, 1, 1, 1},
		{0, 1, 2, 1},
		{0, 2, 0.5, 0.15625},
		{1, 0, 0.25, 0.84375},
	}
	for _, c := range cases {
		if got := smoothstep(c.e0, c.e1, c.x); got != c.want {
			t.Errorf("smoothstep(%v, %v, %v): want %v, got %v", c.e0, c.e1, c.x, c.want, got)
		}
	}
}
