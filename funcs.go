package safecalc

import (
	"math"
	"strings"
)

// Func is a function from reals to reals with a fixed number of arguments.
type Func interface {
	// Call evaluates the function. len(args) is always Arity(). Results
	// outside the function's domain should be NaN rather than a panic.
	Call(args []float64) float64

	// Arity returns the number of arguments the function takes.
	Arity() int
}

type unary func(float64) float64

func (f unary) Call(args []float64) float64 { return f(args[0]) }
func (unary) Arity() int                    { return 1 }

// Unary wraps a function of one variable into a Func.
func Unary(f func(x float64) float64) Func {
	return unary(f)
}

type binary func(float64, float64) float64

func (f binary) Call(args []float64) float64 { return f(args[0], args[1]) }
func (binary) Arity() int                    { return 2 }

// Binary wraps a function of two variables into a Func.
func Binary(f func(x, y float64) float64) Func {
	return binary(f)
}

type ternary func(float64, float64, float64) float64

func (f ternary) Call(args []float64) float64 { return f(args[0], args[1], args[2]) }
func (ternary) Arity() int                    { return 3 }

// Ternary wraps a function of three variables into a Func.
func Ternary(f func(x, y, z float64) float64) Func {
	return ternary(f)
}

// constants and funcs are the only names an expression can use. They are
// never modified after initialization.
var (
	constants = map[string]float64{
		"pi":  math.Pi,
		"e":   math.E,
		"tau": 2 * math.Pi,
		"phi": math.Phi,
		"inf": math.Inf(1),
	}

	funcs = map[string]Func{
		// trig
		"sin":  Unary(math.Sin),
		"cos":  Unary(math.Cos),
		"tan":  Unary(math.Tan),
		"asin": Unary(math.Asin),
		"acos": Unary(math.Acos),
		"atan": Unary(math.Atan),

		// hyperbolic
		"sinh":  Unary(math.Sinh),
		"cosh":  Unary(math.Cosh),
		"tanh":  Unary(math.Tanh),
		"asinh": Unary(math.Asinh),
		"acosh": Unary(math.Acosh),
		"atanh": Unary(math.Atanh),

		// powers and logarithms
		"sqrt":  Unary(math.Sqrt),
		"cbrt":  Unary(math.Cbrt),
		"exp":   Unary(math.Exp),
		"ln":    Unary(math.Log),
		"log":   Unary(math.Log),
		"log2":  Unary(math.Log2),
		"log10": Unary(math.Log10),

		// sign and rounding
		"abs":   Unary(math.Abs),
		"sign":  Unary(sign),
		"fract": Unary(fract),
		"floor": Unary(math.Floor),
		"ceil":  Unary(math.Ceil),
		"round": Unary(round),
		"trunc": Unary(math.Trunc),

		// angles
		"deg": Unary(func(x float64) float64 { return x * (180 / math.Pi) }),
		"rad": Unary(func(x float64) float64 { return x * (math.Pi / 180) }),

		"min":   Binary(math.Min),
		"max":   Binary(math.Max),
		"pow":   Binary(math.Pow),
		"atan2": Binary(math.Atan2),
		"mod":   Binary(mod),
		"hypot": Binary(math.Hypot),

		"clamp":      Ternary(clamp),
		"lerp":       Ternary(lerp),
		"mix":        Ternary(lerp),
		"smoothstep": Ternary(smoothstep),
	}
)

// LookupConstant returns the value of a named constant. Names are not case
// sensitive.
func LookupConstant(name string) (float64, bool) {
	v, ok := constants[strings.ToLower(name)]
	return v, ok
}

// LookupFunc returns a named function. Names are not case sensitive.
func LookupFunc(name string) (Func, bool) {
	f, ok := funcs[strings.ToLower(name)]
	return f, ok
}

// Constants returns the sorted names of all constants.
func Constants() []string {
	r := make([]string, 0, len(constants))
	for k := range constants {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// Functions returns the sorted names of all functions.
func Functions() []string {
	r := make([]string, 0, len(funcs))
	for k := range funcs {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// sign returns -1, 0, or 1 according to the sign of x. Zeros and NaN are
// returned as is.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

// round rounds half-way cases toward positive infinity, so round(-2.5) is -2.
func round(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}

// mod is the remainder of floored division; its sign follows y.
func mod(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func smoothstep(e0, e1, x float64) float64 {
	t := clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}
