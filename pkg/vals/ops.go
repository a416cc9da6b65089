package vals

import (
	"math"
	"strconv"
	"strings"

	"src.anyval.sh/pkg/errs"
	"src.anyval.sh/pkg/logutil"
	"src.anyval.sh/pkg/strutil"
)

var logger = logutil.GetLogger("[vals] ")

// MaxTextLen is the maximum length in bytes of a Text built by repetition.
const MaxTextLen = 1 << 30

// Op is a binary operator.
type Op uint8

// Possible Op values.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// Ops lists all the Op values.
var Ops = []Op{OpAdd, OpSub, OpMul, OpDiv}

var opSymbols = [...]string{OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/"}

func (op Op) String() string {
	if int(op) < len(opSymbols) {
		return opSymbols[op]
	}
	return "!!op"
}

type binaryFn func(a, b Value) (Value, error)

type dispatchKey struct {
	op       Op
	lhs, rhs Kind
}

// The operator table. Every (Op, Kind, Kind) combination absent from it is
// unsupported. The functions may assume the dynamic types of their operands
// from the key.
var dispatch = map[dispatchKey]binaryFn{
	{OpAdd, KindNumber, KindNumber}: arith(func(a, b float64) float64 { return a + b }),
	{OpAdd, KindNumber, KindText}:   concatNumberText,
	{OpAdd, KindText, KindNumber}:   concatTextNumber,

	{OpSub, KindNumber, KindNumber}: arith(func(a, b float64) float64 { return a - b }),

	{OpMul, KindNumber, KindNumber}: arith(func(a, b float64) float64 { return a * b }),
	{OpMul, KindText, KindNumber}:   repeatText,

	// Division by zero follows IEEE 754 and yields ±Inf or NaN.
	{OpDiv, KindNumber, KindNumber}: arith(func(a, b float64) float64 { return a / b }),
	{OpDiv, KindText, KindText}:     splitText,
	{OpDiv, KindText, KindNumber}:   chunkText,
}

// Supported reports whether op has a rule for operands of the given kinds.
func Supported(op Op, lhs, rhs Kind) bool {
	_, ok := dispatch[dispatchKey{op, lhs, rhs}]
	return ok
}

// Apply applies op to a and b. It returns an errs.UnsupportedOp if op has no
// rule for the kinds of a and b.
func Apply(op Op, a, b Value) (Value, error) {
	if a != nil && b != nil {
		if fn, ok := dispatch[dispatchKey{op, a.Kind(), b.Kind()}]; ok {
			return fn(a, b)
		}
	}
	err := errs.UnsupportedOp{Op: op.String(), LHSKind: KindOf(a), RHSKind: KindOf(b)}
	logger.Println(err)
	return nil, err
}

// Add implements the + operator:
//
//   - number + number is the sum;
//   - number + text and text + number concatenate the text with the
//     formatted number, in operand order.
func Add(a, b Value) (Value, error) { return Apply(OpAdd, a, b) }

// Sub implements the - operator, defined only for two numbers.
func Sub(a, b Value) (Value, error) { return Apply(OpSub, a, b) }

// Mul implements the * operator:
//
//   - number * number is the product;
//   - text * number repeats the text floor(number) times.
func Mul(a, b Value) (Value, error) { return Apply(OpMul, a, b) }

// Div implements the / operator:
//
//   - number / number is the quotient;
//   - text / text splits the left operand at every occurrence of the right
//     one, yielding a list of text;
//   - text / number cuts the text into chunks of floor(number) characters,
//     yielding a list of text. The last chunk may be shorter.
func Div(a, b Value) (Value, error) { return Apply(OpDiv, a, b) }

func arith(f func(a, b float64) float64) binaryFn {
	return func(a, b Value) (Value, error) {
		return Number(f(float64(a.(Number)), float64(b.(Number)))), nil
	}
}

func concatNumberText(a, b Value) (Value, error) {
	return Text(formatNumber(float64(a.(Number))) + string(b.(Text))), nil
}

func concatTextNumber(a, b Value) (Value, error) {
	return Text(string(a.(Text)) + formatNumber(float64(b.(Number)))), nil
}

func repeatText(a, b Value) (Value, error) {
	s, n := string(a.(Text)), math.Floor(float64(b.(Number)))
	if s == "" || math.IsNaN(n) || n < 1 {
		return Text(""), nil
	}
	tooLarge := errs.OutOfRange{
		What:      "repeat count",
		ValidLow:  "0",
		ValidHigh: strconv.Itoa(MaxTextLen / len(s)),
		Actual:    formatNumber(n),
	}
	if n >= math.MaxInt32 {
		return nil, tooLarge
	}
	repeated, ok := strutil.RepeatCapped(s, int(n), MaxTextLen)
	if !ok {
		return nil, tooLarge
	}
	return Text(repeated), nil
}

func splitText(a, b Value) (Value, error) {
	s, sep := string(a.(Text)), string(b.(Text))
	if sep == "" {
		// The empty delimiter also matches at both ends.
		parts := append([]string{""}, strings.Split(s, "")...)
		return MakeTextList(append(parts, "")...), nil
	}
	return MakeTextList(strings.Split(s, sep)...), nil
}

func chunkText(a, b Value) (Value, error) {
	s, n := string(a.(Text)), math.Floor(float64(b.(Number)))
	if math.IsNaN(n) || n < 1 {
		return nil, errs.OutOfRange{
			What:      "chunk size",
			ValidLow:  "1",
			ValidHigh: "inf",
			Actual:    formatNumber(float64(b.(Number))),
		}
	}
	if s == "" {
		return List{}, nil
	}
	// A text never has more characters than bytes.
	size := len(s)
	if n < float64(size) {
		size = int(n)
	}
	return MakeTextList(strutil.ChunkRunes(s, size)...), nil
}
