package vals

import (
	"slices"
	"testing"

	"src.anyval.sh/pkg/errs"
	"src.anyval.sh/pkg/testutil"
	"src.anyval.sh/pkg/tt"
)

func TestFromNumber(t *testing.T) {
	tt.Test(t, tt.Fn("FromNumber[int]", FromNumber[int]), tt.Table{
		tt.Args(2).Rets(Number(2)),
		tt.Args(-7).Rets(Number(-7)),
	})
	tt.Test(t, tt.Fn("FromNumber[float64]", FromNumber[float64]), tt.Table{
		tt.Args(0.1).Rets(Number(0.1)),
	})
	tt.Test(t, tt.Fn("FromNumber[int8]", FromNumber[int8]), tt.Table{
		tt.Args(int8(-128)).Rets(Number(-128)),
	})
	tt.Test(t, tt.Fn("FromNumber[uint64]", FromNumber[uint64]), tt.Table{
		tt.Args(uint64(1) << 40).Rets(Number(1 << 40)),
	})
	tt.Test(t, tt.Fn("FromNumber[float32]", FromNumber[float32]), tt.Table{
		tt.Args(float32(0.5)).Rets(Number(0.5)),
	})
}

func TestMakeTextList(t *testing.T) {
	tt.Test(t, tt.Fn("MakeTextList", MakeTextList), tt.Table{
		tt.Args().Rets(MakeList()),
		tt.Args("hello", "there").Rets(MakeList(Text("hello"), Text("there"))),
	})
}

func TestCollectList(t *testing.T) {
	vs := []Value{Number(3), Text("b"), Number(3)}
	TestValue(t, CollectList(slices.Values(vs))).
		Equal(MakeList(vs...)).
		Repr(`[(num 3) "b" (num 3)]`)
}

func TestMakeList_CopiesArguments(t *testing.T) {
	vs := []Value{Text("a"), Text("b")}
	l := MakeList(vs...)
	vs[0] = Text("changed")
	TestValue(t, l).Equal(MakeTextList("a", "b"))
}

func TestMakeMapping_OddArguments(t *testing.T) {
	tt.Test(t, tt.Fn("Recover", testutil.Recover), tt.Table{
		tt.Args(func() { MakeMapping(Text("k")) }).Rets("odd number of arguments to MakeMapping"),
	})
}

func badGoValue(actual string) errs.BadValue {
	return errs.BadValue{
		What:   "Go value",
		Valid:  "number, string, slice, array or map",
		Actual: actual,
	}
}

type myInt int

func TestFromGo(t *testing.T) {
	tt.Test(t, tt.Fn("FromGo", FromGo), tt.Table{
		tt.Args(1).Rets(Number(1), nil),
		tt.Args(uint16(65535)).Rets(Number(65535), nil),
		tt.Args(myInt(5)).Rets(Number(5), nil),
		tt.Args(2.5).Rets(Number(2.5), nil),
		tt.Args("text").Rets(Text("text"), nil),
		tt.Args(Text("already")).Rets(Text("already"), nil),
		tt.Args(MakeSet(Number(1))).Rets(MakeSet(Number(1)), nil),

		tt.Args([]string{"a", "b"}).Rets(MakeTextList("a", "b"), nil),
		tt.Args([2]int{1, 2}).Rets(MakeList(Number(1), Number(2)), nil),
		tt.Args([]any{1, "a", []any{}, MakeSet()}).
			Rets(MakeList(Number(1), Text("a"), MakeList(), MakeSet()), nil),
		tt.Args([]Value{Text("v")}).Rets(MakeTextList("v"), nil),
		tt.Args(map[string]any{"b": 2, "a": []string{"x"}}).
			Rets(MakeMapping(Text("a"), MakeTextList("x"), Text("b"), Number(2)), nil),
		tt.Args(map[any]any{1: "one", "two": 2}).
			Rets(MakeMapping(Number(1), Text("one"), Text("two"), Number(2)), nil),

		tt.Args(nil).Rets(nil, badGoValue("nil")),
		tt.Args(true).Rets(nil, badGoValue("bool")),
		tt.Args(struct{}{}).Rets(nil, badGoValue("struct {}")),
		tt.Args([]any{1, false}).Rets(nil, badGoValue("bool")),
		tt.Args([]any{nil}).Rets(nil, badGoValue("interface {}")),
		tt.Args(map[string]any{"k": nil}).Rets(nil, badGoValue("interface {}")),
		tt.Args(map[bool]int{true: 1}).Rets(nil, badGoValue("bool")),
	})
}
