package hash

import (
	"math"
	"testing"

	"src.anyval.sh/pkg/tt"
)

func TestDJB(t *testing.T) {
	tt.Test(t, tt.Fn("DJB", DJB), tt.Table{
		tt.Args().Rets(DJBInit),
		tt.Args(uint32(1)).Rets(DJBInit*33 + 1),
		tt.Args(uint32(1), uint32(2)).Rets((DJBInit*33+1)*33 + 2),
	})
}

func TestUInt64(t *testing.T) {
	tt.Test(t, tt.Fn("UInt64", UInt64), tt.Table{
		tt.Args(uint64(0)).Rets(uint32(0)),
		tt.Args(uint64(7)).Rets(uint32(7)),
		tt.Args(uint64(1) << 32).Rets(uint32(33)),
	})
}

func TestFloat64(t *testing.T) {
	if Float64(math.Copysign(0, -1)) != Float64(0) {
		t.Errorf("-0 and +0 hash differently")
	}
	if Float64(1) == Float64(2) {
		t.Errorf("1 and 2 hash the same")
	}
}

func TestString(t *testing.T) {
	tt.Test(t, tt.Fn("String", String), tt.Table{
		tt.Args("").Rets(DJBInit),
		tt.Args("a").Rets(DJBInit*33 + 'a'),
	})
}
