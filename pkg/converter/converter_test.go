package converter

import (
	"math/big"
	"reflect"
	"strconv"
	"testing"
)

func TestIntRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, -1, 42, -9000, 1<<31 - 1, -(1 << 31)} {
		v, err := Int(strconv.Itoa(n))
		if err != nil {
			t.Fatalf("Int(%d) failed: %v", n, err)
		}
		if v != n {
			t.Errorf("Int round trip: got %v, want %d", v, n)
		}
	}
}

func TestIntMalformed(t *testing.T) {
	for _, arg := range []string{"abc", "", "1.5", "1x"} {
		v, err := Int(arg)
		if err == nil {
			t.Errorf("Int(%q) = %v, expected failure", arg, v)
		}
		if err != nil && err.Error() == "" {
			t.Errorf("Int(%q) failure carries no message", arg)
		}
	}
}

func TestBoundedIntsOverflow(t *testing.T) {
	tests := []struct {
		name string
		conv Converter
		ok   string
		over string
	}{
		{"int8", Int8, "127", "128"},
		{"int16", Int16, "32767", "32768"},
		{"int32", Int32, "2147483647", "2147483648"},
		{"int64", Int64, "9223372036854775807", "9223372036854775808"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.conv(tt.ok); err != nil {
				t.Errorf("%s(%q) unexpectedly failed: %v", tt.name, tt.ok, err)
			}
			if _, err := tt.conv(tt.over); err == nil {
				t.Errorf("%s(%q) should overflow", tt.name, tt.over)
			}
		})
	}
}

func TestBoolCaseInsensitive(t *testing.T) {
	for _, arg := range []string{"true", "TRUE", "True", "tRuE"} {
		v, err := Bool(arg)
		if err != nil || v != true {
			t.Errorf("Bool(%q) = %v, %v; want true", arg, v, err)
		}
	}
	for _, arg := range []string{"false", "FALSE", "False"} {
		v, err := Bool(arg)
		if err != nil || v != false {
			t.Errorf("Bool(%q) = %v, %v; want false", arg, v, err)
		}
	}
	for _, arg := range []string{"yes", "no", "1", "0", ""} {
		if _, err := Bool(arg); err == nil {
			t.Errorf("Bool(%q) should fail", arg)
		}
	}
}

func TestFloats(t *testing.T) {
	v, err := Float64("2.5")
	if err != nil || v != 2.5 {
		t.Errorf("Float64(2.5) = %v, %v", v, err)
	}
	v, err = Float32("-0.5")
	if err != nil || v != float32(-0.5) {
		t.Errorf("Float32(-0.5) = %v, %v", v, err)
	}
	if _, err := Float64("two"); err == nil {
		t.Errorf("Float64(two) should fail")
	}
}

func TestBigIntegers(t *testing.T) {
	v, err := BigInt("123456789012345678901234567890")
	if err != nil {
		t.Fatalf("BigInt failed: %v", err)
	}
	want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	if v.(*big.Int).Cmp(want) != 0 {
		t.Errorf("BigInt = %v, want %v", v, want)
	}
	if _, err := BigInt("12x"); err == nil {
		t.Errorf("BigInt(12x) should fail")
	}
	if _, err := BigFloat("1.25e10"); err != nil {
		t.Errorf("BigFloat(1.25e10) failed: %v", err)
	}
	if _, err := BigFloat("abc"); err == nil {
		t.Errorf("BigFloat(abc) should fail")
	}
}

func TestString(t *testing.T) {
	v, err := String("anything at all")
	if err != nil || v != "anything at all" {
		t.Errorf("String passthrough broken: %v, %v", v, err)
	}
}

func TestArrayConverter(t *testing.T) {
	ints := Array(Int, ",")

	v, err := ints("1,2,3")
	if err != nil {
		t.Fatalf("Array(1,2,3) failed: %v", err)
	}
	if !reflect.DeepEqual(v, []any{1, 2, 3}) {
		t.Errorf("Array(1,2,3) = %v", v)
	}

	_, err = ints("1,x,3")
	if err == nil {
		t.Fatalf("Array(1,x,3) should fail")
	}
	if want, _ := Int("x"); want != nil {
		t.Fatalf("test setup: Int(x) should fail")
	}
	if _, elemErr := Int("x"); err.Error() != elemErr.Error() {
		t.Errorf("array failure should propagate the element message; got %q", err)
	}

	v, err = ints(",")
	if err != nil || !reflect.DeepEqual(v, []any{}) {
		t.Errorf("delimiter-only input should yield an empty slice, got %v, %v", v, err)
	}

	v, err = ints("7")
	if err != nil || !reflect.DeepEqual(v, []any{7}) {
		t.Errorf("single element = %v, %v", v, err)
	}
}
