/*
Package dd provides a double-double floating point type (Double) carrying
roughly 32 significant decimal digits, mirroring much of the math package
API.

A Double is the unevaluated sum of two float64 limbs and is a value type;
all operations return new values.

Simple example:

	v := dd.DoubleFromInt(2).Sqrt()
	fmt.Println(v)
	// Output: 1.41421356237309504880168872421

Double values can be created from a variety of sources:

	DoubleFromRaw(hi, lo float64) Double
	DoubleFromFloat64(f float64) Double
	DoubleFromInt(v int) Double
	DoubleFromInt32(v int32) Double
	DoubleFromInt64(v int64) Double
	DoubleFromString(s string) (out Double, err error)
	DoubleFromBigFloat(v *big.Float) (out Double, accurate bool)

The two-argument constructors evaluate a single float64 operation without
rounding error, capturing the exact low-order bits in the second limb:

	DoubleFromSum(a, b float64) Double
	DoubleFromDiff(a, b float64) Double
	DoubleFromProd(a, b float64) Double
	DoubleFromSqr(a float64) Double

DoubleFromQuo(a, b float64) divides to the full Double precision; unlike
the others the quotient's error is not exactly representable.

Double supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package dd
