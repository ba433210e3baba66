package dd

import (
	"math"
	"math/big"
)

const (
	// Eps is the effective machine epsilon of a Double: 2^-104.
	Eps = 4.93038065763132e-32

	// MinNormal is the smallest positive value that can still carry a full
	// 106-bit significand; below it the tail limb drops into the denormal
	// range. Equal to 2^(-1022+53).
	MinNormal = 2.0041683600089728e-292

	// Digits is the number of decimal digits String guarantees correct.
	Digits = 31
)

// Constant singletons, correctly rounded to two limbs. The pairs are
// pre-rounded literals rather than values derived at runtime, so kernels
// seeded from them are bit-stable across platforms and arithmetic modes.
var (
	TwoPi          = Double{6.283185307179586232e+00, 2.449293598294706414e-16}
	Pi             = Double{3.141592653589793116e+00, 1.224646799147353207e-16}
	HalfPi         = Double{1.570796326794896558e+00, 6.123233995736766036e-17}
	QuarterPi      = Double{7.853981633974482790e-01, 3.061616997868383018e-17}
	ThreeQuarterPi = Double{2.356194490192344837e+00, 9.1848509936051484375e-17}
	E              = Double{2.718281828459045091e+00, 1.445646891729250158e-16}
	Ln2            = Double{6.931471805599452862e-01, 2.319046813846299558e-17}
	Ln10           = Double{2.302585092994045901e+00, -2.170756223382249351e-16}

	MaxDouble     = Double{1.79769313486231570815e+308, 9.97920154767359795037e+291}
	SafeMaxDouble = Double{1.7976931080746007281e+308, 9.97920154767359795037e+291}
)

var (
	// pi16 is pi/16, the final modulus of the trig argument reduction.
	pi16 = Double{1.963495408493620697e-01, 7.654042494670957545e-18}

	nan    = Double{math.NaN(), math.NaN()}
	posInf = Double{math.Inf(1), math.Inf(1)}
	negInf = Double{math.Inf(-1), math.Inf(-1)}
)

// invFact holds 1/k! for k = 3 through 17, used by the exp and sin/cos
// Taylor tails.
var invFact = [15]Double{
	{1.66666666666666657e-01, 9.25185853854297066e-18},
	{4.16666666666666644e-02, 2.31296463463574266e-18},
	{8.33333333333333322e-03, 1.15648231731787138e-19},
	{1.38888888888888894e-03, -5.30054395437357706e-20},
	{1.98412698412698413e-04, 1.72095582934207053e-22},
	{2.48015873015873016e-05, 2.15119478667758816e-23},
	{2.75573192239858925e-06, -1.85839327404647208e-22},
	{2.75573192239858883e-07, 2.37677146222502973e-23},
	{2.50521083854417202e-08, -1.44881407093591197e-24},
	{2.08767569878681002e-09, -1.20734505911325997e-25},
	{1.60590438368216133e-10, 1.25852945887520981e-26},
	{1.14707455977297245e-11, 2.06555127528307454e-28},
	{7.64716373181981641e-13, 7.03872877733453001e-30},
	{4.77947733238738525e-14, 4.39920548583408126e-31},
	{2.81145725434552060e-15, 1.65088427308614326e-31},
}

// sinTable and cosTable hold sin(k*pi/16) and cos(k*pi/16) for k = 1..4,
// used for angle addition once reduction has brought the argument within
// pi/32.
var sinTable = [4]Double{
	{1.950903220161282758e-01, -7.991079068461731263e-18},
	{3.826834323650897818e-01, -1.005077269646158761e-17},
	{5.555702330196021776e-01, 4.709410940561676821e-17},
	{7.071067811865475727e-01, -4.833646656726456726e-17},
}

var cosTable = [4]Double{
	{9.807852804032304306e-01, 1.854693999782500573e-17},
	{9.238795325112867385e-01, 1.764504708433667706e-17},
	{8.314696123025452357e-01, 1.407385698472802389e-18},
	{7.071067811865475727e-01, -4.833646656726456726e-17},
}

// exactPrec is a big.Float precision wide enough to hold any finite Double
// exactly. The limbs of a legal pair can sit nearly the whole exponent range
// apart, so this is much larger than 106. Parsing uses it too: the hex wire
// form distinguishes pairs no shorter precision can.
const exactPrec = 2100

var (
	bigHalf = big.NewFloat(0.5)
	bigOne  = big.NewFloat(1)

	// This specifies the unit of relative error when comparing a Double
	// operation against the same operation performed by big.Float.
	//
	// Calculate like so:
	//	math.Ldexp(1, -104)
	//
	bigEps, _ = new(big.Float).SetString("4.93038065763132e-32")

	// This specifies the maximum relative drift tolerated when a value is
	// reduced to its Digits-digit decimal form and parsed back: one unit in
	// the last of the Digits significant places.
	//
	// Calculate like so:
	//	math.Pow(10, -(Digits - 1))
	//
	stringDiffLimit, _ = new(big.Float).SetString("1e-30")
)
