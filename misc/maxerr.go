package main

import (
	"fmt"
	"log"
	"math"
	"math/big"
	"math/rand"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	dd "github.com/shabbyrobe/go-dd"
)

// Scans randomized operands for the worst observed error of the Double
// arithmetic against a high-precision big.Float oracle, measured in units of
// Eps. Add and sub are scored against the larger operand's magnitude because
// the fast policy renormalizes only once and heavy cancellation has no
// relative bound; mul, div and sqrt are scored relative to the true result.
//
// The tolerances in the fuzz tests were picked by watching this tool's
// output. Rerun it when a bound looks too tight or too generous.

const usage = `Worst-case error finder

Usage: <op> <iters> [seed]
Ops: add sub mul div sqrt`

const oraclePrec = 240

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 3 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	op := os.Args[1]
	iters, err := strconv.Atoi(os.Args[2])
	if err != nil {
		return err
	}

	var seed int64 = 1
	if len(os.Args) > 3 {
		seed, err = strconv.ParseInt(os.Args[3], 10, 64)
		if err != nil {
			return err
		}
	}

	rng := rand.New(rand.NewSource(seed))

	var w worst
	for i := 0; i < iters; i++ {
		a, b := randDouble(rng), randDouble(rng)

		var got dd.Double
		var want *big.Float

		switch op {
		case "add":
			got = a.Add(b)
			want = oracle().Add(a.AsBigFloat(), b.AsBigFloat())
		case "sub":
			got = a.Sub(b)
			want = oracle().Sub(a.AsBigFloat(), b.AsBigFloat())
		case "mul":
			got = a.Mul(b)
			want = oracle().Mul(a.AsBigFloat(), b.AsBigFloat())
		case "div":
			if b.IsZero() {
				continue
			}
			got = a.Div(b)
			want = oracle().Quo(a.AsBigFloat(), b.AsBigFloat())
		case "sqrt":
			a = a.Abs()
			got = a.Sqrt()
			want = oracle().Sqrt(a.AsBigFloat())
		default:
			return fmt.Errorf("op must be add, sub, mul, div, sqrt")
		}

		score := scoreOp(op, a, b, got, want)
		if score > w.score {
			w = worst{score: score, a: a, b: b}
		}
	}

	fmt.Printf("%s worst after %d iters (seed %d): %.4g eps\n", op, iters, seed, w.score)
	spew.Dump(w)

	ahi, alo := w.a.Raw()
	bhi, blo := w.b.Raw()
	fmt.Printf("a: DoubleFromRaw(%x, %x)\n", ahi, alo)
	fmt.Printf("b: DoubleFromRaw(%x, %x)\n", bhi, blo)
	return nil
}

type worst struct {
	score float64
	a, b  dd.Double
}

func oracle() *big.Float {
	return new(big.Float).SetPrec(oraclePrec)
}

func scoreOp(op string, a, b, got dd.Double, want *big.Float) float64 {
	if got.IsNaN() || want.Sign() == 0 {
		return 0
	}

	diff := oracle().Sub(got.AsBigFloat(), want)
	diff.Abs(diff)

	switch op {
	case "add", "sub":
		mag := math.Max(math.Abs(a.Float64()), math.Abs(b.Float64()))
		if mag == 0 {
			return 0
		}
		diff.Quo(diff, new(big.Float).SetFloat64(mag))
	default:
		diff.Quo(diff, new(big.Float).Abs(want))
	}

	f, _ := diff.Float64()
	return f / dd.Eps
}

func randDouble(rng *rand.Rand) dd.Double {
	v := dd.RandDouble(rng)
	if rng.Intn(2) == 1 {
		v = v.Neg()
	}
	return v.Ldexp(int(rng.Int31n(201)) - 100)
}
