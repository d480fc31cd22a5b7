// SPDX-License-Identifier: MIT

package sym

import (
	"math"
	"strconv"
)

const (
	// exactMaxDenominator bounds q in the recognised form (p/q)·√n.
	exactMaxDenominator = 12

	// printTolerance is the relative tolerance String uses to print a
	// coefficient in exact form.
	printTolerance = 1e-12
)

// squareFree lists the radicands recognised by ExactForm, n = 1 first so
// plain rationals win over radicals.
var squareFree = []int{1, 2, 3, 5, 6, 7, 10, 11, 13, 14, 15, 17, 19, 21, 22, 23, 26, 29, 30}

// ExactForm recognises v ≈ (p/q)·√n with q ≤ 12 and square-free n ≤ 30.
// tol is relative to max(1, |v|). On success it returns the exact float
// value and its textual form, e.g. (0.8660254037844386, "sqrt(3)/2", true).
// Integers and zero are always recognised.
func ExactForm(v, tol float64) (float64, string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, "", false
	}
	scale := math.Max(1, math.Abs(v))
	if math.Abs(v) <= tol*scale {
		return 0, "0", true
	}

	for _, n := range squareFree {
		root := math.Sqrt(float64(n))
		for q := 1; q <= exactMaxDenominator; q++ {
			p := math.Round(v * float64(q) / root)
			if p == 0 || math.Abs(p) > 1e6 {
				continue
			}
			if g := gcd(int64(math.Abs(p)), int64(q)); g != 1 {
				continue // reached with a smaller q already
			}
			exact := p * root / float64(q)
			if math.Abs(exact-v) <= tol*scale {
				return exact, exactText(int64(p), q, n), true
			}
		}
	}

	return v, "", false
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// exactText renders (p/q)·√n.
func exactText(p int64, q, n int) string {
	sign := ""
	if p < 0 {
		sign = "-"
		p = -p
	}

	var num string
	switch {
	case n == 1:
		num = strconv.FormatInt(p, 10)
	case p == 1:
		num = "sqrt(" + strconv.Itoa(n) + ")"
	default:
		num = strconv.FormatInt(p, 10) + "*sqrt(" + strconv.Itoa(n) + ")"
	}
	if q == 1 {
		return sign + num
	}

	return sign + num + "/" + strconv.Itoa(q)
}

// formatReal prints exact forms when recognised, shortest float otherwise.
func formatReal(v float64) string {
	if _, text, ok := ExactForm(v, printTolerance); ok {
		return text
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatCoeff prints a complex coefficient using I for the imaginary unit.
func formatCoeff(c complex128) string {
	re, im := real(c), imag(c)
	if im == 0 {
		return formatReal(re)
	}

	var imText string
	switch im {
	case 1:
		imText = "I"
	case -1:
		imText = "-I"
	default:
		imText = formatReal(im) + "*I"
	}
	if re == 0 {
		return imText
	}
	if im < 0 {
		return "(" + formatReal(re) + " - " + imText[1:] + ")"
	}

	return "(" + formatReal(re) + " + " + imText + ")"
}
