package ring

import (
	"math/big"
)

// Poly is the structure that contains the coefficients of a polynomial of
// Z[X], stored as arbitrary precision integers indexed by degree. Arbitrary
// precision keeps every operation exact: products taken modulo the extended
// modulus q*p exceed 64 bits for the supported parameter ranges.
type Poly struct {
	Coeffs []*big.Int
}

// NewPoly creates a new polynomial with n coefficients set to zero.
func NewPoly(n int) (pol Poly) {
	coeffs := make([]*big.Int, n)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}
	return Poly{Coeffs: coeffs}
}

// Degree returns the largest index holding a nonzero coefficient, or 0 for
// the zero polynomial.
func (pol Poly) Degree() int {
	for i := len(pol.Coeffs) - 1; i > 0; i-- {
		if pol.Coeffs[i].Sign() != 0 {
			return i
		}
	}
	return 0
}

// Coeff returns the coefficient of X^i. Out-of-range indexes read as zero.
func (pol Poly) Coeff(i int) *big.Int {
	if i < 0 || i >= len(pol.Coeffs) {
		return new(big.Int)
	}
	return pol.Coeffs[i]
}

// SetCoeff sets the coefficient of X^i to v, growing the coefficient slice if
// needed. Negative indexes are ignored.
func (pol *Poly) SetCoeff(i int, v *big.Int) {
	if i < 0 {
		return
	}
	for i >= len(pol.Coeffs) {
		pol.Coeffs = append(pol.Coeffs, new(big.Int))
	}
	pol.Coeffs[i].Set(v)
}

// CopyNew creates an exact copy of the target polynomial.
func (pol Poly) CopyNew() (p1 Poly) {
	p1 = Poly{Coeffs: make([]*big.Int, len(pol.Coeffs))}
	for i := range pol.Coeffs {
		p1.Coeffs[i] = new(big.Int).Set(pol.Coeffs[i])
	}
	return
}

// Equal returns true if the receiver Poly is equal to the provided other Poly,
// comparing coefficients up to the longer of the two (missing coefficients
// read as zero, so polynomials of different capacities can still be equal).
func (pol Poly) Equal(other Poly) bool {
	n := len(pol.Coeffs)
	if len(other.Coeffs) > n {
		n = len(other.Coeffs)
	}
	for i := 0; i < n; i++ {
		if pol.Coeff(i).Cmp(other.Coeff(i)) != 0 {
			return false
		}
	}
	return true
}

// Add returns the coefficient-wise sum a + b as a fresh polynomial.
func Add(a, b Poly) (sum Poly) {
	n := len(a.Coeffs)
	if len(b.Coeffs) > n {
		n = len(b.Coeffs)
	}
	sum = NewPoly(n)
	for i := 0; i < n; i++ {
		sum.Coeffs[i].Add(a.Coeff(i), b.Coeff(i))
	}
	return
}

// MulScalar returns p scaled coefficient-wise by the integer scalar.
func MulScalar(p Poly, scalar *big.Int) (res Poly) {
	res = NewPoly(len(p.Coeffs))
	for i := range p.Coeffs {
		res.Coeffs[i].Mul(p.Coeffs[i], scalar)
	}
	return
}

// Mul returns the convolution a * b. The iteration only visits nonzero
// coefficients of b, so multiplications by sparse polynomials (the ring
// modulus X^N+1, binary keys) stay cheap.
func Mul(a, b Poly) (res Poly) {

	degA, degB := a.Degree(), b.Degree()
	res = NewPoly(degA + degB + 1)

	nonzero := make([]int, 0, degB+1)
	for j := 0; j <= degB; j++ {
		if b.Coeffs[j].Sign() != 0 {
			nonzero = append(nonzero, j)
		}
	}

	tmp := new(big.Int)
	for i := 0; i <= degA; i++ {
		if a.Coeffs[i].Sign() == 0 {
			continue
		}
		for _, j := range nonzero {
			res.Coeffs[i+j].Add(res.Coeffs[i+j], tmp.Mul(a.Coeffs[i], b.Coeffs[j]))
		}
	}
	return
}

// DivMod performs the Euclidean division num = quo * den + rem with
// deg(rem) < deg(den). It is only ever called with den = X^N + 1, for which
// the division is exact over the integers since the leading coefficient is 1.
func DivMod(num, den Poly) (quo, rem Poly) {

	degNum, degDen := num.Degree(), den.Degree()

	if degDen == 0 && den.Coeff(0).Sign() == 0 {
		panic("cannot DivMod: division by the zero polynomial")
	}

	rem = num.CopyNew()
	quo = NewPoly(1)
	if degNum < degDen {
		return
	}
	quo = NewPoly(degNum - degDen + 1)

	nonzero := make([]int, 0, degDen+1)
	for i := 0; i <= degDen; i++ {
		if den.Coeffs[i].Sign() != 0 {
			nonzero = append(nonzero, i)
		}
	}

	lead := den.Coeff(degDen)
	tmp := new(big.Int)
	for k := degNum - degDen; k >= 0; k-- {
		coeff := new(big.Int).Quo(rem.Coeff(degDen+k), lead)
		if coeff.Sign() == 0 {
			continue
		}
		quo.Coeffs[k].Add(quo.Coeffs[k], coeff)
		for _, i := range nonzero {
			rem.Coeffs[i+k].Sub(rem.Coeffs[i+k], tmp.Mul(coeff, den.Coeffs[i]))
		}
	}
	return
}

// CoeffMod reduces every coefficient modulo m with positive-residue
// semantics: the result lies in [0, m) even for negative inputs.
func CoeffMod(p Poly, m *big.Int) (res Poly) {
	res = NewPoly(len(p.Coeffs))
	for i := range p.Coeffs {
		res.Coeffs[i].Mod(p.Coeffs[i], m)
	}
	return
}

// RoundDivScalar divides every coefficient by d and rounds to the nearest
// integer, ties away from zero. d must be nonzero.
func RoundDivScalar(p Poly, d *big.Int) (res Poly) {
	if d.Sign() == 0 {
		panic("cannot RoundDivScalar: division by zero")
	}
	res = NewPoly(len(p.Coeffs))
	r := new(big.Int)
	for i := range p.Coeffs {
		q := res.Coeffs[i]
		q.QuoRem(p.Coeffs[i], d, r)
		// Round half away from zero: |2r| >= |d| bumps the truncated quotient
		// one step away from zero, in the direction of the exact quotient.
		if r.Abs(r).Lsh(r, 1).CmpAbs(d) >= 0 {
			if (p.Coeffs[i].Sign() < 0) != (d.Sign() < 0) {
				q.Sub(q, oneInt)
			} else {
				q.Add(q, oneInt)
			}
		}
	}
	return
}

var oneInt = big.NewInt(1)
