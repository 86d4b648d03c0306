package bfv

import (
	"fmt"

	"github.com/lattiref/bfv/ring"
)

// Evaluator is a structure that performs homomorphic operations on
// ciphertexts. It is constructed from a parameter set and an optional
// relinearization key; without the key, multiplications can still be
// evaluated but their degree-2 results cannot be relinearized.
type Evaluator struct {
	params Parameters
	rlk    *RelinearizationKey
}

// NewEvaluator creates a new Evaluator for the given parameters. rlk may be
// nil if no relinearization is needed.
func NewEvaluator(params Parameters, rlk *RelinearizationKey) *Evaluator {
	return &Evaluator{params: params, rlk: rlk}
}

func (eval *Evaluator) checkSameDegree(op string, ct0, ct1 *Ciphertext) error {
	if ct0.Degree() != ct1.Degree() {
		return fmt.Errorf("cannot %s: %w: operand degrees are %d and %d", op, ErrDimensionMismatch, ct0.Degree(), ct1.Degree())
	}
	return nil
}

// AddNew returns ct0 + ct1, component-wise modulo Q. The operands must have
// the same degree.
func (eval *Evaluator) AddNew(ct0, ct1 *Ciphertext) (ct *Ciphertext, err error) {
	if err = eval.checkSameDegree("Add", ct0, ct1); err != nil {
		return nil, err
	}
	rq := eval.params.RingQ()
	ct = &Ciphertext{Value: make([]ring.Poly, len(ct0.Value))}
	for i := range ct.Value {
		ct.Value[i] = rq.Add(ct0.Value[i], ct1.Value[i])
	}
	return
}

// SubNew returns ct0 - ct1, component-wise modulo Q. The operands must have
// the same degree.
func (eval *Evaluator) SubNew(ct0, ct1 *Ciphertext) (ct *Ciphertext, err error) {
	if err = eval.checkSameDegree("Sub", ct0, ct1); err != nil {
		return nil, err
	}
	rq := eval.params.RingQ()
	ct = &Ciphertext{Value: make([]ring.Poly, len(ct0.Value))}
	for i := range ct.Value {
		ct.Value[i] = rq.Add(ct0.Value[i], rq.Neg(ct1.Value[i]))
	}
	return
}

// NegNew returns -ct, component-wise modulo Q.
func (eval *Evaluator) NegNew(ct0 *Ciphertext) (ct *Ciphertext) {
	rq := eval.params.RingQ()
	ct = &Ciphertext{Value: make([]ring.Poly, len(ct0.Value))}
	for i := range ct.Value {
		ct.Value[i] = rq.Neg(ct0.Value[i])
	}
	return
}

// AddPlainNew returns ct + pt: the Delta-scaled encoding is added to c0 and
// the remaining components are copied.
func (eval *Evaluator) AddPlainNew(ct0 *Ciphertext, pt *Plaintext) (ct *Ciphertext) {
	rq := eval.params.RingQ()
	ct = ct0.CopyNew()
	ct.Value[0] = rq.Add(ct0.Value[0], ring.MulScalar(pt.Value, eval.params.delta))
	return
}

// SubPlainNew returns ct - pt.
func (eval *Evaluator) SubPlainNew(ct0 *Ciphertext, pt *Plaintext) (ct *Ciphertext) {
	rq := eval.params.RingQ()
	ct = ct0.CopyNew()
	scaled := ring.MulScalar(pt.Value, eval.params.delta)
	ct.Value[0] = rq.Add(ct0.Value[0], rq.Neg(scaled))
	return
}

// MulPlainNew returns ct * pt: every component is multiplied by the unscaled
// encoding modulo Q. The constant encoding is noise-free, so no rescale is
// needed.
func (eval *Evaluator) MulPlainNew(ct0 *Ciphertext, pt *Plaintext) (ct *Ciphertext) {
	rq := eval.params.RingQ()
	ct = &Ciphertext{Value: make([]ring.Poly, len(ct0.Value))}
	for i := range ct.Value {
		ct.Value[i] = rq.Mul(ct0.Value[i], pt.Value)
	}
	return
}

// MulNew returns the degree-2 ciphertext (c0, c1, c2) encrypting the product
// of the two degree-1 operands:
//
//	d0 = ct0.c0*ct1.c0, d1 = ct0.c0*ct1.c1 + ct0.c1*ct1.c0, d2 = ct0.c1*ct1.c1
//
// computed modulo X^N+1 only, then rescaled coefficient-wise as
// round(T*d/Q) mod Q. The tensor stage must keep full coefficient
// magnitudes: reducing modulo Q before the rescale would destroy the sign
// and size information the rounding uses.
func (eval *Evaluator) MulNew(ct0, ct1 *Ciphertext) (ct *Ciphertext, err error) {

	if ct0.Degree() != 1 || ct1.Degree() != 1 {
		return nil, fmt.Errorf("cannot Mul: %w: operands must have degree 1 but have %d and %d", ErrDimensionMismatch, ct0.Degree(), ct1.Degree())
	}

	rq := eval.params.RingQ()

	d0 := rq.MulNoMod(ct0.Value[0], ct1.Value[0])
	d1 := rq.AddNoMod(rq.MulNoMod(ct0.Value[0], ct1.Value[1]), rq.MulNoMod(ct0.Value[1], ct1.Value[0]))
	d2 := rq.MulNoMod(ct0.Value[1], ct1.Value[1])

	ct = &Ciphertext{Value: []ring.Poly{eval.rescale(d0), eval.rescale(d1), eval.rescale(d2)}}
	return
}

// rescale maps a tensored component back to the Delta scale:
// round(T*d/Q) mod Q, coefficient-wise.
func (eval *Evaluator) rescale(d ring.Poly) ring.Poly {
	return ring.CoeffMod(ring.RoundDivScalar(ring.MulScalar(d, eval.params.t), eval.params.q), eval.params.q)
}

// RelinearizeNew transforms a degree-2 ciphertext back to degree 1 using the
// relinearization key:
//
//	s0 = round(b'*c2 / P) mod Q, s1 = round(a'*c2 / P) mod Q
//
// with the products b'*c2 and a'*c2 reduced modulo X^N+1 only before the
// division by P. The result is (c0 + s0, c1 + s1) modulo Q.
func (eval *Evaluator) RelinearizeNew(ct0 *Ciphertext) (ct *Ciphertext, err error) {

	if eval.rlk == nil {
		return nil, fmt.Errorf("cannot Relinearize: %w", ErrRelinearizationKeyMissing)
	}

	if eval.params.p == nil {
		return nil, fmt.Errorf("cannot Relinearize: %w: parameters carry no auxiliary modulus P", ErrInvalidParameter)
	}

	if ct0.Degree() != 2 {
		return nil, fmt.Errorf("cannot Relinearize: %w: ciphertext must have degree 2 but has %d", ErrDimensionMismatch, ct0.Degree())
	}

	rq := eval.params.RingQ()
	c2 := ct0.Value[2]

	s0 := ring.CoeffMod(ring.RoundDivScalar(rq.MulNoMod(eval.rlk.Value[0], c2), eval.params.p), eval.params.q)
	s1 := ring.CoeffMod(ring.RoundDivScalar(rq.MulNoMod(eval.rlk.Value[1], c2), eval.params.p), eval.params.q)

	ct = &Ciphertext{Value: []ring.Poly{
		rq.Add(ct0.Value[0], s0),
		rq.Add(ct0.Value[1], s1),
	}}
	return
}

// MulRelinNew returns the degree-1 product of the two degree-1 operands,
// composing MulNew and RelinearizeNew.
func (eval *Evaluator) MulRelinNew(ct0, ct1 *Ciphertext) (ct *Ciphertext, err error) {
	if ct, err = eval.MulNew(ct0, ct1); err != nil {
		return nil, err
	}
	return eval.RelinearizeNew(ct)
}
