package frost

// polynomial is a polynomial over the scalar field used as the Shamir
// sharing polynomial in key generation and backup-split: f(x) = a0 + a1 x
// + ... + a_{t-1} x^{t-1}, with a0 the secret being shared.
type polynomial struct {
	coefficients []*Scalar
}

// newRandomPolynomial builds a degree-`degree` polynomial with the given
// constant term and uniformly random higher-degree coefficients.
func newRandomPolynomial(degree int, constantTerm *Scalar) (*polynomial, error) {
	coefficients := make([]*Scalar, degree+1)
	coefficients[0] = constantTerm
	for i := 1; i <= degree; i++ {
		coeff, err := RandomScalar()
		if err != nil {
			return nil, wrapErr(CryptoInternal, "failed to sample polynomial coefficient", err)
		}
		coefficients[i] = coeff
	}
	return &polynomial{coefficients: coefficients}, nil
}

// evaluate computes f(x) via Horner's method.
func (p *polynomial) evaluate(x *Scalar) *Scalar {
	if len(p.coefficients) == 0 {
		return scalarZero()
	}
	// Start from a copy so a degree-0 polynomial never hands out (and later
	// zeroizes) its own constant term.
	result := scalarZero().Add(p.coefficients[len(p.coefficients)-1])
	for i := len(p.coefficients) - 2; i >= 0; i-- {
		result = result.Mul(x).Add(p.coefficients[i])
	}
	return result
}

// zeroize clears every coefficient, including the secret constant term.
func (p *polynomial) zeroize() {
	for _, c := range p.coefficients {
		if c != nil {
			c.Zeroize()
		}
	}
	p.coefficients = nil
}
