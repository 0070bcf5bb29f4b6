package frost

// GenerateKeys runs trusted-dealer key generation, spec.md §4.4: sample a
// random group secret sk, build a degree-(MinSigners-1) Shamir polynomial
// f with f(0) = sk, and hand participant i the share s_i = f(i) along with
// the group public key PK = sk·G. The dealer's copy of sk and the
// polynomial coefficients are zeroized before returning; there is no
// supported way to recover them afterward short of Recover(t-of-n shares).
//
// DKG (generating keys without a trusted dealer) is out of scope for this
// package.
func GenerateKeys(config Config) (groupPublicKey *Element, packages []*KeyPackage, err error) {
	if err := ValidateThreshold(config, int(config.MaxSigners)); err != nil {
		return nil, nil, err
	}

	secret, err := RandomScalar()
	if err != nil {
		return nil, nil, wrapErr(CryptoInternal, "failed to sample group secret", err)
	}
	defer secret.Zeroize()

	poly, err := newRandomPolynomial(int(config.MinSigners)-1, secret)
	if err != nil {
		return nil, nil, err
	}
	defer poly.zeroize()

	groupPublicKey = ScalarBaseMul(secret)

	packages = make([]*KeyPackage, 0, config.MaxSigners)
	for i := uint16(1); i <= config.MaxSigners; i++ {
		id := ID(i)
		x, err := idToScalar(id)
		if err != nil {
			return nil, nil, err
		}
		shareSecret := poly.evaluate(x)
		share := &KeyShare{
			ID:     id,
			Secret: shareSecret,
			Public: ScalarBaseMul(shareSecret),
		}
		packages = append(packages, &KeyPackage{
			ID:             id,
			Share:          share,
			GroupPublicKey: groupPublicKey,
		})
	}

	return groupPublicKey, packages, nil
}

// VerifyKeyPackage checks that pkg.Share.Public == pkg.Share.Secret·G,
// catching a corrupted or mismatched KeyPackage before it is handed to a
// Signer.
func VerifyKeyPackage(pkg *KeyPackage) bool {
	if pkg == nil || pkg.Share == nil || pkg.Share.Secret == nil || pkg.Share.Public == nil {
		return false
	}
	return ScalarBaseMul(pkg.Share.Secret).Equal(pkg.Share.Public)
}
