package frost

import "fmt"

// Kind identifies a class of failure in the FROST protocol, matching the
// error taxonomy of the specification. Callers compare Kind, not the
// error value itself, since a given Kind can wrap different causes.
type Kind string

const (
	InvalidThreshold        Kind = "InvalidThreshold"
	InvalidKeyFormat        Kind = "InvalidKeyFormat"
	InsufficientSigners     Kind = "InsufficientSigners"
	InsufficientShares      Kind = "InsufficientShares"
	DuplicateParticipant    Kind = "DuplicateParticipant"
	MismatchedCommitments   Kind = "MismatchedCommitments"
	MismatchedShares        Kind = "MismatchedShares"
	InvalidCommitment       Kind = "InvalidCommitment"
	MalformedSignature      Kind = "MalformedSignature"
	ShareVerificationFailed Kind = "ShareVerificationFailed"
	NotAParticipant         Kind = "NotAParticipant"
	MissingBindingFactor    Kind = "MissingBindingFactor"
	CryptoInternal          Kind = "CryptoInternal"
	NoncesConsumed          Kind = "NoncesConsumed"
)

// FrostError is the single error type this package returns from public
// entry points. Every public operation fails closed: a broken invariant
// produces one of these with the matching Kind rather than a silent
// best-effort repair.
type FrostError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *FrostError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("frost: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("frost: %s: %s", e.Kind, e.Message)
}

func (e *FrostError) Unwrap() error { return e.Cause }

// ErrKind extracts the Kind of a *FrostError, defaulting to CryptoInternal
// for any other error type (which should not occur for errors returned by
// this package's own public functions).
func ErrKind(err error) Kind {
	if fe, ok := err.(*FrostError); ok {
		return fe.Kind
	}
	return CryptoInternal
}

// Is reports whether target carries the same Kind, so callers can write
// errors.Is(err, frost.ErrInsufficientSigners) against the sentinels below
// even though the concrete *FrostError returned may wrap a different cause.
func (e *FrostError) Is(target error) bool {
	other, ok := target.(*FrostError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newErr(kind Kind, message string) *FrostError {
	return &FrostError{Kind: kind, Message: message}
}

func wrapErr(kind Kind, message string, cause error) *FrostError {
	return &FrostError{Kind: kind, Message: message, Cause: cause}
}

// Sentinel errors, one per Kind. wrapErr is used at call sites where a
// specific underlying cause (a curve-library error, a parse failure)
// should be attached instead of one of these bare sentinels.
var (
	ErrInvalidThreshold        = newErr(InvalidThreshold, "threshold must satisfy 1 <= t <= n")
	ErrInvalidKeyFormat        = newErr(InvalidKeyFormat, "secret is not a recognized key format")
	ErrInsufficientSigners     = newErr(InsufficientSigners, "fewer than t participants supplied")
	ErrInsufficientShares      = newErr(InsufficientShares, "fewer than t key shares supplied")
	ErrDuplicateParticipant    = newErr(DuplicateParticipant, "duplicate participant id")
	ErrMismatchedCommitments   = newErr(MismatchedCommitments, "commitment set does not match participant set")
	ErrMismatchedShares        = newErr(MismatchedShares, "signature share set does not match participant set")
	ErrInvalidCommitment       = newErr(InvalidCommitment, "commitment element is identity or outside the prime-order subgroup")
	ErrMalformedSignature      = newErr(MalformedSignature, "signature is not 64 bytes of canonical R||z")
	ErrShareVerificationFailed = newErr(ShareVerificationFailed, "signature share failed verification against its public commitments")
	ErrNotAParticipant         = newErr(NotAParticipant, "signer id is absent from the signing package")
	ErrMissingBindingFactor    = newErr(MissingBindingFactor, "no binding factor was computed for this signer id")
	ErrCryptoInternal          = newErr(CryptoInternal, "underlying curve or hash primitive failed")

	// ErrNoncesConsumed guards against reuse of a Nonces value across
	// signing sessions.
	ErrNoncesConsumed = newErr(NoncesConsumed, "nonces were already consumed by a prior Round2 call")
)
