package frost

// ValidateParticipants checks a participant id list for the two basic
// well-formedness properties every operation in this package requires:
// non-empty and duplicate-free.
func ValidateParticipants(ids []ID) error {
	if len(ids) == 0 {
		return wrapErr(InsufficientSigners, "participant list cannot be empty", nil)
	}
	if !uniqueIDs(ids) {
		return ErrDuplicateParticipant
	}
	return nil
}

// ValidateThreshold checks that a Config's (MinSigners, MaxSigners) is
// well-formed against an actual participant count, as used by
// CreateSigningPackage, GenerateKeys, Split and Sign.
func ValidateThreshold(config Config, participantCount int) error {
	if config.MinSigners == 0 || config.MaxSigners == 0 || config.MinSigners > config.MaxSigners {
		return ErrInvalidThreshold
	}
	if participantCount < int(config.MinSigners) {
		return ErrInsufficientSigners
	}
	return nil
}
