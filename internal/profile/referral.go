package profile

import (
	"hash/fnv"
	"strconv"
	"strings"
)

const (
	referralCodePrefix string = "SHARP"
	referralCodeLength int    = 6
)

// ReferralCode derives the user-visible invitation code for a uid. Derivation
// is deterministic so the same account always lands on the same code, even
// when the profile record has to be synthesized repeatedly while the document
// store is unreachable.
func ReferralCode(uid string) string {
	hasher := fnv.New64a()
	hasher.Write([]byte(uid))

	encoded := strings.ToUpper(strconv.FormatUint(hasher.Sum64(), 36))
	for len(encoded) < referralCodeLength {
		encoded = "0" + encoded
	}
	return referralCodePrefix + encoded[len(encoded)-referralCodeLength:]
}
