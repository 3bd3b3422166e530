package generator

import "github.com/nbutton23/zxcvbn-go"

// Strength is an entropy-based estimate of how resistant a password is to
// guessing, as produced by the zxcvbn estimator.
type Strength struct {
	// Score is the zxcvbn bucket from 0 (trivially guessable) to 4 (very
	// strong).
	Score int `json:"score"`

	// Entropy is the estimated entropy in bits.
	Entropy float64 `json:"entropy"`

	// CrackTimeDisplay is a human-readable crack-time estimate
	// (e.g. "centuries").
	CrackTimeDisplay string `json:"crack_time_display"`
}

// Estimate scores a password with zxcvbn. The estimate considers
// dictionary words, keyboard patterns, and repeats, so a long password is
// not automatically a strong one.
func Estimate(password string) Strength {
	match := zxcvbn.PasswordStrength(password, nil)

	return Strength{
		Score:            match.Score,
		Entropy:          match.Entropy,
		CrackTimeDisplay: match.CrackTimeDisplay,
	}
}
