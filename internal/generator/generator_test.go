package generator

import (
	"errors"
	"strings"
	"testing"
)

func allClasses(length int) Policy {
	return Policy{
		Length:           length,
		IncludeUppercase: true,
		IncludeLowercase: true,
		IncludeNumbers:   true,
		IncludeSymbols:   true,
	}
}

func TestGenerate_LengthAndPoolMembership(t *testing.T) {
	pw, err := Generate(allClasses(16))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if len(pw) != 16 {
		t.Fatalf("password length = %d, want 16", len(pw))
	}

	pool := lowercase + uppercase + numbers + symbols
	for _, r := range pw {
		if !strings.ContainsRune(pool, r) {
			t.Fatalf("character %q not in the combined alphabets", r)
		}
	}
}

func TestGenerate_SingleClassOnly(t *testing.T) {
	pw, err := Generate(Policy{Length: 12, IncludeNumbers: true})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	for _, r := range pw {
		if !strings.ContainsRune(numbers, r) {
			t.Fatalf("character %q outside the numbers alphabet", r)
		}
	}
}

func TestGenerate_ExcludesLookAlikes(t *testing.T) {
	policy := allClasses(20)
	policy.ExcludeLookAlikes = true

	// One draw could miss a confusable by luck; a few hundred characters
	// make an accidental pass vanishingly unlikely.
	for i := 0; i < 20; i++ {
		pw, err := Generate(policy)
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		if strings.ContainsAny(pw, lookAlikes) {
			t.Fatalf("password %q contains a look-alike character", pw)
		}
	}
}

func TestGenerate_EmptyCharset(t *testing.T) {
	_, err := Generate(Policy{Length: 10})
	if !errors.Is(err, ErrEmptyCharset) {
		t.Fatalf("expected ErrEmptyCharset, got %v", err)
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"below minimum", 7},
		{"zero", 0},
		{"negative", -1},
		{"above maximum", 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(allClasses(tt.length))
			if !errors.Is(err, ErrInvalidLength) {
				t.Fatalf("expected ErrInvalidLength, got %v", err)
			}
		})
	}
}

func TestGenerate_OutputVaries(t *testing.T) {
	p1, err := Generate(allClasses(32))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	p2, err := Generate(allClasses(32))
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if p1 == p2 {
		t.Fatalf("two generated passwords are identical: %q", p1)
	}
}

func TestEstimate_OrdersObviousCases(t *testing.T) {
	weak := Estimate("password")
	strong := Estimate("kV9#mQ2$xL7!pW4&")

	if weak.Score >= strong.Score {
		t.Fatalf("expected %q (score %d) to score below %q (score %d)",
			"password", weak.Score, "kV9#mQ2$xL7!pW4&", strong.Score)
	}
}
