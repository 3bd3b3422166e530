package logger

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestNewLogger_NotNil(t *testing.T) {
	log := NewLogger("test")
	if log == nil {
		t.Fatal("NewLogger returned nil")
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	// must not panic or write anywhere
	log.Info().Str("k", "v").Msg("discarded")
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	if child == nil {
		t.Fatal("GetChildLogger returned nil")
	}
}

func TestFromContext_NeverNil(t *testing.T) {
	log := FromContext(context.Background())
	if log == nil {
		t.Fatal("FromContext returned nil")
	}
}

func TestFromRequest_UsesRequestContext(t *testing.T) {
	base := Nop()
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(base.WithContext(r.Context()))

	log := FromRequest(r)
	if log == nil {
		t.Fatal("FromRequest returned nil")
	}
}
