package logger

import "testing"

func TestRedactSecret(t *testing.T) {
	if got := RedactSecret("abc123def456"); got != "***f456" {
		t.Errorf("RedactSecret = %q", got)
	}
	if got := RedactSecret("abcd"); got != "***" {
		t.Errorf("short value = %q, must be fully masked", got)
	}
	if got := RedactSecret(""); got != "***" {
		t.Errorf("empty value = %q", got)
	}
}

func TestRedactSecretValue(t *testing.T) {
	if got := redactSecretValue("api_key", "abc123def456"); got != "***f456" {
		t.Errorf("api_key field = %q", got)
	}
	if got := redactSecretValue("offer_name", "Mobile Gaming"); got != "Mobile Gaming" {
		t.Errorf("plain field = %q, must pass through", got)
	}
}
