package logger

import "strings"

var secretKeys = []string{"api_key", "apikey", "token", "secret", "authorization", "password"}

// RedactSecret masks a credential for safe logging, keeping the last four
// characters so keys remain distinguishable in output.
// "abc123def456" becomes "***f456". Short values are fully masked.
func RedactSecret(val string) string {
	if len(val) <= 4 {
		return "***"
	}
	return "***" + val[len(val)-4:]
}

func redactSecretValue(key, val string) string {
	key = strings.ToLower(key)
	for _, s := range secretKeys {
		if strings.Contains(key, s) {
			return RedactSecret(val)
		}
	}
	return val
}
