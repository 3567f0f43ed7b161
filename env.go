package motion

import (
	"os"
	"strings"
	"unicode"
)

// expandEnv replaces ${env.KEY} expressions with the value of the KEY
// environment variable, or "" when unset. Expressions with an invalid key or
// without a closing brace are kept verbatim.
func expandEnv(value string) string {
	const prefix = "${env."
	var b strings.Builder
	for {
		idx := strings.Index(value, prefix)
		if idx < 0 {
			b.WriteString(value)
			return b.String()
		}
		b.WriteString(value[:idx])
		rest := value[idx+len(prefix):]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			b.WriteString(value[idx:])
			return b.String()
		}
		key := rest[:end]
		if !isEnvKey(key) {
			// keep the prefix and rescan the remainder for nested expressions
			b.WriteString(prefix)
			value = rest
			continue
		}
		b.WriteString(os.Getenv(key))
		value = rest[end+1:]
	}
}

func isEnvKey(key string) bool {
	for _, r := range key {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}
