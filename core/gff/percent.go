// core/gff/percent.go
package gff

import (
	"strings"

	"seqio-core/codec"
)

const hexDigits = "0123456789ABCDEF"

// reserved reports whether b must be percent-encoded in GFF3 column
// and attribute text: the structural characters tab, newline, carriage
// return, ';', '=', '%', '&', ',' plus all other control bytes.
func reserved(b byte) bool {
	switch b {
	case '\t', '\n', '\r', ';', '=', '%', '&', ',':
		return true
	}
	return b < 0x20 || b == 0x7f
}

// escape percent-encodes reserved bytes of s.
func escape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		if reserved(b) {
			sb.WriteByte('%')
			sb.WriteByte(hexDigits[b>>4])
			sb.WriteByte(hexDigits[b&0x0f])
		} else {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// unescape decodes %HH escapes in s. line is used for diagnostics.
func unescape(s string, line int) (string, error) {
	if !strings.ContainsRune(s, '%') {
		return s, nil
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b != '%' {
			sb.WriteByte(b)
			continue
		}
		if i+2 >= len(s) {
			return "", codec.Formatf(line, "truncated percent escape in %q", s)
		}
		hi, ok1 := unhex(s[i+1])
		lo, ok2 := unhex(s[i+2])
		if !ok1 || !ok2 {
			return "", codec.Formatf(line, "invalid percent escape %q", s[i:i+3])
		}
		sb.WriteByte(hi<<4 | lo)
		i += 2
	}
	return sb.String(), nil
}

func unhex(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
