// Package scratch builds short-lived strings (widget labels, overlay text)
// in a reusable byte buffer so a steady-state frame does not allocate.
package scratch

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// Buffer is single-threaded. Strings returned by its methods are views into
// the buffer and stay valid until the next Reset.
type Buffer struct {
	buf []byte
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset drops everything written since the last Reset. Call it once per frame.
func (s *Buffer) Reset() { s.buf = s.buf[:0] }

func (s *Buffer) Len() int { return len(s.buf) }
func (s *Buffer) Cap() int { return cap(s.buf) }

// Mark returns a bookmark; View(mark) slices the output written after it.
func (s *Buffer) Mark() int { return len(s.buf) }

// View returns a zero-copy string of the bytes since mark.
func (s *Buffer) View(mark int) string {
	b := s.buf[mark:]
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// ----- chainable appends -----

func (s *Buffer) S(str string) *Buffer {
	s.buf = append(s.buf, str...)
	return s
}

func (s *Buffer) C(c byte) *Buffer {
	s.buf = append(s.buf, c)
	return s
}

func (s *Buffer) R(r rune) *Buffer {
	s.buf = utf8.AppendRune(s.buf, r)
	return s
}

func (s *Buffer) I(v int) *Buffer {
	s.buf = strconv.AppendInt(s.buf, int64(v), 10)
	return s
}

func (s *Buffer) U(v uint64) *Buffer {
	s.buf = strconv.AppendUint(s.buf, v, 10)
	return s
}

// F64 appends v with prec digits after the decimal point.
func (s *Buffer) F64(v float64, prec int) *Buffer {
	s.buf = strconv.AppendFloat(s.buf, v, 'f', prec, 64)
	return s
}

func (s *Buffer) Hex(v uint64) *Buffer {
	s.buf = strconv.AppendUint(s.buf, v, 16)
	return s
}

// Label builds "text##key": the visible text changes every frame while the
// widget identity stays fixed on key.
func (s *Buffer) Label(key string, build func(*Buffer)) string {
	m := s.Mark()
	build(s)
	s.S("##").S(key)
	return s.View(m)
}

// Sprintf supports %s %d %u %x %f (with .prec) and %%. Unknown verbs are
// written literally.
func (s *Buffer) Sprintf(format string, args ...any) string {
	m := s.Mark()
	ai := 0
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			s.buf = append(s.buf, ch)
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			s.buf = append(s.buf, '%')
			i++
			continue
		}
		i++
		prec := -1
		if i < len(format) && format[i] == '.' {
			i++
			prec = 0
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				prec = prec*10 + int(format[i]-'0')
				i++
			}
		}
		if i >= len(format) || ai >= len(args) {
			break
		}
		switch format[i] {
		case 's':
			s.buf = appendString(s.buf, args[ai])
		case 'd':
			s.buf = strconv.AppendInt(s.buf, toInt64(args[ai]), 10)
		case 'u':
			s.buf = strconv.AppendUint(s.buf, uint64(toInt64(args[ai])), 10)
		case 'x':
			s.buf = strconv.AppendUint(s.buf, uint64(toInt64(args[ai])), 16)
		case 'f':
			if prec < 0 {
				prec = 3
			}
			s.buf = strconv.AppendFloat(s.buf, toFloat64(args[ai]), 'f', prec, 64)
		default:
			s.buf = append(s.buf, '%', format[i])
		}
		ai++
	}
	return s.View(m)
}

func appendString(dst []byte, v any) []byte {
	switch x := v.(type) {
	case string:
		return append(dst, x...)
	case []byte:
		return append(dst, x...)
	default:
		return append(dst, "<?>"...)
	}
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}
