package ui

import "strings"

// ID identifies a widget across frames. Zero means "none" / anonymous.
type ID uint32

const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

// Hash returns the 32-bit FNV-1a hash of s.
func Hash(s string) uint32 {
	h := uint32(fnvOffset32)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime32
	}
	return h
}

// MakeID derives a widget identifier from a label. A zero hash is remapped to 1
// since zero is reserved for empty storage slots.
// Distinct labels that hash alike share one identity.
func MakeID(label string) ID {
	return idFromHash(Hash(label))
}

func idFromHash(h uint32) ID {
	if h == 0 {
		return 1
	}
	return ID(h)
}

// splitLabel separates a "text##key" label into its display text and the part
// that identifies it. Labels without "##" identify by their whole content.
func splitLabel(label string) (text, key string) {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i], label[i:]
	}
	return label, label
}
