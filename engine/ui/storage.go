package ui

// Payload is the variant stored per widget across frames.
type Payload interface{ isPayload() }

// AlignSide selects which edge of the parent an align group hugs.
type AlignSide uint8

const (
	AlignLeft AlignSide = iota
	AlignRight
	AlignCenter
)

// AlignInfo remembers an align group between frames.
type AlignInfo struct {
	Side       AlignSide
	QueueStart int  // queue length when the group began
	Bounds     Rect // final bounds of the group, last frame
	Offset     int  // horizontal correction; fixed once non-zero
}

func (*AlignInfo) isPayload() {}

// Entry is one slot of the storage table.
type Entry struct {
	ID      ID
	Payload Payload
}

// DefaultStorageSize is the storage table size used when Options leaves it unset.
const DefaultStorageSize = 10000

// Storage maps widget identifiers to payloads for the lifetime of a Ctx.
// Open addressing with linear probing; entries are never evicted.
type Storage struct {
	slots []Entry
	n     int
}

func NewStorage(capacity int) *Storage {
	if capacity <= 0 {
		capacity = DefaultStorageSize
	}
	return &Storage{slots: make([]Entry, capacity)}
}

// Get returns the entry for id, creating an empty one on first use.
func (s *Storage) Get(id ID) *Entry {
	i, found := s.probe(id)
	if i < 0 {
		fatal("storage get", "persistent storage", len(s.slots), ErrCapacity)
	}
	e := &s.slots[i]
	if !found {
		e.ID = id
		s.n++
	}
	return e
}

// Lookup returns the entry for id without creating it.
func (s *Storage) Lookup(id ID) (*Entry, bool) {
	i, found := s.probe(id)
	if !found {
		return nil, false
	}
	return &s.slots[i], true
}

func (s *Storage) Len() int { return s.n }
func (s *Storage) Cap() int { return len(s.slots) }

// probe walks the table from id's home slot. It returns the slot holding id, or
// the first free slot, or -1 when every slot is taken by other identifiers.
func (s *Storage) probe(id ID) (int, bool) {
	if id == 0 {
		fatal("storage probe", "persistent storage", 0, ErrInvalidID)
	}
	size := len(s.slots)
	home := int(uint32(id) % uint32(size))
	for k := 0; k < size; k++ {
		i := (home + k) % size
		switch s.slots[i].ID {
		case id:
			return i, true
		case 0:
			return i, false
		}
	}
	return -1, false
}
