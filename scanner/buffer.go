package scanner

import "github.com/fioncat/judge/types"

const initialBufferSize = 8

// entryBuffer collects scanned entries. It starts with 8 slots, doubles when
// full and is copied to an exactly sized slice by fit.
type entryBuffer struct {
	ents []*types.Entry
	n    int
}

func newEntryBuffer() *entryBuffer {
	return &entryBuffer{
		ents: make([]*types.Entry, initialBufferSize),
	}
}

func (b *entryBuffer) push(ent *types.Entry) error {
	if b.n == len(b.ents) {
		err := b.grow()
		if err != nil {
			return err
		}
	}
	b.ents[b.n] = ent
	b.n++
	return nil
}

func (b *entryBuffer) grow() error {
	size := len(b.ents) * 2
	if size <= len(b.ents) {
		return types.ErrOutOfMemory
	}
	ents := make([]*types.Entry, size)
	copy(ents, b.ents[:b.n])
	b.ents = ents
	return nil
}

func (b *entryBuffer) size() int {
	return len(b.ents)
}

func (b *entryBuffer) fit() []*types.Entry {
	ents := make([]*types.Entry, b.n)
	copy(ents, b.ents[:b.n])
	b.ents, b.n = nil, 0
	return ents
}
