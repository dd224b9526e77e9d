package ui

import "log/slog"

// noteID records that key produced id this frame. With Debug enabled a second
// use of the same identifier is logged, whether it comes from the same label or
// from a different label with a colliding hash.
func (c *Ctx) noteID(id ID, key string) {
	if c.seen == nil {
		return
	}
	prev, ok := c.seen[id]
	if !ok {
		c.seen[id] = key
		return
	}
	c.dups++
	if prev == key {
		c.log.Warn("ui duplicate widget label", slog.String("label", key), slog.Uint64("id", uint64(id)))
		return
	}
	c.log.Warn("ui widget id collision",
		slog.String("label", key), slog.String("other", prev), slog.Uint64("id", uint64(id)))
}
