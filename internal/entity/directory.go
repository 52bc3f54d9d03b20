package entity

import (
	"log/slog"
	"sort"
)

// Directory holds the configured player contacts and the static
// color fallback table. It is read-only after construction.
type Directory struct {
	addresses map[string]string // player name -> contact address
	colors    map[string]string // color tag -> player name
	names     []string          // sorted, for stable broadcast order
}

// NewDirectory builds a directory from configured maps. Either map may be
// empty; an empty addresses map means nobody will ever be notified.
func NewDirectory(addresses, colors map[string]string) *Directory {
	d := &Directory{
		addresses: make(map[string]string, len(addresses)),
		colors:    make(map[string]string, len(colors)),
	}
	for name, addr := range addresses {
		d.addresses[name] = addr
		d.names = append(d.names, name)
	}
	for color, name := range colors {
		d.colors[color] = name
	}
	sort.Strings(d.names)
	if len(d.addresses) == 0 {
		slog.Warn("recipient directory is empty, notifications go nowhere")
	}
	return d
}

// Address returns the contact address configured for a player name.
func (d *Directory) Address(name string) (string, bool) {
	addr, ok := d.addresses[name]
	return addr, ok
}

// Addresses returns every configured contact address in stable order.
func (d *Directory) Addresses() []string {
	result := make([]string, 0, len(d.names))
	for _, name := range d.names {
		result = append(result, d.addresses[name])
	}
	return result
}

// NameByAddress resolves a contact address back to a player name.
// Used to authorize inbound commands.
func (d *Directory) NameByAddress(addr string) (string, bool) {
	for _, name := range d.names {
		if d.addresses[name] == addr {
			return name, true
		}
	}
	return "", false
}

// ResolveColor maps a color tag to a player name, preferring the live
// roster of the snapshot over the static color table.
func (d *Directory) ResolveColor(color string, snapshot *Snapshot) string {
	if name := snapshot.NameByColor(color); name != "" {
		return name
	}
	return d.colors[color]
}

// Size returns the number of configured recipients.
func (d *Directory) Size() int {
	return len(d.addresses)
}
