package targets

import (
	"bytes"
	"fmt"
	"net"
)

// MAC is a 6 byte hardware address. It is treated as opaque and compared byte-wise.
type MAC [6]byte

// ParseMAC parses a 48 bit hardware address such as "aa:bb:cc:dd:ee:ff".
// Longer EUI-64 and InfiniBand forms accepted by net.ParseMAC are rejected.
func ParseMAC(s string) (MAC, error) {
	var mac MAC
	hw, err := net.ParseMAC(s)
	if err != nil {
		return mac, fmt.Errorf("invalid MAC address %q: %w", s, err)
	}
	if len(hw) != len(mac) {
		return mac, fmt.Errorf("invalid MAC address %q: want 6 bytes, got %d", s, len(hw))
	}
	copy(mac[:], hw)
	return mac, nil
}

func (m MAC) String() string {
	return net.HardwareAddr(m[:]).String()
}

// Target is a single entry of a List: a source and destination address plus the
// channel the pair was seen on. The fields never change after construction, only
// the link to the next entry does and only the owning List touches it.
type Target struct {
	from MAC
	to   MAC
	ch   uint8
	next *Target
}

// NewTarget returns an unlinked Target.
func NewTarget(from, to MAC, ch uint8) *Target {
	return &Target{from: from, to: to, ch: ch}
}

func (t *Target) From() MAC { return t.from }
func (t *Target) To() MAC { return t.to }
func (t *Target) Channel() uint8 { return t.ch }

// Next returns the following Target in the owning List, or nil at the tail.
func (t *Target) Next() *Target { return t.next }

// Compare orders targets by from address, then to address, then channel.
// It returns -1, 0 or +1, and 0 only when Equal would return true.
func (t *Target) Compare(o *Target) int {
	if c := bytes.Compare(t.from[:], o.from[:]); c != 0 {
		return c
	}
	if c := bytes.Compare(t.to[:], o.to[:]); c != 0 {
		return c
	}
	switch {
	case t.ch < o.ch:
		return -1
	case t.ch > o.ch:
		return 1
	}
	return 0
}

// Equal reports whether both addresses and the channel match.
func (t *Target) Equal(o *Target) bool {
	return t.from == o.from && t.to == o.to && t.ch == o.ch
}

func (t *Target) String() string {
	return fmt.Sprintf("%s -> %s ch %d", t.from, t.to, t.ch)
}
