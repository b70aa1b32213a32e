package xnet

import (
	"testing"
)

func FuzzParseUserAddr(f *testing.F) {
	for _, s := range []string{"10.2.3.1", "10.2.3.1/24", "fe80::/10", "::ffff:1.2.3.4", "", "x"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		u, err := ParseUserAddr(s)
		if err != nil {
			return
		}
		back, err := UserAddrFromBinary(u.Binary())
		if err != nil {
			t.Fatalf("binary round trip of %q: %v", s, err)
		}
		if back.String() != u.String() {
			t.Fatalf("binary round trip: %q -> %q", u, back)
		}
		if u.IsNetwork() {
			once := Truncate(u.Prefix())
			if Truncate(once) != once {
				t.Fatalf("truncate not idempotent for %q", s)
			}
			if !Contains(u, u.Prefix()) {
				t.Fatalf("%q not contained in itself", s)
			}
		}
	})
}

func FuzzMaskPrefixLen(f *testing.F) {
	f.Add(uint32(0xffffff00))
	f.Add(uint32(0xff00ff00))
	f.Add(uint32(0))
	f.Fuzz(func(t *testing.T, v uint32) {
		n, err := MaskPrefixLen(AddrFromUint32(v))
		if err != nil {
			return
		}
		if rebuilt := ^uint32(0) << (32 - n); rebuilt != v {
			t.Fatalf("mask %08x -> /%d rebuilds as %08x", v, n, rebuilt)
		}
	})
}
