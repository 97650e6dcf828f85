package value

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math"
	"reflect"
	"sort"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a BLAKE2b-256 digest of v's structure. Values that are
// [Equal] share a fingerprint: mapping keys are digested in sorted order and
// descriptor flags and prototypes are ignored.
//
// Cyclic input fails with a [*CyclicStructureError].
func Fingerprint(v Value) ([32]byte, error) {
	var sum [32]byte
	h, err := blake2b.New256(nil)
	if err != nil {
		return sum, fmt.Errorf("value: fingerprint: %w", err)
	}
	if err := digest(h, v, "$", make(map[any]bool)); err != nil {
		return sum, err
	}
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

func digest(h hash.Hash, v Value, path string, active map[any]bool) error {
	var buf [9]byte
	buf[0] = byte(v.kind)
	switch v.kind {
	case KindUndefined, KindNull:
		h.Write(buf[:1])
	case KindBool:
		if v.b {
			buf[1] = 1
		}
		h.Write(buf[:2])
	case KindNumber:
		n := v.n
		if math.IsNaN(n) {
			n = math.NaN()
		}
		if n == 0 {
			n = 0
		}
		binary.BigEndian.PutUint64(buf[1:], math.Float64bits(n))
		h.Write(buf[:9])
	case KindString:
		h.Write(buf[:1])
		writeString(h, v.s)
	case KindOpaque:
		h.Write(buf[:1])
		writeString(h, opaqueIdentity(v.x))
	case KindSequence:
		if active[v.seq] {
			return &CyclicStructureError{Path: path}
		}
		active[v.seq] = true
		defer delete(active, v.seq)
		binary.BigEndian.PutUint64(buf[1:], uint64(len(v.seq.items)))
		h.Write(buf[:9])
		for i, item := range v.seq.items {
			if err := digest(h, item, path+"["+strconv.Itoa(i)+"]", active); err != nil {
				return err
			}
		}
	case KindMapping:
		if active[v.m] {
			return &CyclicStructureError{Path: path}
		}
		active[v.m] = true
		defer delete(active, v.m)
		keys := v.m.Keys()
		sort.Strings(keys)
		binary.BigEndian.PutUint64(buf[1:], uint64(len(keys)))
		h.Write(buf[:9])
		for _, k := range keys {
			writeString(h, k)
			d, _ := v.m.Descriptor(k)
			if err := digest(h, d.Value, path+"."+k, active); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeString(h hash.Hash, s string) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(s)))
	h.Write(n[:])
	h.Write([]byte(s))
}

func opaqueIdentity(x any) string {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return fmt.Sprintf("%T@%x", x, rv.Pointer())
	}
	return fmt.Sprintf("%T:%#v", x, x)
}
