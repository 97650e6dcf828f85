package clone

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hasbyte1/go-object-utils/value"
)

// Cloner produces structurally equal, referentially independent copies of
// values. It holds only immutable configuration and is safe for concurrent
// use by multiple goroutines.
type Cloner struct {
	cfg config
}

// New returns a Cloner configured by opts.
//
//	c := clone.New(clone.WithStrict(), clone.WithMaxDepth(64))
//	out, err := c.Clone(v)
func New(opts ...Option) *Cloner {
	c := &Cloner{}
	for _, opt := range opts {
		opt(&c.cfg)
	}
	return c
}

var std = New()

// Clone deep-copies v with a Cloner built from opts.
//
// Scalars are returned unchanged. Every Sequence and Mapping reachable from
// v is freshly allocated; Mappings keep only their own enumerable
// properties, in enumeration order, as ordinary data properties without a
// prototype. Cyclic input fails with a [*CyclicStructureError].
func Clone(v value.Value, opts ...Option) (value.Value, error) {
	if len(opts) == 0 {
		return std.Clone(v)
	}
	return New(opts...).Clone(v)
}

// CloneContext is like [Clone] but passes ctx to the event bus when
// [WithSignals] is set.
func CloneContext(ctx context.Context, v value.Value, opts ...Option) (value.Value, error) {
	return New(opts...).CloneContext(ctx, v)
}

// MustClone is like [Clone] but panics on error.
func MustClone(v value.Value) value.Value {
	out, err := std.Clone(v)
	if err != nil {
		panic(err)
	}
	return out
}

// Clone deep-copies v. See the package-level [Clone].
func (c *Cloner) Clone(v value.Value) (value.Value, error) {
	out, _, err := c.run(v)
	return out, err
}

// CloneContext deep-copies v, emitting clone events when the Cloner was
// built with [WithSignals].
func (c *Cloner) CloneContext(ctx context.Context, v value.Value) (value.Value, error) {
	if !c.cfg.signals {
		return c.Clone(v)
	}
	kind := v.Kind().String()
	emitCloneStart(ctx, kind)
	start := time.Now()
	out, st, err := c.run(v)
	emitCloneComplete(ctx, kind, st, time.Since(start), err)
	return out, err
}

type stats struct {
	nodes int
	depth int
}

// frame is one container on the work stack: the source being read, the
// copy being filled, and a cursor over the source's children.
type frame struct {
	src  value.Value
	dst  value.Value
	keys []string
	next int
	seg  string
	id   any
}

func openFrame(src value.Value, seg string) *frame {
	f := &frame{src: src, seg: seg}
	if s := src.Sequence(); s != nil {
		f.id = s
		f.dst = value.FromSequence(value.NewSequence())
	} else {
		m := src.Mapping()
		f.id = m
		f.keys = m.Keys()
		f.dst = value.FromMapping(value.NewMapping())
	}
	return f
}

// child returns the next source child, its path segment and its key.
func (f *frame) child() (value.Value, string, string, bool) {
	if s := f.src.Sequence(); s != nil {
		v, ok := s.At(f.next)
		if !ok {
			return value.Value{}, "", "", false
		}
		i := f.next
		f.next++
		return v, "[" + strconv.Itoa(i) + "]", "", true
	}
	for f.next < len(f.keys) {
		k := f.keys[f.next]
		f.next++
		if v, ok := f.src.Mapping().GetOwn(k); ok {
			return v, "." + k, k, true
		}
	}
	return value.Value{}, "", "", false
}

func (f *frame) put(key string, v value.Value) error {
	if s := f.dst.Sequence(); s != nil {
		return s.Append(v)
	}
	return f.dst.Mapping().Set(key, v)
}

func pathOf(stack []*frame, seg string) string {
	var sb strings.Builder
	for _, f := range stack {
		sb.WriteString(f.seg)
	}
	sb.WriteString(seg)
	return sb.String()
}

func (c *Cloner) checkScalar(v value.Value, path func() string) error {
	if !c.cfg.strict || v.Kind() != value.KindOpaque {
		return nil
	}
	x, _ := v.AsOpaque()
	return &UnsupportedValueError{Path: path(), Type: fmt.Sprintf("%T", x)}
}

// run walks v depth-first with an explicit stack so that nesting depth is
// bounded by memory rather than by the goroutine stack.
func (c *Cloner) run(v value.Value) (value.Value, stats, error) {
	var st stats
	if v.IsScalar() {
		if err := c.checkScalar(v, func() string { return "$" }); err != nil {
			return value.Value{}, st, err
		}
		return v, st, nil
	}
	root := openFrame(v, "$")
	active := map[any]bool{root.id: true}
	stack := []*frame{root}
	st.nodes, st.depth = 1, 1

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		item, seg, key, ok := top.child()
		if !ok {
			delete(active, top.id)
			stack = stack[:len(stack)-1]
			continue
		}
		if item.IsScalar() {
			if err := c.checkScalar(item, func() string { return pathOf(stack, seg) }); err != nil {
				return value.Value{}, st, err
			}
			if err := top.put(key, item); err != nil {
				return value.Value{}, st, err
			}
			continue
		}
		next := openFrame(item, seg)
		if active[next.id] {
			return value.Value{}, st, &CyclicStructureError{Path: pathOf(stack, seg)}
		}
		if c.cfg.maxDepth > 0 && len(stack) >= c.cfg.maxDepth {
			return value.Value{}, st, fmt.Errorf("%w (%d) at %s", ErrMaxDepth, c.cfg.maxDepth, pathOf(stack, seg))
		}
		if err := top.put(key, next.dst); err != nil {
			return value.Value{}, st, err
		}
		active[next.id] = true
		stack = append(stack, next)
		st.nodes++
		if len(stack) > st.depth {
			st.depth = len(stack)
		}
	}
	return root.dst, st, nil
}
