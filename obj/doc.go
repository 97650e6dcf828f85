// Package obj provides object helpers over [value.Mapping]: prototype-based
// creation, property copying, freezing and sealing, entry conversion, and
// dot-notation access to nested values.
//
//	proto := value.Object(value.KV("kind", value.String("base"))).Mapping()
//	m, _ := obj.Create(proto)
//	obj.Assign(m, value.Object(value.KV("id", value.Int(1))).Mapping())
//	obj.DeepFreeze(value.FromMapping(m))
//
// All helpers are plain functions that take the container as a parameter;
// nothing is attached to the value types themselves beyond their own
// methods.
package obj
