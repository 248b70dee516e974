package mjson

import "github.com/google/btree"

// Type identifies the concrete kind of a Value.
type Type uint8

const (
	TypeInvalid Type = iota
	TypeNull
	TypeBool
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeBool:
		return "Bool"
	case TypeNumber:
		return "Number"
	case TypeString:
		return "String"
	case TypeArray:
		return "Array"
	case TypeObject:
		return "Object"
	default:
		return "InvalidValue"
	}
}

// Value is a node in a decoded JSON value tree. It is implemented
// only by types in this package: Null, Bool, Number, String, Array
// and Object. Every node is owned exclusively by its parent and the
// tree holds no cycles.
type Value interface {
	Type() Type
	isValue()
}

type (
	// Null represents a JSON null.
	Null struct{}
	// Bool represents a JSON boolean.
	Bool bool
	// Number represents a JSON number. Integers and fractions alike
	// collapse to a single float64 representation.
	Number float64
	// String represents a JSON string.
	String string
	// Array represents a JSON array.
	Array []Value
)

func (Null) Type() Type   { return TypeNull }
func (Bool) Type() Type   { return TypeBool }
func (Number) Type() Type { return TypeNumber }
func (String) Type() Type { return TypeString }
func (Array) Type() Type  { return TypeArray }
func (Object) Type() Type { return TypeObject }

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

var (
	_ Value = Null{}
	_ Value = Bool(false)
	_ Value = Number(0)
	_ Value = String("")
	_ Value = Array(nil)
	_ Value = Object{}
)

// Member is a single key/value entry of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object represents a JSON object. Entries are kept ordered
// lexicographically by key, independent of insertion order, and
// keys are unique. The zero Object is empty and ready to read from.
type Object struct {
	tree *btree.BTreeG[Member]
}

func byKey(a, b Member) bool { return a.Key < b.Key }

func (o *Object) init() {
	if o.tree == nil {
		o.tree = btree.NewG(2, byKey)
	}
}

// Set inserts the value under key, overwriting any previous entry
// for that key.
func (o *Object) Set(key string, v Value) {
	o.init()
	o.tree.ReplaceOrInsert(Member{Key: key, Value: v})
}

// Get returns the value stored under key.
func (o Object) Get(key string) (Value, bool) {
	if o.tree == nil {
		return nil, false
	}
	m, ok := o.tree.Get(Member{Key: key})
	if !ok {
		return nil, false
	}
	return m.Value, true
}

// Len returns the number of entries.
func (o Object) Len() int {
	if o.tree == nil {
		return 0
	}
	return o.tree.Len()
}

// Keys returns the keys in lexicographic order.
func (o Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	o.Range(func(key string, _ Value) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Range calls fn for each entry in lexicographic key order until fn
// returns false.
func (o Object) Range(fn func(key string, v Value) bool) {
	if o.tree == nil {
		return
	}
	o.tree.Ascend(func(m Member) bool {
		return fn(m.Key, m.Value)
	})
}

// Equal reports deep structural equality of two value trees. Objects
// compare by their entries regardless of the shape of the backing
// tree, which is why reflect.DeepEqual is not usable here.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		v, ok := b.(Bool)
		return ok && a == v
	case Number:
		v, ok := b.(Number)
		return ok && a == v
	case String:
		v, ok := b.(String)
		return ok && a == v
	case Array:
		v, ok := b.(Array)
		if !ok || len(a) != len(v) {
			return false
		}
		for i := range a {
			if !Equal(a[i], v[i]) {
				return false
			}
		}
		return true
	case Object:
		v, ok := b.(Object)
		if !ok || a.Len() != v.Len() {
			return false
		}
		equal := true
		a.Range(func(key string, av Value) bool {
			bv, ok := v.Get(key)
			equal = ok && Equal(av, bv)
			return equal
		})
		return equal
	default:
		return false
	}
}
