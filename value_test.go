package mjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectZeroValue(t *testing.T) {
	var obj Object
	require.Equal(t, 0, obj.Len())
	require.Empty(t, obj.Keys())
	_, ok := obj.Get("missing")
	require.False(t, ok)
	obj.Range(func(string, Value) bool {
		t.Fatal("Range on an empty object should not call fn")
		return false
	})
}

func TestObjectOrder(t *testing.T) {
	obj := Object{}
	obj.Set("monkey", Number(1))
	obj.Set("banana", Number(2))
	obj.Set("ape", Number(3))
	obj.Set("zoo", Number(4))

	// Iteration order depends on the keys, not on insertion order.
	require.Equal(t, []string{"ape", "banana", "monkey", "zoo"}, obj.Keys())

	var got []string
	obj.Range(func(key string, _ Value) bool {
		got = append(got, key)
		return true
	})
	require.Equal(t, obj.Keys(), got)
}

func TestObjectOverwrite(t *testing.T) {
	obj := Object{}
	obj.Set("key", Number(1))
	obj.Set("key", String("two"))
	require.Equal(t, 1, obj.Len())
	v, ok := obj.Get("key")
	require.True(t, ok)
	require.Equal(t, String("two"), v)
}

func TestTypes(t *testing.T) {
	for value, want := range map[Value]Type{
		Null{}:         TypeNull,
		Bool(true):     TypeBool,
		Number(4.2):    TypeNumber,
		String("hoge"): TypeString,
	} {
		require.Equal(t, want, value.Type())
	}
	require.Equal(t, TypeArray, Array{}.Type())
	require.Equal(t, TypeObject, Object{}.Type())
}

func TestEqual(t *testing.T) {
	a := Object{}
	a.Set("x", Array{Number(1), Null{}})
	a.Set("y", Bool(true))

	b := Object{}
	b.Set("y", Bool(true))
	b.Set("x", Array{Number(1), Null{}})

	require.True(t, Equal(a, b))
	require.True(t, Equal(Null{}, Null{}))
	require.True(t, Equal(Array{}, Array{}))
	require.False(t, Equal(a, Null{}))
	require.False(t, Equal(Number(1), Number(2)))
	require.False(t, Equal(String("1"), Number(1)))
	require.False(t, Equal(Array{Number(1)}, Array{Number(1), Number(2)}))

	c := Object{}
	c.Set("x", Array{Number(1), Null{}})
	require.False(t, Equal(a, c))
	c.Set("y", Bool(false))
	require.False(t, Equal(a, c))
}
