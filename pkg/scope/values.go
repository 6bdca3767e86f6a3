package scope

import (
	"fmt"
	"go/token"
	"math"
	"reflect"
	"strconv"
	"strings"
)

type absenter interface {
	IsAbsent() bool
}

// Truthy reports whether a value counts as true in a condition: non-empty
// strings (ignoring surrounding space), non-zero numbers, non-empty
// collections and non-nil pointers. Values with an IsAbsent method are true
// when present.
func Truthy(value any) bool {
	if value == nil {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.TrimSpace(v) != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case float32:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	case absenter:
		return !v.IsAbsent()
	case fmt.Stringer:
		if isNil(reflect.ValueOf(v)) {
			return false
		}
		return strings.TrimSpace(v.String()) != ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return strings.TrimSpace(rv.String()) != ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	}
	return true
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// deref follows pointers and interfaces. It returns an invalid Value for nil.
func deref(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// field reads name from a map with string keys, an exported struct field, or
// a zero-argument method with one result.
func field(current any, name string) (any, bool) {
	if current == nil {
		return nil, false
	}
	if m, ok := current.(map[string]any); ok {
		v, ok := m[name]
		return v, ok
	}
	if v, ok := method(current, name); ok {
		return v, true
	}

	rv := deref(current)
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Struct:
		sf, ok := rv.Type().FieldByName(name)
		if !ok || !sf.IsExported() {
			return nil, false
		}
		f, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			return nil, false
		}
		return f.Interface(), true
	}
	return nil, false
}

// method calls a zero-argument method returning one value, or a value and an
// error. A non-nil error resolves to nil.
func method(current any, name string) (any, bool) {
	rv := reflect.ValueOf(current)
	if !rv.IsValid() {
		return nil, false
	}
	m := rv.MethodByName(name)
	if !m.IsValid() && rv.Kind() != reflect.Pointer && rv.CanAddr() {
		m = rv.Addr().MethodByName(name)
	}
	if !m.IsValid() {
		return nil, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() == 0 || mt.NumOut() > 2 {
		return nil, false
	}
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	out := m.Call(nil)
	if len(out) == 2 {
		if err, _ := out[1].Interface().(error); err != nil {
			return nil, true
		}
	}
	return out[0].Interface(), true
}

func indexValue(current, key any) (any, bool) {
	rv := deref(current)
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		kv := reflect.ValueOf(key)
		if !kv.IsValid() {
			return nil, false
		}
		if !kv.Type().AssignableTo(kt) {
			sameFamily := kv.Kind() == kt.Kind() || isNumericKind(kv.Kind()) && isNumericKind(kt.Kind())
			if !sameFamily || !kv.Type().ConvertibleTo(kt) {
				return nil, false
			}
			kv = kv.Convert(kt)
		}
		val := rv.MapIndex(kv)
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Slice, reflect.Array, reflect.String:
		n, ok := coerceNumber(key)
		if !ok || n != math.Trunc(n) {
			return nil, false
		}
		i := int(n)
		if i < 0 || i >= rv.Len() {
			return nil, false
		}
		if rv.Kind() == reflect.String {
			return string(rv.String()[i]), true
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func lengthOf(v any) int {
	rv := deref(v)
	if !rv.IsValid() {
		return 0
	}
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len()
	}
	return 0
}

func coerceNumber(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	rv := deref(value)
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func coerceInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	}
	rv := deref(value)
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int64(rv.Uint()), true
	}
	return 0, false
}

func coerceString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		if isNil(reflect.ValueOf(v)) {
			return "", false
		}
		return v.String(), true
	}
	rv := deref(value)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// Compare applies a comparison operator. Numbers compare numerically across
// types, strings lexically, and anything else only for (in)equality.
func Compare(op token.Token, left, right any) bool {
	if left == nil || right == nil {
		switch op {
		case token.EQL:
			return isNilValue(left) && isNilValue(right)
		case token.NEQ:
			return isNilValue(left) != isNilValue(right)
		}
		return false
	}

	if lb, ok := left.(bool); ok {
		rb, ok := right.(bool)
		if !ok {
			return op == token.NEQ
		}
		switch op {
		case token.EQL:
			return lb == rb
		case token.NEQ:
			return lb != rb
		}
		return false
	}

	ls, lok := coerceString(left)
	rs, rok := coerceString(right)
	if lok && rok {
		return ordered(op, strings.Compare(ls, rs))
	}

	ln, lok := coerceNumber(left)
	rn, rok := coerceNumber(right)
	if lok && rok {
		switch {
		case ln < rn:
			return ordered(op, -1)
		case ln > rn:
			return ordered(op, 1)
		}
		return ordered(op, 0)
	}

	switch op {
	case token.EQL:
		return reflect.DeepEqual(left, right)
	case token.NEQ:
		return !reflect.DeepEqual(left, right)
	}
	return false
}

func isNilValue(v any) bool {
	return v == nil || isNil(reflect.ValueOf(v))
}

func ordered(op token.Token, c int) bool {
	switch op {
	case token.EQL:
		return c == 0
	case token.NEQ:
		return c != 0
	case token.LSS:
		return c < 0
	case token.LEQ:
		return c <= 0
	case token.GTR:
		return c > 0
	case token.GEQ:
		return c >= 0
	}
	return false
}

// arithmetic keeps integer results integral. Division by zero and mixed
// operands that are not numbers yield nil.
func arithmetic(op token.Token, left, right any) any {
	if op == token.ADD {
		ls, lok := left.(string)
		rs, rok := right.(string)
		if lok && rok {
			return ls + rs
		}
	}

	if li, ok := coerceInt(left); ok {
		if ri, ok := coerceInt(right); ok {
			switch op {
			case token.ADD:
				return li + ri
			case token.SUB:
				return li - ri
			case token.MUL:
				return li * ri
			case token.QUO:
				if ri == 0 {
					return nil
				}
				return li / ri
			case token.REM:
				if ri == 0 {
					return nil
				}
				return li % ri
			}
			return nil
		}
	}

	ln, lok := coerceNumber(left)
	rn, rok := coerceNumber(right)
	if !lok || !rok {
		return nil
	}
	switch op {
	case token.ADD:
		return ln + rn
	case token.SUB:
		return ln - rn
	case token.MUL:
		return ln * rn
	case token.QUO:
		if rn == 0 {
			return nil
		}
		return ln / rn
	case token.REM:
		if rn == 0 {
			return nil
		}
		return math.Mod(ln, rn)
	}
	return nil
}
