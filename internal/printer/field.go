package printer

import (
	"fmt"
	"reflect"
	"strconv"
)

// Kind is the declared display type of a field.
type Kind int

const (
	KindScalar Kind = iota
	KindRecord
	KindScalarList
	KindRecordList
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindRecord:
		return "record"
	case KindScalarList:
		return "scalar list"
	case KindRecordList:
		return "record list"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the set of scalar types a field may hold.
type Value interface {
	~string | ~int | ~int32 | ~int64 | ~float32 | ~float64 | ~bool
}

// Field is one entry of a Shape's descriptor table.
type Field[T any] struct {
	Label string
	Kind  Kind

	render func(sw *sink, rec *T, level int)
}

// Scalar declares a scalar field. A nil value is omitted.
func Scalar[T any, V Value](label string, get func(*T) *V) Field[T] {
	return Field[T]{
		Label: label,
		Kind:  KindScalar,
		render: func(sw *sink, rec *T, level int) {
			v := get(rec)
			if v == nil {
				return
			}
			sw.line(level, label+": "+Format(*v))
		},
	}
}

// ScalarOr declares a scalar field that renders def when the value is nil.
func ScalarOr[T any, V Value](label string, get func(*T) *V, def V) Field[T] {
	return Field[T]{
		Label: label,
		Kind:  KindScalar,
		render: func(sw *sink, rec *T, level int) {
			v := def
			if p := get(rec); p != nil {
				v = *p
			}
			sw.line(level, label+": "+Format(v))
		},
	}
}

// Record declares a nested record field rendered with shape.
func Record[T, N any](label string, get func(*T) *N, shape *Shape[N]) Field[T] {
	return Field[T]{
		Label: label,
		Kind:  KindRecord,
		render: func(sw *sink, rec *T, level int) {
			renderNested(sw, label, shape, get(rec), level)
		},
	}
}

// ScalarList declares a list of scalars. A nil list is omitted; an empty
// list prints only its header.
func ScalarList[T any, V Value](label string, get func(*T) []V) Field[T] {
	return Field[T]{
		Label: label,
		Kind:  KindScalarList,
		render: func(sw *sink, rec *T, level int) {
			items := get(rec)
			if items == nil {
				return
			}
			sw.line(level, label+":")
			for _, item := range items {
				sw.line(level+1, Format(item))
			}
		},
	}
}

// RecordList declares a list of nested records. Each element is rendered as
// a nested record labelled elemLabel.
func RecordList[T, N any](label, elemLabel string, get func(*T) []N, shape *Shape[N]) Field[T] {
	return Field[T]{
		Label: label,
		Kind:  KindRecordList,
		render: func(sw *sink, rec *T, level int) {
			items := get(rec)
			if items == nil {
				return
			}
			sw.line(level, label+":")
			for i := range items {
				renderNested(sw, elemLabel, shape, &items[i], level+1)
			}
		},
	}
}

// Format renders a scalar: integers in decimal, floats with six fractional
// digits, booleans as true/false.
func Format[V Value](v V) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', 6, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', 6, 64)
	default:
		return fmt.Sprint(v)
	}
}
