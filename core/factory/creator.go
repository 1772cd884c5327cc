package factory

import (
	"fmt"
	"reflect"
)

// Initializer is implemented by types that need setup once allocated by
// Construct.
type Initializer interface {
	Init() error
}

// Construct returns a Creator allocating a new T and returning it as B. If
// *T implements Initializer, Init runs before the instance is handed out.
//
// Construct panics when *T is not assignable to B, so a wrong pairing fails
// while creators are being wired rather than on first Get.
func Construct[B any, T any]() Creator[B] {
	base := reflect.TypeFor[B]()
	ptr := reflect.TypeFor[*T]()
	if !ptr.AssignableTo(base) {
		panic(fmt.Sprintf("factory: %s does not implement %s", ptr, base))
	}
	return func() (B, error) {
		p := new(T)
		if in, ok := any(p).(Initializer); ok {
			if err := in.Init(); err != nil {
				var zero B
				return zero, err
			}
		}
		return any(p).(B), nil
	}
}

// Func lifts an infallible constructor into a Creator.
func Func[B any](fn func() B) Creator[B] {
	return func() (B, error) { return fn(), nil }
}
