// Package factory provides a keyed lazy factory. Creators are registered
// under a key; the first Get for that key invokes the creator and caches the
// instance, later calls return the cached instance until Stop releases it.
// Registrations and cached instances are tracked separately, so removing one
// never affects the other.
//
// Example usage:
//
//	f, err := factory.New([]factory.Entry[string, Animal]{
//	    {Key: "dog", Create: factory.Construct[Animal, Dog]()},
//	    {Key: "cat", Create: factory.Func(func() Animal { return NewCat("Tom") })},
//	})
//	if err != nil {
//	    return err
//	}
//	dog, ok, err := f.Get("dog")
//	...
//	f.Stop("dog") // next Get("dog") builds a new dog
//
// A Factory is not safe for concurrent use. Wrap it with NewSynced when it is
// shared between goroutines.
//
// The package also carries Registry, which maps a module type name to a
// Builder so factories, observers and sinks can be assembled from
// configuration.
package factory
