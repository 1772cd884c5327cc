package plugins

import (
	"github.com/kilianp07/genfactory/core/factory"
	"github.com/kilianp07/genfactory/core/model"
)

// AnimalBuilder builds the creator registered under an animal key.
type AnimalBuilder = factory.Builder[factory.Creator[model.Animal]]

// ObserverBuilder builds a synchronous factory observer.
type ObserverBuilder = factory.Builder[factory.Observer]

var (
	Animals   = factory.NewRegistry[factory.Creator[model.Animal]]()
	Observers = factory.NewRegistry[factory.Observer]()
)

func RegisterAnimal(name string, b AnimalBuilder) error     { return Animals.Register(name, b) }
func RegisterObserver(name string, b ObserverBuilder) error { return Observers.Register(name, b) }
