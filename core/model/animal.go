package model

import (
	"github.com/google/uuid"

	"github.com/kilianp07/genfactory/core/factory"
)

// Animal is the base capability of everything the demo factory builds.
type Animal interface {
	// ID is assigned at construction, so two instances never share one.
	ID() string
	Kind() string
	Name() string
	Speak() string
}

var (
	_ Animal              = (*Dog)(nil)
	_ Animal              = (*Cat)(nil)
	_ factory.Initializer = (*Dog)(nil)
	_ factory.Initializer = (*Cat)(nil)
)

// Dog barks.
type Dog struct {
	id   string
	name string
}

// NewDog returns an initialized dog. An empty name falls back to "Dog".
func NewDog(name string) *Dog {
	d := &Dog{name: name}
	d.setDefaults()
	return d
}

// Init assigns an id and the default name. It never fails.
func (d *Dog) Init() error {
	d.setDefaults()
	return nil
}

func (d *Dog) setDefaults() {
	if d.id == "" {
		d.id = uuid.NewString()
	}
	if d.name == "" {
		d.name = "Dog"
	}
}

func (d *Dog) ID() string    { return d.id }
func (d *Dog) Kind() string  { return "dog" }
func (d *Dog) Name() string  { return d.name }
func (d *Dog) Speak() string { return "Woof!" }

// Cat meows.
type Cat struct {
	id   string
	name string
}

// NewCat returns an initialized cat. An empty name falls back to "Cat".
func NewCat(name string) *Cat {
	c := &Cat{name: name}
	c.setDefaults()
	return c
}

// Init assigns an id and the default name. It never fails.
func (c *Cat) Init() error {
	c.setDefaults()
	return nil
}

func (c *Cat) setDefaults() {
	if c.id == "" {
		c.id = uuid.NewString()
	}
	if c.name == "" {
		c.name = "Cat"
	}
}

func (c *Cat) ID() string    { return c.id }
func (c *Cat) Kind() string  { return "cat" }
func (c *Cat) Name() string  { return c.name }
func (c *Cat) Speak() string { return "Meow!" }
