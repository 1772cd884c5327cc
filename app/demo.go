package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kilianp07/genfactory/core/model"
)

// ErrMissingAnimal is returned by Demo when "dog" or "cat" is not registered.
var ErrMissingAnimal = errors.New("animal not registered")

// DemoReport summarizes a Demo run.
type DemoReport struct {
	CatID       string
	FirstDogID  string
	SecondDogID string
	// CatKept is true when the cat survived the dog being stopped.
	CatKept bool
}

// Demo walks through the factory lifecycle with the "dog" and "cat" keys,
// narrating each step to w: the cat and dog are created, the dog handle goes
// out of scope while the factory keeps it, the dog is stopped and a new one
// is created on the next request.
func (s *Service) Demo(w io.Writer) (DemoReport, error) {
	var r DemoReport
	cat, err := s.fetch(w, "cat")
	if err != nil {
		return r, err
	}
	r.CatID = cat.ID()

	if err := func() error {
		dog, err := s.fetch(w, "dog")
		if err != nil {
			return err
		}
		r.FirstDogID = dog.ID()
		fmt.Fprintln(w, dog.Speak())
		return nil
	}(); err != nil {
		return r, err
	}
	fmt.Fprintln(w, cat.Speak())

	fmt.Fprintln(w, "[MAIN] Stopping dog")
	s.Factory.Stop("dog")

	fmt.Fprintln(w, "[MAIN] Getting a dog")
	dog, err := s.fetch(w, "dog")
	if err != nil {
		return r, err
	}
	r.SecondDogID = dog.ID()
	fmt.Fprintln(w, dog.Speak())

	again, err := s.fetch(w, "cat")
	if err != nil {
		return r, err
	}
	r.CatKept = again == cat
	return r, nil
}

func (s *Service) fetch(w io.Writer, key string) (model.Animal, error) {
	cached := s.Factory.Cached(key)
	a, ok, err := s.Factory.Get(key)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAnimal, key)
	}
	if !cached {
		fmt.Fprintf(w, "Creating %s %s (%s)\n", a.Kind(), a.Name(), a.ID())
	}
	return a, nil
}

// Run executes the demo and then serves metrics until ctx is cancelled.
func (s *Service) Run(ctx context.Context, w io.Writer) error {
	if _, err := s.Demo(w); err != nil {
		return err
	}
	return s.Serve(ctx)
}
