package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type initDog struct {
	ready bool
}

func (d *initDog) Speak() string { return "Woof!" }

func (d *initDog) Init() error {
	d.ready = true
	return nil
}

type rock struct{}

func TestConstruct_AllocatesFreshInstances(t *testing.T) {
	c := Construct[speaker, dog]()
	a, err := c()
	require.NoError(t, err)
	b, err := c()
	require.NoError(t, err)
	assert.IsType(t, &dog{}, a)
	assert.NotSame(t, a, b)
}

func TestConstruct_RunsInit(t *testing.T) {
	inst, err := Construct[speaker, initDog]()()
	require.NoError(t, err)
	assert.True(t, inst.(*initDog).ready)
}

func TestConstruct_ConcreteBase(t *testing.T) {
	inst, err := Construct[*dog, dog]()()
	require.NoError(t, err)
	assert.Equal(t, "Woof!", inst.Speak())
}

func TestConstruct_RejectsUnrelatedType(t *testing.T) {
	assert.Panics(t, func() { Construct[speaker, rock]() })
}

type brokenDog struct{ initDog }

var errBroken = errors.New("init failed")

func (d *brokenDog) Init() error { return errBroken }

// Init failures surface through Get and nothing is cached.
func TestConstruct_InitFailure(t *testing.T) {
	f, err := New([]Entry[string, speaker]{{Key: "dog", Create: Construct[speaker, brokenDog]()}})
	require.NoError(t, err)
	_, ok, err := f.Get("dog")
	assert.ErrorIs(t, err, errBroken)
	assert.False(t, ok)
	assert.Empty(t, f.Live())
}

func TestFunc(t *testing.T) {
	c := Func[speaker](func() speaker { return &cat{} })
	inst, err := c()
	require.NoError(t, err)
	assert.Equal(t, "Meow!", inst.Speak())
}
