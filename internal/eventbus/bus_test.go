package eventbus

import "testing"

func TestBusPublishSubscribe(t *testing.T) {
	bus := New[string](0)
	ch := bus.Subscribe()
	bus.Publish("hello")
	v := <-ch
	if v != "hello" {
		t.Fatalf("expected hello got %v", v)
	}
	bus.Close()
	if _, ok := <-ch; ok {
		t.Fatalf("expected channel closed after close")
	}
	bus.Close()
}

func TestBusClose(t *testing.T) {
	bus := New[int](2)
	ch1 := bus.Subscribe()
	ch2 := bus.Subscribe()
	bus.Publish(1)
	bus.Close()
	bus.Publish(2)
	if v, ok := <-ch1; !ok || v != 1 {
		t.Fatalf("expected buffered event before close, got %v %v", v, ok)
	}
	if _, ok := <-ch1; ok {
		t.Fatalf("expected ch1 closed")
	}
	<-ch2
	if _, ok := <-ch2; ok {
		t.Fatalf("expected ch2 closed")
	}
	if _, ok := <-bus.Subscribe(); ok {
		t.Fatalf("expected closed channel when subscribing after close")
	}
}

func TestBusDropsWhenFull(t *testing.T) {
	bus := New[int](1)
	ch := bus.Subscribe()
	bus.Publish(1)
	bus.Publish(2)
	if bus.Dropped() != 1 {
		t.Fatalf("expected 1 dropped event, got %d", bus.Dropped())
	}
	if v := <-ch; v != 1 {
		t.Fatalf("expected first event kept, got %d", v)
	}
}
