package events

import "testing"

func TestHub_SubscribeReceivesPublishedEvent(t *testing.T) {
	h := NewHub("run-1")
	ch := h.Subscribe(4)
	defer h.Unsubscribe(ch)

	h.OnPerturbed(2, "layout-snapshot")

	evt := <-ch
	if evt.Kind != Perturbed || evt.ChainIndex != 2 || evt.RunID != "run-1" {
		t.Fatalf("unexpected event: %+v", evt)
	}
}

func TestHub_FullSubscriberChannelDropsRatherThanBlocks(t *testing.T) {
	h := NewHub("run-1")
	ch := h.Subscribe(1)
	defer h.Unsubscribe(ch)

	h.OnValid("first")
	h.OnValid("second") // channel already full; must not block

	evt := <-ch
	if evt.Layout != "first" {
		t.Fatalf("expected the first buffered event, got %+v", evt)
	}
}

func TestNullSink_DiscardsEverything(t *testing.T) {
	var s Sink = NullSink{}
	s.OnPerturbed(0, nil)
	s.OnPartialValid(0, nil)
	s.OnValid(nil)
}
