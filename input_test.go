package chunky

import "testing"

func TestIntentsConsumeIsOneShot(t *testing.T) {
	in := Intents{Up: true, Smaller: true}
	first := in.Consume()
	if !first.Up || !first.Smaller {
		t.Errorf("first consume = %+v, want Up and Smaller set", first)
	}
	second := in.Consume()
	if second != (Intents{}) {
		t.Errorf("second consume = %+v, want empty", second)
	}
}
