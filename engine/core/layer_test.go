package core

import "testing"

func TestLayerStackOrder(t *testing.T) {
	var ls LayerStack
	var log []string
	a := &recordLayer{name: "a", log: &log}
	b := &recordLayer{name: "b", log: &log}
	ls.Push(a)
	ls.Push(b)

	var fwd []Layer
	ls.ForEach(func(l Layer) { fwd = append(fwd, l) })
	if len(fwd) != 2 || fwd[0] != a || fwd[1] != b {
		t.Fatalf("ForEach order = %v", fwd)
	}

	var rev []Layer
	ls.ForEachReverse(func(l Layer) bool { rev = append(rev, l); return l == b })
	if len(rev) != 1 || rev[0] != b {
		t.Fatalf("ForEachReverse should stop at b, got %v", rev)
	}

	if l, ok := ls.Pop(); !ok || l != b {
		t.Fatal("Pop should return b")
	}
	ls.Pop()
	if _, ok := ls.Pop(); ok || ls.Len() != 0 {
		t.Fatal("Pop on empty stack")
	}
}

func TestEngineLayerHooks(t *testing.T) {
	var log []string
	e := &Engine{}
	a := &recordLayer{name: "a", log: &log}
	b := &recordLayer{name: "b", log: &log}
	e.PushLayer(a)
	e.PushLayer(b)
	if !e.RemoveLayer(a) || e.RemoveLayer(a) {
		t.Fatal("RemoveLayer should succeed once")
	}
	if l, ok := e.PopLayer(); !ok || l != b {
		t.Fatal("PopLayer should return b")
	}
	want := []string{"attach a", "attach b", "detach a", "detach b"}
	if len(log) != len(want) {
		t.Fatalf("log = %v", log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
}
