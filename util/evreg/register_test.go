package evreg

import "testing"

func TestRegisterAddRun(t *testing.T) {
	var reg Register
	n := 0
	reg.Add(1, func(ev interface{}) { n += ev.(int) })
	reg.Add(1, func(ev interface{}) { n += ev.(int) })
	reg.Add(2, func(ev interface{}) { t.Fatal("wrong id") })

	c := reg.RunCallbacks(1, 3)
	if c != 2 || n != 6 {
		t.Fatal(c, n)
	}
	if reg.NCallbacks(1) != 2 || reg.NCallbacksAll() != 3 {
		t.Fatal(reg.NCallbacks(1), reg.NCallbacksAll())
	}
}

func TestRegisterZeroValue(t *testing.T) {
	var reg Register
	if c := reg.RunCallbacks(7, nil); c != 0 {
		t.Fatal(c)
	}
	if reg.NCallbacks(7) != 0 {
		t.Fatal()
	}
}

func TestRegistUnregisterTwice(t *testing.T) {
	var reg Register
	r1 := reg.Add(1, func(interface{}) {})
	r2 := reg.Add(1, func(interface{}) {})
	r1.Unregister()
	r1.Unregister()
	if reg.NCallbacks(1) != 1 {
		t.Fatal(reg.NCallbacks(1))
	}
	r2.Unregister()
	if reg.NCallbacks(1) != 0 || reg.NCallbacksAll() != 0 {
		t.Fatal()
	}

	var nilRegist *Regist
	nilRegist.Unregister() // no panic
}

func TestRegisterUnregisterWhileRunning(t *testing.T) {
	var reg Register
	n := 0
	var r1 *Regist
	r1 = reg.Add(1, func(interface{}) {
		n++
		r1.Unregister()
	})
	reg.Add(1, func(interface{}) { n++ })

	reg.RunCallbacks(1, nil)
	reg.RunCallbacks(1, nil)
	if n != 3 {
		t.Fatal(n)
	}
	if reg.NCallbacks(1) != 1 {
		t.Fatal(reg.NCallbacks(1))
	}
}

func TestRegisterUnregisterOtherWhileRunning(t *testing.T) {
	var reg Register
	var u []string
	var rb *Regist
	reg.Add(1, func(interface{}) {
		u = append(u, "a")
		rb.Unregister()
	})
	rb = reg.Add(1, func(interface{}) { u = append(u, "b") })
	reg.Add(1, func(interface{}) { u = append(u, "c") })

	c := reg.RunCallbacks(1, nil)
	if c != 2 || len(u) != 2 || u[0] != "a" || u[1] != "c" {
		t.Fatal(c, u)
	}
	if reg.NCallbacks(1) != 2 {
		t.Fatal(reg.NCallbacks(1))
	}
}

func TestRegisterAddWhileRunning(t *testing.T) {
	var reg Register
	n := 0
	reg.Add(1, func(interface{}) {
		reg.Add(1, func(interface{}) { n++ })
	})
	if c := reg.RunCallbacks(1, nil); c != 1 || n != 0 {
		t.Fatal(c, n)
	}
	if c := reg.RunCallbacks(1, nil); c != 2 || n != 1 {
		t.Fatal(c, n)
	}
}

func TestUnregisterAll(t *testing.T) {
	var reg Register
	var unr Unregister
	for i := 0; i < 5; i++ {
		unr.Add(reg.Add(i%2, func(interface{}) {}))
	}
	if unr.Len() != 5 {
		t.Fatal(unr.Len())
	}
	unr.UnregisterAll()
	if unr.Len() != 0 || reg.NCallbacksAll() != 0 {
		t.Fatal(unr.Len(), reg.NCallbacksAll())
	}
	unr.UnregisterAll() // no-op
}
