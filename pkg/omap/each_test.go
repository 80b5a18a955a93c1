package omap

import "testing"

func TestEachOrder(t *testing.T) {
	m := New[string, int](0)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	m.Set("a", 4)

	ks := []string{}
	vs := []int{}
	m.Each(func(k string, v int) {
		ks = append(ks, k)
		vs = append(vs, v)
	})

	wantK := []string{"a", "b", "c"}
	wantV := []int{4, 2, 3}

	if len(ks) != len(wantK) {
		t.Fatalf("Expected %d pairs but got %d", len(wantK), len(ks))
	}
	for i := range wantK {
		if ks[i] != wantK[i] || vs[i] != wantV[i] {
			t.Fatalf("Expected ‘%s = %d’ at position %d but got ‘%s = %d’",
				wantK[i], wantV[i], i, ks[i], vs[i])
		}
	}
}
