package prismsim_test

import (
	"testing"

	hw "github.com/prismhw/prismsim"
)

func Test_pin_spec(t *testing.T) {
	data := []struct {
		spec string
		want map[string]int
		err  bool
	}{
		{"clk=2,load=1,store=7", map[string]int{"clk": 2, "load": 1, "store": 7}, false},
		{" data = 3 , csn = 0 ", map[string]int{"data": 3, "csn": 0}, false},
		{"clk=2,,", map[string]int{"clk": 2}, false},
		{"clk", nil, true},
		{"=2", nil, true},
		{"clk=x", nil, true},
		{"clk=8", nil, true},
		{"clk=-1", nil, true},
		{"clk=2,clk=3", nil, true},
		{"", nil, true},
	}
	for _, d := range data {
		m, err := hw.ParsePinSpec(d.spec)
		if d.err {
			if err == nil {
				t.Errorf("spec %q: expected error, got %v", d.spec, m)
			}
			continue
		}
		if err != nil {
			t.Errorf("spec %q: %v", d.spec, err)
			continue
		}
		if len(m) != len(d.want) {
			t.Errorf("spec %q: got %v, want %v", d.spec, m, d.want)
			continue
		}
		for k, v := range d.want {
			if m[k] != v {
				t.Errorf("spec %q: role %q = %d, want %d", d.spec, k, m[k], v)
			}
		}
	}
}
