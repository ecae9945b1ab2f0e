package prismsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParsePinSpec parses a pin map specification of the form
//
//	"clk=2, load=1, store=7"
//
// and returns a map from pin role names to line numbers. Line numbers must
// fit the bus port width. Roles may appear at most once.
//
func ParsePinSpec(spec string) (map[string]int, error) {
	m := make(map[string]int)
	for _, f := range strings.Split(spec, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		i := strings.IndexRune(f, '=')
		if i < 0 {
			return nil, errors.Errorf("pin spec %q: missing '=' in %q", spec, f)
		}
		name := strings.TrimSpace(f[:i])
		if name == "" {
			return nil, errors.Errorf("pin spec %q: empty pin role in %q", spec, f)
		}
		n, err := strconv.Atoi(strings.TrimSpace(f[i+1:]))
		if err != nil {
			return nil, errors.Wrapf(err, "pin spec %q: bad line number in %q", spec, f)
		}
		if n < 0 || n >= PortWidth {
			return nil, errors.Errorf("pin spec %q: line number %d out of range", spec, n)
		}
		if _, ok := m[name]; ok {
			return nil, errors.Errorf("pin spec %q: duplicate role %q", spec, name)
		}
		m[name] = n
	}
	if len(m) == 0 {
		return nil, errors.Errorf("empty pin spec %q", spec)
	}
	return m, nil
}
