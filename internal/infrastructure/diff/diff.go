package diff

import "reflect"

type Differ struct{}

// Diff returns the keys of after whose values differ from before, plus removed
// keys mapped to nil.
func (d *Differ) Diff(before, after map[string]any) map[string]any {
	delta := map[string]any{}
	for k, v := range after {
		if old, ok := before[k]; !ok || !reflect.DeepEqual(old, v) {
			delta[k] = v
		}
	}
	for k := range before {
		if _, ok := after[k]; !ok {
			delta[k] = nil
		}
	}
	return delta
}
