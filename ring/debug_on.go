//go:build ringdebug

package ring

// check panics on the first invariant violation; only built with -tags ringdebug.
func (r *Ring) check() {
	if err := r.Validate(); err != nil {
		panic(err)
	}
}
