//go:build !(linux || darwin)

package ctru

import "errors"

// load fails on platforms without a dynamic loader binding.
func (b *Backend) load() error {
	return errors.New("ctru: native libraries not loadable on this platform")
}
