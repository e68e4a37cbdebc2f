// +build !windows

package driver

import "github.com/jmigpin/scrollbox/driver/xdriver"

func NewWindow() (Window, error) {
	return xdriver.NewWindow()
}
