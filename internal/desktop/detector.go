package desktop

import (
	"path"

	"github.com/spf13/afero"
)

// SessionDir holds the X session files a display manager offers.
const SessionDir = "/usr/share/xsessions"

// Descriptor pairs the executable that marks a desktop as installed with
// the basename of its session file.
type Descriptor struct {
	Executable  string
	DesktopFile string
}

// SessionFile is the session's path relative to the target root.
func (d Descriptor) SessionFile() string {
	return path.Join(SessionDir, d.DesktopFile+".desktop")
}

// Known lists the recognised desktops in search priority order.
var Known = []Descriptor{
	{Executable: "/usr/bin/startkde", DesktopFile: "plasma"},     // KDE Plasma 5
	{Executable: "/usr/bin/startkde", DesktopFile: "kde-plasma"}, // KDE Plasma 4
}

// Find returns the first known desktop installed on fs, which must be rooted
// at the target system.
func Find(fs afero.Fs) (Descriptor, bool) {
	for _, d := range Known {
		if installed(fs, d) {
			return d, true
		}
	}
	return Descriptor{}, false
}

// FindAll returns every known desktop installed on fs, keeping priority order.
func FindAll(fs afero.Fs) []Descriptor {
	var found []Descriptor
	for _, d := range Known {
		if installed(fs, d) {
			found = append(found, d)
		}
	}
	return found
}

func installed(fs afero.Fs, d Descriptor) bool {
	if ok, _ := afero.Exists(fs, d.Executable); !ok {
		return false
	}
	ok, _ := afero.Exists(fs, d.SessionFile())
	return ok
}
