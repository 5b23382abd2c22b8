package anyhandle

import "fmt"

// Library version components, combined by Version.
const (
	VersionMajor      = 1           // incompatible API changes
	VersionMinor      = 0           // compatible additions
	VersionPatch      = 0           // fixes
	VersionPrerelease = "alpha-004" // empty for releases
)

// Version returns the library version in semver form.
func Version() string {
	v := fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
	if VersionPrerelease != "" {
		v += "-" + VersionPrerelease
	}
	return v
}
