package version

import "runtime/debug"

// Get returns the module version baked into the binary, or "devel" when
// built from a working tree.
func Get() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "devel"
	}
	return info.Main.Version
}
