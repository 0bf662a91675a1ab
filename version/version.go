package version

import (
	"runtime/debug"
	"sync"
)

// ModulePath is the module path looked up in the build info.
const ModulePath = "github.com/kbukum/stringr"

// Devel is reported when no release version is known.
const Devel = "(devel)"

// Override replaces the detected version when set at build time.
var Override = ""

// Info describes the stringr module found in the build info.
type Info struct {
	Path     string `json:"path"`
	Version  string `json:"version"`
	Sum      string `json:"sum,omitempty"`
	Replaced bool   `json:"replaced"`
	Main     bool   `json:"main"`
}

var (
	detected Info
	once     sync.Once
)

// Get returns the stringr module information of the running binary.
func Get() Info {
	once.Do(func() {
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			detected = Info{Path: ModulePath, Version: Devel}
			return
		}
		detected = fromBuildInfo(bi, ModulePath)
	})

	info := detected
	if Override != "" {
		info.Version = Override
	}
	return info
}

// String returns the stringr version, or Devel when it is unknown.
func String() string {
	return Get().Version
}

// fromBuildInfo finds path among the main module and dependencies of bi.
func fromBuildInfo(bi *debug.BuildInfo, path string) Info {
	info := Info{Path: path, Version: Devel}

	if bi.Main.Path == path {
		info.Main = true
		if bi.Main.Version != "" {
			info.Version = bi.Main.Version
		}
		return info
	}

	for _, dep := range bi.Deps {
		if dep.Path != path {
			continue
		}
		mod := dep
		if dep.Replace != nil {
			info.Replaced = true
			mod = dep.Replace
		}
		if mod.Version != "" {
			info.Version = mod.Version
		}
		info.Sum = mod.Sum
		break
	}
	return info
}
