package cli

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/ardnew/combin/pkg"
	"github.com/ardnew/combin/profile"
)

// configFile is the base name of the YAML configuration file.
const configFile = "config.yaml"

// userDir returns the combin subdirectory of the directory reported by
// base, falling back to fallback under the home directory and finally to
// the working directory.
func userDir(base func() (string, error), fallback string) string {
	dir, err := base()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else {
			dir = "."
		}
	}

	return filepath.Join(dir, pkg.Name)
}

// configPath returns the path to the configuration file, e.g.
// ~/.config/combin/config.yaml. The file and its directory need not exist.
var configPath = sync.OnceValue(func() string {
	return filepath.Join(userDir(os.UserConfigDir, ".config"), configFile)
})

// profileDir returns the default output directory for profiles, e.g.
// ~/.cache/combin/pprof. The profiler creates it on demand.
var profileDir = sync.OnceValue(func() string {
	return filepath.Join(userDir(os.UserCacheDir, ".cache"), profile.Tag)
})
