package release

import (
	// Internal
	"github.com/salsaflow/release-bump/config"
	"github.com/salsaflow/release-bump/manifest"
	"github.com/salsaflow/release-bump/version"
)

// Current returns the version currently declared in the configured manifest.
func Current(conf *config.Config) (*version.Version, error) {
	if conf == nil {
		conf = config.Default()
	}
	return manifest.ReadVersion(conf.Manifest)
}
