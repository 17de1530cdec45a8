// Package semverconv provides the "version" argument type backed by semantic versioning.
package semverconv

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/convert"
	"github.com/Masterminds/semver/v3"
)

// Version is the type tag commands declare to receive a *semver.Version.
const Version convert.Type = "version"

// NewConverter returns the converter for Version. Leading "v" and short
// forms such as "1.2" are accepted.
func NewConverter() convert.Func[*semver.Version] {
	return convert.NewFunc(Version, semver.NewVersion)
}

// Register adds the Version converter to table.
func Register(table *convert.Table) error {
	return table.Register(NewConverter())
}
