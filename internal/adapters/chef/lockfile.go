package chef

import (
	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/reduce/internal/core/domain"
	"go.trai.ch/zerr"
)

// lockfileHeader is the comment Cargo writes at the top of every Cargo.lock.
// Comments do not survive a TOML round trip, so it is restored on encode.
const lockfileHeader = "# This file is automatically @generated by Cargo.\n# It is not intended for manual editing.\n"

// lockDoc mirrors the Cargo.lock structure. Metadata (legacy checksum table)
// and patch sections are carried through untouched.
type lockDoc struct {
	Version  int               `toml:"version,omitempty"`
	Package  []lockPackage     `toml:"package,omitempty"`
	Metadata map[string]string `toml:"metadata,omitempty"`
	Patch    map[string]any    `toml:"patch,omitempty"`
}

type lockPackage struct {
	Name         string   `toml:"name"`
	Version      string   `toml:"version"`
	Source       string   `toml:"source,omitempty"`
	Checksum     string   `toml:"checksum,omitempty"`
	Dependencies []string `toml:"dependencies,omitempty"`
}

func decodeLockfile(contents string) (*domain.Lockfile, error) {
	var doc lockDoc
	if err := toml.Unmarshal([]byte(contents), &doc); err != nil {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrMalformedRecipe, "lockfile is not valid TOML"),
			"cause", err.Error(),
		)
	}

	lf := &domain.Lockfile{
		Version:  doc.Version,
		Packages: make([]domain.LockPackage, 0, len(doc.Package)),
		Metadata: doc.Metadata,
		Patch:    doc.Patch,
	}
	for _, p := range doc.Package {
		refs := make([]domain.Ref, 0, len(p.Dependencies))
		for _, raw := range p.Dependencies {
			refs = append(refs, domain.ParseRef(raw))
		}
		lf.Packages = append(lf.Packages, domain.LockPackage{
			Name:         domain.NewInternedString(p.Name),
			Version:      p.Version,
			Source:       p.Source,
			Checksum:     p.Checksum,
			Dependencies: refs,
		})
	}
	return lf, nil
}

func encodeLockfile(lf *domain.Lockfile) (string, error) {
	doc := lockDoc{
		Version:  lf.Version,
		Package:  make([]lockPackage, 0, len(lf.Packages)),
		Metadata: lf.Metadata,
		Patch:    lf.Patch,
	}
	for _, p := range lf.Packages {
		var deps []string
		for _, ref := range p.Dependencies {
			deps = append(deps, ref.Raw)
		}
		doc.Package = append(doc.Package, lockPackage{
			Name:         p.Name.String(),
			Version:      p.Version,
			Source:       p.Source,
			Checksum:     p.Checksum,
			Dependencies: deps,
		})
	}

	out, err := toml.Marshal(doc)
	if err != nil {
		return "", zerr.Wrap(err, "failed to serialize lockfile")
	}
	return lockfileHeader + string(out), nil
}
