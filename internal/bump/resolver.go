package bump

import (
	"github.com/Tomas-vilte/conventionalish/internal/domain/models"
	"github.com/Tomas-vilte/conventionalish/internal/registry"
)

// Resolver maps commit types to version bumps. The table is derived once from
// the registry.
type Resolver struct {
	levels map[string]models.BumpLevel
}

func New(reg *registry.Registry) *Resolver {
	levels := make(map[string]models.BumpLevel, reg.Len())
	for _, def := range reg.Entries() {
		levels[def.Token] = def.Bump
	}
	return &Resolver{levels: levels}
}

// Resolve returns MajorBump for any breaking commit, otherwise the level
// declared for token. Unknown tokens resolve to NoBump.
func (r *Resolver) Resolve(token string, breaking bool) models.BumpLevel {
	if breaking {
		return models.MajorBump
	}
	return r.levels[token]
}

func (r *Resolver) ResolveCommit(c models.ConventionalCommit) models.BumpLevel {
	return r.Resolve(c.Type, c.Breaking)
}

// ResolveAll combines the bump of every commit of a release.
func (r *Resolver) ResolveAll(commits []models.ConventionalCommit) models.BumpLevel {
	level := models.NoBump
	for _, c := range commits {
		if l := r.ResolveCommit(c); l > level {
			level = l
		}
		if level == models.MajorBump {
			break
		}
	}
	return level
}

// Table returns a copy of the token to level mapping.
func (r *Resolver) Table() map[string]models.BumpLevel {
	out := make(map[string]models.BumpLevel, len(r.levels))
	for k, v := range r.levels {
		out[k] = v
	}
	return out
}

// Combine returns the strongest level. No levels means NoBump.
func Combine(levels ...models.BumpLevel) models.BumpLevel {
	result := models.NoBump
	for _, l := range levels {
		if l > result {
			result = l
		}
	}
	return result
}
