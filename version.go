package patchgl

import "fmt"

// Id is a monotonic version tag that can be armed (Enabled) or disarmed.
//
// Components carry an Id in their model and bump it exactly when a logical
// edge occurs, such as a button going from pressed to released. Because the
// whole Flood is rebuilt every frame, the window compares the Id it compiles
// against the one it stored last time; only an upgrade fires the effect.
type Id struct {
	Number  uint64
	Enabled bool
}

// EnabledId returns the armed Id {1, true}. A fresh model starting from it
// fires its effect on the first cycle.
func EnabledId() Id {
	return Id{Number: 1, Enabled: true}
}

// Upgrades reports whether id should supersede other:
//
//	id armed,    other armed:    id.Number > other.Number
//	id armed,    other disarmed: true
//	id disarmed, other any:      false
func (id Id) Upgrades(other Id) bool {
	switch {
	case !id.Enabled:
		return false
	case !other.Enabled:
		return true
	default:
		return id.Number > other.Number
	}
}

// UpgradesOption is Upgrades against a possibly absent Id. Nothing stored is
// upgraded by any armed Id and by no disarmed one.
func (id Id) UpgradesOption(other *Id) bool {
	if other == nil {
		return id.Enabled
	}
	return id.Upgrades(*other)
}

// Bump returns the next armed Id. It always upgrades id.
func (id Id) Bump() Id {
	return Id{Number: id.Number + 1, Enabled: true}
}

func (id Id) String() string {
	return fmt.Sprintf("Id{%d,%t}", id.Number, id.Enabled)
}

// Version pairs a value with the Id it was recorded at.
type Version[T any] struct {
	Value T
	Id    Id
}

// NewVersion returns value at the default, disarmed Id.
func NewVersion[T any](value T) Version[T] {
	return Version[T]{Value: value}
}

// VersionAt returns value at the given Id.
func VersionAt[T any](value T, id Id) Version[T] {
	return Version[T]{Value: value, Id: id}
}

// Upgrades reports whether v's Id upgrades other's.
func (v Version[T]) Upgrades(other Version[T]) bool {
	return v.Id.Upgrades(other.Id)
}

// UpgradesOption is Upgrades against a possibly absent Version.
func (v Version[T]) UpgradesOption(other *Version[T]) bool {
	if other == nil {
		return v.Id.UpgradesOption(nil)
	}
	return v.Upgrades(*other)
}

// Bump returns value at the next armed Id.
func (v Version[T]) Bump(value T) Version[T] {
	return Version[T]{Value: value, Id: v.Id.Bump()}
}
