package payload

import (
	"errors"
	"fmt"
)

// ErrSlugUnderivable is returned when a request asks for a slug update with
// an empty value but carries no name to derive one from.
var ErrSlugUnderivable = errors.New("slug cannot be derived: empty slug with no name supplied")

// Update is a sparse update document. Only fields explicitly present in the
// request end up in it, so storage-side partial updates touch exactly the
// columns the client sent. Absence never clears a stored value.
type Update map[string]interface{}

// NewUpdate creates an empty sparse update document.
func NewUpdate() Update {
	return Update{}
}

// Set writes key if ptr is non-nil. Zero values (0, "", false) are present
// values and ARE written; only a nil pointer means "field absent".
func Set[T any](u Update, key string, ptr *T) {
	if ptr != nil {
		u[key] = *ptr
	}
}

// SetSlug applies the slug derivation rule on updates: a supplied non-empty
// slug wins, an empty supplied slug falls back to the name from the same
// request. An empty slug with no accompanying name is rejected rather than
// handing the slugifier nothing to work with.
func SetSlug(u Update, slug *string, name *string) error {
	if slug == nil {
		return nil
	}
	source := *slug
	if source == "" {
		if name == nil {
			return ErrSlugUnderivable
		}
		source = *name
	}
	u["slug"] = Slugify(source)
	return nil
}

// SetList writes an array-valued field only when the normalized list is
// non-empty. New values replace the stored list wholesale; an empty list is
// a no-op, so clearing a list through an update is not possible.
func SetList(u Update, key string, list List) {
	if list.Present() {
		u[key] = []string(list)
	}
}

// Empty reports whether the update would touch no fields.
func (u Update) Empty() bool {
	return len(u) == 0
}

func (u Update) String() string {
	return fmt.Sprintf("update(%d fields)", len(u))
}
