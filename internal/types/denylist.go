package types

type DenylistEntryKind string

const (
	DenylistEntryName  DenylistEntryKind = "name"
	DenylistEntryExact DenylistEntryKind = "exact"
)

// DenylistEntry is a single parsed denylist line: either a bare package
// name (matches every version) or an exact name@version pair.
type DenylistEntry struct {
	Kind    DenylistEntryKind
	Name    string
	Version string
}

// ExactKey identifies one denylisted release.
type ExactKey struct {
	Name    string
	Version string
}

// Lists is the parsed denylist. Every name that appears in Exact is also
// present in Names, so an exact entry always implies a name-level entry.
type Lists struct {
	Exact map[ExactKey]struct{}
	Names map[string]struct{}
}

func NewLists() Lists {
	return Lists{
		Exact: map[ExactKey]struct{}{},
		Names: map[string]struct{}{},
	}
}
