package ports

type DenylistSourcePort interface {
	Load(path string) (string, error)
}
