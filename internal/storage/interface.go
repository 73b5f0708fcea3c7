package storage

// Archive defines the contract for durable report snapshots.
type Archive interface {
	Store(filename string, data []byte) error
	Retrieve(filename string) ([]byte, error)
	List(prefix string) ([]string, error)
	Delete(filename string) error
}
