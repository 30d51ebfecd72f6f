package employee

// Repository is the record store: an ordered sequence of employees plus the
// auto-id counter. Insertion order is preserved and reflected by List. The
// counter only tracks ids the store itself issued; it is not reconciled with
// ids callers supply explicitly. No locking — requests mutate the store one
// at a time and no operation yields mid-mutation.
type Repository interface {
	List() []Employee
	ReplaceAll(records []Employee)
	NextID() int64
	SetNextID(n int64)
	Reset()
}

type memoryRepository struct {
	records []Employee
	nextID  int64
}

// NewMemoryRepository returns an empty store with the auto-id counter at 1.
// Each instance is independent, so tests can own isolated stores instead of
// resetting shared state.
func NewMemoryRepository() Repository {
	return &memoryRepository{nextID: 1}
}

func (r *memoryRepository) List() []Employee {
	out := make([]Employee, len(r.records))
	copy(out, r.records)
	return out
}

func (r *memoryRepository) ReplaceAll(records []Employee) {
	r.records = make([]Employee, len(records))
	copy(r.records, records)
}

func (r *memoryRepository) NextID() int64 {
	return r.nextID
}

func (r *memoryRepository) SetNextID(n int64) {
	r.nextID = n
}

func (r *memoryRepository) Reset() {
	r.records = nil
	r.nextID = 1
}
