package cart

// PersistenceError reports a failed read or write of the stored cart. The
// in-memory cart is still usable when one is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "cart: " + e.Op + " failed: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
