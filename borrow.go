package maptrait

// Borrower is implemented by key types that present a borrowed view
// of themselves for lookups.
type Borrower[Q any] interface {
	Borrow() Q
}

// Identity is the borrow function for keys that are their own query
// type.
func Identity[K any](key K) K {
	return key
}

// BorrowOf is the borrow function for keys implementing Borrower.
func BorrowOf[K Borrower[Q], Q any](key K) Q {
	return key.Borrow()
}
