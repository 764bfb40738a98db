package cover

// IsUnate reports whether cv has no binate field, i.e. Tautology and
// Complement would hit their direct (non-recursive) terminal case on it
// without any further splitting. Both call sites use this as their
// fast-path check before falling back to mostBinateField for the actual
// splitting field.
func IsUnate(cv Cover) bool {
	_, ok := mostBinateField(cv)
	return !ok
}
