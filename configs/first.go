package configs

// First returns the first value at path, or zero when no file sets it.
// Load and decode errors panic.
func First[T any](loader Loader, path string) (ret T) {
	for v, err := range All[T](loader, path) {
		if err != nil {
			panic(err)
		}
		return v
	}
	return
}
