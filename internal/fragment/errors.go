package fragment

import "errors"

// ErrGeneratorPanic indicates a generator panicked while producing files.
var ErrGeneratorPanic = errors.New("fragment: generator panicked")
