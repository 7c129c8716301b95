package typing

import "unique"

// Name is an interned identifier. Every occurrence of the same constructor or
// term name shares one handle, so copying a Name never allocates.
type Name = unique.Handle[string]

func Intern(s string) Name { return unique.Make(s) }
