package project

import "fmt"

// seqIDs returns a deterministic generator: id-1, id-2, ...
func seqIDs() IDGen {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
