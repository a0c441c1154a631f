// Package mockvsspy demonstrates the difference between a mock and a spy of
// the same list dependency.
package mockvsspy

import "github.com/toejough/mockspy/list"

// Restock adds items to the shelf and reports how many items the shelf holds
// afterwards. It is the code under test that depends on a list.
func Restock(shelf list.List[string], items ...string) int {
	for _, item := range items {
		shelf.Add(item)
	}

	return shelf.Size()
}
