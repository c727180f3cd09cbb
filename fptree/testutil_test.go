package fptree_test

// exampleTransactions is the classic six-basket dataset used across tests.
//
// Item supports: A=4, B=6, C=4, D=4, E=5.
// With min_support=3 the insertion order is B, E, A, D, C and the tree is:
//
//	root
//	 └─ B:6
//	     ├─ E:5
//	     │   ├─ A:4
//	     │   │   ├─ D:3 ─ C:1
//	     │   │   └─ C:1
//	     │   └─ C:1
//	     └─ D:1 ─ C:1
func exampleTransactions() [][]string {
	return [][]string{
		{"A", "B", "D", "E"},
		{"B", "C", "E"},
		{"A", "B", "D", "E"},
		{"A", "B", "C", "E"},
		{"A", "B", "C", "D", "E"},
		{"B", "C", "D"},
	}
}
