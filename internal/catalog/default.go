package catalog

// Default returns the built-in catalog: three categories of four questions
// each, worth 100 to 400 dollars.
func Default() *Catalog {
	return MustNew(
		[]string{"programming", "algorithms", "databases"},
		[]int{100, 200, 300, 400},
		[]Entry{
			{"programming", 100, "In C, this preprocessor directive is used to define symbolic constants.", "define"},
			{"programming", 200, "This C data type is used to store a single character.", "char"},
			{"programming", 300, "This C standard library function allocates a block of bytes on the heap.", "malloc"},
			{"programming", 400, "This C function releases memory that was previously allocated on the heap.", "free"},

			{"algorithms", 100, "In this simple sorting algorithm, adjacent elements are repeatedly swapped.", "bubble"},
			{"algorithms", 200, "This efficient search algorithm requires a sorted array and runs in O(log n).", "binary"},
			{"algorithms", 300, "Named after its Dutch inventor, this algorithm finds the shortest path in a graph.", "dijkstra"},
			{"algorithms", 400, "This O(n log n) sorting algorithm recursively divides and merges subarrays.", "mergesort"},

			{"databases", 100, "This SQL command is used to retrieve data from a database table.", "select"},
			{"databases", 200, "This SQL command permanently removes rows from a table.", "delete"},
			{"databases", 300, "This type of key uniquely identifies each record in a database table.", "primary"},
			{"databases", 400, "This SQL command is used to modify existing records in a database table.", "update"},
		},
	)
}
