package graph

var edges = map[int][]int{
	0: {1, 4},
	1: {2},
	2: {1, 3},
	3: {},
	4: {5},
	5: {4, 3},
	6: {7},
	7: {},
}
var _sampleGraph = OfHashable(func(i int) []int {
	return edges[i]
})
