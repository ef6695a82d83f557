package config

import "sort"

// detectCycle returns the component names participating in an inheritance
// cycle, or nil if no cycle exists. Bases that are not components of the
// stylesheet end a chain.
func detectCycle(comps []ComponentConfig) []string {
	graph := make(map[string][]string, len(comps))
	for _, comp := range comps {
		graph[comp.Name] = nil
	}
	for _, comp := range comps {
		if _, ok := graph[comp.Base]; ok {
			graph[comp.Name] = []string{comp.Base}
		}
	}

	visiting := make(map[string]bool, len(comps))
	visited := make(map[string]bool, len(comps))
	var stack []string

	var cycle []string
	var dfs func(string) bool
	dfs = func(node string) bool {
		visiting[node] = true
		stack = append(stack, node)

		for _, dep := range graph[node] {
			if !visited[dep] {
				if visiting[dep] {
					idx := indexOf(stack, dep)
					if idx >= 0 {
						cycle = append([]string{}, stack[idx:]...)
						cycle = append(cycle, dep)
					}
					return true
				}
				if dfs(dep) {
					return true
				}
			}
		}

		visiting[node] = false
		visited[node] = true
		stack = stack[:len(stack)-1]
		return false
	}

	for _, name := range sortedNames(graph) {
		if visited[name] {
			continue
		}
		if dfs(name) {
			break
		}
	}

	return cycle
}

// definitionOrder returns component indexes ordered so that every component
// comes after the component it extends. The stylesheet must be acyclic.
func definitionOrder(comps []ComponentConfig) []int {
	index := make(map[string]int, len(comps))
	for i, comp := range comps {
		index[comp.Name] = i
	}

	order := make([]int, 0, len(comps))
	placed := make(map[int]bool, len(comps))
	var place func(int)
	place = func(i int) {
		if placed[i] {
			return
		}
		placed[i] = true
		if parent, ok := index[comps[i].Base]; ok && parent != i {
			place(parent)
		}
		order = append(order, i)
	}

	for i := range comps {
		place(i)
	}
	return order
}

func sortedNames(graph map[string][]string) []string {
	names := make([]string, 0, len(graph))
	for name := range graph {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func indexOf(slice []string, target string) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}
