package vfs

import "strings"

// Completions returns the entries matching a partially typed path. The text up to
// the last "/" selects the directory to list; the rest is a name prefix. Candidates
// keep the typed directory portion and directories end in "/".
func (f *FileSystem) Completions(partial string) []string {
	dir, fragment := "", partial
	if i := strings.LastIndex(partial, "/"); i >= 0 {
		dir, fragment = partial[:i+1], partial[i+1:]
	}

	nodes, err := f.ListDirectory(dir)
	if err != nil {
		return nil
	}

	var candidates []string
	for _, node := range SortForDisplay(nodes) {
		if !strings.HasPrefix(node.Name(), fragment) {
			continue
		}
		candidate := dir + node.Name()
		if node.IsDir() {
			candidate += "/"
		}
		candidates = append(candidates, candidate)
	}
	return candidates
}
