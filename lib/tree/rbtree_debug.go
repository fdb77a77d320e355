package tree

import (
	"go.uber.org/zap"

	"github.com/avkud/xcont/lib/infra"
)

// LogStructure dumps the node graph in BFS order, one record per node.
// Debug tooling only, the containers themselves never log.
func LogStructure[K infra.OrderedKey, V any](lg *zap.Logger, tree RBTree[K, V]) {
	if lg == nil || tree == nil {
		return
	}
	root := tree.Root()
	if isNilLeaf[K, V](root) {
		lg.Info("rbtree structure", zap.Int64("size", 0))
		return
	}

	lg.Info("rbtree structure", zap.Int64("size", tree.Len()))
	type bfsItem struct {
		node  RBNode[K, V]
		depth int
	}
	queue := []bfsItem{{node: root}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		lg.Info("rbtree node",
			zap.Any("key", item.node.Key()),
			zap.String("color", item.node.Color().String()),
			zap.Int("depth", item.depth),
		)
		if l := item.node.Left(); !isNilLeaf[K, V](l) {
			queue = append(queue, bfsItem{node: l, depth: item.depth + 1})
		}
		if r := item.node.Right(); !isNilLeaf[K, V](r) {
			queue = append(queue, bfsItem{node: r, depth: item.depth + 1})
		}
	}
}
