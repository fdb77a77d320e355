package tree

import (
	"sync/atomic"

	"github.com/avkud/xcont/lib/infra"
)

type rbNode[K infra.OrderedKey, V any] struct {
	parent *rbNode[K, V]
	left   *rbNode[K, V]
	right  *rbNode[K, V]
	key    K
	val    V
	color  RBColor
	hasKV  bool
}

func (node *rbNode[K, V]) Color() RBColor {
	return node.color
}

func (node *rbNode[K, V]) Key() K {
	return node.key
}

func (node *rbNode[K, V]) Val() V {
	return node.val
}

func (node *rbNode[K, V]) HasKeyVal() bool {
	if node == nil {
		return false
	}
	return node.hasKV
}

func (node *rbNode[K, V]) Left() RBNode[K, V] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[K, V]) Right() RBNode[K, V] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *rbNode[K, V]) Parent() RBNode[K, V] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *rbNode[K, V]) isNilLeaf() bool {
	return isNilLeaf[K, V](node)
}

func (node *rbNode[K, V]) isRed() bool {
	return isRed[K, V](node)
}

func (node *rbNode[K, V]) isBlack() bool {
	return isBlack[K, V](node)
}

func (node *rbNode[K, V]) isRoot() bool {
	return isRoot[K, V](node)
}

func (node *rbNode[K, V]) isLeaf() bool {
	return node != nil && node.parent != nil && node.left.isNilLeaf() && node.right.isNilLeaf()
}

func (node *rbNode[K, V]) Direction() RBDirection {
	if node.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] nil leaf node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *rbNode[K, V]) sibling() *rbNode[K, V] {
	switch node.Direction() {
	case Left:
		return node.parent.right
	case Right:
		return node.parent.left
	default:

	}
	return nil
}

func (node *rbNode[K, V]) hasSibling() bool {
	return !node.isRoot() && node.sibling() != nil
}

func (node *rbNode[K, V]) uncle() *rbNode[K, V] {
	return node.parent.sibling()
}

func (node *rbNode[K, V]) hasUncle() bool {
	return !node.isRoot() && node.parent.hasSibling()
}

func (node *rbNode[K, V]) grandpa() *rbNode[K, V] {
	return node.parent.parent
}

func (node *rbNode[K, V]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *rbNode[K, V]) minimum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *rbNode[K, V]) maximum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order.
func (node *rbNode[K, V]) pred() *rbNode[K, V] {
	x := node
	if x == nil {
		return nil
	}
	if x.left != nil {
		return x.left.maximum()
	}

	aux := x.parent
	// Backtrack to the father node that is the x's pred.
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (node *rbNode[K, V]) succ() *rbNode[K, V] {
	x := node
	if x == nil {
		return nil
	}
	if x.right != nil {
		return x.right.minimum()
	}

	aux := x.parent
	// Backtrack to the father node that is the x's succ.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

// release unlinks the node and drops its liveness bit, which is what
// invalidates every outstanding iterator referencing it.
func (node *rbNode[K, V]) release() {
	node.parent = nil
	node.left = nil
	node.right = nil
	node.hasKV = false
}

type rbTree[K infra.OrderedKey, V any] struct {
	root           *rbNode[K, V]
	count          int64
	kcmp           infra.OrderedKeyComparator[K]
	isDesc         bool
	isRmBorrowPred bool
}

func (tree *rbTree[K, V]) keyCompare(k1, k2 K) int64 {
	res := tree.kcmp(k1, k2)
	if tree.isDesc {
		return -res
	}
	return res
}

func (tree *rbTree[K, V]) KeyCompare(i, j K) int64 {
	return tree.keyCompare(i, j)
}

func (tree *rbTree[K, V]) Len() int64 {
	return atomic.LoadInt64(&tree.count)
}

func (tree *rbTree[K, V]) Empty() bool {
	return tree.Len() <= 0
}

func (tree *rbTree[K, V]) Root() RBNode[K, V] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because a black child would unbalance the black depth of X's NIL
//   descendants, violating p4.

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *rbTree[K, V]) leftRotate(x *rbNode[K, V]) {
	if x == nil || x.right.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.Direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to left-rotate")
	}
	y.parent = p
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *rbTree[K, V]) rightRotate(x *rbNode[K, V]) {
	if x == nil || x.left.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.Direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to right-rotate")
	}
	y.parent = p
}

// Insert walks down from the root by key comparison and attaches a new
// red leaf at the terminal nil slot, then rebalances. Duplicate keys are
// rejected without mutation unless allowDuplicates is enabled, in which
// case equal keys always continue into the right subtree.
func (tree *rbTree[K, V]) Insert(key K, val V, allowDuplicates ...bool) (Iterator[K, V], bool) {
	allowDup := len(allowDuplicates) > 0 && allowDuplicates[0]

	if /* empty tree */ tree.root.isNilLeaf() {
		tree.root = &rbNode[K, V]{
			key:   key,
			val:   val,
			hasKV: true,
		}
		atomic.AddInt64(&tree.count, 1)
		return Iterator[K, V]{tree: tree, node: tree.root}, true
	}

	var x, y *rbNode[K, V] = tree.root, nil
	for !x.isNilLeaf() {
		y = x
		res := tree.keyCompare(key, x.key)
		if /* equal */ res == 0 && !allowDup {
			return Iterator[K, V]{tree: tree, node: x}, false
		}
		if /* less */ res < 0 {
			x = x.left
		} else /* greater, or a permitted duplicate kept right */ {
			x = x.right
		}
	}

	z := &rbNode[K, V]{
		key:    key,
		val:    val,
		color:  Red,
		parent: y,
		hasKV:  true,
	}
	if tree.keyCompare(key, y.key) < 0 {
		y.left = z
	} else {
		y.right = z
	}

	atomic.AddInt64(&tree.count, 1)
	tree.insertRebalance(z)
	return Iterator[K, V]{tree: tree, node: z}, true
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).

im3: If both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainting G into red it may still carry a red-violation upward.
Loop to fix grandpa.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im4: The parent P is red but the uncle U is black. (red-violation)
X is the opposite direction to P. Rotate P to the opposite direction,
then enter im5 with the old parent.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im5: Current node is the same direction as its parent.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *rbTree[K, V]) insertRebalance(x *rbNode[K, V]) {
	for !x.isNilLeaf() {
		if x.isRoot() {
			if x.isRed() {
				x.color = Black
			}
			return
		}

		if x.parent.isBlack() {
			return
		}

		// The parent is red, so it cannot be the root and the
		// grandparent must exist and be black.
		if /* im3 */ x.hasUncle() && x.uncle().isRed() {
			x.parent.color = Black
			x.uncle().color = Black
			gp := x.grandpa()
			gp.color = Red
			x = gp
			continue
		}

		dir := x.Direction()
		if /* im4 */ dir != x.parent.Direction() {
			p := x.parent
			switch dir {
			case Left:
				tree.rightRotate(p)
			case Right:
				tree.leftRotate(p)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] insert violate (im4)")
			}
			x = p // enter im5 to fix
		}

		switch /* im5 */ x.parent.Direction() {
		case Left:
			tree.rightRotate(x.grandpa())
		case Right:
			tree.leftRotate(x.grandpa())
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] insert violate (im5)")
		}

		x.parent.color = Black
		x.sibling().color = Red
		return
	}
}

func (tree *rbTree[K, V]) Search(x RBNode[K, V], fn func(RBNode[K, V]) int64) RBNode[K, V] {
	aux, ok := x.(*rbNode[K, V])
	if !ok {
		return nil
	}
	for !aux.isNilLeaf() {
		res := fn(aux)
		if res == 0 {
			return aux
		}
		if res > 0 {
			aux = aux.right
		} else {
			aux = aux.left
		}
	}
	return nil
}

// Find runs the standard BST descent and returns an iterator to the
// first equal node it meets, or the end sentinel.
func (tree *rbTree[K, V]) Find(key K) Iterator[K, V] {
	for aux := tree.root; !aux.isNilLeaf(); {
		res := tree.keyCompare(key, aux.key)
		if res == 0 {
			return Iterator[K, V]{tree: tree, node: aux}
		} else if res < 0 {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return tree.End()
}

func (tree *rbTree[K, V]) Begin() Iterator[K, V] {
	if tree.root.isNilLeaf() {
		return tree.End()
	}
	return Iterator[K, V]{tree: tree, node: tree.root.minimum()}
}

func (tree *rbTree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{tree: tree}
}

// owns reports whether the node is linked into this tree's graph.
func (tree *rbTree[K, V]) owns(node *rbNode[K, V]) bool {
	if node == nil || tree.root == nil {
		return false
	}
	aux := node
	for aux.parent != nil {
		aux = aux.parent
	}
	return aux == tree.root
}

func (tree *rbTree[K, V]) Erase(it Iterator[K, V]) error {
	if it.node == nil {
		return infra.WrapErrorStackWithMessage(ErrInvalidIterator, "[rbtree] erase the end sentinel")
	}
	if !it.node.hasKV {
		return infra.WrapErrorStackWithMessage(ErrInvalidIterator, "[rbtree] erase an already erased position")
	}
	if !tree.owns(it.node) {
		return infra.WrapErrorStackWithMessage(ErrInvalidIterator, "[rbtree] erase a position owned by another tree")
	}

	tree.removeNode(it.node)
	atomic.AddInt64(&tree.count, -1)
	return nil
}

/*
r1: Only a root node, remove directly.

r2: Current node X has both left and right children.
Retarget the removal onto X's succ (or pred), which owns at most one
child; once that node is spliced out it takes over X's links and color,
and X's identity dies with the erased element.

r3: (1) Current node X is a red leaf node, detach directly.
r3: (2) Current node X is a black leaf node, rebalance before detaching.
(black-violation)

r4: Current node X is not a leaf but has one child.
That child must be red (see the p4 conclusion), so splicing X out and
repainting the child black restores the balance.
*/
func (tree *rbTree[K, V]) removeNode(z *rbNode[K, V]) (res *rbNode[K, V]) {
	res = &rbNode[K, V]{
		key:   z.key,
		val:   z.val,
		hasKV: true,
	}

	if /* r1 */ atomic.LoadInt64(&tree.count) == 1 && z.isRoot() {
		tree.root = nil
		z.release()
		return res
	}

	y := z
	if /* r2 */ !y.left.isNilLeaf() && !y.right.isNilLeaf() {
		if tree.isRmBorrowPred {
			y = z.pred() // enter r3-r4
		} else {
			y = z.succ() // enter r3-r4
		}
	}

	if /* r3 */ y.isLeaf() {
		if /* r3 (2) */ y.isBlack() {
			tree.removeRebalance(y)
		}
	} else /* r4 */ {
		var replace *rbNode[K, V]
		if !y.right.isNilLeaf() {
			replace = y.right
		} else {
			replace = y.left
		}
		if replace == nil {
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove a non-leaf node without any child, violate (r4)")
		}

		switch y.Direction() {
		case Root:
			tree.root = replace
			tree.root.parent = nil
		case Left:
			y.parent.left = replace
			replace.parent = y.parent
		case Right:
			y.parent.right = replace
			replace.parent = y.parent
		}

		if y.isBlack() {
			if replace.isRed() {
				replace.color = Black
			} else {
				tree.removeRebalance(replace)
			}
		}
	}

	// Unlink the spliced node.
	if !y.isRoot() && y == y.parent.left {
		y.parent.left = nil
	} else if !y.isRoot() && y == y.parent.right {
		y.parent.right = nil
	}
	if y == z {
		y.release()
		return res
	}

	// Two-children case: the spliced neighbor node moves into z's
	// position, taking over its links and color. The node itself moves,
	// not its pair, so iterators referencing the neighbor follow it
	// while iterators referencing z die with the erased element.
	y.parent, y.left, y.right, y.color = z.parent, z.left, z.right, z.color
	y.fixLink()
	if z.isRoot() {
		tree.root = y
	} else if z == z.parent.left {
		z.parent.left = y
	} else {
		z.parent.right = y
	}
	z.release()

	return res
}

func (tree *rbTree[K, V]) Remove(key K) (RBNode[K, V], error) {
	if atomic.LoadInt64(&tree.count) <= 0 {
		return nil, infra.WrapErrorStackWithMessage(ErrTreeEmpty, "[rbtree] remove from an empty tree")
	}
	z := tree.root
	for !z.isNilLeaf() {
		res := tree.keyCompare(key, z.key)
		if res == 0 {
			break
		} else if res < 0 {
			z = z.left
		} else {
			z = z.right
		}
	}
	if z.isNilLeaf() {
		return nil, infra.WrapErrorStackWithMessage(ErrTreeKeyNotFound, "[rbtree] remove an absent key")
	}

	res := tree.removeNode(z)
	atomic.AddInt64(&tree.count, -1)
	return res, nil
}

func (tree *rbTree[K, V]) RemoveMin() (RBNode[K, V], error) {
	if atomic.LoadInt64(&tree.count) <= 0 {
		return nil, infra.WrapErrorStackWithMessage(ErrTreeEmpty, "[rbtree] remove from an empty tree")
	}
	_min := tree.root.minimum()
	if _min.isNilLeaf() {
		return nil, infra.WrapErrorStackWithMessage(ErrTreeKeyNotFound, "[rbtree] empty root")
	}
	res := tree.removeNode(_min)
	atomic.AddInt64(&tree.count, -1)
	return res, nil
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

Sc is the nephew on X's side, Sd the nephew on the far side.

rm1: X's sibling S is red, so P, Sc and Sd must be black.
Rotate P towards X, repaint S black and P red, then retry with the new
black sibling.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: P is red, S, Sc and Sd are black.
Swap the colors of P and S; the black deficiency is paid locally.

rm3: P, S, Sc and Sd are all black.
Repaint S red to rebalance the subtree locally, then push the
deficiency up to P.

rm4: S is black, the near nephew Sc is red, the far nephew Sd is black.
Rotate S away from X and repaint to convert into the rm5 shape.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm5: S is black and the far nephew Sd is red.
Rotate P towards X, give S P's color, paint P and Sd black. Terminal.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]
*/
func (tree *rbTree[K, V]) removeRebalance(x *rbNode[K, V]) {
	for {
		if x.isRoot() {
			return
		}

		sibling := x.sibling()
		dir := x.Direction()
		if /* rm1 */ sibling.isRed() {
			switch dir {
			case Left:
				tree.leftRotate(x.parent)
			case Right:
				tree.rightRotate(x.parent)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove violate (rm1)")
			}
			sibling.color = Black
			x.parent.color = Red // ready to enter rm2
			sibling = x.sibling()
		}

		var sc, sd *rbNode[K, V]
		switch dir {
		case Left:
			sc, sd = sibling.left, sibling.right
		case Right:
			sc, sd = sibling.right, sibling.left
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove violate (rm2)")
		}

		if sc.isBlack() && sd.isBlack() {
			if /* rm2 */ x.parent.isRed() {
				sibling.color = Red
				x.parent.color = Black
				break
			} else /* rm3 */ {
				sibling.color = Red
				x = x.parent
				continue
			}
		} else {
			if /* rm4 */ !sc.isNilLeaf() && sc.isRed() {
				switch dir {
				case Left:
					tree.rightRotate(sibling)
				case Right:
					tree.leftRotate(sibling)
				default:
					// impossible run to here
					panic( /* debug assertion */ "[rbtree] remove violate (rm4)")
				}
				sc.color = Black
				sibling.color = Red
				sibling = x.sibling()
				switch dir {
				case Left:
					sd = sibling.right
				case Right:
					sd = sibling.left
				default:
					// impossible run to here
					panic( /* debug assertion */ "[rbtree] remove violate (rm4)")
				}
			}

			switch /* rm5 */ dir {
			case Left:
				tree.leftRotate(x.parent)
			case Right:
				tree.rightRotate(x.parent)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove violate (rm5)")
			}
			sibling.color = x.parent.color
			x.parent.color = Black
			if !sd.isNilLeaf() {
				sd.color = Black
			}
			break
		}
	}
}

// Inorder traversal to implement the DFS.
func (tree *rbTree[K, V]) Foreach(action func(idx int64, color RBColor, key K, val V) bool) {
	size := atomic.LoadInt64(&tree.count)
	aux := tree.root
	if size < 0 || aux == nil {
		return
	}

	stack := make([]*rbNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.color, aux.key, aux.val) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// Swap exchanges the node graphs in constant time. Nothing is copied,
// so every live iterator keeps referencing its node and follows it into
// the other tree's identity.
func (tree *rbTree[K, V]) Swap(other RBTree[K, V]) error {
	o, ok := other.(*rbTree[K, V])
	if !ok || o == nil {
		return infra.NewErrorStack("[rbtree] swap with a foreign tree implementation")
	}

	tree.root, o.root = o.root, tree.root
	cnt := atomic.LoadInt64(&tree.count)
	atomic.StoreInt64(&tree.count, atomic.LoadInt64(&o.count))
	atomic.StoreInt64(&o.count, cnt)
	tree.kcmp, o.kcmp = o.kcmp, tree.kcmp
	tree.isDesc, o.isDesc = o.isDesc, tree.isDesc
	tree.isRmBorrowPred, o.isRmBorrowPred = o.isRmBorrowPred, tree.isRmBorrowPred
	return nil
}

// Clone deep copies the node graph with an explicit work list instead
// of recursion, so pathologically shaped trees cannot blow the stack.
func (tree *rbTree[K, V]) Clone() RBTree[K, V] {
	cp := &rbTree[K, V]{
		kcmp:           tree.kcmp,
		isDesc:         tree.isDesc,
		isRmBorrowPred: tree.isRmBorrowPred,
	}
	if tree.root.isNilLeaf() {
		return cp
	}

	type cloneItem struct {
		src    *rbNode[K, V]
		parent *rbNode[K, V]
		dir    RBDirection
	}
	stack := make([]cloneItem, 0, 32)
	stack = append(stack, cloneItem{src: tree.root, dir: Root})

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &rbNode[K, V]{
			key:    item.src.key,
			val:    item.src.val,
			color:  item.src.color,
			parent: item.parent,
			hasKV:  true,
		}
		switch item.dir {
		case Root:
			cp.root = n
		case Left:
			item.parent.left = n
		case Right:
			item.parent.right = n
		}

		if item.src.left != nil {
			stack = append(stack, cloneItem{src: item.src.left, parent: n, dir: Left})
		}
		if item.src.right != nil {
			stack = append(stack, cloneItem{src: item.src.right, parent: n, dir: Right})
		}
	}
	atomic.StoreInt64(&cp.count, atomic.LoadInt64(&tree.count))
	return cp
}

// Release frees every node with an iterative in-order walk and leaves
// the tree empty. All outstanding iterators into the tree are
// invalidated.
func (tree *rbTree[K, V]) Release() {
	size := atomic.LoadInt64(&tree.count)
	aux := tree.root
	tree.root = nil
	if size < 0 || aux == nil {
		return
	}

	stack := make([]*rbNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		aux = stack[size-1]
		r := aux.right
		aux.release()
		atomic.AddInt64(&tree.count, -1)
		stack = stack[:size-1]
		if r != nil {
			for aux = r; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

type RBTreeOpt[K infra.OrderedKey, V any] func(*rbTree[K, V])

func WithRBTreeDesc[K infra.OrderedKey, V any]() RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.isDesc = true
	}
}

// WithRBTreeRemoveBorrowPred borrows the in-order predecessor instead
// of the successor when a two-children node is erased.
func WithRBTreeRemoveBorrowPred[K infra.OrderedKey, V any]() RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.isRmBorrowPred = true
	}
}

func WithRBTreeKeyComparator[K infra.OrderedKey, V any](kcmp infra.OrderedKeyComparator[K]) RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		if kcmp != nil {
			tree.kcmp = kcmp
		}
	}
}

func NewRBTree[K infra.OrderedKey, V any](opts ...RBTreeOpt[K, V]) RBTree[K, V] {
	tree := &rbTree[K, V]{
		kcmp: infra.OrderedCompare[K],
	}
	for _, o := range opts {
		if o != nil {
			o(tree)
		}
	}
	return tree
}
