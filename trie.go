package lzw12

// childRef is an optional child code. The zero value means "no child".
// Zero is free to act as the marker because assigned child codes start at LiteralCodes.
type childRef uint16

// get returns the referenced code and whether it is set.
func (c childRef) get() (uint16, bool) {
	return uint16(c), c != 0
}

// trieNode maps every possible next byte to the phrase extended by it.
type trieNode [256]childRef

// trie is the encoder dictionary, indexed by phrase code.
// Nodes 0..255 are the literal phrases; they are roots and never need allocation.
type trie struct {
	nodes []trieNode
}

// newTrie allocates all DictMax nodes up front.
func newTrie() *trie {
	return &trie{nodes: make([]trieNode, DictMax)}
}

// child returns the code of node extended by b, if that phrase exists.
func (t *trie) child(node uint16, b byte) (uint16, bool) {
	return t.nodes[node][b].get()
}

// add records code as the phrase node+b.
func (t *trie) add(node uint16, b byte, code uint16) {
	t.nodes[node][b] = childRef(code)
}

// reset drops every phrase longer than one byte.
func (t *trie) reset() {
	clear(t.nodes)
}
