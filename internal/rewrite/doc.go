// Package rewrite implements the generic traversal rewrite rules run under.
//
// One visitor serves every rule: Rewrite rebuilds the tree depth-first,
// post-order, and invokes the rule at each node that owns a statement
// sequence. Rules never carry traversal logic of their own — they see flat
// statement sequences regardless of how deeply the sequence is nested.
// A traversal is a pure function of the input tree and the rule; the only
// side channel is the diagnostic sink carried by the Context.
package rewrite
