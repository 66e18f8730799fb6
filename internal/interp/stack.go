// Package interp implements the three-phase (Gamma/Claim/Proof) stack
// machine: a per-phase Term stack, an append-only cross-phase Memory table,
// a FIFO claim queue, cached axiom schemas, and the inference-rule and
// construction-opcode handlers. Ported from
// original_source/cpp/src/lib.hpp:807-1391.
package interp

import (
	"fmt"

	"proofcheck/internal/errs"
	"proofcheck/internal/pattern"
)

// Stack is the interpreter's per-phase operand stack of Terms.
type Stack struct {
	items []pattern.Term
}

// Push places t on top of the stack.
func (s *Stack) Push(t pattern.Term) {
	s.items = append(s.items, t)
}

// Pop removes and returns the top of the stack.
func (s *Stack) Pop() (pattern.Term, error) {
	if len(s.items) == 0 {
		return pattern.Term{}, errs.Wrap(errs.CodeStack, "", fmt.Errorf("insufficient stack items"))
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

// PopPattern pops the top of the stack and requires it to be a Syntactic
// term, returning its underlying pattern.
func (s *Stack) PopPattern() (pattern.Pattern, error) {
	t, err := s.Pop()
	if err != nil {
		return nil, err
	}
	if !t.IsSyntactic() {
		return nil, errs.Wrap(errs.CodeStack, "", fmt.Errorf("expected a syntactic pattern on the stack"))
	}
	return t.Pattern, nil
}

// PopProved pops the top of the stack and requires it to be a Proved term,
// returning its underlying pattern.
func (s *Stack) PopProved() (pattern.Pattern, error) {
	t, err := s.Pop()
	if err != nil {
		return nil, err
	}
	if !t.IsProved() {
		return nil, errs.Wrap(errs.CodeStack, "", fmt.Errorf("expected a proved term on the stack"))
	}
	return t.Pattern, nil
}

// Front returns the top of the stack without removing it.
func (s *Stack) Front() (pattern.Term, error) {
	if len(s.items) == 0 {
		return pattern.Term{}, errs.Wrap(errs.CodeStack, "", fmt.Errorf("insufficient stack items"))
	}
	return s.items[len(s.items)-1], nil
}

// Clear empties the stack. Called between phases, never mid-phase.
func (s *Stack) Clear() {
	s.items = nil
}

// Len reports the current stack depth.
func (s *Stack) Len() int {
	return len(s.items)
}

// Memory is the append-only, cross-phase random-access table populated by
// Save and, during the Gamma phase, by Publish.
type Memory struct {
	items []pattern.Term
}

// Append adds t at the next index and returns that index.
func (m *Memory) Append(t pattern.Term) int {
	m.items = append(m.items, t)
	return len(m.items) - 1
}

// Get returns the term at index i.
func (m *Memory) Get(i int) (pattern.Term, error) {
	if i < 0 || i >= len(m.items) {
		return pattern.Term{}, errs.Wrap(errs.CodeDecode, "", fmt.Errorf("memory index out of bounds: %d", i))
	}
	return m.items[i], nil
}

// Claims is the FIFO queue of required claims: appended to during the Claim
// phase, popped from the front during the Proof phase's Publish handler.
type Claims struct {
	items []pattern.Pattern
}

// Enqueue appends p to the back of the queue.
func (c *Claims) Enqueue(p pattern.Pattern) {
	c.items = append(c.items, p)
}

// Dequeue removes and returns the pattern at the front of the queue.
func (c *Claims) Dequeue() (pattern.Pattern, error) {
	if len(c.items) == 0 {
		return nil, errs.Wrap(errs.CodeClaimMismatch, "", fmt.Errorf("insufficient claims"))
	}
	front := c.items[0]
	c.items = c.items[1:]
	return front, nil
}

// Empty reports whether the queue has no remaining claims.
func (c *Claims) Empty() bool {
	return len(c.items) == 0
}

// Len reports the number of remaining claims.
func (c *Claims) Len() int {
	return len(c.items)
}
