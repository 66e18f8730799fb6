package interp

import (
	"errors"
	"fmt"

	"proofcheck/internal/decode"
	"proofcheck/internal/errs"
	"proofcheck/internal/pattern"
)

// Phase names the three passes a verification run makes over its three
// instruction streams. Ported from ExecutionPhase in
// original_source/cpp/src/lib.hpp:848.
type Phase int

const (
	GammaPhase Phase = iota
	ClaimPhase
	ProofPhase
)

func (p Phase) String() string {
	switch p {
	case GammaPhase:
		return "gamma"
	case ClaimPhase:
		return "claim"
	case ProofPhase:
		return "proof"
	default:
		return "unknown"
	}
}

// Machine holds the state that persists across all three phases of a single
// verification run: the append-only memory table and the claim queue. Its
// operand stack is reset at the start of every phase. Ported from the
// execute_instructions/verify split in lib.hpp:860-1391.
type Machine struct {
	Mem    Memory
	Claims Claims
	stack  Stack
	axioms axiomSchemas
}

// NewMachine builds a Machine with empty memory and claims and the five
// axiom schemas cached once, as lib.hpp:872-892 builds them once per
// execute_instructions call — here once per Machine instead, since memory
// and claims, not the schemas, are what needs to survive across phases.
func NewMachine() *Machine {
	return &Machine{axioms: newAxiomSchemas()}
}

// Run decodes and executes one instruction stream under the given phase,
// starting from a fresh operand stack. Ported from lib.hpp:860-1347.
func (m *Machine) Run(buf []int, phase Phase) error {
	m.stack.Clear()
	c := decode.NewCursor(buf)
	for !c.Done() {
		op, err := c.ReadOpcode()
		if err != nil {
			return errs.Wrap(errs.CodeDecode, phase.String(), err)
		}
		if name, ok := decode.IsReserved(op); ok {
			return errs.Wrap(errs.CodeDecode, phase.String(), fmt.Errorf("opcode %s is a reserved, unimplemented rule schema", name))
		}
		if err := m.step(c, op, phase); err != nil {
			return attachContext(err, op, phase)
		}
	}
	return nil
}

// attachContext records the phase and opcode an already-coded fault
// occurred under, or codes an uncoded error as a decode failure (operand
// read failures from the cursor reach here uncoded).
func attachContext(err error, op decode.Opcode, phase Phase) error {
	var fault *errs.Fault
	if errors.As(err, &fault) {
		return errs.Wrap(fault.Code, phase.String(), fmt.Errorf("%s: %w", op, fault.Err))
	}
	return errs.Wrap(errs.CodeDecode, phase.String(), fmt.Errorf("%s: %w", op, err))
}

func (m *Machine) step(c *decode.Cursor, op decode.Opcode, phase Phase) error {
	switch op {
	case decode.OpEVar:
		id, err := c.ReadID()
		if err != nil {
			return err
		}
		m.stack.Push(pattern.Syntactic(pattern.NewEVar(id)))

	case decode.OpSVar:
		id, err := c.ReadID()
		if err != nil {
			return err
		}
		m.stack.Push(pattern.Syntactic(pattern.NewSVar(id)))

	case decode.OpSymbol:
		id, err := c.ReadID()
		if err != nil {
			return err
		}
		m.stack.Push(pattern.Syntactic(pattern.NewSymbol(id)))

	case decode.OpMetaVar:
		id, err := c.ReadID()
		if err != nil {
			return err
		}
		eFresh, err := c.ReadIDSet()
		if err != nil {
			return err
		}
		sFresh, err := c.ReadIDSet()
		if err != nil {
			return err
		}
		positive, err := c.ReadIDSet()
		if err != nil {
			return err
		}
		negative, err := c.ReadIDSet()
		if err != nil {
			return err
		}
		appCtxHoles, err := c.ReadIDSet()
		if err != nil {
			return err
		}
		mv := pattern.NewMetaVar(id, eFresh, sFresh, positive, negative, appCtxHoles)
		if !pattern.WellFormed(mv) {
			return errs.Wrap(errs.CodeWellFormed, "", fmt.Errorf("constructed metavariable %d is ill-formed", id))
		}
		m.stack.Push(pattern.Syntactic(mv))

	case decode.OpImplication:
		right, err := m.stack.PopPattern()
		if err != nil {
			return err
		}
		left, err := m.stack.PopPattern()
		if err != nil {
			return err
		}
		m.stack.Push(pattern.Syntactic(pattern.NewImplication(left, right)))

	case decode.OpApplication:
		right, err := m.stack.PopPattern()
		if err != nil {
			return err
		}
		left, err := m.stack.PopPattern()
		if err != nil {
			return err
		}
		m.stack.Push(pattern.Syntactic(pattern.NewApplication(left, right)))

	case decode.OpExists:
		id, err := c.ReadID()
		if err != nil {
			return err
		}
		body, err := m.stack.PopPattern()
		if err != nil {
			return err
		}
		m.stack.Push(pattern.Syntactic(pattern.NewExists(id, body)))

	case decode.OpMu:
		id, err := c.ReadID()
		if err != nil {
			return err
		}
		body, err := m.stack.PopPattern()
		if err != nil {
			return err
		}
		mu := pattern.NewMu(id, body)
		if !pattern.WellFormed(mu) {
			return errs.Wrap(errs.CodeWellFormed, "", fmt.Errorf("constructed mu-pattern %d is ill-formed", id))
		}
		m.stack.Push(pattern.Syntactic(mu))

	case decode.OpESubst:
		v, err := c.ReadID()
		if err != nil {
			return err
		}
		body, err := m.stack.PopPattern()
		if err != nil {
			return err
		}
		plug, err := m.stack.PopPattern()
		if err != nil {
			return err
		}
		if !headSubstitutable(body) {
			return errs.Wrap(errs.CodeWellFormed, "", fmt.Errorf("cannot apply ESubst to a concrete term"))
		}
		built := pattern.NewESubst(body, v, plug)
		if pattern.WellFormed(built) {
			m.stack.Push(pattern.Syntactic(built))
		} else {
			m.stack.Push(pattern.Syntactic(body))
		}

	case decode.OpSSubst:
		v, err := c.ReadID()
		if err != nil {
			return err
		}
		body, err := m.stack.PopPattern()
		if err != nil {
			return err
		}
		plug, err := m.stack.PopPattern()
		if err != nil {
			return err
		}
		if !headSubstitutable(body) {
			return errs.Wrap(errs.CodeWellFormed, "", fmt.Errorf("cannot apply SSubst to a concrete term"))
		}
		built := pattern.NewSSubst(body, v, plug)
		if pattern.WellFormed(built) {
			m.stack.Push(pattern.Syntactic(built))
		} else {
			m.stack.Push(pattern.Syntactic(body))
		}

	case decode.OpProp1:
		m.stack.Push(pattern.Proved(m.axioms.prop1))
	case decode.OpProp2:
		m.stack.Push(pattern.Proved(m.axioms.prop2))
	case decode.OpProp3:
		m.stack.Push(pattern.Proved(m.axioms.prop3))
	case decode.OpQuantifier:
		m.stack.Push(pattern.Proved(m.axioms.quantifier))
	case decode.OpExistence:
		m.stack.Push(pattern.Proved(m.axioms.existence))

	case decode.OpModusPonens:
		return modusPonens(&m.stack)

	case decode.OpGeneralization:
		x, err := c.ReadID()
		if err != nil {
			return err
		}
		return generalization(&m.stack, x)

	case decode.OpSubstitution:
		x, err := c.ReadID()
		if err != nil {
			return err
		}
		return substitution(&m.stack, x)

	case decode.OpInstantiate:
		n, err := c.ReadInt()
		if err != nil {
			return err
		}
		if n < 0 {
			return errs.Wrap(errs.CodeDecode, "", fmt.Errorf("negative instantiation count %d", n))
		}
		metaterm, err := m.stack.Pop()
		if err != nil {
			return err
		}
		ids := make([]pattern.Id, n)
		plugs := make([]pattern.Pattern, n)
		for i := 0; i < n; i++ {
			id, err := c.ReadID()
			if err != nil {
				return err
			}
			plug, err := m.stack.PopPattern()
			if err != nil {
				return err
			}
			ids[i] = id
			plugs[i] = plug
		}
		result, err := instantiateTerm(metaterm, ids, plugs)
		if err != nil {
			return err
		}
		m.stack.Push(result)

	case decode.OpPop:
		_, err := m.stack.Pop()
		return err

	case decode.OpSave:
		t, err := m.stack.Front()
		if err != nil {
			return err
		}
		m.Mem.Append(t)

	case decode.OpLoad:
		idx, err := c.ReadInt()
		if err != nil {
			return err
		}
		t, err := m.Mem.Get(idx)
		if err != nil {
			return err
		}
		m.stack.Push(t)

	case decode.OpPublish:
		return m.publish(phase)

	case decode.OpCleanMetaVar:
		id, err := c.ReadID()
		if err != nil {
			return err
		}
		m.stack.Push(pattern.Syntactic(pattern.UnconstrainedMetaVar(id)))

	case decode.OpNoOp:
		c.Halt()

	default:
		return errs.Wrap(errs.CodeDecode, "", fmt.Errorf("unhandled opcode %s", op))
	}
	return nil
}

// publish implements the three phase-dependent behaviors of the Publish
// opcode. Ported from lib.hpp:1284-1315.
func (m *Machine) publish(phase Phase) error {
	switch phase {
	case GammaPhase:
		p, err := m.stack.PopPattern()
		if err != nil {
			return err
		}
		m.Mem.Append(pattern.Proved(p))
		return nil

	case ClaimPhase:
		p, err := m.stack.PopPattern()
		if err != nil {
			return err
		}
		m.Claims.Enqueue(p)
		return nil

	case ProofPhase:
		claim, err := m.Claims.Dequeue()
		if err != nil {
			return err
		}
		theorem, err := m.stack.PopProved()
		if err != nil {
			return err
		}
		if !pattern.Equal(claim, theorem) {
			return errs.Wrap(errs.CodeClaimMismatch, "", fmt.Errorf("this proof does not prove the requested claim"))
		}
		return nil

	default:
		return fmt.Errorf("unknown phase %d", phase)
	}
}
