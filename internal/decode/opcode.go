// Package decode maps the integer instruction stream onto Opcode values and
// provides a Cursor for reading the length-prefixed operand encodings the
// interpreter needs (single ids, and length-prefixed id-lists for MetaVar's
// five side-condition sets).
package decode

import "fmt"

// Opcode is the fixed integer instruction mapping from spec.md §4.3.
type Opcode int

const (
	OpEVar              Opcode = 2
	OpSVar              Opcode = 3
	OpSymbol            Opcode = 4
	OpImplication       Opcode = 5
	OpApplication       Opcode = 6
	OpMu                Opcode = 7
	OpExists            Opcode = 8
	OpMetaVar           Opcode = 9
	OpESubst            Opcode = 10
	OpSSubst            Opcode = 11
	OpProp1             Opcode = 12
	OpProp2             Opcode = 13
	OpProp3             Opcode = 14
	OpQuantifier        Opcode = 15
	OpPropagationOr     Opcode = 16
	OpPropagationExists Opcode = 17
	OpPreFixpoint       Opcode = 18
	OpExistence         Opcode = 19
	OpSingleton         Opcode = 20
	OpModusPonens       Opcode = 21
	OpGeneralization    Opcode = 22
	OpFrame             Opcode = 23
	OpSubstitution      Opcode = 24
	OpKnasterTarski     Opcode = 25
	OpInstantiate       Opcode = 26
	OpPop               Opcode = 27
	OpSave              Opcode = 28
	OpLoad              Opcode = 29
	OpPublish           Opcode = 30
	OpCleanMetaVar      Opcode = 137
	OpNoOp              Opcode = 138
)

// reservedOpcodes carries rule schemas the checker decodes but, per
// spec.md §4.3's explicit allowance, treats as fatal "not implemented" if a
// stream attempts to execute them (see DESIGN.md Open Question 3).
var reservedOpcodes = map[Opcode]string{
	OpPropagationOr:     "PropagationOr",
	OpPropagationExists: "PropagationExists",
	OpPreFixpoint:       "PreFixpoint",
	OpSingleton:         "Singleton",
	OpFrame:             "Frame",
	OpKnasterTarski:     "KnasterTarski",
}

// IsReserved reports whether op is a reserved, unimplemented rule schema.
func IsReserved(op Opcode) (name string, ok bool) {
	name, ok = reservedOpcodes[op]
	return name, ok
}

// Decode maps a raw integer to its Opcode, failing on anything outside the
// fixed table in spec.md §4.3.
func Decode(value int) (Opcode, error) {
	switch Opcode(value) {
	case OpEVar, OpSVar, OpSymbol, OpImplication, OpApplication, OpMu, OpExists,
		OpMetaVar, OpESubst, OpSSubst, OpProp1, OpProp2, OpProp3, OpQuantifier,
		OpPropagationOr, OpPropagationExists, OpPreFixpoint, OpExistence, OpSingleton,
		OpModusPonens, OpGeneralization, OpFrame, OpSubstitution, OpKnasterTarski,
		OpInstantiate, OpPop, OpSave, OpLoad, OpPublish, OpCleanMetaVar, OpNoOp:
		return Opcode(value), nil
	default:
		return 0, fmt.Errorf("unknown opcode: %d", value)
	}
}

func (op Opcode) String() string {
	switch op {
	case OpEVar:
		return "EVar"
	case OpSVar:
		return "SVar"
	case OpSymbol:
		return "Symbol"
	case OpImplication:
		return "Implication"
	case OpApplication:
		return "Application"
	case OpMu:
		return "Mu"
	case OpExists:
		return "Exists"
	case OpMetaVar:
		return "MetaVar"
	case OpESubst:
		return "ESubst"
	case OpSSubst:
		return "SSubst"
	case OpProp1:
		return "Prop1"
	case OpProp2:
		return "Prop2"
	case OpProp3:
		return "Prop3"
	case OpQuantifier:
		return "Quantifier"
	case OpPropagationOr:
		return "PropagationOr"
	case OpPropagationExists:
		return "PropagationExists"
	case OpPreFixpoint:
		return "PreFixpoint"
	case OpExistence:
		return "Existence"
	case OpSingleton:
		return "Singleton"
	case OpModusPonens:
		return "ModusPonens"
	case OpGeneralization:
		return "Generalization"
	case OpFrame:
		return "Frame"
	case OpSubstitution:
		return "Substitution"
	case OpKnasterTarski:
		return "KnasterTarski"
	case OpInstantiate:
		return "Instantiate"
	case OpPop:
		return "Pop"
	case OpSave:
		return "Save"
	case OpLoad:
		return "Load"
	case OpPublish:
		return "Publish"
	case OpCleanMetaVar:
		return "CleanMetaVar"
	case OpNoOp:
		return "NO_OP"
	default:
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
}
