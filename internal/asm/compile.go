package asm

import (
	"fmt"
	"strings"

	"proofcheck/internal/decode"
)

// nullary lists mnemonics that compile to a bare opcode with no operands.
var nullary = map[string]decode.Opcode{
	"implication":       decode.OpImplication,
	"application":       decode.OpApplication,
	"prop1":             decode.OpProp1,
	"prop2":             decode.OpProp2,
	"prop3":             decode.OpProp3,
	"quantifier":        decode.OpQuantifier,
	"existence":         decode.OpExistence,
	"modusponens":       decode.OpModusPonens,
	"pop":               decode.OpPop,
	"save":              decode.OpSave,
	"publish":           decode.OpPublish,
	"noop":              decode.OpNoOp,
	"propagationor":     decode.OpPropagationOr,
	"propagationexists": decode.OpPropagationExists,
	"prefixpoint":       decode.OpPreFixpoint,
	"singleton":         decode.OpSingleton,
	"frame":             decode.OpFrame,
	"knastertarski":     decode.OpKnasterTarski,
}

// unary lists mnemonics that take exactly one integer operand.
var unary = map[string]decode.Opcode{
	"evar":           decode.OpEVar,
	"svar":           decode.OpSVar,
	"symbol":         decode.OpSymbol,
	"exists":         decode.OpExists,
	"mu":             decode.OpMu,
	"esubst":         decode.OpESubst,
	"ssubst":         decode.OpSSubst,
	"generalization": decode.OpGeneralization,
	"substitution":   decode.OpSubstitution,
	"load":           decode.OpLoad,
	"cleanmetavar":   decode.OpCleanMetaVar,
}

// Compile lowers a parsed Program into the integer instruction stream
// spec.md §4.3 describes, with its leading size-prefix int set to 0 (the
// interpreter skips it unconditionally, per DESIGN.md Open Question 4).
func Compile(prog *Program) ([]int, error) {
	out := []int{0}
	for _, instr := range prog.Instructions {
		switch {
		case instr.MetaVar != nil:
			out = append(out, compileMetaVar(instr.MetaVar)...)

		case instr.Plain != nil:
			encoded, err := compilePlain(instr.Plain)
			if err != nil {
				return nil, err
			}
			out = append(out, encoded...)

		default:
			return nil, fmt.Errorf("%d:%d: empty instruction", instr.Pos.Line, instr.Pos.Column)
		}
	}
	return out, nil
}

func compileMetaVar(m *MetaVarInstr) []int {
	out := []int{int(decode.OpMetaVar), m.ID}
	out = append(out, idSet(m.EFresh)...)
	out = append(out, idSet(m.SFresh)...)
	out = append(out, idSet(m.Positive)...)
	out = append(out, idSet(m.Negative)...)
	out = append(out, idSet(m.Holes)...)
	return out
}

func idSet(ids []int) []int {
	out := make([]int, 0, len(ids)+1)
	out = append(out, len(ids))
	out = append(out, ids...)
	return out
}

func compilePlain(p *PlainInstr) ([]int, error) {
	mnemonic := strings.ToLower(p.Mnemonic)

	if op, ok := nullary[mnemonic]; ok {
		if len(p.Args) != 0 {
			return nil, fmt.Errorf("%d:%d: %s takes no operands", p.Pos.Line, p.Pos.Column, p.Mnemonic)
		}
		return []int{int(op)}, nil
	}

	if op, ok := unary[mnemonic]; ok {
		if len(p.Args) != 1 {
			return nil, fmt.Errorf("%d:%d: %s takes exactly one operand", p.Pos.Line, p.Pos.Column, p.Mnemonic)
		}
		return []int{int(op), p.Args[0]}, nil
	}

	if mnemonic == "instantiate" {
		out := []int{int(decode.OpInstantiate), len(p.Args)}
		out = append(out, p.Args...)
		return out, nil
	}

	return nil, fmt.Errorf("%d:%d: unknown mnemonic %q", p.Pos.Line, p.Pos.Column, p.Mnemonic)
}
