package pvl

// SymbolKind identifies what the left-hand side of a label line is.
type SymbolKind int

// Symbol kinds, in classification order.
const (
	SymbolKey SymbolKind = iota
	SymbolPointer
	SymbolGroup
	SymbolObject
	SymbolBlankLine
)

// String returns the kind name for diagnostics.
func (k SymbolKind) String() string {
	switch k {
	case SymbolKey:
		return "Key"
	case SymbolPointer:
		return "Pointer"
	case SymbolGroup:
		return "Group"
	case SymbolObject:
		return "Object"
	case SymbolBlankLine:
		return "BlankLine"
	}
	return "Unknown"
}

// Symbol is the classified left-hand side of one label line. Name is set
// only for Key and Pointer symbols; a pointer's name retains its leading
// caret.
type Symbol struct {
	Kind SymbolKind
	Name string
}

// Value returns the symbol's name for Key and Pointer symbols. The second
// return is false for structural symbols, which carry no name.
func (s Symbol) Value() (string, bool) {
	switch s.Kind {
	case SymbolKey, SymbolPointer:
		return s.Name, true
	}
	return "", false
}

// newSymbol classifies trimmed left-hand text, evaluated in fixed order:
// empty, caret prefix, GROUP, OBJECT, then Key. A key literally named
// "GROUP" is indistinguishable from the structural keyword; that ambiguity
// is part of the label format.
func newSymbol(text string) Symbol {
	switch {
	case text == "":
		return Symbol{Kind: SymbolBlankLine}
	case text[0] == '^':
		return Symbol{Kind: SymbolPointer, Name: text}
	case text == "GROUP":
		return Symbol{Kind: SymbolGroup}
	case text == "OBJECT":
		return Symbol{Kind: SymbolObject}
	default:
		return Symbol{Kind: SymbolKey, Name: text}
	}
}
