package ast

// Keyword identifiers recognized by the parser and reserved against use
// as a component, struct, or property identifier by the semantic builder.
const (
	ComponentKeyword       = "component"
	SingleComponentKeyword = "single_component"
	StructKeyword          = "struct"
	U32Keyword             = "u32"
	U64Keyword             = "u64"
	I32Keyword             = "i32"
	I64Keyword             = "i64"
	F32Keyword             = "f32"
	F64Keyword             = "f64"
	BoolKeyword            = "bool"
	CharKeyword            = "char"
)

// ReservedWords lists every identifier a declaration or property may not
// reuse as its own name.
var ReservedWords = [...]string{
	ComponentKeyword,
	SingleComponentKeyword,
	StructKeyword,
	U32Keyword,
	U64Keyword,
	I32Keyword,
	I64Keyword,
	F32Keyword,
	F64Keyword,
	BoolKeyword,
	CharKeyword,
}

// IsReservedWord reports whether id is a reserved keyword.
func IsReservedWord(id string) bool {
	for _, w := range ReservedWords {
		if id == w {
			return true
		}
	}
	return false
}

// primitiveKeywords maps a keyword spelling to its scalar PrimitiveKind.
var primitiveKeywords = map[string]PrimitiveKind{
	U32Keyword:  U32,
	U64Keyword:  U64,
	I32Keyword:  I32,
	I64Keyword:  I64,
	F32Keyword:  F32,
	F64Keyword:  F64,
	BoolKeyword: Bool,
	CharKeyword: Char,
}

// LookupPrimitiveKind resolves an identifier spelling to its scalar kind,
// reporting ok=false when id is not one of the eight builtin keywords
// (the caller should then treat it as an Identifier-kind reference).
func LookupPrimitiveKind(id string) (PrimitiveKind, bool) {
	k, ok := primitiveKeywords[id]
	return k, ok
}
