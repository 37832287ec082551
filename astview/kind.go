package astview

// Kind tags the shape of an AST View node the scanner cares about,
// collapsing the parser's raw grammar node-type strings into the
// enumeration spec §9 asks for ("a tagged-variant match over an AST node
// kind enumeration, with one arm per shape"). Node types the scanner has
// no specific rule for map to KindUnknown and are still traversed
// best-effort (spec §4.1's "Error semantics").
type Kind int

const (
	KindUnknown Kind = iota

	KindProgram
	KindPackageDecl
	KindImportDecl

	KindClassDecl
	KindInterfaceDecl
	KindEnumDecl
	KindAnnotationDecl
	KindRecordDecl

	KindClassBody
	KindFieldDecl
	KindMethodDecl
	KindConstructorDecl
	KindLocalVarDecl
	KindVariableDeclarator

	KindFormalParameters
	KindFormalParameter
	KindSpreadParameter
	KindTypeParameters
	KindTypeParameter

	KindBlock
	KindIfStatement
	KindForStatement
	KindEnhancedForStatement
	KindWhileStatement
	KindDoStatement
	KindSwitchExpression
	KindSwitchBlockGroup
	KindSynchronizedStatement
	KindTryStatement
	KindResourceSpecification
	KindResource
	KindCatchClause
	KindCatchFormalParameter
	KindFinallyClause

	KindLambdaExpression
	KindInferredParameters

	KindAnnotation
	KindMarkerAnnotation

	KindIdentifier
	KindTypeIdentifier
	KindScopedIdentifier
	KindFieldAccess
	KindGenericType
	KindSuperclass
	KindSuperInterfaces
	KindThis
	KindSuper
	KindModifiers

	KindMethodInvocation
	KindObjectCreation
	KindArrayCreation
)

// rawKinds maps the tree-sitter Java grammar's node-type strings to Kind.
// Kept as a single table (rather than scattered string comparisons) so
// the scanner's dispatch can stay a clean switch over Kind, following
// spec §9's guidance, while the parser-facing mapping lives in one place.
var rawKinds = map[string]Kind{
	"program":             KindProgram,
	"package_declaration": KindPackageDecl,
	"import_declaration":  KindImportDecl,

	"class_declaration":           KindClassDecl,
	"interface_declaration":       KindInterfaceDecl,
	"enum_declaration":            KindEnumDecl,
	"annotation_type_declaration": KindAnnotationDecl,
	"record_declaration":          KindRecordDecl,

	"class_body":          KindClassBody,
	"interface_body":      KindClassBody,
	"enum_body":           KindClassBody,
	"field_declaration":   KindFieldDecl,
	"method_declaration":  KindMethodDecl,
	"constructor_declaration":  KindConstructorDecl,
	"local_variable_declaration": KindLocalVarDecl,
	"variable_declarator":        KindVariableDeclarator,

	"formal_parameters": KindFormalParameters,
	"formal_parameter":  KindFormalParameter,
	"spread_parameter":  KindSpreadParameter,
	"type_parameters":   KindTypeParameters,
	"type_parameter":    KindTypeParameter,

	"block":                      KindBlock,
	"if_statement":               KindIfStatement,
	"for_statement":              KindForStatement,
	"enhanced_for_statement":     KindEnhancedForStatement,
	"while_statement":            KindWhileStatement,
	"do_statement":               KindDoStatement,
	"switch_expression":          KindSwitchExpression,
	"switch_statement":           KindSwitchExpression,
	"switch_block_statement_group": KindSwitchBlockGroup,
	"switch_rule":                KindSwitchBlockGroup,
	"synchronized_statement":     KindSynchronizedStatement,
	"try_statement":              KindTryStatement,
	"try_with_resources_statement": KindTryStatement,
	"resource_specification":     KindResourceSpecification,
	"resource":                   KindResource,
	"catch_clause":               KindCatchClause,
	"catch_formal_parameter":     KindCatchFormalParameter,
	"finally_clause":             KindFinallyClause,

	"lambda_expression":    KindLambdaExpression,
	"inferred_parameters":  KindInferredParameters,

	"annotation":        KindAnnotation,
	"marker_annotation": KindMarkerAnnotation,

	"identifier":          KindIdentifier,
	"type_identifier":     KindTypeIdentifier,
	"scoped_identifier":   KindScopedIdentifier,
	"scoped_type_identifier": KindScopedIdentifier,
	"field_access":        KindFieldAccess,
	"generic_type":        KindGenericType,
	"superclass":          KindSuperclass,
	"super_interfaces":    KindSuperInterfaces,
	"this":                KindThis,
	"super":               KindSuper,
	"modifiers":           KindModifiers,

	"constructor_body":          KindBlock,
	"method_invocation":         KindMethodInvocation,
	"object_creation_expression": KindObjectCreation,
	"array_creation_expression":  KindArrayCreation,
}

func kindOf(rawType string) Kind {
	if k, ok := rawKinds[rawType]; ok {
		return k
	}
	return KindUnknown
}

// IsDefinition reports whether k introduces a named, member-bearing
// declaration (spec §4.1's "Declaration sites": class, interface, enum,
// annotation type, or their nested counterparts).
func (k Kind) IsDefinition() bool {
	switch k {
	case KindClassDecl, KindInterfaceDecl, KindEnumDecl, KindAnnotationDecl, KindRecordDecl:
		return true
	default:
		return false
	}
}

// IsBlockLike reports whether k opens a new scope that is discarded
// entirely when it closes (spec §4.1's block-scoping rule): loops,
// conditionals, switch bodies, synchronized, try/catch/finally, and bare
// braces.
func (k Kind) IsBlockLike() bool {
	switch k {
	case KindBlock, KindIfStatement, KindForStatement, KindEnhancedForStatement,
		KindWhileStatement, KindDoStatement, KindSwitchExpression,
		KindSynchronizedStatement, KindTryStatement,
		KindCatchClause, KindFinallyClause:
		return true
	default:
		return false
	}
}
