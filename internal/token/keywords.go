package token

var keywords = map[string]Kind{
	"true":  KwTrue,
	"false": KwFalse,
	"null":  KwNull,

	"namespace": KwNamespace,
	"package":   KwPackage,
	"library":   KwLibrary,
	"import":    KwImport,
	"alias":     KwAlias,
	"for":       KwFor,
	"comment":   KwComment,
	"doc":       KwDoc,
	"about":     KwAbout,
	"locale":    KwLocale,

	"public":    KwPublic,
	"private":   KwPrivate,
	"protected": KwProtected,

	"abstract": KwAbstract,
	"readonly": KwReadonly,
	"derived":  KwDerived,
	"end":      KwEnd,
	"composite": KwComposite,
	"portion":  KwPortion,
	"ref":      KwRef,

	"in":    KwIn,
	"out":   KwOut,
	"inout": KwInout,

	"type":       KwType,
	"classifier": KwClassifier,
	"class":      KwClass,
	"datatype":   KwDatatype,
	"struct":     KwStruct,
	"assoc":      KwAssoc,
	"behavior":   KwBehavior,
	"function":   KwFunction,
	"predicate":  KwPredicate,
	"feature":    KwFeature,
	"connector":  KwConnector,
	"binding":    KwBinding,
	"succession": KwSuccession,
	"def":        KwDef,

	"part":        KwPart,
	"action":      KwAction,
	"state":       KwState,
	"requirement": KwRequirement,
	"constraint":  KwConstraint,
	"port":        KwPort,
	"attribute":   KwAttribute,
	"item":        KwItem,

	"specializes": KwSpecializes,
	"subsets":     KwSubsets,
	"redefines":   KwRedefines,
	"references":  KwReferences,

	"ordered":   KwOrdered,
	"nonunique": KwNonunique,

	"default": KwDefault,
	"if":      KwIf,
	"then":    KwThen,
	"else":    KwElse,
	"and":     KwAnd,
	"or":      KwOr,
	"xor":     KwXor,
	"implies": KwImplies,
	"not":     KwNot,
}

// LookupKeyword reports the Kind reserved for ident, if any. Keywords are
// case-sensitive: only the lowercase spelling is recognized, so an
// identifier like "Package" lexes as a plain Ident.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
