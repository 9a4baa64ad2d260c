package tags

// StandardTags returns fresh definitions for the standard tag vocabulary.
// Core tags are the baseline every tool understands; extended tags have a
// reserved meaning that tools may ignore; discretionary tags carry
// tool-defined semantics.
func StandardTags() []*TagDefinition {
	core := func(name string, syntax SyntaxKind, multiple bool) *TagDefinition {
		return &TagDefinition{TagName: name, Syntax: syntax, AllowMultiple: multiple, Standardization: StandardizationCore}
	}
	extended := func(name string, syntax SyntaxKind, multiple bool) *TagDefinition {
		return &TagDefinition{TagName: name, Syntax: syntax, AllowMultiple: multiple, Standardization: StandardizationExtended}
	}
	discretionary := func(name string, syntax SyntaxKind, multiple bool) *TagDefinition {
		return &TagDefinition{TagName: name, Syntax: syntax, AllowMultiple: multiple, Standardization: StandardizationDiscretionary}
	}

	return []*TagDefinition{
		core("@deprecated", SyntaxBlockTag, false),
		core("@inheritDoc", SyntaxInlineTag, false),
		core("@internal", SyntaxModifierTag, false),
		core("@link", SyntaxInlineTag, true),
		core("@packageDocumentation", SyntaxModifierTag, false),
		core("@param", SyntaxBlockTag, true),
		core("@privateRemarks", SyntaxBlockTag, false),
		core("@public", SyntaxModifierTag, false),
		core("@remarks", SyntaxBlockTag, false),
		core("@returns", SyntaxBlockTag, false),
		core("@typeParam", SyntaxBlockTag, true),

		extended("@decorator", SyntaxBlockTag, true),
		extended("@defaultValue", SyntaxBlockTag, false),
		extended("@eventProperty", SyntaxModifierTag, false),
		extended("@example", SyntaxBlockTag, true),
		extended("@label", SyntaxInlineTag, true),
		extended("@override", SyntaxModifierTag, false),
		extended("@readonly", SyntaxModifierTag, false),
		extended("@sealed", SyntaxModifierTag, false),
		extended("@see", SyntaxBlockTag, true),
		extended("@throws", SyntaxBlockTag, true),
		extended("@virtual", SyntaxModifierTag, false),

		discretionary("@alpha", SyntaxModifierTag, false),
		discretionary("@beta", SyntaxModifierTag, false),
		discretionary("@experimental", SyntaxModifierTag, false),
	}
}
