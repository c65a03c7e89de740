package markdown

type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
	LinkKindCrossReference      LinkKind = "cross_reference"
)

type Link struct {
	Kind        LinkKind
	Destination string
}
