package kor

// Visitor derives a projection of type T from a node tree. Consumers
// (type descriptors, example generation, encoders) implement only the
// methods for the kinds they support and embed UnimplementedVisitor for the
// rest, so a node kind added later surfaces as an explicit *VisitError in
// every existing consumer instead of silently no-oping.
type Visitor[T any] interface {
	VisitText(n *Text) (T, error)
	VisitNumber(n *Number) (T, error)
	VisitObject(n *Object) (T, error)
	VisitSelection(n *Selection) (T, error)
	VisitOption(n *Option) (T, error)
}

// Accept dispatches n to the visit method matching its concrete kind.
// The node set is closed; an unknown implementation yields a *VisitError.
func Accept[T any](n Node, v Visitor[T]) (T, error) {
	switch t := n.(type) {
	case *Text:
		return v.VisitText(t)
	case *Number:
		return v.VisitNumber(t)
	case *Object:
		return v.VisitObject(t)
	case *Selection:
		return v.VisitSelection(t)
	case *Option:
		return v.VisitOption(t)
	default:
		var zero T
		return zero, &VisitError{Kind: "unknown"}
	}
}

// UnimplementedVisitor is the fallback implementation of Visitor. Every
// method fails with a *VisitError naming the node kind.
type UnimplementedVisitor[T any] struct{}

func (UnimplementedVisitor[T]) VisitText(*Text) (T, error) {
	var zero T
	return zero, &VisitError{Kind: "text"}
}

func (UnimplementedVisitor[T]) VisitNumber(*Number) (T, error) {
	var zero T
	return zero, &VisitError{Kind: "number"}
}

func (UnimplementedVisitor[T]) VisitObject(*Object) (T, error) {
	var zero T
	return zero, &VisitError{Kind: "object"}
}

func (UnimplementedVisitor[T]) VisitSelection(*Selection) (T, error) {
	var zero T
	return zero, &VisitError{Kind: "selection"}
}

func (UnimplementedVisitor[T]) VisitOption(*Option) (T, error) {
	var zero T
	return zero, &VisitError{Kind: "option"}
}
