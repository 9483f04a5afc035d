package anim

import "fmt"

// Kind enumerates the closed set of error conditions the engine can raise.
// It mirrors the original crate's EAnimationError enum; NotFoundAttr is kept
// as a reserved value for host attribute mappers even though the core never
// raises it itself.
type Kind int

const (
	// NotFoundAttr is reserved for host-side attribute mapper use; the core
	// never returns it.
	NotFoundAttr Kind = iota
	// AnimationFramePerSecondCannotZero is returned when a group is started
	// with a running frame rate of zero.
	AnimationFramePerSecondCannotZero
	// FrameCurveNotFound is returned when a referenced curve slot is empty.
	FrameCurveNotFound
	// AnimationGroupNotFound is returned for an unknown GroupId.
	AnimationGroupNotFound
	// AnimationGroupHasStarted is returned when start is called on an
	// already-playing group.
	AnimationGroupHasStarted
	// AnimationGroupNotPlaying is returned when pause/stop is called on an
	// idle group.
	AnimationGroupNotPlaying
	// RuntimeInfoMapNotFindType is returned when a TypeId was never
	// registered in the runtime-info map.
	RuntimeInfoMapNotFindType
	// TargetIDNotRecordForTypeAnimationContext is returned when a result pool
	// has no slot warmed up for a target.
	TargetIDNotRecordForTypeAnimationContext
	// KeyTargetCannotAllocMore is returned when the target id space is
	// exhausted.
	KeyTargetCannotAllocMore
	// KeyTargetAttrCannotAllocMore is returned when the attribute id space is
	// exhausted.
	KeyTargetAttrCannotAllocMore
	// KeyAnimeDataTypeCannotAllocMore is returned when the TypeId space is
	// exhausted.
	KeyAnimeDataTypeCannotAllocMore
)

// String returns a lower-case, human-readable description of the kind.
func (k Kind) String() string {
	switch k {
	case NotFoundAttr:
		return "not found attr"
	case AnimationFramePerSecondCannotZero:
		return "animation frame per second cannot be zero"
	case FrameCurveNotFound:
		return "frame curve not found"
	case AnimationGroupNotFound:
		return "animation group not found"
	case AnimationGroupHasStarted:
		return "animation group has started"
	case AnimationGroupNotPlaying:
		return "animation group not playing"
	case RuntimeInfoMapNotFindType:
		return "runtime info map has no entry for type"
	case TargetIDNotRecordForTypeAnimationContext:
		return "target id not recorded for type animation context"
	case KeyTargetCannotAllocMore:
		return "target id space exhausted"
	case KeyTargetAttrCannotAllocMore:
		return "attribute id space exhausted"
	case KeyAnimeDataTypeCannotAllocMore:
		return "type id space exhausted"
	default:
		return "unknown animation error"
	}
}

// Error wraps a Kind with optional context, matching the teacher's
// fmt.Errorf("...: %w", err) wrapping style while keeping the underlying
// kind switchable via errors.Is.
type Error struct {
	Kind    Kind
	Context string
}

// NewError builds an *Error for the given kind with no extra context.
func NewError(kind Kind) *Error {
	return &Error{Kind: kind}
}

// NewErrorf builds an *Error for the given kind with formatted context.
func NewErrorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Context: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Context == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind.String(), e.Context)
}

// Is lets errors.Is(err, NewError(SomeKind)) match on Kind alone, ignoring
// Context.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
