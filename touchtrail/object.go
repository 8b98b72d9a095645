package touchtrail

import (
	"github.com/pkg/errors"
)

// Category tags what kind of entity was detected.
type Category uint16

const (
	// CategoryObject is a generic detection without further classification
	CategoryObject Category = iota
	// CategoryPerson is a detected person
	CategoryPerson
	// CategoryThing is a detected inanimate thing
	CategoryThing
)

func (c Category) String() string {
	switch c {
	case CategoryObject:
		return "object"
	case CategoryPerson:
		return "person"
	case CategoryThing:
		return "thing"
	default:
		return "unknown"
	}
}

// Object is a detected entity: a bounding box plus a category tag.
// It has no identity of its own. Identity is assigned when the object is added to a Scene (see Registered).
type Object struct {
	Category Category
	Box      Rectangle
}

// NewObject creates generic object from its bounding box.
// Negative width or height (as well as NaN/Inf values) are rejected with ErrInvalidGeometry.
func NewObject(width, height, left, top float64) (*Object, error) {
	return newCategorized(CategoryObject, NewRect(left, top, width, height))
}

// NewPerson creates object of CategoryPerson
func NewPerson(box Rectangle) (*Object, error) {
	return newCategorized(CategoryPerson, box)
}

// NewThing creates object of CategoryThing
func NewThing(box Rectangle) (*Object, error) {
	return newCategorized(CategoryThing, box)
}

func newCategorized(category Category, box Rectangle) (*Object, error) {
	if err := box.Validate(); err != nil {
		return nil, errors.Wrapf(err, "Can't create %s", category)
	}
	return &Object{
		Category: category,
		Box:      box,
	}, nil
}

// GetBBox returns object's bounding box
func (obj *Object) GetBBox() Rectangle {
	return obj.Box
}

// IsTouching returns true if bounding boxes of both objects overlap or share an edge or a corner.
// Both objects must be non-nil.
func (obj *Object) IsTouching(other *Object) bool {
	if obj == nil || other == nil {
		panic("touchtrail: IsTouching called with nil object")
	}
	return obj.Box.IsTouching(other.Box)
}
