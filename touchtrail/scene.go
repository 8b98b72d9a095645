package touchtrail

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultMaxIDRetries is how many times a colliding identifier is regenerated before Add gives up
	DefaultMaxIDRetries = 16
)

// Registered is an object admitted to a Scene. Its identifier is fixed once assigned.
type Registered struct {
	id     uuid.UUID
	object *Object
}

// GetID returns object's identifier
func (reg *Registered) GetID() uuid.UUID {
	return reg.id
}

// Object returns underlying object
func (reg *Registered) Object() *Object {
	return reg.object
}

// GetBBox returns object's bounding box
func (reg *Registered) GetBBox() Rectangle {
	return reg.object.Box
}

// IsTouching returns true if bounding boxes of both registered objects touch
func (reg *Registered) IsTouching(other *Registered) bool {
	return reg.object.IsTouching(other.object)
}

// Scene is a registry of detected objects keyed by identifier.
// It does not compute overlaps itself (see FindContacts).
// Scene is not safe for concurrent use: Add performs check-then-insert on the registry without locking.
type Scene struct {
	// Main storage
	objects map[uuid.UUID]*Registered
	// Identifier source. Default is uuid.New
	newID func() uuid.UUID
	// Max number of regenerations on identifier collision. Default is DefaultMaxIDRetries
	maxIDRetries int
	place        Place
	logger       log.FieldLogger
}

// SceneOption configures a Scene
type SceneOption func(*Scene)

// WithIDGenerator sets the identifier source used by Add
func WithIDGenerator(generator func() uuid.UUID) SceneOption {
	return func(scene *Scene) {
		if generator != nil {
			scene.newID = generator
		}
	}
}

// WithMaxIDRetries sets how many times a colliding identifier is regenerated. Negative values are treated as zero.
func WithMaxIDRetries(retries int) SceneOption {
	return func(scene *Scene) {
		if retries < 0 {
			retries = 0
		}
		scene.maxIDRetries = retries
	}
}

// WithLogger sets logger for registry events
func WithLogger(logger log.FieldLogger) SceneOption {
	return func(scene *Scene) {
		if logger != nil {
			scene.logger = logger
		}
	}
}

// WithPlace sets location of the scene
func WithPlace(place Place) SceneOption {
	return func(scene *Scene) {
		scene.place = place
	}
}

// NewSceneDefault creates default instance of Scene
func NewSceneDefault() *Scene {
	return NewScene()
}

// NewScene creates new instance of Scene
func NewScene(options ...SceneOption) *Scene {
	scene := &Scene{
		objects:      make(map[uuid.UUID]*Registered),
		newID:        uuid.New,
		maxIDRetries: DefaultMaxIDRetries,
		logger:       log.StandardLogger(),
	}
	for _, option := range options {
		option(scene)
	}
	return scene
}

// Add registers object under a freshly generated identifier and returns that identifier.
// Candidates which are already taken (or equal to uuid.Nil) are regenerated up to the retry limit.
func (scene *Scene) Add(obj *Object) (uuid.UUID, error) {
	if obj == nil {
		return uuid.Nil, errors.Wrap(ErrInvalidGeometry, "Can't add nil object")
	}
	if err := obj.Box.Validate(); err != nil {
		return uuid.Nil, errors.Wrap(err, "Can't add object")
	}
	id, err := scene.freeID()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "Can't add object")
	}
	scene.objects[id] = &Registered{id: id, object: obj}
	scene.logger.WithFields(log.Fields{
		"id":       id.String(),
		"category": obj.Category.String(),
	}).Debug("object registered")
	return id, nil
}

// AddWithID registers object under caller-supplied identifier.
// An object already registered under the same identifier is replaced without error.
func (scene *Scene) AddWithID(id uuid.UUID, obj *Object) error {
	if id == uuid.Nil {
		return errors.Wrap(ErrInvalidIdentifier, "Can't add object under nil identifier")
	}
	if obj == nil {
		return errors.Wrapf(ErrInvalidGeometry, "Can't add nil object with id %s", id.String())
	}
	if err := obj.Box.Validate(); err != nil {
		return errors.Wrapf(err, "Can't add object with id %s", id.String())
	}
	if _, ok := scene.objects[id]; ok {
		scene.logger.WithField("id", id.String()).Warn("replacing registered object with the same id")
	}
	scene.objects[id] = &Registered{id: id, object: obj}
	return nil
}

func (scene *Scene) freeID() (uuid.UUID, error) {
	for attempt := 0; attempt <= scene.maxIDRetries; attempt++ {
		candidate := scene.newID()
		if candidate == uuid.Nil {
			continue
		}
		if _, taken := scene.objects[candidate]; !taken {
			return candidate, nil
		}
		scene.logger.WithFields(log.Fields{
			"id":      candidate.String(),
			"attempt": attempt + 1,
		}).Debug("identifier collision, regenerating")
	}
	return uuid.Nil, errors.Wrapf(ErrIdentifierExhausted, "no free identifier after %d attempts", scene.maxIDRetries+1)
}

// Get returns registered object by its identifier
func (scene *Scene) Get(id uuid.UUID) (*Registered, bool) {
	reg, ok := scene.objects[id]
	return reg, ok
}

// Objects returns copy of the registry. Every key equals GetID() of its value
func (scene *Scene) Objects() map[uuid.UUID]*Registered {
	objects := make(map[uuid.UUID]*Registered, len(scene.objects))
	for id, reg := range scene.objects {
		objects[id] = reg
	}
	return objects
}

// Len returns number of registered objects
func (scene *Scene) Len() int {
	return len(scene.objects)
}

// Place returns location of the scene
func (scene *Scene) Place() Place {
	return scene.place
}

// Step is meant to move registered objects to their new positions.
// How positions evolve between frames is not defined yet, so it always fails with ErrNotImplemented and leaves the registry untouched.
func (scene *Scene) Step(newPositions map[uuid.UUID]Rectangle) error {
	return errors.Wrapf(ErrNotImplemented, "Can't step scene with %d new positions", len(newPositions))
}
