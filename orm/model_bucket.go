/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* Objects are serialized with go-amino, interfaces included as long as the
codec has them registered.
* Easy queries for one and iteration.
*/
package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	amino "github.com/tendermint/go-amino"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	Validate() error
}

// ModelBucket is implemented by buckets that operates on Models.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db remit.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given primary key exists, and
	// ErrNotFound otherwise.
	Has(db remit.ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database.
	Put(db remit.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db remit.KVStore, key []byte) error

	// List loads all entities of this bucket, ordered by their primary
	// key, into dest that must be a pointer to a slice. It returns the
	// primary keys in the same order.
	List(db remit.ReadOnlyKVStore, dest interface{}) ([][]byte, error)
}

// NewModelBucket returns a ModelBucket instance storing all entities under
// the "<name>:" prefix. The codec is used to serialize the models.
func NewModelBucket(name string, cdc *amino.Codec) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	if cdc == nil {
		cdc = amino.NewCodec()
	}
	return &modelBucket{
		prefix: append([]byte(name), ':'),
		cdc:    cdc,
	}
}

type modelBucket struct {
	prefix []byte
	cdc    *amino.Codec
}

var _ ModelBucket = (*modelBucket)(nil)

// dbKey is the full key we store in the db, including prefix.
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (mb *modelBucket) dbKey(key []byte) []byte {
	l := len(mb.prefix)
	out := make([]byte, l+len(key))
	copy(out, mb.prefix)
	copy(out[l:], key)
	return out
}

func (mb *modelBucket) One(db remit.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot get from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if reflect.ValueOf(dest).Kind() != reflect.Ptr {
		return errors.Wrapf(errors.ErrType, "%T is not a pointer", dest)
	}
	if err := mb.cdc.UnmarshalBinaryBare(raw, dest); err != nil {
		return errors.Wrapf(errors.ErrType, "cannot load %T: %s", dest, err)
	}
	return nil
}

func (mb *modelBucket) Has(db remit.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot query the database")
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

func (mb *modelBucket) Put(db remit.KVStore, key []byte, m Model) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := mb.cdc.MarshalBinaryBare(m)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot serialize %T: %s", m, err)
	}
	// An empty value cannot be told apart from a missing one.
	if len(raw) == 0 {
		return errors.Wrapf(errors.ErrModel, "%T serializes to an empty value", m)
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db remit.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	if err := db.Delete(mb.dbKey(key)); err != nil {
		return errors.Wrap(err, "cannot delete from the database")
	}
	return nil
}

func (mb *modelBucket) List(db remit.ReadOnlyKVStore, dest interface{}) ([][]byte, error) {
	slice := reflect.ValueOf(dest)
	if slice.Kind() != reflect.Ptr || slice.Elem().Kind() != reflect.Slice {
		return nil, errors.Wrapf(errors.ErrType, "%T is not a pointer to a slice", dest)
	}
	elemType := slice.Elem().Type().Elem()

	it, err := db.Iterator(mb.prefix, prefixEnd(mb.prefix))
	if err != nil {
		return nil, errors.Wrap(err, "cannot iterate the database")
	}
	defer it.Release()

	var keys [][]byte
	items := slice.Elem()
	for {
		key, value, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterator")
		}
		ptr := reflect.New(elemType)
		if err := mb.cdc.UnmarshalBinaryBare(value, ptr.Interface()); err != nil {
			return nil, errors.Wrapf(errors.ErrType, "cannot load %s: %s", elemType, err)
		}
		items = reflect.Append(items, ptr.Elem())
		keys = append(keys, key[len(mb.prefix):])
	}
	slice.Elem().Set(items)
	return keys, nil
}

// prefixEnd returns the first key that does not share the given prefix.
// A nil result means there is no upper bound.
func prefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
