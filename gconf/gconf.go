package gconf

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	amino "github.com/tendermint/go-amino"
)

// ReadStore is a subset of remit.ReadOnlyKVStore.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is a subset of remit.KVStore.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Validator is implemented by every configuration object.
type Validator interface {
	Validate() error
}

var cdc = amino.NewCodec()

func key(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save will Validate the object, before writing it to a special "configuration"
// singleton for that package name.
func Save(db Store, pkg string, src Validator) error {
	key := key(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := cdc.MarshalBinaryBare(src)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "marshal: key %q: %s", key, err)
	}
	if err := db.Set(key, raw); err != nil {
		return errors.Wrapf(err, "save: key %q", key)
	}
	return nil
}

// Load reads the configuration of a given package into dst, that must be a
// pointer. It returns ErrNotFound if no configuration was stored.
func Load(db ReadStore, pkg string, dst interface{}) error {
	key := key(pkg)
	raw, err := db.Get(key)
	if err != nil {
		return errors.Wrapf(err, "load: key %q", key)
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := cdc.UnmarshalBinaryBare(raw, dst); err != nil {
		return errors.Wrapf(errors.ErrModel, "unmarshal: key %q: %s", key, err)
	}
	return nil
}

// InitConfig will take opts["conf"][pkg], parse it into the given configuration
// object, validate it, and store under the proper key in the database.
// Returns an error if anything goes wrong
func InitConfig(db Store, opts remit.Options, pkg string, conf Validator) error {
	var confOptions remit.Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return errors.Wrap(err, "read conf")
	}
	if confOptions[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := confOptions.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(err, "read configuration for %s", pkg)
	}
	if err := Save(db, pkg, conf); err != nil {
		return errors.Wrapf(err, "save configuration for %s", pkg)
	}
	return nil
}
