/*

Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each package owns a single configuration object, stored under the "_c:<pkg>"
key. An object is always validated before it is written, so a loaded
configuration can be trusted. Initial values are usually read from the
"conf" section of the genesis file with InitConfig.

*/
package gconf
