// Package markup holds the core of the markup-field mechanism: the three
// storage slots backing one logical field (raw text, markup type, rendered
// cache), the accessor view bound to them, the renderer variants, and the
// name-keyed renderer registry. Field definitions in pkg/field drive these
// pieces; this package knows nothing about persistence or forms.
package markup
