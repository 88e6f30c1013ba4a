package keygen

// Key is one generated key. The value is immutable once produced; the
// embedded cursor makes iteration a one-shot pass over its characters.
type Key struct {
	raw  string
	text string
	pos  int
}

// String returns the final wrapped, encoded key text.
func (k *Key) String() string {
	return k.text
}

// Raw returns the key material before wrapping and encoding.
func (k *Key) Raw() string {
	return k.raw
}

// Len returns the length of the final key text.
func (k *Key) Len() int {
	return len(k.text)
}

// HasNext reports whether the cursor has characters left to yield.
func (k *Key) HasNext() bool {
	return k.pos < len(k.text)
}

// Next yields the next character of the key. Once the pass is consumed
// every further call returns ErrExhausted; the cursor does not restart.
func (k *Key) Next() (byte, error) {
	if !k.HasNext() {
		return 0, ErrExhausted
	}

	c := k.text[k.pos]
	k.pos++

	return c, nil
}

// Collection is an ordered, read-only mapping from positional labels
// ("key1", "key2", ...) to generated keys.
type Collection struct {
	labels []string
	keys   []*Key
	pos    int
}

// Len returns the number of keys in the collection.
func (c *Collection) Len() int {
	return len(c.keys)
}

// Labels returns the positional labels in collection order.
func (c *Collection) Labels() []string {
	return c.labels
}

// Get returns the key for a positional label.
func (c *Collection) Get(label string) (*Key, bool) {
	for i, l := range c.labels {
		if l == label {
			return c.keys[i], true
		}
	}

	return nil, false
}

// At returns the key at a zero-based position.
func (c *Collection) At(i int) *Key {
	return c.keys[i]
}

// HasNext reports whether the cursor has keys left to yield.
func (c *Collection) HasNext() bool {
	return c.pos < len(c.keys)
}

// Next yields the next key in collection order. Once all keys are
// yielded every further call returns ErrExhausted.
func (c *Collection) Next() (*Key, error) {
	if !c.HasNext() {
		return nil, ErrExhausted
	}

	k := c.keys[c.pos]
	c.pos++

	return k, nil
}
